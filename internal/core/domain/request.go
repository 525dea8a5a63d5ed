package domain

// AlmanacRequest is the input of the get_huangli operation.
type AlmanacRequest struct {
	// Date is an optional YYYY-MM-DD string. Empty means today.
	Date string

	// Timezone is an IANA timezone name. Empty means DefaultTimezone.
	Timezone string

	// Lang is a language tag. Empty means DefaultLanguage.
	Lang string
}

// WithDefaults returns a copy of the request with empty fields defaulted.
func (r AlmanacRequest) WithDefaults() AlmanacRequest {
	if r.Timezone == "" {
		r.Timezone = DefaultTimezone
	}
	if r.Lang == "" {
		r.Lang = string(DefaultLanguage)
	}
	return r
}
