package services

import (
	"fmt"

	"github.com/custodia-labs/huangli/internal/core/domain"
	"github.com/custodia-labs/huangli/internal/core/ports/driven"
)

// Result is the outcome of one optional provider query: a value or an error.
// Optional lookups never fail the request; a Result is turned into a plain
// value with Or at the assembly boundary.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a successful Result.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail returns a failed Result.
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Value returns the value and error of the Result.
func (r Result[T]) Value() (T, error) {
	return r.value, r.err
}

// Err returns the failure, or nil.
func (r Result[T]) Err() error {
	return r.err
}

// Or returns the value, or def if the query failed or returned nothing.
func (r Result[T]) Or(def T) T {
	if r.err != nil || isAbsent(r.value) {
		return def
	}
	return r.value
}

// Query runs getter and captures its outcome. A panic inside getter is
// recovered into a failed Result.
func Query[T any](getter func() (T, error)) (res Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			res = Fail[T](fmt.Errorf("provider panic: %v", p))
		}
	}()

	v, err := getter()
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}

// Safe runs getter and returns def on any failure. It never logs or retries:
// failures here are provider version gaps, not faults.
func Safe[T any](getter func() (T, error), def T) T {
	return Query(getter).Or(def)
}

// SafeList runs a list getter, drops zero-valued entries in order, and
// returns an empty non-nil list on any failure.
func SafeList[T comparable](getter func() ([]T, error)) []T {
	return compact(Query(getter).Or(nil))
}

// ask queries an optional capability C of day through get. A day that
// does not implement C yields domain.ErrUnsupported.
func ask[C, T any](day driven.LunarDay, get func(C) (T, error)) Result[T] {
	c, ok := day.(C)
	if !ok {
		return Fail[T](domain.ErrUnsupported)
	}
	return Query(func() (T, error) { return get(c) })
}

// askList is ask for list-valued capabilities, compacted.
func askList[C any, T comparable](day driven.LunarDay, get func(C) ([]T, error)) []T {
	return compact(ask(day, get).Or(nil))
}

func compact[T comparable](xs []T) []T {
	var zero T
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if x != zero {
			out = append(out, x)
		}
	}
	return out
}

func isAbsent(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case []string:
		return x == nil
	default:
		return false
	}
}
