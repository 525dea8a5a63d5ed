// Package mcp provides an MCP (Model Context Protocol) server adapter for Huangli.
// It exposes the almanac as the get_huangli tool and the huangli://{date}
// resource so AI assistants can look up Chinese calendar days.
package mcp

import "errors"

// ErrMissingHuangliService is returned when the almanac service is not provided.
var ErrMissingHuangliService = errors.New("mcp: huangli service is required")
