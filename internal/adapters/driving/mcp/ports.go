package mcp

import (
	"github.com/custodia-labs/huangli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Huangli answers almanac lookups.
	Huangli driving.HuangliService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Huangli == nil {
		return ErrMissingHuangliService
	}
	return nil
}
