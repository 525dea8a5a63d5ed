package mcp

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/huangli/internal/core/domain"
	"github.com/custodia-labs/huangli/internal/logger"
)

// ToolName is the name of the almanac tool.
const ToolName = "get_huangli"

// HuangliInput is the input schema for the get_huangli tool.
type HuangliInput struct {
	Date string `json:"date,omitempty" jsonschema:"the day to look up in YYYY-MM-DD format, defaults to today in tz"`
	TZ   string `json:"tz,omitempty" jsonschema:"IANA timezone name such as Asia/Shanghai (the default)"`
	Lang string `json:"lang,omitempty" jsonschema:"zh or en, controls the weekday label (default zh)"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolName,
		Description: "Get the Chinese Huangli almanac for a date: lunar date, stems and branches, auspicious and inauspicious activities.",
	}, s.handleHuangli)
}

// handleHuangli handles the get_huangli tool invocation.
func (s *Server) handleHuangli(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HuangliInput,
) (*mcp.CallToolResult, domain.AlmanacRecord, error) {
	log := logger.With("request", uuid.NewString(), "tool", ToolName)
	log.Debug("date=%q tz=%q lang=%q", input.Date, input.TZ, input.Lang)

	record, err := s.ports.Huangli.Almanac(ctx, domain.AlmanacRequest{
		Date:     input.Date,
		Timezone: input.TZ,
		Lang:     input.Lang,
	})
	if err != nil {
		log.Debug("failed: %v", err)
		return nil, domain.AlmanacRecord{}, err
	}

	return nil, *record, nil
}
