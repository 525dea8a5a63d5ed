package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/huangli/internal/core/domain"
	"github.com/custodia-labs/huangli/internal/logger"
)

const (
	// uriScheme is the custom URI scheme for Huangli resources.
	uriScheme = "huangli://"

	// Resource lookups are pinned to these regardless of configuration.
	resourceTimezone = "Asia/Shanghai"
	resourceLang     = "zh"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "{date}",
		Name:        "huangli",
		Description: "Huangli almanac for a YYYY-MM-DD date in Asia/Shanghai, in Chinese",
		MIMEType:    "application/json",
	}, s.handleHuangliResource)
}

// handleHuangliResource returns the almanac record for the date in the URI.
func (s *Server) handleHuangliResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	date := extractDate(req.Params.URI)
	if date == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	log := logger.With("request", uuid.NewString(), "resource", req.Params.URI)
	log.Debug("reading")

	record, err := s.ports.Huangli.Almanac(ctx, domain.AlmanacRequest{
		Date:     date,
		Timezone: resourceTimezone,
		Lang:     resourceLang,
	})
	if err != nil {
		log.Debug("failed: %v", err)
		return nil, fmt.Errorf("getting almanac: %w", err)
	}

	text, err := MarshalRecord(record)
	if err != nil {
		return nil, fmt.Errorf("marshalling almanac: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     text,
		}},
	}, nil
}

// MarshalRecord renders a record as two-space indented JSON with
// non-ASCII characters and HTML-significant characters left unescaped.
func MarshalRecord(record *domain.AlmanacRecord) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(record); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// extractDate extracts the date from a URI like huangli://2024-02-10.
func extractDate(uri string) string {
	if !strings.HasPrefix(uri, uriScheme) {
		return ""
	}

	return strings.TrimSuffix(strings.TrimPrefix(uri, uriScheme), "/")
}
