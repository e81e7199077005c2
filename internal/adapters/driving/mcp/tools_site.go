package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/studiobridge/studiobridge/internal/core/domain"
)

func (s *Server) registerSiteTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getSites",
		Description: "List the sites the configured credentials can access",
	}, s.handleGetSites)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getLocations",
		Description: "List the studio's physical locations",
	}, s.handleGetLocations)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getResources",
		Description: "List bookable resources such as rooms and equipment",
	}, s.handleGetResources)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getActivationCode",
		Description: "Get the site activation code and activation link",
	}, s.handleGetActivationCode)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getPrograms",
		Description: "List service programs, optionally filtered by schedule type",
	}, s.handleGetPrograms)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getSessionTypes",
		Description: "List session types, optionally filtered by program",
	}, s.handleGetSessionTypes)
}

func (s *Server) handleGetSites(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ emptyInput,
) (*mcp.CallToolResult, domain.ListResult[domain.Site], error) {
	out, err := s.ports.Site.GetSites(ctx)
	return nil, out, err
}

func (s *Server) handleGetLocations(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ emptyInput,
) (*mcp.CallToolResult, domain.ListResult[domain.Location], error) {
	out, err := s.ports.Site.GetLocations(ctx)
	return nil, out, err
}

func (s *Server) handleGetResources(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ emptyInput,
) (*mcp.CallToolResult, domain.ListResult[domain.Resource], error) {
	out, err := s.ports.Site.GetResources(ctx)
	return nil, out, err
}

func (s *Server) handleGetActivationCode(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ emptyInput,
) (*mcp.CallToolResult, domain.ActivationCode, error) {
	out, err := s.ports.Site.GetActivationCode(ctx)
	return nil, out, err
}

func (s *Server) handleGetPrograms(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.ProgramFilter,
) (*mcp.CallToolResult, domain.ListResult[domain.Program], error) {
	out, err := s.ports.Site.GetPrograms(ctx, input)
	return nil, out, err
}

func (s *Server) handleGetSessionTypes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.SessionTypeFilter,
) (*mcp.CallToolResult, domain.ListResult[domain.SessionType], error) {
	out, err := s.ports.Site.GetSessionTypes(ctx, input)
	return nil, out, err
}
