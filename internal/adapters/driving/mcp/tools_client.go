package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/studiobridge/studiobridge/internal/core/domain"
)

// ClientIDInput identifies a single client.
type ClientIDInput struct {
	ClientID string `json:"clientId" jsonschema:"the client's unique id"`
}

// ClientMembershipsInput identifies a client and an optional location.
type ClientMembershipsInput struct {
	ClientID   string `json:"clientId" jsonschema:"the client's unique id"`
	LocationID int    `json:"locationId,omitempty" jsonschema:"restrict memberships to one location"`
}

// ClientArrivalInput records a front-desk check-in.
type ClientArrivalInput struct {
	ClientID   string `json:"clientId" jsonschema:"the client's unique id"`
	LocationID int    `json:"locationId" jsonschema:"the location the client arrived at"`
}

func (s *Server) registerClientTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getClients",
		Description: "Search studio clients by name, email or id",
	}, s.handleGetClients)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "addClient",
		Description: "Create a new studio client",
	}, s.handleAddClient)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "updateClient",
		Description: "Update an existing client's details",
	}, s.handleUpdateClient)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getClientVisits",
		Description: "Get a client's visit history with attendance aggregates, defaulting to the last 30 days",
	}, s.handleGetClientVisits)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getClientMemberships",
		Description: "List a client's active memberships",
	}, s.handleGetClientMemberships)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getClientContracts",
		Description: "List a client's contracts and autopay agreements",
	}, s.handleGetClientContracts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getClientAccountBalances",
		Description: "Get a client's account balance and stored cards",
	}, s.handleGetClientAccountBalances)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "addClientArrival",
		Description: "Check a client in at a location",
	}, s.handleAddClientArrival)
}

func (s *Server) handleGetClients(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.ClientFilter,
) (*mcp.CallToolResult, domain.ListResult[domain.Client], error) {
	out, err := s.ports.Client.GetClients(ctx, input)
	return nil, out, err
}

func (s *Server) handleAddClient(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.NewClient,
) (*mcp.CallToolResult, domain.OperationResult[domain.Client], error) {
	return nil, s.ports.Client.AddClient(ctx, input), nil
}

func (s *Server) handleUpdateClient(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.ClientUpdate,
) (*mcp.CallToolResult, domain.OperationResult[domain.Client], error) {
	return nil, s.ports.Client.UpdateClient(ctx, input), nil
}

func (s *Server) handleGetClientVisits(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.VisitFilter,
) (*mcp.CallToolResult, domain.VisitHistory, error) {
	out, err := s.ports.Client.GetClientVisits(ctx, input)
	return nil, out, err
}

func (s *Server) handleGetClientMemberships(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ClientMembershipsInput,
) (*mcp.CallToolResult, domain.ListResult[domain.Membership], error) {
	out, err := s.ports.Client.GetClientMemberships(ctx, input.ClientID, input.LocationID)
	return nil, out, err
}

func (s *Server) handleGetClientContracts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ClientIDInput,
) (*mcp.CallToolResult, domain.ListResult[domain.ClientContract], error) {
	out, err := s.ports.Client.GetClientContracts(ctx, input.ClientID)
	return nil, out, err
}

func (s *Server) handleGetClientAccountBalances(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ClientIDInput,
) (*mcp.CallToolResult, domain.AccountBalances, error) {
	out, err := s.ports.Client.GetClientAccountBalances(ctx, input.ClientID)
	return nil, out, err
}

func (s *Server) handleAddClientArrival(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ClientArrivalInput,
) (*mcp.CallToolResult, domain.OperationResult[domain.ArrivalResult], error) {
	return nil, s.ports.Client.AddClientArrival(ctx, input.ClientID, input.LocationID), nil
}
