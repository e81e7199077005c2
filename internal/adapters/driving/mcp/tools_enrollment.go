package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/studiobridge/studiobridge/internal/core/domain"
)

func (s *Server) registerEnrollmentTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getEnrollments",
		Description: "List enrollment programs such as courses and workshops, defaulting to the next 30 days",
	}, s.handleGetEnrollments)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "addClientToEnrollment",
		Description: "Enroll a client in an enrollment program",
	}, s.handleAddClientToEnrollment)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getClientEnrollments",
		Description: "List the enrollments a client is signed up for",
	}, s.handleGetClientEnrollments)
}

func (s *Server) handleGetEnrollments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.EnrollmentFilter,
) (*mcp.CallToolResult, domain.ListResult[domain.Enrollment], error) {
	out, err := s.ports.Enrollment.GetEnrollments(ctx, input)
	return nil, out, err
}

func (s *Server) handleAddClientToEnrollment(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.EnrollmentBooking,
) (*mcp.CallToolResult, domain.OperationResult[domain.Empty], error) {
	return nil, s.ports.Enrollment.AddClientToEnrollment(ctx, input), nil
}

func (s *Server) handleGetClientEnrollments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ClientIDInput,
) (*mcp.CallToolResult, domain.ListResult[domain.Enrollment], error) {
	out, err := s.ports.Enrollment.GetClientEnrollments(ctx, input.ClientID)
	return nil, out, err
}
