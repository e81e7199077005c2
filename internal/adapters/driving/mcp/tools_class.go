package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/studiobridge/studiobridge/internal/core/domain"
)

func (s *Server) registerClassTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getClasses",
		Description: "List class occurrences, defaulting to today through a week out",
	}, s.handleGetClasses)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getClassDescriptions",
		Description: "List the studio's class types",
	}, s.handleGetClassDescriptions)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getClassSchedules",
		Description: "List recurring class schedule definitions",
	}, s.handleGetClassSchedules)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "addClientToClass",
		Description: "Book a client into a class, or onto its waitlist",
	}, s.handleAddClientToClass)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "removeClientFromClass",
		Description: "Cancel a client's class booking",
	}, s.handleRemoveClientFromClass)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getWaitlistEntries",
		Description: "List waitlist entries for classes or clients",
	}, s.handleGetWaitlistEntries)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "substituteClassTeacher",
		Description: "Substitute the teacher on a class occurrence",
	}, s.handleSubstituteClassTeacher)
}

func (s *Server) handleGetClasses(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.ClassFilter,
) (*mcp.CallToolResult, domain.ListResult[domain.Class], error) {
	out, err := s.ports.Class.GetClasses(ctx, input)
	return nil, out, err
}

func (s *Server) handleGetClassDescriptions(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ emptyInput,
) (*mcp.CallToolResult, domain.ListResult[domain.ClassDescription], error) {
	out, err := s.ports.Class.GetClassDescriptions(ctx)
	return nil, out, err
}

func (s *Server) handleGetClassSchedules(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.ClassScheduleFilter,
) (*mcp.CallToolResult, domain.ListResult[domain.ClassSchedule], error) {
	out, err := s.ports.Class.GetClassSchedules(ctx, input)
	return nil, out, err
}

func (s *Server) handleAddClientToClass(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.ClassBooking,
) (*mcp.CallToolResult, domain.OperationResult[domain.BookingVisit], error) {
	return nil, s.ports.Class.AddClientToClass(ctx, input), nil
}

func (s *Server) handleRemoveClientFromClass(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.ClassCancellation,
) (*mcp.CallToolResult, domain.OperationResult[domain.Empty], error) {
	return nil, s.ports.Class.RemoveClientFromClass(ctx, input), nil
}

func (s *Server) handleGetWaitlistEntries(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.WaitlistFilter,
) (*mcp.CallToolResult, domain.ListResult[domain.WaitlistEntry], error) {
	out, err := s.ports.Class.GetWaitlistEntries(ctx, input)
	return nil, out, err
}

func (s *Server) handleSubstituteClassTeacher(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.TeacherSubstitution,
) (*mcp.CallToolResult, domain.OperationResult[domain.Empty], error) {
	return nil, s.ports.Class.SubstituteTeacher(ctx, input), nil
}
