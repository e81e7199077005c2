package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/studiobridge/studiobridge/internal/core/domain"
)

// TeacherScheduleInput identifies a teacher and an optional date range.
// Dates default to today through a week out.
type TeacherScheduleInput struct {
	TeacherID int    `json:"teacherId" jsonschema:"the staff id of the teacher"`
	StartDate string `json:"startDate,omitempty" jsonschema:"start of the range, YYYY-MM-DD"`
	EndDate   string `json:"endDate,omitempty" jsonschema:"end of the range, YYYY-MM-DD"`
}

func (s *Server) registerStaffTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getStaff",
		Description: "List staff members, optionally filtered by id, location or session type",
	}, s.handleGetStaff)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getTeacherSchedule",
		Description: "Get one teacher's class schedule over a date range with per-day and per-location summaries",
	}, s.handleGetTeacherSchedule)
}

func (s *Server) handleGetStaff(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.StaffFilter,
) (*mcp.CallToolResult, domain.ListResult[domain.Staff], error) {
	out, err := s.ports.Staff.GetStaff(ctx, input)
	return nil, out, err
}

func (s *Server) handleGetTeacherSchedule(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TeacherScheduleInput,
) (*mcp.CallToolResult, domain.TeacherSchedule, error) {
	out, err := s.ports.Staff.GetTeacherSchedule(ctx, input.TeacherID, input.StartDate, input.EndDate)
	return nil, out, err
}
