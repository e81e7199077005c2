package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/studiobridge/studiobridge/internal/core/domain"
)

func (s *Server) registerAppointmentTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getStaffAppointments",
		Description: "List staff appointments, defaulting to today through a week out",
	}, s.handleGetStaffAppointments)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "addAppointment",
		Description: "Book a new appointment for a client",
	}, s.handleAddAppointment)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "updateAppointment",
		Description: "Update an existing appointment",
	}, s.handleUpdateAppointment)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getBookableItems",
		Description: "List open appointment slots for the given session types",
	}, s.handleGetBookableItems)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getScheduleItems",
		Description: "List staff availability and unavailability blocks",
	}, s.handleGetScheduleItems)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "getActiveSessionTimes",
		Description: "List the bookable time windows per weekday",
	}, s.handleGetActiveSessionTimes)
}

func (s *Server) handleGetStaffAppointments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.AppointmentFilter,
) (*mcp.CallToolResult, domain.ListResult[domain.Appointment], error) {
	out, err := s.ports.Appointment.GetStaffAppointments(ctx, input)
	return nil, out, err
}

func (s *Server) handleAddAppointment(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.NewAppointment,
) (*mcp.CallToolResult, domain.OperationResult[domain.Appointment], error) {
	return nil, s.ports.Appointment.AddAppointment(ctx, input), nil
}

func (s *Server) handleUpdateAppointment(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.AppointmentUpdate,
) (*mcp.CallToolResult, domain.OperationResult[domain.Appointment], error) {
	return nil, s.ports.Appointment.UpdateAppointment(ctx, input), nil
}

func (s *Server) handleGetBookableItems(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.BookableItemFilter,
) (*mcp.CallToolResult, domain.ListResult[domain.BookableItem], error) {
	out, err := s.ports.Appointment.GetBookableItems(ctx, input)
	return nil, out, err
}

func (s *Server) handleGetScheduleItems(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.ScheduleItemFilter,
) (*mcp.CallToolResult, domain.ListResult[domain.ScheduleItem], error) {
	out, err := s.ports.Appointment.GetScheduleItems(ctx, input)
	return nil, out, err
}

func (s *Server) handleGetActiveSessionTimes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input domain.ActiveSessionTimeFilter,
) (*mcp.CallToolResult, domain.ListResult[domain.ActiveSessionTime], error) {
	out, err := s.ports.Appointment.GetActiveSessionTimes(ctx, input)
	return nil, out, err
}
