package mcp

// registerTools registers all tool handlers with the MCP server. Input
// schemas are generated from the domain structs' json tags, so tool
// arguments line up with the web API's request bodies.
func (s *Server) registerTools() {
	s.registerSiteTools()
	s.registerStaffTools()
	s.registerClientTools()
	s.registerClassTools()
	s.registerAppointmentTools()
	s.registerEnrollmentTools()
	s.registerSaleTools()
}

// emptyInput is the schema for tools that take no arguments.
type emptyInput struct{}
