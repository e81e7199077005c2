package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiobridge/studiobridge/internal/core/domain"
)

func TestServer_handleGetStaff(t *testing.T) {
	ctx := context.Background()

	t.Run("returns staff list", func(t *testing.T) {
		ports := testPorts()
		ports.Staff = &mockStaffService{
			staff: []domain.Staff{{ID: 7, Name: "Ana Lopez"}},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleGetStaff(ctx, nil, domain.StaffFilter{})
		require.NoError(t, err)
		assert.Equal(t, 1, output.Total)
		require.Len(t, output.Items, 1)
		assert.Equal(t, "Ana Lopez", output.Items[0].Name)
	})

	t.Run("passes the filter through", func(t *testing.T) {
		staff := &mockStaffService{}
		ports := testPorts()
		ports.Staff = staff
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleGetStaff(ctx, nil, domain.StaffFilter{StaffIDs: []int{7, 9}})
		require.NoError(t, err)
		assert.Equal(t, []int{7, 9}, staff.lastFilter.StaffIDs)
	})

	t.Run("read failure surfaces as tool error", func(t *testing.T) {
		ports := testPorts()
		ports.Staff = &mockStaffService{err: errors.New("upstream unavailable")}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleGetStaff(ctx, nil, domain.StaffFilter{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "upstream unavailable")
	})
}

func TestServer_mutationToolsNeverError(t *testing.T) {
	ctx := context.Background()

	// Upstream mutation failures arrive as OperationResult payloads with
	// Success false, never as handler errors.
	ports := testPorts()
	ports.Class = &mockClassService{
		bookingResult: domain.Failed[domain.BookingVisit]("Class is full"),
	}
	server, err := NewServer(ports)
	require.NoError(t, err)

	_, output, err := server.handleAddClientToClass(ctx, nil, domain.ClassBooking{
		ClientID: "c1",
		ClassID:  100,
	})
	require.NoError(t, err)
	assert.False(t, output.Success)
	assert.Equal(t, "Class is full", output.Message)
	assert.Nil(t, output.Data)
}

func TestServer_handleAddClient(t *testing.T) {
	ctx := context.Background()

	ports := testPorts()
	ports.Client = &mockClientService{
		addResult: domain.Succeeded("Client created successfully", domain.Client{ID: "c9"}),
	}
	server, err := NewServer(ports)
	require.NoError(t, err)

	_, output, err := server.handleAddClient(ctx, nil, domain.NewClient{
		FirstName: "Sam",
		LastName:  "Reyes",
	})
	require.NoError(t, err)
	assert.True(t, output.Success)
	require.NotNil(t, output.Data)
	assert.Equal(t, "c9", output.Data.ID)
}
