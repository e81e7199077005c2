package mindbody

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiobridge/studiobridge/internal/adapters/driven/cache/memory"
	"github.com/studiobridge/studiobridge/internal/core/domain"
	"github.com/studiobridge/studiobridge/internal/core/ports/driven"
)

// fakeGateway serves canned JSON per path and records calls.
type fakeGateway struct {
	responses map[string]string
	getCalls  atomic.Int64
	postCalls atomic.Int64
	lastQuery driven.Query
	lastPath  string
	lastBody  any
	err       error
}

func (g *fakeGateway) Get(ctx context.Context, path string, query driven.Query, out any) error {
	g.getCalls.Add(1)
	g.lastPath = path
	g.lastQuery = query
	if g.err != nil {
		return g.err
	}
	if raw, ok := g.responses[path]; ok && out != nil {
		return json.Unmarshal([]byte(raw), out)
	}
	return nil
}

func (g *fakeGateway) Post(ctx context.Context, path string, body, out any) error {
	g.postCalls.Add(1)
	g.lastPath = path
	g.lastBody = body
	if g.err != nil {
		return g.err
	}
	if raw, ok := g.responses[path]; ok && out != nil {
		return json.Unmarshal([]byte(raw), out)
	}
	return nil
}

const staffJSON = `{
	"StaffMembers": [
		{"Id": 7, "FirstName": "Ana", "LastName": "Lopez", "isMale": false},
		{"Id": 9, "FirstName": "Ben", "LastName": "Cho"}
	],
	"PaginationResponse": {"TotalResults": 2}
}`

func TestConnectorCaching(t *testing.T) {
	ctx := context.Background()

	t.Run("staff reads hit the cache on repeat", func(t *testing.T) {
		gw := &fakeGateway{responses: map[string]string{"/staff/staff": staffJSON}}
		conn := New(gw, Caches{Staff: memory.New(time.Hour)})

		first, err := conn.GetStaff(ctx, domain.StaffFilter{})
		require.NoError(t, err)
		second, err := conn.GetStaff(ctx, domain.StaffFilter{})
		require.NoError(t, err)

		assert.EqualValues(t, 1, gw.getCalls.Load())
		assert.Equal(t, first, second)
		assert.Equal(t, 2, first.Total)
		assert.Equal(t, "Ana Lopez", first.Items[0].Name)
	})

	t.Run("different filters use different cache keys", func(t *testing.T) {
		gw := &fakeGateway{responses: map[string]string{"/staff/staff": staffJSON}}
		conn := New(gw, Caches{Staff: memory.New(time.Hour)})

		_, err := conn.GetStaff(ctx, domain.StaffFilter{})
		require.NoError(t, err)
		_, err = conn.GetStaff(ctx, domain.StaffFilter{StaffIDs: []int{7}})
		require.NoError(t, err)

		assert.EqualValues(t, 2, gw.getCalls.Load())
	})

	t.Run("expired entries refetch", func(t *testing.T) {
		now := time.Now()
		clock := func() time.Time { return now }

		gw := &fakeGateway{responses: map[string]string{"/staff/staff": staffJSON}}
		conn := New(gw, Caches{Staff: memory.New(time.Minute, memory.WithClock(clock))})

		_, err := conn.GetStaff(ctx, domain.StaffFilter{})
		require.NoError(t, err)

		now = now.Add(2 * time.Minute)
		_, err = conn.GetStaff(ctx, domain.StaffFilter{})
		require.NoError(t, err)

		assert.EqualValues(t, 2, gw.getCalls.Load())
	})

	t.Run("read failures are not cached", func(t *testing.T) {
		gw := &fakeGateway{err: &TransientError{StatusCode: 503, Attempts: 3}}
		cache := memory.New(time.Hour)
		conn := New(gw, Caches{Staff: cache})

		_, err := conn.GetStaff(ctx, domain.StaffFilter{})
		require.Error(t, err)
		assert.Zero(t, cache.Len())
	})
}

func TestGetStaffByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		gw := &fakeGateway{responses: map[string]string{"/staff/staff": staffJSON}}
		conn := New(gw, Caches{})

		staff, err := conn.GetStaffByID(ctx, 9)
		require.NoError(t, err)
		assert.Equal(t, "Ben Cho", staff.Name)
	})

	t.Run("missing id is ErrNotFound", func(t *testing.T) {
		gw := &fakeGateway{responses: map[string]string{"/staff/staff": `{"StaffMembers":[]}`}}
		conn := New(gw, Caches{})

		_, err := conn.GetStaffByID(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestClassDateDefaults(t *testing.T) {
	ctx := context.Background()

	gw := &fakeGateway{responses: map[string]string{"/class/classes": `{"Classes":[]}`}}
	conn := New(gw, Caches{})
	conn.now = func() time.Time {
		return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	}

	_, err := conn.GetClasses(ctx, domain.ClassFilter{})
	require.NoError(t, err)

	assert.Equal(t, "2026-09-01T00:00:00", gw.lastQuery["StartDateTime"])
	assert.Equal(t, "2026-09-08T23:59:59", gw.lastQuery["EndDateTime"])
}

func TestMutationsNeverError(t *testing.T) {
	ctx := context.Background()

	t.Run("upstream rejection becomes a failed result", func(t *testing.T) {
		gw := &fakeGateway{err: &APIError{StatusCode: 400, Message: "Client already exists"}}
		conn := New(gw, Caches{})

		result := conn.AddClient(ctx, domain.NewClient{FirstName: "Sam", LastName: "Reyes"})
		assert.False(t, result.Success)
		assert.Equal(t, "Client already exists", result.Message)
		assert.Nil(t, result.Data)
	})

	t.Run("transport failure becomes a failed result", func(t *testing.T) {
		gw := &fakeGateway{err: &TransientError{Message: "connection refused", Attempts: 3}}
		conn := New(gw, Caches{})

		result := conn.AddClientArrival(ctx, "c1", 1)
		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Message)
	})

	t.Run("success carries the standard message", func(t *testing.T) {
		gw := &fakeGateway{responses: map[string]string{
			"/client/addclient": `{"Client":{"Id":"c9","FirstName":"Sam","LastName":"Reyes"}}`,
		}}
		conn := New(gw, Caches{})

		result := conn.AddClient(ctx, domain.NewClient{FirstName: "Sam", LastName: "Reyes"})
		require.True(t, result.Success)
		assert.Equal(t, "Client created successfully", result.Message)
		require.NotNil(t, result.Data)
		assert.Equal(t, "c9", result.Data.ID)
	})
}

func TestMutationInvalidation(t *testing.T) {
	ctx := context.Background()

	t.Run("class booking clears the classes namespace only", func(t *testing.T) {
		classes := memory.New(time.Hour)
		general := memory.New(time.Hour)
		classes.Set("class.classes", "cached")
		general.Set("client.clients", "cached")

		gw := &fakeGateway{responses: map[string]string{"/class/addclienttoclass": `{}`}}
		conn := New(gw, Caches{Classes: classes, General: general})

		result := conn.AddClientToClass(ctx, domain.ClassBooking{ClientID: "c1", ClassID: 100})
		require.True(t, result.Success)

		assert.Zero(t, classes.Len())
		assert.Equal(t, 1, general.Len())
	})

	t.Run("failed mutations leave the cache intact", func(t *testing.T) {
		classes := memory.New(time.Hour)
		classes.Set("class.classes", "cached")

		gw := &fakeGateway{err: &APIError{StatusCode: 400, Message: "Class is full"}}
		conn := New(gw, Caches{Classes: classes})

		result := conn.AddClientToClass(ctx, domain.ClassBooking{ClientID: "c1", ClassID: 100})
		require.False(t, result.Success)
		assert.Equal(t, 1, classes.Len())
	})

	t.Run("client mutations clear the general namespace", func(t *testing.T) {
		general := memory.New(time.Hour)
		general.Set("client.clients", "cached")

		gw := &fakeGateway{responses: map[string]string{"/client/updateclient": `{}`}}
		conn := New(gw, Caches{General: general})

		result := conn.UpdateClient(ctx, domain.ClientUpdate{ClientID: "c1", FirstName: "Sam"})
		require.True(t, result.Success)
		assert.Zero(t, general.Len())
	})
}
