package ui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turkosaurus/userview/internal/types"
	"github.com/turkosaurus/userview/internal/users"
)

// fakeLister returns canned results and counts calls.
type fakeLister struct {
	calls int
	users []types.User
	err   error
}

func (f *fakeLister) ListUsers(ctx context.Context) ([]types.User, error) {
	f.calls++
	return f.users, f.err
}

// blockingLister waits until its context is done.
type blockingLister struct{}

func (blockingLister) ListUsers(ctx context.Context) ([]types.User, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// drain runs cmd and any batched commands it yields, collecting messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// mutations counts observer notifications on s.
func mutations(s *ViewState) *int {
	n := 0
	s.Subscribe(func(*ViewState) { n++ })
	return &n
}

func TestFetchController_Success(t *testing.T) {
	state := NewViewState()
	n := mutations(state)
	records := []types.User{user(1, "a"), user(2, "b"), user(3, "c")}
	client := &fakeLister{users: records}

	err := NewFetchController(client, state, 0).LoadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records, state.Records())
	assert.NoError(t, state.Err())
	assert.Equal(t, 1, *n, "exactly one mutation per load")
	assert.Equal(t, 1, client.calls)
}

func TestFetchController_Failure(t *testing.T) {
	state := NewViewState()
	n := mutations(state)
	client := &fakeLister{err: errors.New("connection refused")}

	err := NewFetchController(client, state, 0).LoadAll(context.Background())
	require.Error(t, err)
	assert.True(t, users.IsFetchFailure(err), "plain errors are folded into FetchError")
	assert.Empty(t, state.Records())
	assert.Equal(t, err, state.Err())
	assert.Equal(t, 1, *n)
}

func TestFetchController_StaleOnFailure(t *testing.T) {
	state := NewViewState()
	u1 := user(1, "a")
	client := &fakeLister{users: []types.User{u1}}
	fc := NewFetchController(client, state, 0)

	require.NoError(t, fc.LoadAll(context.Background()))
	client.users, client.err = nil, errors.New("boom")
	require.Error(t, fc.LoadAll(context.Background()))

	assert.Equal(t, []types.User{u1}, state.Records())
	assert.Error(t, state.Err())
}

func TestFetchController_EmptySuccess(t *testing.T) {
	state := NewViewState()
	client := &fakeLister{users: []types.User{}}

	require.NoError(t, NewFetchController(client, state, 0).LoadAll(context.Background()))
	assert.Empty(t, state.Records())
	assert.NoError(t, state.Err())
	assert.Equal(t, StatusReady, state.Status())
}

func TestFetchController_ActivateOnce(t *testing.T) {
	state := NewViewState()
	client := &fakeLister{users: []types.User{user(1, "a")}}
	fc := NewFetchController(client, state, 0)

	cmd := fc.Activate(context.Background())
	require.NotNil(t, cmd)
	assert.True(t, fc.Activated())
	assert.True(t, state.Loading())

	for i := 0; i < 5; i++ {
		assert.Nil(t, fc.Activate(context.Background()))
	}

	msg, ok := cmd().(usersLoadedMsg)
	require.True(t, ok)
	fc.Complete(msg)

	assert.Equal(t, 1, client.calls)
	assert.Len(t, state.Records(), 1)
	assert.False(t, state.Loading())
}

func TestFetchController_LateResultDiscarded(t *testing.T) {
	state := NewViewState()
	n := mutations(state)
	client := &fakeLister{users: []types.User{user(1, "a")}}
	fc := NewFetchController(client, state, 0)

	cmd := fc.Activate(context.Background())
	fc.Deactivate()
	fc.Complete(cmd().(usersLoadedMsg))

	assert.Zero(t, *n)
	assert.Empty(t, state.Records())
	assert.NoError(t, state.Err())
}

func TestFetchController_Timeout(t *testing.T) {
	state := NewViewState()
	fc := NewFetchController(blockingLister{}, state, 10*time.Millisecond)

	err := fc.LoadAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, StatusFailed, state.Status())
}

func TestFetchController_OverHTTP(t *testing.T) {
	t.Run("one record", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":1,"firstName":"Ann","lastName":"Lee","age":30,"email":"a@x.com"}]`))
		}))
		defer srv.Close()

		state := NewViewState()
		fc := NewFetchController(users.NewClient(srv.URL, srv.Client()), state, 0)
		require.NoError(t, fc.LoadAll(context.Background()))

		rows := UserRows(state.Records())
		require.Len(t, rows, 1)
		assert.Equal(t, []string{"1", "Ann", "Lee", "30", "a@x.com"}, []string(rows[0]))
		assert.NoError(t, state.Err())
	})

	t.Run("loosely typed fields", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"id":1,"firstName":"Ann","lastName":"Lee","age":30.0,"email":"a@x.com"},
				{"id":2,"firstName":"Bob","lastName":"Ray","age":"30","email":"b@x.com"},
				{"id":3,"firstName":7,"lastName":"Oh","age":22,"email":"c@x.com"}
			]`))
		}))
		defer srv.Close()

		state := NewViewState()
		fc := NewFetchController(users.NewClient(srv.URL, srv.Client()), state, 0)
		require.NoError(t, fc.LoadAll(context.Background()))

		assert.NoError(t, state.Err())
		assert.Equal(t, StatusReady, state.Status())
		rows := UserRows(state.Records())
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"1", "Ann", "Lee", "30.0", "a@x.com"}, []string(rows[0]))
		assert.Equal(t, []string{"2", "Bob", "Ray", "30", "b@x.com"}, []string(rows[1]))
		assert.Equal(t, []string{"3", "7", "Oh", "22", "c@x.com"}, []string(rows[2]))
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "internal", http.StatusInternalServerError)
		}))
		defer srv.Close()

		state := NewViewState()
		fc := NewFetchController(users.NewClient(srv.URL, srv.Client()), state, 0)
		require.Error(t, fc.LoadAll(context.Background()))

		assert.Empty(t, state.Records())
		require.Error(t, state.Err())
		var fe *users.FetchError
		require.ErrorAs(t, state.Err(), &fe)
		assert.Equal(t, http.StatusInternalServerError, fe.StatusCode)
	})
}
