package ui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/turkosaurus/userview/internal/users"
)

// FetchController issues the single request that populates a ViewState and
// applies its outcome.
type FetchController struct {
	client  users.Lister
	state   *ViewState
	timeout time.Duration

	activated   bool
	deactivated bool
}

// NewFetchController wires client to state. A zero timeout waits indefinitely.
func NewFetchController(client users.Lister, state *ViewState, timeout time.Duration) *FetchController {
	return &FetchController{
		client:  client,
		state:   state,
		timeout: timeout,
	}
}

// Activate is the view's one-time initialization step. The first call marks
// the state as loading and returns the command that fetches; later calls
// return nil.
func (fc *FetchController) Activate(ctx context.Context) tea.Cmd {
	if fc.activated {
		slog.Debug("view already activated; not fetching again")
		return nil
	}
	fc.activated = true
	fc.state.MarkLoading()
	return loadUsers(ctx, fc.client, fc.timeout)
}

// Activated reports whether Activate has run.
func (fc *FetchController) Activated() bool {
	return fc.activated
}

// LoadAll fetches and applies the result synchronously, without an event
// loop. It returns the error that was applied to the state, if any.
func (fc *FetchController) LoadAll(ctx context.Context) error {
	fc.state.MarkLoading()
	msg := fetchUsers(ctx, fc.client, fc.timeout)
	fc.Complete(msg)
	return msg.err
}

// Complete applies a finished fetch: exactly one of SetRecords or SetError.
// Results arriving after Deactivate are dropped.
func (fc *FetchController) Complete(msg usersLoadedMsg) {
	if fc.deactivated {
		slog.Debug("view deactivated; discarding fetch result",
			"failed", msg.err != nil,
		)
		return
	}
	if msg.err != nil {
		fc.state.SetError(msg.err)
		return
	}
	fc.state.SetRecords(msg.users)
}

// Deactivate detaches the controller from its view. An in-flight request is
// not cancelled; its result is discarded.
func (fc *FetchController) Deactivate() {
	fc.deactivated = true
}
