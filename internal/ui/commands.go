package ui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/turkosaurus/userview/internal/types"
	"github.com/turkosaurus/userview/internal/users"
)

func loadUsers(ctx context.Context, client users.Lister, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		return fetchUsers(ctx, client, timeout)
	}
}

// fetchUsers performs the request and folds any failure into a *users.FetchError.
func fetchUsers(ctx context.Context, client users.Lister, timeout time.Duration) usersLoadedMsg {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	records, err := client.ListUsers(ctx)
	if err != nil {
		if !users.IsFetchFailure(err) {
			err = &users.FetchError{Err: err}
		}
		slog.Error("fetch users",
			"error", err,
			"elapsed", time.Since(start),
		)
		return usersLoadedMsg{err: err}
	}
	if records == nil {
		records = []types.User{}
	}
	slog.Info("fetched users",
		"count", len(records),
		"elapsed", time.Since(start),
	)
	return usersLoadedMsg{users: records}
}
