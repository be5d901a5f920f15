package ui

import "github.com/turkosaurus/userview/internal/types"

// usersLoadedMsg carries the outcome of one fetch; exactly one field is set.
type usersLoadedMsg struct {
	users []types.User
	err   error
}
