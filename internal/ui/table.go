package ui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/turkosaurus/userview/internal/types"
	"github.com/turkosaurus/userview/internal/ui/keys"
	"github.com/turkosaurus/userview/internal/ui/styles"
)

// Column widths for the user table. Email takes the remaining width.
const (
	colID       = 6
	colName     = 14
	colAge      = 5
	colEmailMin = 20
	cellPadding = 2 // horizontal padding of header and cell styles

	defaultTableWidth  = 80
	defaultTableHeight = 10
)

// UserRows maps records to table rows, one per record, in the same order.
func UserRows(records []types.User) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, u := range records {
		rows = append(rows, table.Row(u.Cells()))
	}
	return rows
}

func userColumns(width int) []table.Column {
	email := width - colID - 2*colName - colAge - cellPadding*len(types.Columns)
	if email < colEmailMin {
		email = colEmailMin
	}
	widths := []int{colID, colName, colName, colAge, email}
	cols := make([]table.Column, len(types.Columns))
	for i, title := range types.Columns {
		cols[i] = table.Column{Title: title, Width: widths[i]}
	}
	return cols
}

// UserTable is the rendering binding for a ViewState: it rebuilds its rows
// whenever the state notifies.
type UserTable struct {
	model table.Model
}

func NewUserTable(s styles.Styles, k keys.KeyMap) *UserTable {
	ts := table.DefaultStyles()
	ts.Header = s.TableHeader
	ts.Cell = s.TableCell
	ts.Selected = s.Selected

	return &UserTable{
		model: table.New(
			table.WithColumns(userColumns(defaultTableWidth)),
			table.WithRows([]table.Row{}),
			table.WithFocused(true),
			table.WithWidth(defaultTableWidth),
			table.WithHeight(defaultTableHeight),
			table.WithKeyMap(k.Table()),
			table.WithStyles(ts),
		),
	}
}

// Bind subscribes the table to state and returns the unsubscribe func.
func (ut *UserTable) Bind(state *ViewState) func() {
	return state.Subscribe(func(s *ViewState) {
		ut.SetRecords(s.Records())
	})
}

// SetRecords replaces every row.
func (ut *UserTable) SetRecords(records []types.User) {
	ut.model.SetRows(UserRows(records))
}

// Rows returns the rows currently shown.
func (ut *UserTable) Rows() []table.Row {
	return ut.model.Rows()
}

// Cursor returns the index of the highlighted row.
func (ut *UserTable) Cursor() int {
	return ut.model.Cursor()
}

// SetSize fits the table to the given area.
func (ut *UserTable) SetSize(width, height int) {
	if height < 1 {
		height = 1
	}
	ut.model.SetColumns(userColumns(width))
	ut.model.SetWidth(width)
	ut.model.SetHeight(height)
}

// Update forwards navigation input to the table widget.
func (ut *UserTable) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	ut.model, cmd = ut.model.Update(msg)
	return cmd
}

func (ut *UserTable) View() string {
	return ut.model.View()
}
