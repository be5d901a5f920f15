package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/turkosaurus/userview/internal/types"
	"github.com/turkosaurus/userview/internal/ui/styles"
	"github.com/turkosaurus/userview/internal/users"
)

// RenderPlain renders records as a static table for non-interactive output.
// An empty slice yields the header alone.
func RenderPlain(records []types.User) string {
	rows := make([][]string, 0, len(records))
	for _, u := range records {
		rows = append(rows, u.Cells())
	}
	return ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.DefaultStyles().Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(types.Columns...).
		Rows(rows...).
		Render()
}

func (a App) View() string {
	w := a.width
	if w == 0 {
		w = defaultTableWidth
	}

	parts := []string{
		renderTitle(a.styles, a.endpoint, w),
		"",
		a.table.View(),
		"",
		a.renderStatus(),
		a.renderHelpBar(),
	}
	return strings.Join(parts, "\n")
}

func renderTitle(s styles.Styles, endpoint string, width int) string {
	title := s.Title.Render(fmt.Sprintf("users (%s)", Version))
	room := width - lipgloss.Width(title) - 1
	if room < 4 {
		return title
	}
	return title + " " + s.Endpoint.Render(users.TruncateString(endpoint, room))
}

func (a App) renderStatus() string {
	var line string
	switch a.state.Status() {
	case StatusIdle:
		line = a.styles.Dimmed.Render("waiting to load users")
	case StatusLoading:
		line = a.spinner.View() + " " + a.styles.Dimmed.Render("loading users...")
	case StatusFailed:
		line = a.styles.Error.Render("error: " + a.state.Err().Error())
		if n := len(a.state.Records()); n > 0 {
			line += "  " + a.styles.Dimmed.Render(fmt.Sprintf("showing %d cached", n))
		}
	case StatusReady:
		line = a.styles.Success.Render(countLabel(len(a.state.Records())))
	}
	return line
}

func countLabel(n int) string {
	if n == 1 {
		return "1 user"
	}
	return fmt.Sprintf("%d users", n)
}

func (a App) renderHelpBar() string {
	bindings := a.keys.Short()
	if a.showHelp {
		bindings = a.keys.Full()
	}
	items := make([]string, 0, len(bindings))
	for _, b := range bindings {
		items = append(items, bindingHelp(a.styles, b))
	}
	return strings.Join(items, "  ")
}

// bindingHelp renders a single key binding as a "key  desc" help item.
func bindingHelp(s styles.Styles, b key.Binding) string {
	return s.HelpKey.Render(b.Help().Key) + " " + s.HelpDesc.Render(b.Help().Desc)
}
