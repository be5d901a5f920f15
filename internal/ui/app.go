package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/turkosaurus/userview/internal/config"
	"github.com/turkosaurus/userview/internal/ui/keys"
	"github.com/turkosaurus/userview/internal/ui/styles"
	"github.com/turkosaurus/userview/internal/users"
)

// override at build time
//
//	go build -ldflags "-X 'github.com/turkosaurus/userview/internal/ui.Version=1.2.3'"
var Version string = "dev"

// rows consumed by title, blank lines, status line and help bar
const viewOverhead = 5

// App is the top-level tea.Model: a single view showing the user table.
type App struct {
	ctx      context.Context
	endpoint string
	styles   styles.Styles
	keys     keys.KeyMap

	state   *ViewState
	fetch   *FetchController
	table   *UserTable
	spinner spinner.Model

	width, height int
	showHelp      bool
}

// NewApp builds the view. Nothing is fetched until Init.
func NewApp(ctx context.Context, cfg *config.Config, client users.Lister) App {
	s := styles.DefaultStyles()
	k := keys.DefaultKeyMap()

	state := NewViewState()
	tbl := NewUserTable(s, k)
	tbl.Bind(state)

	return App{
		ctx:      ctx,
		endpoint: cfg.Endpoint,
		styles:   s,
		keys:     k,
		state:    state,
		fetch:    NewFetchController(client, state, cfg.RequestTimeout()),
		table:    tbl,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(s.Spinner),
		),
	}
}

// State exposes the view state to callers that outlive the program.
func (a App) State() *ViewState {
	return a.state
}

// Init activates the view; the fetch is issued here and only here.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.fetch.Activate(a.ctx), a.spinner.Tick)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.table.SetSize(msg.Width, msg.Height-viewOverhead)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			a.fetch.Deactivate()
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.showHelp = !a.showHelp
			return a, nil
		}
		return a, a.table.Update(msg)

	case usersLoadedMsg:
		a.fetch.Complete(msg)

	case spinner.TickMsg:
		if !a.state.Loading() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, nil
}
