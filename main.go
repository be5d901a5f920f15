package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/turkosaurus/userview/internal/config"
	"github.com/turkosaurus/userview/internal/ui"
	"github.com/turkosaurus/userview/internal/users"
)

func main() {
	var (
		configPath string
		endpoint   string
		plain      bool
	)
	flag.StringVar(&configPath, "config", "", "config file (default ~/.config/userview/config.yml)")
	flag.StringVar(&endpoint, "endpoint", "", "users API endpoint (overrides config and USERVIEW_ENDPOINT)")
	flag.BoolVar(&plain, "plain", false, "print the table once and exit")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if endpoint != "" {
		cfg.Endpoint = endpoint
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger, err := newFileLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: cannot initialize logger: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	client := users.NewClient(cfg.Endpoint, &http.Client{})
	slog.Info("starting", "endpoint", cfg.Endpoint, "plain", plain, "version", ui.Version)

	var code int
	if plain {
		code = runPlain(ctx, cfg, client)
	} else {
		code = runInteractive(ctx, cfg, client)
	}
	stop()
	os.Exit(code)
}

func runInteractive(ctx context.Context, cfg *config.Config, client users.Lister) int {
	p := tea.NewProgram(ui.NewApp(ctx, cfg, client), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		fmt.Fprintf(os.Stderr, "fatal: run: %v\n", err)
		return 1
	}
	return 0
}

// runPlain activates a view without a terminal UI and prints the table.
func runPlain(ctx context.Context, cfg *config.Config, client users.Lister) int {
	state := ui.NewViewState()
	fetch := ui.NewFetchController(client, state, cfg.RequestTimeout())
	if err := fetch.LoadAll(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Println(ui.RenderPlain(state.Records()))
	return 0
}
