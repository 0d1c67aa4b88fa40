// Package main provides the entry point for the punchlist task manager.
//
// Run without arguments it starts the TUI; with a subcommand it runs
// the one-shot CLI against the same stored task list.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmalloy/punchlist/internal/app"
	"github.com/tmalloy/punchlist/internal/cli"
	"github.com/tmalloy/punchlist/internal/config"
	"github.com/tmalloy/punchlist/internal/theme"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg)

	if len(os.Args) > 1 {
		if err := runCommand(cfg, os.Args[1], os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends slog output to a file in the data directory. The
// terminal stays clean for the TUI; logging is best effort.
func setupLogging(cfg *config.Config) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return
	}
	path := filepath.Join(cfg.DataDir, "punchlist.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))
}

func runTUI(cfg *config.Config) error {
	deps, err := cli.NewDependencies(cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	themes := theme.NewManager(deps.Backend, lipgloss.HasDarkBackground, deps.Logger)
	themes.Load(cfg.Theme)

	model := app.New(deps.Store, themes, deps.Logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}

func runCommand(cfg *config.Config, command string, args []string) error {
	switch command {
	case "help", "-h", "--help":
		cli.PrintUsage()
		return nil
	}

	deps, err := cli.NewDependencies(cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	switch command {
	case "add":
		if len(args) == 0 {
			return fmt.Errorf("usage: punchlist add <text>")
		}
		return cli.AddCommand(deps, strings.Join(args, " "))

	case "list", "ls":
		filter := ""
		if len(args) > 0 {
			filter = args[0]
		}
		return cli.ListCommand(deps, filter)

	case "done":
		if len(args) != 1 {
			return fmt.Errorf("usage: punchlist done <id>")
		}
		return cli.DoneCommand(deps, args[0])

	case "rm", "remove":
		if len(args) != 1 {
			return fmt.Errorf("usage: punchlist rm <id>")
		}
		return cli.RemoveCommand(deps, args[0])

	case "clear":
		return cli.ClearCommand(deps, os.Stdin)

	case "stats":
		return cli.StatsCommand(deps)

	default:
		cli.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
