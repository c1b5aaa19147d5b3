package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/quanticsoul4772/pcode-go/app"
	"github.com/quanticsoul4772/pcode-go/config"
	"github.com/quanticsoul4772/pcode-go/keys"
	"github.com/quanticsoul4772/pcode-go/logging"
	"github.com/quanticsoul4772/pcode-go/ssh"
	"github.com/quanticsoul4772/pcode-go/store"
	"github.com/quanticsoul4772/pcode-go/ui"
)

// Model is the main application state
type Model struct {
	// Session
	dispatcher *app.Dispatcher
	state      app.AppState

	// UI state
	keys          keys.KeyMap
	help          help.Model
	themeName     string
	styles        ui.Styles
	width, height int

	logger *log.Logger
}

func initialModel(cfg *config.Config, dispatcher *app.Dispatcher, logger *log.Logger) Model {
	return Model{
		dispatcher: dispatcher,
		state:      app.NewState(),
		keys:       keys.DefaultKeyMap(),
		help:       help.New(),
		themeName:  cfg.Theme,
		styles:     ui.NewStyles(ui.GetTheme(cfg.Theme)),
		logger:     logger,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

// Key handling
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.Mode == app.ModeNormal {
		switch {
		case key.Matches(msg, m.keys.Theme):
			m.themeName = ui.NextTheme(m.themeName)
			m.styles = ui.NewStyles(ui.GetTheme(m.themeName))
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	for _, ev := range m.keys.Translate(msg, m.state.Mode) {
		var effect app.Effect
		m.state, effect = m.dispatcher.Dispatch(m.state, ev)
		if effect == app.EffectExit {
			m.logger.Info("exiting")
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	var helpView string
	if m.state.Mode == app.ModeInsert {
		helpView = m.help.ShortHelpView(m.keys.InsertHelp())
	} else {
		helpView = m.help.View(m.keys)
	}
	return ui.Render(m.styles, m.state, helpView, m.width)
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger, closeLog, err := logging.Setup(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting", "profiles", cfg.ProfileDir, "theme", cfg.Theme)

	profiles := store.New(cfg.ProfileDir, logger)
	runner := ssh.NewClient(cfg, logger)
	m := initialModel(cfg, app.NewDispatcher(profiles, runner, logger), logger)

	// Create and run program
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", "err", err)
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
