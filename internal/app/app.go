// Package app wires the store, profile manager, and screens into the
// root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akshat/mathwars/internal/profile"
	"github.com/akshat/mathwars/internal/router"
	"github.com/akshat/mathwars/internal/screen"
	"github.com/akshat/mathwars/internal/screens/auth"
	"github.com/akshat/mathwars/internal/screens/home"
	"github.com/akshat/mathwars/internal/screens/welcome"
	"github.com/akshat/mathwars/internal/store"
	"github.com/akshat/mathwars/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	// DBPath overrides the default database location.
	DBPath string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	mgr    *profile.Manager
	width  int
	height int
}

// newAppModel builds the screen graph: welcome splash, then sign-in,
// then the main menu.
func newAppModel(mgr *profile.Manager) AppModel {
	var authFactory, homeFactory func() screen.Screen
	authFactory = func() screen.Screen { return auth.New(mgr, homeFactory) }
	homeFactory = func() screen.Screen { return home.New(mgr, authFactory) }

	return AppModel{
		router: router.New(welcome.New(authFactory)),
		mgr:    mgr,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var coins, streak int
	if cur := m.mgr.Current(); cur != nil {
		coins, streak = cur.Coins, cur.Streak
	}
	header := layout.RenderHeader(title, coins, streak, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run opens the store and starts the Bubble Tea program.
func Run(opts Options) error {
	dbPath := opts.DBPath
	if dbPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return fmt.Errorf("resolve db path: %w", err)
		}
		dbPath = p
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	mgr, err := profile.NewManager(context.Background(), st, time.Now)
	if err != nil {
		return fmt.Errorf("load profiles: %w", err)
	}

	p := tea.NewProgram(newAppModel(mgr))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
