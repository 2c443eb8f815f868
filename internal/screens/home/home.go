// Package home implements the main menu screen.
package home

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/akshat/mathwars/internal/profile"
	"github.com/akshat/mathwars/internal/router"
	"github.com/akshat/mathwars/internal/screen"
	"github.com/akshat/mathwars/internal/screens/badgevault"
	"github.com/akshat/mathwars/internal/screens/leaderboard"
	sessionscreen "github.com/akshat/mathwars/internal/screens/session"
	"github.com/akshat/mathwars/internal/ui/components"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	mgr         *profile.Manager
	authFactory func() screen.Screen

	menu          components.Menu
	menuLabels    []string
	saved         *profile.SavedGame
	mascotVariant MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. A saved battle within the resume window
// adds a RESUME BATTLE entry at the top of the menu.
func New(mgr *profile.Manager, authFactory func() screen.Screen) *HomeScreen {
	h := &HomeScreen{
		mgr:         mgr,
		authFactory: authFactory,
	}
	h.reload()
	return h
}

// reload re-reads the saved battle and rebuilds the menu. Called at
// construction and again when a battle screen pops back to the menu.
func (h *HomeScreen) reload() {
	mgr := h.mgr
	h.saved, _ = mgr.LoadGameState(context.Background())

	cur := mgr.Current()
	h.mascotVariant = MascotIdle
	if cur != nil {
		if cur.Streak >= 5 {
			h.mascotVariant = MascotCelebrating
		} else if cur.Coins < 15 {
			h.mascotVariant = MascotAlert
		}
	}

	var items []components.MenuItem
	if h.saved != nil {
		saved := h.saved
		items = append(items, components.MenuItem{
			Label: "RESUME BATTLE",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: sessionscreen.Resume(mgr, saved),
					}
				}
			},
		})
	}
	items = append(items,
		components.MenuItem{Label: "START BATTLE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: sessionscreen.New(mgr)}
			}
		}},
		components.MenuItem{Label: "LEADERBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: leaderboard.New(mgr)}
			}
		}},
		components.MenuItem{Label: "BADGE VAULT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: badgevault.New(mgr)}
			}
		}},
		components.MenuItem{Label: "LOG OUT", Action: func() tea.Cmd {
			mgr.Logout()
			return router.Replace(h.authFactory())
		}},
		components.MenuItem{Label: "EXIT GAME", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h.menuLabels = make([]string, len(items))
	for i, it := range items {
		h.menuLabels[i] = it.Label
	}
	h.menu = components.NewMenu(items)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(screen.RefreshMsg); ok {
		h.reload()
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}

	var level, coins, streak int
	if cur := h.mgr.Current(); cur != nil {
		level, coins, streak = cur.Level, cur.Coins, cur.Streak
	}
	sections = append(sections, renderStatsBar(level, coins, streak, cw, compact))

	if h.saved != nil {
		sections = append(sections, renderResumeNote(h.saved.Level, cw))
	}

	if compact && termHeight < 26 {
		sections = append(sections, renderArcadeMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menuLabels, h.menu.Selected, cw))
	}

	content := joinSections(sections)

	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
