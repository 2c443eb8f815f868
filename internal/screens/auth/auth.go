// Package auth implements the login, registration, and guest entry screen.
package auth

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akshat/mathwars/internal/profile"
	"github.com/akshat/mathwars/internal/router"
	"github.com/akshat/mathwars/internal/screen"
	"github.com/akshat/mathwars/internal/ui/components"
	"github.com/akshat/mathwars/internal/ui/layout"
	"github.com/akshat/mathwars/internal/ui/theme"
)

type mode int

const (
	modeMenu mode = iota
	modeLogin
	modeRegister
)

// authResultMsg carries the outcome of a login or register attempt.
type authResultMsg struct {
	profile *profile.Profile
	err     error
}

// AuthScreen lets the player sign in, create an account, or play as a guest.
type AuthScreen struct {
	mgr         *profile.Manager
	homeFactory func() screen.Screen

	mode     mode
	menu     components.Menu
	username components.TextInput
	password components.TextInput
	focus    int
	errMsg   string
	busy     bool
}

// New creates the auth screen.
func New(mgr *profile.Manager, homeFactory func() screen.Screen) *AuthScreen {
	a := &AuthScreen{
		mgr:         mgr,
		homeFactory: homeFactory,
	}
	a.menu = components.NewMenu([]components.MenuItem{
		{Label: "LOGIN", Action: func() tea.Cmd { return a.enterForm(modeLogin) }},
		{Label: "REGISTER", Action: func() tea.Cmd { return a.enterForm(modeRegister) }},
		{Label: "PLAY AS GUEST", Action: a.guestLogin},
	})
	return a
}

// Init returns the initial command.
func (a *AuthScreen) Init() tea.Cmd {
	return nil
}

func (a *AuthScreen) enterForm(m mode) tea.Cmd {
	a.mode = m
	a.errMsg = ""
	a.focus = 0
	a.username = components.NewTextInput("username", false, 20)
	a.password = components.NewTextInput("password", false, 64)
	a.password.Model.EchoMode = textinput.EchoPassword
	a.password.Model.Blur()
	return a.username.Init()
}

func (a *AuthScreen) guestLogin() tea.Cmd {
	a.mgr.LoginAsGuest()
	return router.Replace(a.homeFactory())
}

// Update handles messages.
func (a *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		a.busy = false
		if msg.err != nil {
			a.errMsg = friendlyError(msg.err)
			return a, nil
		}
		return a, router.Replace(a.homeFactory())

	case tea.KeyPressMsg:
		if a.busy {
			return a, nil
		}
		if a.mode == modeMenu {
			var cmd tea.Cmd
			a.menu, cmd = a.menu.Update(msg)
			return a, cmd
		}
		return a.updateForm(msg)
	}
	return a, nil
}

func (a *AuthScreen) updateForm(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeMenu
		a.errMsg = ""
		return a, nil
	case "tab", "shift+tab", "up", "down":
		a.focus = 1 - a.focus
		if a.focus == 0 {
			a.password.Model.Blur()
			return a, a.username.Model.Focus()
		}
		a.username.Model.Blur()
		return a, a.password.Model.Focus()
	case "enter":
		if a.focus == 0 {
			a.focus = 1
			a.username.Model.Blur()
			return a, a.password.Model.Focus()
		}
		return a, a.submit()
	}

	var cmd tea.Cmd
	if a.focus == 0 {
		a.username, cmd = a.username.Update(msg)
	} else {
		a.password, cmd = a.password.Update(msg)
	}
	return a, cmd
}

func (a *AuthScreen) submit() tea.Cmd {
	username := strings.TrimSpace(a.username.Value())
	password := a.password.Value()
	register := a.mode == modeRegister
	a.busy = true
	a.errMsg = ""

	mgr := a.mgr
	return func() tea.Msg {
		ctx := context.Background()
		var p *profile.Profile
		var err error
		if register {
			p, err = mgr.Register(ctx, username, password)
		} else {
			p, err = mgr.Login(ctx, username, password)
		}
		return authResultMsg{profile: p, err: err}
	}
}

func friendlyError(err error) string {
	switch {
	case errors.Is(err, profile.ErrUserNotFound):
		return "No account with that name. Register first?"
	case errors.Is(err, profile.ErrBadCredentials):
		return "Wrong password. Try again."
	case errors.Is(err, profile.ErrUserExists):
		return "That name is taken. Pick another."
	case errors.Is(err, profile.ErrValidation):
		return err.Error()
	default:
		return "Something went wrong: " + err.Error()
	}
}

// View renders the screen.
func (a *AuthScreen) View(width, height int) string {
	var content string
	if a.mode == modeMenu {
		content = a.viewMenu()
	} else {
		content = a.viewForm()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (a *AuthScreen) viewMenu() string {
	title := theme.Title.Render("WHO GOES THERE?")
	hint := theme.Hint.Render("↑/↓ move · enter select")
	return lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		a.menu.View(),
		"",
		hint,
	)
}

func (a *AuthScreen) viewForm() string {
	heading := "LOGIN"
	if a.mode == modeRegister {
		heading = "NEW CHALLENGER"
	}

	rows := []string{
		theme.Title.Render(heading),
		"",
		fieldLabel("Username", a.focus == 0) + " " + a.username.View(),
		fieldLabel("Password", a.focus == 1) + " " + a.password.View(),
	}
	if a.errMsg != "" {
		rows = append(rows, "", theme.Incorrect.Render(a.errMsg))
	}
	if a.busy {
		rows = append(rows, "", theme.Hint.Render("checking..."))
	}
	rows = append(rows, "", theme.Hint.Render("tab switch field · enter submit · esc back"))

	card := theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return card
}

func fieldLabel(name string, focused bool) string {
	if focused {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + name + ":")
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + name + ":")
}

// Title returns the header title.
func (a *AuthScreen) Title() string {
	return "Sign In"
}

// KeyHints returns footer hints.
func (a *AuthScreen) KeyHints() []layout.KeyHint {
	if a.mode == modeMenu {
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "move"},
			{Key: "enter", Description: "select"},
			{Key: "ctrl+c", Description: "quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "tab", Description: "field"},
		{Key: "enter", Description: "submit"},
		{Key: "esc", Description: "back"},
	}
}
