package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/akshat/mathwars/internal/screen"
)

// stubScreen records lifecycle calls so navigation can be asserted.
type stubScreen struct {
	title   string
	initRan bool
	lastMsg tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.lastMsg = msg
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPushBattleOverMenu(t *testing.T) {
	menu := &stubScreen{title: "menu"}
	r := New(menu)

	battle := &stubScreen{title: "battle"}
	r.Update(PushScreenMsg{Screen: battle})

	if r.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", r.Depth())
	}
	if r.Active() != screen.Screen(battle) {
		t.Errorf("expected battle active, got %q", r.Active().Title())
	}
	if !battle.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPopRevealsMenu(t *testing.T) {
	menu := &stubScreen{title: "menu"}
	r := New(menu)
	r.Push(&stubScreen{title: "battle"})

	r.Update(PopScreenMsg{})

	if r.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "menu" {
		t.Errorf("expected menu active, got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "menu"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	menu := &stubScreen{title: "menu"}
	r := New(menu)
	r.Push(&stubScreen{title: "battle"})

	summary := &stubScreen{title: "summary"}
	r.Replace(summary)

	if r.Depth() != 2 {
		t.Fatalf("expected depth 2 after replace, got %d", r.Depth())
	}
	if r.Active() != screen.Screen(summary) {
		t.Errorf("expected summary active, got %q", r.Active().Title())
	}
	if !summary.initRan {
		t.Error("expected Init() to run on replacing screen")
	}
}

func TestReplaceCmd(t *testing.T) {
	r := New(&stubScreen{title: "welcome"})

	auth := &stubScreen{title: "auth"}
	cmd := Replace(auth)
	if cmd == nil {
		t.Fatal("expected a command")
	}

	msg, ok := cmd().(ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	r.Update(msg)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active() != screen.Screen(auth) {
		t.Errorf("expected auth active, got %q", r.Active().Title())
	}
	if !auth.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestRefreshReachesRevealedScreen(t *testing.T) {
	menu := &stubScreen{title: "menu"}
	r := New(menu)
	r.Push(&stubScreen{title: "battle"})

	// A retreating battle pops, then refreshes whatever it revealed.
	r.Update(PopScreenMsg{})
	r.Update(screen.RefreshMsg{})

	if _, ok := menu.lastMsg.(screen.RefreshMsg); !ok {
		t.Errorf("expected menu to receive RefreshMsg, got %T", menu.lastMsg)
	}
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	menu := &stubScreen{title: "menu"}
	r := New(menu)
	battle := &stubScreen{title: "battle"}
	r.Push(battle)

	r.Update(screen.RefreshMsg{})

	if battle.lastMsg == nil {
		t.Error("expected active screen to receive the message")
	}
	if menu.lastMsg != nil {
		t.Error("expected covered screen to receive nothing")
	}
}
