package session

import (
	"time"

	"github.com/akshat/mathwars/internal/badges"
)

// battleStartMsg kicks off the first question load.
type battleStartMsg struct{}

// timerTickMsg is sent every second to advance the countdown. Ordinal
// identifies the question the tick belongs to so ticks scheduled for an
// answered question are discarded.
type timerTickMsg struct {
	ordinal int
	t       time.Time
}

// feedbackDoneMsg dismisses the feedback overlay for the given question.
type feedbackDoneMsg struct {
	ordinal int
}

// progressSavedMsg is sent once the level outcome has been written to
// the profile.
type progressSavedMsg struct {
	earned []badges.Badge
	err    error
}
