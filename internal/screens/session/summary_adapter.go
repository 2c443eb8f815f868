package session

import (
	"github.com/akshat/mathwars/internal/badges"
	"github.com/akshat/mathwars/internal/game"
	"github.com/akshat/mathwars/internal/profile"
	"github.com/akshat/mathwars/internal/screen"
	"github.com/akshat/mathwars/internal/screens/summary"
)

// newSummaryScreen builds the level summary, handing it a factory so
// next-level and retry can start battles without an import cycle.
func newSummaryScreen(mgr *profile.Manager, out game.Outcome, earned []badges.Badge, gameOver bool) screen.Screen {
	return summary.New(summary.Data{
		Outcome:  out,
		GameOver: gameOver,
		Badges:   earned,
	}, func(level int) screen.Screen {
		return NewAt(mgr, level)
	})
}
