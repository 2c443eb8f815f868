package badges

// Stats is the profile view badge predicates run against.
type Stats struct {
	Level          int
	Coins          int
	BestStreak     int
	TotalScore     int
	GamesPlayed    int
	CorrectAnswers int
	TotalAnswers   int
	IsGuest        bool
}

// Accuracy returns the lifetime accuracy percentage, rounded.
func (s Stats) Accuracy() int {
	if s.TotalAnswers == 0 {
		return 0
	}
	return int(float64(s.CorrectAnswers)/float64(s.TotalAnswers)*100 + 0.5)
}

// Badge is one catalog entry. Hidden badges are recorded in the profile
// but never surfaced as a notification.
type Badge struct {
	ID        string
	Name      string
	Hidden    bool
	predicate func(Stats) bool
}

// Catalog is the fixed badge catalog in evaluation order.
var Catalog = []Badge{
	{ID: "welcome", Name: "Welcome Warrior", Hidden: true, predicate: func(Stats) bool { return true }},
	{ID: "guest", Name: "Guest Explorer", Hidden: true, predicate: func(s Stats) bool { return s.IsGuest }},

	{ID: "level_10", Name: "Novice Warrior", predicate: func(s Stats) bool { return s.Level >= 10 }},
	{ID: "level_25", Name: "Math Knight", predicate: func(s Stats) bool { return s.Level >= 25 }},
	{ID: "level_50", Name: "Algebra Master", predicate: func(s Stats) bool { return s.Level >= 50 }},
	{ID: "level_100", Name: "Math Warlord", predicate: func(s Stats) bool { return s.Level >= 100 }},

	{ID: "streak_5", Name: "Getting Hot", predicate: func(s Stats) bool { return s.BestStreak >= 5 }},
	{ID: "streak_10", Name: "Hot Streak", predicate: func(s Stats) bool { return s.BestStreak >= 10 }},
	{ID: "streak_25", Name: "Unstoppable", predicate: func(s Stats) bool { return s.BestStreak >= 25 }},
	{ID: "streak_50", Name: "Legendary Streak", predicate: func(s Stats) bool { return s.BestStreak >= 50 }},

	{ID: "coins_500", Name: "Wealthy Warrior", predicate: func(s Stats) bool { return s.Coins >= 500 }},
	{ID: "coins_1000", Name: "Math Millionaire", predicate: func(s Stats) bool { return s.Coins >= 1000 }},
	{ID: "coins_5000", Name: "Math Tycoon", predicate: func(s Stats) bool { return s.Coins >= 5000 }},

	{ID: "accuracy_80", Name: "Precision Master", predicate: func(s Stats) bool { return s.Accuracy() >= 80 }},
	{ID: "accuracy_90", Name: "Math Genius", predicate: func(s Stats) bool { return s.Accuracy() >= 90 }},
	{ID: "accuracy_95", Name: "Perfect Calculator", predicate: func(s Stats) bool { return s.Accuracy() >= 95 }},

	{ID: "games_10", Name: "Battle Veteran", predicate: func(s Stats) bool { return s.GamesPlayed >= 10 }},
	{ID: "games_50", Name: "War Commander", predicate: func(s Stats) bool { return s.GamesPlayed >= 50 }},
	{ID: "score_10000", Name: "High Scorer", predicate: func(s Stats) bool { return s.TotalScore >= 10000 }},
}

// Lookup returns the catalog entry for an id.
func Lookup(id string) (Badge, bool) {
	for _, b := range Catalog {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// Evaluate walks the catalog in order and returns every badge whose
// predicate holds and whose id the profile does not already own, hidden
// entries included. The caller appends the ids (keeping the set
// monotonic) and filters Hidden for display.
func Evaluate(s Stats, owned func(id string) bool) []Badge {
	var earned []Badge
	for _, b := range Catalog {
		if owned(b.ID) {
			continue
		}
		if b.predicate(s) {
			earned = append(earned, b)
		}
	}
	return earned
}
