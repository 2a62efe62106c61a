package progress

import "github.com/heartmarshall/wordforge-backend/internal/domain"

type badgeRule struct {
	code domain.BadgeCode
	name string
	met  func(learned, streak int) bool
}

var badgeRules = []badgeRule{
	{domain.BadgeFirstWord, "First Word", func(learned, _ int) bool { return learned >= 1 }},
	{domain.BadgeTenWords, "Word Collector", func(learned, _ int) bool { return learned >= 10 }},
	{domain.BadgeWeekStreak, "Week Warrior", func(_, streak int) bool { return streak >= 7 }},
}

// earnedBadges returns the rules met by the given totals.
func earnedBadges(learned, streak int) []badgeRule {
	var out []badgeRule
	for _, r := range badgeRules {
		if r.met(learned, streak) {
			out = append(out, r)
		}
	}
	return out
}
