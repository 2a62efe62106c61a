package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserProgress is the learning state of one word for one user.
// (UserID, WordID) is unique.
type UserProgress struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	WordID       uuid.UUID
	IsLearned    bool
	ReviewCount  int
	LastReviewed time.Time
	CreatedAt    time.Time

	Word *Word
}

// LearningStreak caches the streak computed from review days.
type LearningStreak struct {
	UserID      uuid.UUID
	CurrentDays int
	LongestDays int
	LastActive  *time.Time
	UpdatedAt   time.Time
}

// ProgressStats summarises a user's progress list.
type ProgressStats struct {
	TotalWords         int
	LearnedWords       int
	StreakDays         int
	AverageReviewCount float64
}

// DayStart returns midnight UTC of the day containing t.
func DayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CalculateStreak counts the consecutive calendar days with activity ending
// today. If today has no activity yet the count starts from yesterday.
// days may be unsorted and contain duplicates.
func CalculateStreak(days []time.Time, now time.Time) int {
	if len(days) == 0 {
		return 0
	}

	active := make(map[time.Time]struct{}, len(days))
	for _, d := range days {
		active[DayStart(d)] = struct{}{}
	}

	check := DayStart(now)
	if _, ok := active[check]; !ok {
		check = check.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := active[check]; !ok {
			break
		}
		streak++
		check = check.AddDate(0, 0, -1)
	}
	return streak
}
