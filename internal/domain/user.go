package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered application user.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	Name         string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserStats is the aggregate shown on a profile.
type UserStats struct {
	WordsLearned     int
	TotalBadges      int
	QuizzesCompleted int
	CurrentStreak    int
	LongestStreak    int
	MemberSince      time.Time
}

// Badge is an achievement earned once per user.
type Badge struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Code     BadgeCode
	Name     string
	EarnedAt time.Time
}

// AdminStats summarises stored content and activity.
type AdminStats struct {
	TotalWords   int
	TotalQuizzes int
	TotalUsers   int
	LastUpdated  time.Time
}
