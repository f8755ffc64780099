// Package storage defines the content records behind the dashboard and the
// store interface used to load them. All content is seeded demo data; the
// store is a read-mostly catalog, not a system of record.
package storage

import (
	"context"
	"time"
)

// GroupExercise is one joinable group session.
type GroupExercise struct {
	ID               string
	Title            string
	ExerciseType     string
	Category         string
	StartTime        time.Time
	ParticipantCount int
	MaxParticipants  int
	Pinned           bool
}

// Article is one knowledge-base entry.
type Article struct {
	ID          string
	Title       string
	Summary     string
	Category    string
	Author      string
	ReadMinutes int
	PublishedAt time.Time
}

// Account is a demo sign-in account.
type Account struct {
	ID           string
	Email        string
	Name         string
	InjuryType   string
	PasswordHash string
	Role         string
	JoinedAt     time.Time
}

// Account roles.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Participant is one waiting-room roster entry.
type Participant struct {
	ID         string
	Name       string
	InjuryType string
	Online     bool
}

// WeeklyProgress is one day of the weekly exercise chart.
type WeeklyProgress struct {
	Weekday          time.Weekday
	CompletedMinutes int
	GoalMinutes      int
}

// Store loads dashboard content.
type Store interface {
	ListGroupExercises(ctx context.Context) ([]GroupExercise, error)
	GetGroupExercise(ctx context.Context, id string) (GroupExercise, bool, error)
	ListArticles(ctx context.Context) ([]Article, error)
	GetAccountByEmail(ctx context.Context, email string) (Account, bool, error)
	CreateAccount(ctx context.Context, account Account) error
	ListRoster(ctx context.Context) ([]Participant, error)
	ListWeeklyProgress(ctx context.Context) ([]WeeklyProgress, error)
}
