package sqlite

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/healing-together/recoveryhub/internal/storage"
)

// Demo sign-in credentials shown on the login page.
const (
	DemoAdminEmail    = "admin@healing-together.com"
	DemoAdminPassword = "admin123"
)

// seed fills empty tables with demo content. Tables that already hold rows
// are left untouched, so persistent databases keep their state across runs.
func (s *Store) seed(ctx context.Context) error {
	if err := s.seedAccounts(ctx); err != nil {
		return err
	}
	if err := s.seedGroupExercises(ctx); err != nil {
		return err
	}
	if err := s.seedArticles(ctx); err != nil {
		return err
	}
	if err := s.seedRoster(ctx); err != nil {
		return err
	}
	return s.seedWeeklyProgress(ctx)
}

func (s *Store) tableEmpty(ctx context.Context, table string) (bool, error) {
	var count int
	if err := s.sqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return false, fmt.Errorf("count %s: %w", table, err)
	}
	return count == 0, nil
}

func (s *Store) seedAccounts(ctx context.Context) error {
	empty, err := s.tableEmpty(ctx, "accounts")
	if err != nil || !empty {
		return err
	}
	joined := time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC)
	seeds := []struct {
		account  storage.Account
		password string
	}{
		{
			account: storage.Account{
				ID:         "acct-admin",
				Email:      DemoAdminEmail,
				Name:       "Sarah Chen",
				InjuryType: "Knee",
				Role:       storage.RoleAdmin,
				JoinedAt:   joined,
			},
			password: DemoAdminPassword,
		},
		{
			account: storage.Account{
				ID:         "acct-marcus",
				Email:      "marcus@healing-together.com",
				Name:       "Marcus Webb",
				InjuryType: "Shoulder",
				Role:       storage.RoleMember,
				JoinedAt:   joined.AddDate(0, 1, 3),
			},
			password: "recover2026",
		},
	}
	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		seed.account.PasswordHash = string(hash)
		if err := s.CreateAccount(ctx, seed.account); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) seedGroupExercises(ctx context.Context) error {
	empty, err := s.tableEmpty(ctx, "group_exercises")
	if err != nil || !empty {
		return err
	}
	now := time.Now().UTC().Truncate(time.Minute)
	groups := []storage.GroupExercise{
		{
			ID:               "grp-knee-mobility",
			Title:            "Morning Knee Mobility",
			ExerciseType:     "Mobility",
			Category:         "Knee",
			StartTime:        now.Add(45 * time.Minute),
			ParticipantCount: 6,
			MaxParticipants:  12,
			Pinned:           true,
		},
		{
			ID:               "grp-shoulder-circle",
			Title:            "Shoulder Strength Circle",
			ExerciseType:     "Strength",
			Category:         "Shoulder",
			StartTime:        now.Add(3 * time.Hour),
			ParticipantCount: 4,
			MaxParticipants:  10,
		},
		{
			ID:               "grp-spine-yoga",
			Title:            "Gentle Yoga for Spine Recovery",
			ExerciseType:     "Flexibility",
			Category:         "Spine",
			StartTime:        now.Add(26 * time.Hour),
			ParticipantCount: 9,
			MaxParticipants:  15,
		},
		{
			ID:               "grp-ankle-balance",
			Title:            "Balance and Ankle Stability",
			ExerciseType:     "Balance",
			Category:         "Ankle",
			StartTime:        now.Add(3 * 24 * time.Hour),
			ParticipantCount: 5,
			MaxParticipants:  8,
		},
		{
			ID:               "grp-aqua-therapy",
			Title:            "Aquatic Therapy Session",
			ExerciseType:     "Low impact",
			Category:         "Hip",
			StartTime:        now.Add(20 * time.Minute),
			ParticipantCount: 7,
			MaxParticipants:  12,
			Pinned:           true,
		},
	}
	for _, group := range groups {
		pinned := 0
		if group.Pinned {
			pinned = 1
		}
		if _, err := s.sqlDB.ExecContext(ctx, `INSERT INTO group_exercises
		    (id, title, exercise_type, category, start_time,
		     participant_count, max_participants, pinned)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			group.ID,
			group.Title,
			group.ExerciseType,
			group.Category,
			toMillis(group.StartTime),
			group.ParticipantCount,
			group.MaxParticipants,
			pinned,
		); err != nil {
			return fmt.Errorf("seed group exercise %s: %w", group.ID, err)
		}
	}
	return nil
}

func (s *Store) seedArticles(ctx context.Context) error {
	empty, err := s.tableEmpty(ctx, "articles")
	if err != nil || !empty {
		return err
	}
	published := time.Date(2026, time.July, 4, 8, 0, 0, 0, time.UTC)
	articles := []storage.Article{
		{
			ID:          "art-acl-first-weeks",
			Title:       "The First Six Weeks After ACL Surgery",
			Summary:     "What to expect from swelling, range of motion and early strength work.",
			Category:    "Knee",
			Author:      "Dr. Elena Vasquez",
			ReadMinutes: 8,
			PublishedAt: published,
		},
		{
			ID:          "art-knee-home",
			Title:       "Safe Home Exercises for Knee Rehab",
			Summary:     "A progressive plan you can follow between clinic visits.",
			Category:    "Knee",
			Author:      "Dr. Elena Vasquez",
			ReadMinutes: 6,
			PublishedAt: published.AddDate(0, 0, 9),
		},
		{
			ID:          "art-rotator-cuff",
			Title:       "Understanding Rotator Cuff Healing",
			Summary:     "Why shoulder recovery takes time and how to protect the repair.",
			Category:    "Shoulder",
			Author:      "Dr. James Okafor",
			ReadMinutes: 10,
			PublishedAt: published.AddDate(0, 0, 14),
		},
		{
			ID:          "art-frozen-shoulder",
			Title:       "Working Through a Frozen Shoulder",
			Summary:     "Gentle stretching routines for each stage of adhesive capsulitis.",
			Category:    "Shoulder",
			Author:      "Dr. James Okafor",
			ReadMinutes: 7,
			PublishedAt: published.AddDate(0, 0, 21),
		},
		{
			ID:          "art-back-posture",
			Title:       "Posture Habits That Help Your Spine Heal",
			Summary:     "Small daily adjustments that reduce strain on a recovering back.",
			Category:    "Spine",
			Author:      "Dr. Priya Nair",
			ReadMinutes: 5,
			PublishedAt: published.AddDate(0, 1, 2),
		},
		{
			ID:          "art-ankle-sprain",
			Title:       "From Sprain to Stable: Rebuilding Your Ankle",
			Summary:     "Balance drills and load progressions after a lateral sprain.",
			Category:    "Ankle",
			Author:      "Dr. Priya Nair",
			ReadMinutes: 9,
			PublishedAt: published.AddDate(0, 1, 11),
		},
		{
			ID:          "art-hip-replacement",
			Title:       "Life After Hip Replacement",
			Summary:     "Milestones for the first year with a new hip joint.",
			Category:    "Hip",
			Author:      "Dr. Elena Vasquez",
			ReadMinutes: 12,
			PublishedAt: published.AddDate(0, 1, 20),
		},
		{
			ID:          "art-wrist-typing",
			Title:       "Returning to Desk Work With a Wrist Injury",
			Summary:     "Ergonomics and pacing for keyboard-heavy recovery.",
			Category:    "Wrist",
			Author:      "Dr. James Okafor",
			ReadMinutes: 4,
			PublishedAt: published.AddDate(0, 2, 1),
		},
	}
	for _, article := range articles {
		if _, err := s.sqlDB.ExecContext(ctx, `INSERT INTO articles
		    (id, title, summary, category, author, read_minutes, published_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
			article.ID,
			article.Title,
			article.Summary,
			article.Category,
			article.Author,
			article.ReadMinutes,
			toMillis(article.PublishedAt),
		); err != nil {
			return fmt.Errorf("seed article %s: %w", article.ID, err)
		}
	}
	return nil
}

func (s *Store) seedRoster(ctx context.Context) error {
	empty, err := s.tableEmpty(ctx, "roster")
	if err != nil || !empty {
		return err
	}
	roster := []storage.Participant{
		{ID: "ptp-maya", Name: "Maya Lindgren", InjuryType: "Knee", Online: true},
		{ID: "ptp-tomas", Name: "Tomas Ruiz", InjuryType: "Shoulder", Online: true},
		{ID: "ptp-aiko", Name: "Aiko Tanaka", InjuryType: "Spine", Online: false},
		{ID: "ptp-derek", Name: "Derek Boateng", InjuryType: "Ankle", Online: true},
		{ID: "ptp-lena", Name: "Lena Fischer", InjuryType: "Hip", Online: false},
		{ID: "ptp-omar", Name: "Omar Haddad", InjuryType: "Knee", Online: true},
		{ID: "ptp-grace", Name: "Grace Kim", InjuryType: "Wrist", Online: true},
		{ID: "ptp-paulo", Name: "Paulo Mendes", InjuryType: "Shoulder", Online: false},
	}
	for _, participant := range roster {
		online := 0
		if participant.Online {
			online = 1
		}
		if _, err := s.sqlDB.ExecContext(ctx,
			`INSERT INTO roster (id, name, injury_type, online) VALUES (?, ?, ?, ?)`,
			participant.ID, participant.Name, participant.InjuryType, online,
		); err != nil {
			return fmt.Errorf("seed roster %s: %w", participant.ID, err)
		}
	}
	return nil
}

func (s *Store) seedWeeklyProgress(ctx context.Context) error {
	empty, err := s.tableEmpty(ctx, "weekly_progress")
	if err != nil || !empty {
		return err
	}
	week := []storage.WeeklyProgress{
		{Weekday: time.Monday, CompletedMinutes: 30, GoalMinutes: 30},
		{Weekday: time.Tuesday, CompletedMinutes: 45, GoalMinutes: 45},
		{Weekday: time.Wednesday, CompletedMinutes: 20, GoalMinutes: 30},
		{Weekday: time.Thursday, CompletedMinutes: 45, GoalMinutes: 45},
		{Weekday: time.Friday, CompletedMinutes: 15, GoalMinutes: 30},
		{Weekday: time.Saturday, CompletedMinutes: 0, GoalMinutes: 20},
		{Weekday: time.Sunday, CompletedMinutes: 0, GoalMinutes: 20},
	}
	for _, day := range week {
		if _, err := s.sqlDB.ExecContext(ctx,
			`INSERT INTO weekly_progress (weekday, completed_minutes, goal_minutes) VALUES (?, ?, ?)`,
			int(day.Weekday), day.CompletedMinutes, day.GoalMinutes,
		); err != nil {
			return fmt.Errorf("seed weekly progress %d: %w", int(day.Weekday), err)
		}
	}
	return nil
}
