// Package sqlite provides the SQLite-backed content store for the dashboard.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/healing-together/recoveryhub/internal/platform/storage/sqlitemigrate"
	"github.com/healing-together/recoveryhub/internal/storage"
	"github.com/healing-together/recoveryhub/internal/storage/sqlite/migrations"
)

// Store persists dashboard content in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.Store = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite content store, applies embedded migrations and seeds
// demo content into empty tables. An empty path opens a shared in-memory
// database, used for local runs without persistence.
func Open(path string) (*Store, error) {
	dsn := "file::memory:?cache=shared"
	inMemory := strings.TrimSpace(path) == ""
	if !inMemory {
		dsn = filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if inMemory {
		// A shared in-memory database vanishes when its last connection
		// closes; a single pooled connection keeps it alive.
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	ctx := context.Background()
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	store := &Store{sqlDB: sqlDB}
	if err := store.seed(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("seed demo content: %w", err)
	}
	return store, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ListGroupExercises returns every group session in insertion order.
func (s *Store) ListGroupExercises(ctx context.Context) ([]storage.GroupExercise, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT
	    id, title, exercise_type, category, start_time,
	    participant_count, max_participants, pinned
	FROM group_exercises ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list group exercises: %w", err)
	}
	defer rows.Close()

	var groups []storage.GroupExercise
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan group exercise: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate group exercises: %w", err)
	}
	return groups, nil
}

// GetGroupExercise returns one group session by id. The boolean reports
// whether the id was found.
func (s *Store) GetGroupExercise(ctx context.Context, id string) (storage.GroupExercise, bool, error) {
	row := s.sqlDB.QueryRowContext(ctx, `SELECT
	    id, title, exercise_type, category, start_time,
	    participant_count, max_participants, pinned
	FROM group_exercises WHERE id = ?`, id)
	group, err := scanGroup(row)
	if err == sql.ErrNoRows {
		return storage.GroupExercise{}, false, nil
	}
	if err != nil {
		return storage.GroupExercise{}, false, fmt.Errorf("get group exercise %s: %w", id, err)
	}
	return group, true, nil
}

// ListArticles returns every knowledge article, newest first.
func (s *Store) ListArticles(ctx context.Context) ([]storage.Article, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT
	    id, title, summary, category, author, read_minutes, published_at
	FROM articles ORDER BY published_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var articles []storage.Article
	for rows.Next() {
		var article storage.Article
		var publishedAt int64
		if err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Summary,
			&article.Category,
			&article.Author,
			&article.ReadMinutes,
			&publishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		article.PublishedAt = fromMillis(publishedAt)
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return articles, nil
}

// GetAccountByEmail returns the account with the given email, matched
// case-insensitively. The boolean reports whether the email was found.
func (s *Store) GetAccountByEmail(ctx context.Context, email string) (storage.Account, bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	row := s.sqlDB.QueryRowContext(ctx, `SELECT
	    id, email, name, injury_type, password_hash, role, joined_at
	FROM accounts WHERE email = ?`, normalized)

	var account storage.Account
	var joinedAt int64
	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.Name,
		&account.InjuryType,
		&account.PasswordHash,
		&account.Role,
		&joinedAt,
	)
	if err == sql.ErrNoRows {
		return storage.Account{}, false, nil
	}
	if err != nil {
		return storage.Account{}, false, fmt.Errorf("get account by email: %w", err)
	}
	account.JoinedAt = fromMillis(joinedAt)
	return account, true, nil
}

// CreateAccount inserts one account record. The email is stored lowercased.
func (s *Store) CreateAccount(ctx context.Context, account storage.Account) error {
	if strings.TrimSpace(account.ID) == "" {
		return fmt.Errorf("account id is required")
	}
	email := strings.ToLower(strings.TrimSpace(account.Email))
	if email == "" {
		return fmt.Errorf("account email is required")
	}
	joinedAt := account.JoinedAt
	if joinedAt.IsZero() {
		joinedAt = time.Now().UTC()
	}
	_, err := s.sqlDB.ExecContext(ctx, `INSERT INTO accounts
	    (id, email, name, injury_type, password_hash, role, joined_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`,
		account.ID,
		email,
		account.Name,
		account.InjuryType,
		account.PasswordHash,
		account.Role,
		toMillis(joinedAt),
	)
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

// ListRoster returns the waiting-room roster in insertion order.
func (s *Store) ListRoster(ctx context.Context) ([]storage.Participant, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT
	    id, name, injury_type, online
	FROM roster ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	defer rows.Close()

	var roster []storage.Participant
	for rows.Next() {
		var participant storage.Participant
		var online int
		if err := rows.Scan(&participant.ID, &participant.Name, &participant.InjuryType, &online); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		participant.Online = online != 0
		roster = append(roster, participant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roster: %w", err)
	}
	return roster, nil
}

// ListWeeklyProgress returns the weekly exercise chart, Monday first.
func (s *Store) ListWeeklyProgress(ctx context.Context) ([]storage.WeeklyProgress, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT
	    weekday, completed_minutes, goal_minutes
	FROM weekly_progress ORDER BY CASE weekday WHEN 0 THEN 7 ELSE weekday END`)
	if err != nil {
		return nil, fmt.Errorf("list weekly progress: %w", err)
	}
	defer rows.Close()

	var week []storage.WeeklyProgress
	for rows.Next() {
		var day storage.WeeklyProgress
		var weekday int
		if err := rows.Scan(&weekday, &day.CompletedMinutes, &day.GoalMinutes); err != nil {
			return nil, fmt.Errorf("scan weekly progress: %w", err)
		}
		day.Weekday = time.Weekday(weekday)
		week = append(week, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weekly progress: %w", err)
	}
	return week, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGroup(row rowScanner) (storage.GroupExercise, error) {
	var group storage.GroupExercise
	var startTime int64
	var pinned int
	err := row.Scan(
		&group.ID,
		&group.Title,
		&group.ExerciseType,
		&group.Category,
		&startTime,
		&group.ParticipantCount,
		&group.MaxParticipants,
		&pinned,
	)
	if err != nil {
		return storage.GroupExercise{}, err
	}
	group.StartTime = fromMillis(startTime)
	group.Pinned = pinned != 0
	return group, nil
}
