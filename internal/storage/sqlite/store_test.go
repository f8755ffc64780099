package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/healing-together/recoveryhub/internal/storage"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenEmptyPathUsesInMemoryDatabase(t *testing.T) {
	t.Parallel()

	store, err := Open("")
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	defer store.Close()

	groups, err := store.ListGroupExercises(context.Background())
	if err != nil {
		t.Fatalf("list group exercises: %v", err)
	}
	if len(groups) == 0 {
		t.Fatal("expected seeded group exercises")
	}
}

func TestOpenSeedsDemoContentOnce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "content.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	first, err := store.ListArticles(context.Background())
	if err != nil {
		t.Fatalf("list articles: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()
	second, err := reopened.ListArticles(context.Background())
	if err != nil {
		t.Fatalf("list articles after reopen: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("article count changed across reopen: %d != %d", len(second), len(first))
	}
}

func TestGetGroupExercise(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	group, found, err := store.GetGroupExercise(ctx, "grp-knee-mobility")
	if err != nil {
		t.Fatalf("get group exercise: %v", err)
	}
	if !found {
		t.Fatal("expected seeded group to be found")
	}
	if group.Title != "Morning Knee Mobility" {
		t.Fatalf("title = %q", group.Title)
	}
	if !group.Pinned {
		t.Fatal("expected seeded group to be pinned")
	}

	_, found, err = store.GetGroupExercise(ctx, "grp-missing")
	if err != nil {
		t.Fatalf("get missing group: %v", err)
	}
	if found {
		t.Fatal("missing id must not be found")
	}
}

func TestGetAccountByEmailIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	account, found, err := store.GetAccountByEmail(ctx, "Admin@Healing-Together.com")
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if !found {
		t.Fatal("expected demo admin account")
	}
	if account.Role != storage.RoleAdmin {
		t.Fatalf("role = %q, want %q", account.Role, storage.RoleAdmin)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(DemoAdminPassword)); err != nil {
		t.Fatalf("seeded password hash does not match demo password: %v", err)
	}
}

func TestCreateAccountRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	joined := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

	err := store.CreateAccount(ctx, storage.Account{
		ID:           "acct-new",
		Email:        "New.Member@Example.com",
		Name:         "New Member",
		InjuryType:   "Wrist",
		PasswordHash: "not-a-real-hash",
		Role:         storage.RoleMember,
		JoinedAt:     joined,
	})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	account, found, err := store.GetAccountByEmail(ctx, "new.member@example.com")
	if err != nil {
		t.Fatalf("get created account: %v", err)
	}
	if !found {
		t.Fatal("created account not found")
	}
	if account.Email != "new.member@example.com" {
		t.Fatalf("email not lowercased: %q", account.Email)
	}
	if !account.JoinedAt.Equal(joined) {
		t.Fatalf("joined_at = %v, want %v", account.JoinedAt, joined)
	}
}

func TestCreateAccountRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	account := storage.Account{
		ID:           "acct-dup",
		Email:        "dup@example.com",
		PasswordHash: "hash",
		Role:         storage.RoleMember,
	}
	if err := store.CreateAccount(ctx, account); err != nil {
		t.Fatalf("create account: %v", err)
	}
	account.ID = "acct-dup-2"
	if err := store.CreateAccount(ctx, account); err == nil {
		t.Fatal("expected duplicate email error")
	}
}

func TestListWeeklyProgressOrdersMondayFirst(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	week, err := store.ListWeeklyProgress(context.Background())
	if err != nil {
		t.Fatalf("list weekly progress: %v", err)
	}
	if len(week) != 7 {
		t.Fatalf("expected 7 days, got %d", len(week))
	}
	if week[0].Weekday != time.Monday {
		t.Fatalf("week starts on %v, want Monday", week[0].Weekday)
	}
	if week[6].Weekday != time.Sunday {
		t.Fatalf("week ends on %v, want Sunday", week[6].Weekday)
	}
}

func TestListRosterReturnsSeededParticipants(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	roster, err := store.ListRoster(context.Background())
	if err != nil {
		t.Fatalf("list roster: %v", err)
	}
	if len(roster) == 0 {
		t.Fatal("expected seeded roster")
	}
	online := 0
	for _, participant := range roster {
		if participant.Online {
			online++
		}
	}
	if online == 0 {
		t.Fatal("expected at least one online participant")
	}
}
