package navigation

import "testing"

func TestResolveLeafAndParentActive(t *testing.T) {
	t.Parallel()

	state := Resolve("en", "/en/dashboard/session")

	if !state.IsActive("sessions") {
		t.Fatal("sessions leaf should be active")
	}
	if !state.IsActive("community") {
		t.Fatal("community parent should be active when a child is")
	}
	if !state.IsExpanded("community") {
		t.Fatal("branch with active child should be expanded")
	}
	if state.IsActive("home") || state.IsActive("knowledge") {
		t.Fatal("unrelated entries must not be active")
	}
}

func TestResolveTopLevelLeaf(t *testing.T) {
	t.Parallel()

	state := Resolve("de", "/de/dashboard/knowledge")

	if !state.IsActive("knowledge") {
		t.Fatal("knowledge should be active")
	}
	if state.IsActive("community") {
		t.Fatal("community should not be active")
	}
	if state.IsExpanded("community") {
		t.Fatal("community should not fallback-expand when another entry is active")
	}
}

func TestResolveLocaleMismatchIsInactive(t *testing.T) {
	t.Parallel()

	state := Resolve("ja", "/en/dashboard")

	if state.IsActive("home") {
		t.Fatal("leaf active comparison must include the locale prefix")
	}
	if !state.IsExpanded("community") {
		t.Fatal("community should fallback-expand when nothing is active")
	}
}

func TestResolveFallbackExpansion(t *testing.T) {
	t.Parallel()

	state := Resolve("en", "/en/dashboard/profile")

	if state.IsActive("community") {
		t.Fatal("nothing should be active for an unlisted path")
	}
	if !state.IsExpanded("community") {
		t.Fatal("community should be the fallback-expanded branch")
	}
}

func TestEntriesShape(t *testing.T) {
	t.Parallel()

	items := Entries()
	if len(items) != 4 {
		t.Fatalf("expected 4 top-level entries, got %d", len(items))
	}
	if items[1].Key != "community" || len(items[1].Children) != 3 {
		t.Fatalf("community branch malformed: %+v", items[1])
	}
	if items[1].Path != "" {
		t.Fatal("branch entries carry no path")
	}
}
