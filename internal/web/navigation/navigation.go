// Package navigation models the sidebar entry tree and resolves which
// entries are active and expanded for a request path.
package navigation

import "github.com/healing-together/recoveryhub/internal/web/locale"

// Entry is one sidebar item. Entries with children have no path of
// their own; they only group leaf links.
type Entry struct {
	Key      string
	Icon     string
	Path     string
	Children []Entry
}

// fallbackExpandedKey is the branch opened when no entry is active.
const fallbackExpandedKey = "community"

// entries is the fixed sidebar tree. Keys double as catalog message
// suffixes under dashboard.nav.
var entries = []Entry{
	{Key: "home", Icon: "home", Path: "/dashboard"},
	{Key: "community", Icon: "users", Children: []Entry{
		{Key: "groups", Icon: "compass", Path: "/dashboard/groups"},
		{Key: "sessions", Icon: "video", Path: "/dashboard/session"},
		{Key: "messages", Icon: "message-square", Path: "/dashboard/messages"},
	}},
	{Key: "knowledge", Icon: "book-open", Path: "/dashboard/knowledge"},
	{Key: "calendar", Icon: "calendar", Path: "/dashboard/calendar"},
}

// Entries returns the sidebar tree.
func Entries() []Entry {
	return entries
}

// State is the resolved sidebar presentation for one request.
type State struct {
	active   map[string]bool
	expanded map[string]bool
}

// Resolve computes active and expanded entries for the current request
// path. A leaf is active when its locale-prefixed path equals the
// request path; a parent is active when any child is. Branches with an
// active child are expanded; with no active entry anywhere the
// community branch opens by default.
func Resolve(localeCode, currentPath string) State {
	state := State{
		active:   map[string]bool{},
		expanded: map[string]bool{},
	}
	anyActive := false
	for _, entry := range entries {
		childActive := false
		for _, child := range entry.Children {
			if leafActive(localeCode, currentPath, child) {
				state.active[child.Key] = true
				childActive = true
			}
		}
		if childActive {
			state.active[entry.Key] = true
			state.expanded[entry.Key] = true
			anyActive = true
			continue
		}
		if leafActive(localeCode, currentPath, entry) {
			state.active[entry.Key] = true
			anyActive = true
		}
	}
	if !anyActive {
		state.expanded[fallbackExpandedKey] = true
	}
	return state
}

func leafActive(localeCode, currentPath string, entry Entry) bool {
	if entry.Path == "" {
		return false
	}
	return locale.PathWithLocale(localeCode, entry.Path) == currentPath
}

// IsActive reports whether the entry with the given key is active.
func (s State) IsActive(key string) bool {
	return s.active[key]
}

// IsExpanded reports whether the branch with the given key is expanded.
func (s State) IsExpanded(key string) bool {
	return s.expanded[key]
}
