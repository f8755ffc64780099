// Package templates renders the dashboard pages. Components are plain
// templ components so handlers can compose and stream them.
package templates

import (
	"github.com/healing-together/recoveryhub/internal/web/flash"
	"github.com/healing-together/recoveryhub/internal/web/locale"
	"github.com/healing-together/recoveryhub/internal/web/navigation"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang        string
	Loc         Localizer
	CurrentPath string
	AppName     string
	UserName    string
	InjuryType  string
	Nav         navigation.State
	Notices     []flash.Notice
}

// Href prefixes a bare path with the page locale.
func (p PageContext) Href(path string) string {
	return locale.PathWithLocale(p.Lang, path)
}
