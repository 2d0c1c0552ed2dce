package models

import "strings"

// Site identifies an office location with bookable meeting rooms.
type Site string

const (
	SiteBeijing  Site = "Beijing"
	SiteShanghai Site = "Shanghai"
)

// KnownSites returns every site with a room inventory, in a stable order.
func KnownSites() []Site {
	return []Site{SiteBeijing, SiteShanghai}
}

// IsKnownSite reports whether s names a bookable site exactly.
func IsKnownSite(s Site) bool {
	for _, site := range KnownSites() {
		if s == site {
			return true
		}
	}
	return false
}

// siteAliases maps lowercased free-text location values to a bookable site.
// Appointment locations are free text typed by an assistant user, so common
// short forms and the native city names are accepted.
var siteAliases = map[string]Site{
	"beijing":  SiteBeijing,
	"bj":       SiteBeijing,
	"peking":   SiteBeijing,
	"北京":       SiteBeijing,
	"shanghai": SiteShanghai,
	"sh":       SiteShanghai,
	"上海":       SiteShanghai,
}

// NormalizeSite maps a free-text location to a bookable site. The boolean is
// false when the location matched nothing, in which case callers fall back to
// the configured default site and annotate the outcome.
func NormalizeSite(raw string) (Site, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	site, ok := siteAliases[key]
	return site, ok
}
