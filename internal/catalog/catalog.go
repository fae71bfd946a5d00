// Package catalog holds the client-side game catalog computations: the
// filter/sort pipeline the browser applies to its fetched collection, and the
// facet derivation that populates the filter dropdowns. Both are pure
// functions over a game slice so they can be tested independently of any view.
package catalog

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vgtracker-dev/vgtracker/internal/models"
)

type SortKey string

const (
	SortByTitle       SortKey = "title"
	SortByReleaseDate SortKey = "release_date"
	SortByDeveloper   SortKey = "developer"
	SortByPlatform    SortKey = "platform"
)

type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// Criteria is the full set of catalog controls. Zero-valued filters are
// inactive; active filters combine with AND semantics.
type Criteria struct {
	Search    string
	Platform  string
	Genre     string
	Developer string
	DateFrom  *time.Time
	DateTo    *time.Time
	SortBy    SortKey
	Order     SortOrder
}

// DefaultCriteria matches the catalog's initial view: no filters, title
// ascending.
func DefaultCriteria() Criteria {
	return Criteria{SortBy: SortByTitle, Order: Ascending}
}

// Apply recomputes the rendered collection from scratch: every active filter
// is applied conjunctively, then the result is stable-sorted by the single
// active sort key. The input slice is never mutated.
func Apply(games []models.Game, c Criteria) []models.Game {
	filtered := make([]models.Game, 0, len(games))

	term := strings.ToLower(strings.TrimSpace(c.Search))

	for _, g := range games {
		if term != "" &&
			!strings.Contains(strings.ToLower(g.Title), term) &&
			!strings.Contains(strings.ToLower(g.Developer), term) {
			continue
		}
		if c.Platform != "" && g.Platform != c.Platform {
			continue
		}
		if c.Genre != "" && g.Genre != c.Genre {
			continue
		}
		if c.Developer != "" && g.Developer != c.Developer {
			continue
		}
		// Range filters exclude undated games; the unfiltered set keeps them.
		if c.DateFrom != nil && (g.ReleaseDate == nil || g.ReleaseDate.Before(*c.DateFrom)) {
			continue
		}
		if c.DateTo != nil && (g.ReleaseDate == nil || g.ReleaseDate.After(*c.DateTo)) {
			continue
		}
		filtered = append(filtered, g)
	}

	collator := collate.New(language.English)

	sort.SliceStable(filtered, func(i, j int) bool {
		cmp := compare(collator, filtered[i], filtered[j], c.SortBy)
		if c.Order == Descending {
			return cmp > 0
		}
		return cmp < 0
	})

	return filtered
}

// compare orders two games on one key. A missing release date sorts as the
// earliest possible value.
func compare(collator *collate.Collator, a, b models.Game, key SortKey) int {
	switch key {
	case SortByReleaseDate:
		return releaseTime(a).Compare(releaseTime(b))
	case SortByDeveloper:
		return collator.CompareString(a.Developer, b.Developer)
	case SortByPlatform:
		return collator.CompareString(a.Platform, b.Platform)
	default:
		return collator.CompareString(a.Title, b.Title)
	}
}

func releaseTime(g models.Game) time.Time {
	if g.ReleaseDate == nil {
		return time.Time{}
	}
	return *g.ReleaseDate
}

// Facets is a distinct-value summary of the full collection, used to populate
// the filter controls.
type Facets struct {
	Platforms  []string   `json:"platforms"`
	Genres     []string   `json:"genres"`
	Developers []string   `json:"developers"`
	MinDate    *time.Time `json:"min_date"`
	MaxDate    *time.Time `json:"max_date"`
}

// Distinct derives the facets from the data itself: sorted distinct non-empty
// values plus the release-date bounds across dated games.
func Distinct(games []models.Game) Facets {
	var f Facets

	f.Platforms = distinctValues(games, func(g models.Game) string { return g.Platform })
	f.Genres = distinctValues(games, func(g models.Game) string { return g.Genre })
	f.Developers = distinctValues(games, func(g models.Game) string { return g.Developer })

	for _, g := range games {
		if g.ReleaseDate == nil {
			continue
		}
		d := *g.ReleaseDate
		if f.MinDate == nil || d.Before(*f.MinDate) {
			f.MinDate = &d
		}
		if f.MaxDate == nil || d.After(*f.MaxDate) {
			f.MaxDate = &d
		}
	}

	return f
}

func distinctValues(games []models.Game, pick func(models.Game) string) []string {
	seen := make(map[string]bool)
	var values []string

	for _, g := range games {
		v := pick(g)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}

	sort.Strings(values)
	return values
}
