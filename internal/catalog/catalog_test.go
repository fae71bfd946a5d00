package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgtracker-dev/vgtracker/internal/catalog"
	"github.com/vgtracker-dev/vgtracker/internal/models"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func testGames() []models.Game {
	return []models.Game{
		{ID: 1, Title: "Zelda", Platform: "N64", Genre: "Adventure", Developer: "Nintendo", ReleaseDate: date("1998-11-21")},
		{ID: 2, Title: "Axiom", Platform: "PC", Genre: "Metroidvania", Developer: "Thomas Happ", ReleaseDate: nil},
		{ID: 3, Title: "Doom", Platform: "PC", Genre: "Shooter", Developer: "id Software", ReleaseDate: date("1993-12-10")},
		{ID: 4, Title: "Quake", Platform: "PC", Genre: "Shooter", Developer: "id Software", ReleaseDate: date("1996-06-22")},
		{ID: 5, Title: "Mario Kart", Platform: "N64", Genre: "Racing", Developer: "Nintendo", ReleaseDate: date("1996-12-14")},
	}
}

func titles(games []models.Game) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.Title
	}
	return out
}

func TestApply_NoCriteriaSortsByTitleAscending(t *testing.T) {
	got := catalog.Apply(testGames(), catalog.DefaultCriteria())

	assert.Equal(t, []string{"Axiom", "Doom", "Mario Kart", "Quake", "Zelda"}, titles(got))
}

func TestApply_SearchMatchesTitleOrDeveloperCaseInsensitive(t *testing.T) {
	c := catalog.DefaultCriteria()
	c.Search = "id soft"

	got := catalog.Apply(testGames(), c)
	assert.Equal(t, []string{"Doom", "Quake"}, titles(got))

	c.Search = "ZELDA"
	got = catalog.Apply(testGames(), c)
	assert.Equal(t, []string{"Zelda"}, titles(got))
}

func TestApply_FiltersAreConjunctiveAndOrderIndependent(t *testing.T) {
	a := catalog.DefaultCriteria()
	a.Platform = "PC"
	a.Genre = "Shooter"

	b := catalog.DefaultCriteria()
	b.Genre = "Shooter"
	b.Platform = "PC"

	first := catalog.Apply(testGames(), a)
	second := catalog.Apply(testGames(), b)

	assert.Equal(t, titles(first), titles(second))
	assert.Equal(t, []string{"Doom", "Quake"}, titles(first))
}

func TestApply_ClearingFiltersRestoresInitialView(t *testing.T) {
	filtered := catalog.DefaultCriteria()
	filtered.Platform = "N64"
	filtered.Search = "mario"

	initial := catalog.Apply(testGames(), catalog.DefaultCriteria())
	restored := catalog.Apply(testGames(), catalog.DefaultCriteria())

	require.NotEqual(t, titles(initial), titles(catalog.Apply(testGames(), filtered)))
	assert.Equal(t, titles(initial), titles(restored))
}

func TestApply_DateRangeExcludesUndatedGames(t *testing.T) {
	c := catalog.DefaultCriteria()
	c.DateFrom = date("1990-01-01")

	got := catalog.Apply(testGames(), c)
	assert.NotContains(t, titles(got), "Axiom")
	assert.Len(t, got, 4)

	// Bounds are inclusive.
	c.DateFrom = date("1998-11-21")
	c.DateTo = date("1998-11-21")
	got = catalog.Apply(testGames(), c)
	assert.Equal(t, []string{"Zelda"}, titles(got))
}

func TestApply_UndatedSortsAsEarliest(t *testing.T) {
	games := []models.Game{
		{ID: 1, Title: "Zelda", Platform: "N64", ReleaseDate: date("1998-11-21")},
		{ID: 2, Title: "Axiom", Platform: "PC", ReleaseDate: nil},
	}

	asc := catalog.Criteria{SortBy: catalog.SortByReleaseDate, Order: catalog.Ascending}
	assert.Equal(t, []string{"Axiom", "Zelda"}, titles(catalog.Apply(games, asc)))

	desc := catalog.Criteria{SortBy: catalog.SortByReleaseDate, Order: catalog.Descending}
	assert.Equal(t, []string{"Zelda", "Axiom"}, titles(catalog.Apply(games, desc)))

	// Title sort on the same pair, per the documented example.
	title := catalog.Criteria{SortBy: catalog.SortByTitle, Order: catalog.Ascending}
	assert.Equal(t, []string{"Axiom", "Zelda"}, titles(catalog.Apply(games, title)))
}

func TestApply_StableForEqualKeys(t *testing.T) {
	c := catalog.Criteria{SortBy: catalog.SortByDeveloper, Order: catalog.Ascending}

	got := catalog.Apply(testGames(), c)

	// Doom precedes Quake in the source collection and shares its developer,
	// so their relative order is preserved.
	doom, quake := -1, -1
	for i, g := range got {
		switch g.Title {
		case "Doom":
			doom = i
		case "Quake":
			quake = i
		}
	}
	require.NotEqual(t, -1, doom)
	require.NotEqual(t, -1, quake)
	assert.Less(t, doom, quake)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	games := testGames()
	c := catalog.Criteria{SortBy: catalog.SortByReleaseDate, Order: catalog.Descending}

	catalog.Apply(games, c)

	assert.Equal(t, []string{"Zelda", "Axiom", "Doom", "Quake", "Mario Kart"}, titles(games))
}

func TestDistinct_DerivesSortedNonEmptyFacets(t *testing.T) {
	games := testGames()
	games = append(games, models.Game{ID: 6, Title: "Homebrew", Platform: "PC"}) // no genre/developer

	f := catalog.Distinct(games)

	assert.Equal(t, []string{"N64", "PC"}, f.Platforms)
	assert.Equal(t, []string{"Adventure", "Metroidvania", "Racing", "Shooter"}, f.Genres)
	assert.Equal(t, []string{"Nintendo", "Thomas Happ", "id Software"}, f.Developers)
	require.NotNil(t, f.MinDate)
	require.NotNil(t, f.MaxDate)
	assert.Equal(t, *date("1993-12-10"), *f.MinDate)
	assert.Equal(t, *date("1998-11-21"), *f.MaxDate)
}

func TestDistinct_EmptyCollection(t *testing.T) {
	f := catalog.Distinct(nil)

	assert.Empty(t, f.Platforms)
	assert.Nil(t, f.MinDate)
	assert.Nil(t, f.MaxDate)
}
