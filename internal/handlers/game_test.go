package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgtracker-dev/vgtracker/internal/models"
	"github.com/vgtracker-dev/vgtracker/internal/testutil"
)

func TestListGames_OrderedByTitle(t *testing.T) {
	_, r, _ := testutil.SetupTestDB(t)

	w := doJSON(t, r, http.MethodGet, "/api/games", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var games []models.Game
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &games))
	require.Len(t, games, 3)
	assert.Equal(t, "Axiom", games[0].Title)
	assert.Equal(t, "Doom", games[1].Title)
	assert.Equal(t, "Zelda", games[2].Title)
}

func TestGetFilterFacets(t *testing.T) {
	_, r, _ := testutil.SetupTestDB(t)

	w := doJSON(t, r, http.MethodGet, "/api/games/filters", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var facets struct {
		Platforms  []string `json:"platforms"`
		Genres     []string `json:"genres"`
		Developers []string `json:"developers"`
		MinDate    *string  `json:"min_date"`
		MaxDate    *string  `json:"max_date"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &facets))

	assert.Equal(t, []string{"N64", "PC"}, facets.Platforms)
	assert.Equal(t, []string{"Adventure", "Metroidvania", "Shooter"}, facets.Genres)
	assert.Contains(t, facets.Developers, "Nintendo")
	require.NotNil(t, facets.MinDate)
	require.NotNil(t, facets.MaxDate)
	assert.Contains(t, *facets.MinDate, "1993-12-10")
	assert.Contains(t, *facets.MaxDate, "1998-11-21")
}

func TestCreateGame(t *testing.T) {
	_, r, _ := testutil.SetupTestDB(t)

	w := doJSON(t, r, http.MethodPost, "/api/games", map[string]string{
		"title":     "Quake",
		"platform":  "PC",
		"genre":     "Shooter",
		"developer": "id Software",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Game
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Quake", created.Title)
	assert.Nil(t, created.ReleaseDate)
}

func TestCreateGame_MissingRequiredField(t *testing.T) {
	_, r, _ := testutil.SetupTestDB(t)

	w := doJSON(t, r, http.MethodPost, "/api/games", map[string]string{
		"platform": "PC",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateGame_OverwritesAllFields(t *testing.T) {
	database, r, f := testutil.SetupTestDB(t)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/games/%d", f.Axiom.ID), map[string]string{
		"title":    "Axiom Verge",
		"platform": "Switch",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Game
	require.NoError(t, database.First(&stored, f.Axiom.ID).Error)
	assert.Equal(t, "Axiom Verge", stored.Title)
	assert.Equal(t, "Switch", stored.Platform)
	// Full overwrite: fields omitted from the request body are cleared.
	assert.Empty(t, stored.Genre)
	assert.Empty(t, stored.Developer)
}

func TestDeleteGame_CascadesToEntriesAndReviews(t *testing.T) {
	database, r, f := testutil.SetupTestDB(t)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/games/%d", f.Zelda.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Game deleted successfully")

	var entries int64
	require.NoError(t, database.Model(&models.LibraryEntry{}).Where("game_id = ?", f.Zelda.ID).Count(&entries).Error)
	assert.Zero(t, entries)

	var reviews int64
	require.NoError(t, database.Model(&models.Review{}).Where("game_id = ?", f.Zelda.ID).Count(&reviews).Error)
	assert.Zero(t, reviews)

	// Unrelated records survive.
	var remaining int64
	require.NoError(t, database.Model(&models.LibraryEntry{}).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)
}

func TestDeleteGame_NotFound(t *testing.T) {
	_, r, _ := testutil.SetupTestDB(t)

	w := doJSON(t, r, http.MethodDelete, "/api/games/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
