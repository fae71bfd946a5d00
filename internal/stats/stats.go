// Package stats runs the aggregate statistic queries. Each query is a single
// grouped aggregation recomputed in full on every call; the 'all' sentinel on
// the status/genre parameter widens to a wildcard match instead of filtering.
package stats

import (
	"gorm.io/gorm"

	"github.com/vgtracker-dev/vgtracker/internal/models"
)

// Wildcard is the sentinel callers pass to skip the status/genre filter.
const Wildcard = "all"

type GamePopularity struct {
	GameID      uint   `json:"game_id"`
	Title       string `json:"title"`
	NumberOwned int64  `json:"number_owned"`
}

type GameRating struct {
	GameID        uint    `json:"game_id"`
	Title         string  `json:"title"`
	AverageRating float64 `json:"average_rating"`
}

type DeveloperCount struct {
	Developer string `json:"developer"`
	GameCount int64  `json:"game_count"`
}

type Collector struct {
	Username   string `json:"username"`
	OwnedGames int64  `json:"owned_games"`
}

// UserLibraryStats is the per-user aggregate over library entries.
type UserLibraryStats struct {
	TotalGames     int64    `json:"total_games"`
	CompletedGames int64    `json:"completed_games"`
	PlayingGames   int64    `json:"playing_games"`
	WishlistGames  int64    `json:"wishlist_games"`
	AvgRating      *float64 `json:"avg_rating"`
}

func pattern(value string) string {
	if value == Wildcard {
		return "%"
	}
	return value
}

// PopularityByStatus returns the three most-owned games among library entries
// with the given status.
func PopularityByStatus(database *gorm.DB, status string) ([]GamePopularity, error) {
	var rows []GamePopularity

	err := database.Model(&models.LibraryEntry{}).
		Select("games.id AS game_id, games.title, COUNT(*) AS number_owned").
		Joins("JOIN games ON games.id = library_entries.game_id").
		Where("library_entries.status LIKE ?", pattern(status)).
		Group("games.id, games.title").
		Order("number_owned DESC").
		Limit(3).
		Scan(&rows).Error

	return rows, err
}

// RatingByGenre returns the five best-reviewed games in the given genre.
func RatingByGenre(database *gorm.DB, genre string) ([]GameRating, error) {
	var rows []GameRating

	err := database.Model(&models.Review{}).
		Select("games.id AS game_id, games.title, AVG(reviews.rating) AS average_rating").
		Joins("JOIN games ON games.id = reviews.game_id").
		Where("games.genre LIKE ?", pattern(genre)).
		Group("games.id, games.title").
		Order("average_rating DESC").
		Limit(5).
		Scan(&rows).Error

	return rows, err
}

// DeveloperCounts ranks every developer by the number of games in the catalog.
func DeveloperCounts(database *gorm.DB) ([]DeveloperCount, error) {
	var rows []DeveloperCount

	err := database.Model(&models.Game{}).
		Select("developer, COUNT(*) AS game_count").
		Group("developer").
		Order("game_count DESC").
		Scan(&rows).Error

	return rows, err
}

// TopCollectors returns the five users with the largest libraries.
func TopCollectors(database *gorm.DB) ([]Collector, error) {
	var rows []Collector

	err := database.Model(&models.User{}).
		Select("users.username, COUNT(library_entries.game_id) AS owned_games").
		Joins("JOIN library_entries ON library_entries.user_id = users.id").
		Group("users.id, users.username").
		Order("owned_games DESC").
		Limit(5).
		Scan(&rows).Error

	return rows, err
}

// ForUser aggregates one user's library: totals per status and the average of
// the ratings they recorded. AvgRating is nil for an empty or unrated library.
func ForUser(database *gorm.DB, userID uint) (UserLibraryStats, error) {
	var s UserLibraryStats

	err := database.Model(&models.LibraryEntry{}).
		Select("COUNT(*) AS total_games, " +
			"COUNT(CASE WHEN status = 'Completed' THEN 1 END) AS completed_games, " +
			"COUNT(CASE WHEN status = 'Playing' THEN 1 END) AS playing_games, " +
			"COUNT(CASE WHEN status = 'Wishlist' THEN 1 END) AS wishlist_games, " +
			"ROUND(AVG(user_rating), 2) AS avg_rating").
		Where("user_id = ?", userID).
		Scan(&s).Error

	return s, err
}
