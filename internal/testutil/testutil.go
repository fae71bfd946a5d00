// Package testutil sets up a throwaway database and router for handler tests.
// Tests that need the database skip when TEST_DATABASE_DSN is unset.
package testutil

import (
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vgtracker-dev/vgtracker/db"
	"github.com/vgtracker-dev/vgtracker/internal/models"
	"github.com/vgtracker-dev/vgtracker/internal/router"
)

// Fixture holds the seeded records tests reference by id.
type Fixture struct {
	Alice   models.User // admin
	Bob     models.User
	Zelda   models.Game // dated
	Axiom   models.Game // undated
	Doom    models.Game // dated
	Entries []models.LibraryEntry
	Reviews []models.Review
}

// SetupTestDB connects to the test database named by TEST_DATABASE_DSN,
// recreates the schema, seeds the fixture and returns a router over it.
func SetupTestDB(t *testing.T) (*gorm.DB, *gin.Engine, Fixture) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set; skipping database test")
	}

	gin.SetMode(gin.TestMode)

	database, err := db.Connect(dsn)
	require.NoError(t, err, "connect to test database")

	// Drop dependents first to satisfy foreign keys.
	migrator := database.Migrator()
	for _, table := range []interface{}{&models.Review{}, &models.LibraryEntry{}, &models.Game{}, &models.User{}} {
		require.NoError(t, migrator.DropTable(table))
	}
	require.NoError(t, db.Migrate(database))

	fixture := seed(t, database)

	return database, router.NewRouter(database), fixture
}

func seed(t *testing.T, database *gorm.DB) Fixture {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	f := Fixture{
		Alice: models.User{Username: "alice", Email: "alice@example.com", PasswordHash: string(hash), IsAdmin: true},
		Bob:   models.User{Username: "bob", Email: "bob@example.com", PasswordHash: string(hash)},
	}

	require.NoError(t, database.Create(&f.Alice).Error)
	require.NoError(t, database.Create(&f.Bob).Error)

	zeldaDate := time.Date(1998, 11, 21, 0, 0, 0, 0, time.UTC)
	doomDate := time.Date(1993, 12, 10, 0, 0, 0, 0, time.UTC)

	f.Zelda = models.Game{Title: "Zelda", Platform: "N64", Genre: "Adventure", Developer: "Nintendo", ReleaseDate: &zeldaDate}
	f.Axiom = models.Game{Title: "Axiom", Platform: "PC", Genre: "Metroidvania", Developer: "Thomas Happ"}
	f.Doom = models.Game{Title: "Doom", Platform: "PC", Genre: "Shooter", Developer: "id Software", ReleaseDate: &doomDate}

	require.NoError(t, database.Create(&f.Zelda).Error)
	require.NoError(t, database.Create(&f.Axiom).Error)
	require.NoError(t, database.Create(&f.Doom).Error)

	rating := 4
	f.Entries = []models.LibraryEntry{
		{UserID: f.Alice.ID, GameID: f.Zelda.ID, Status: models.StatusCompleted, UserRating: &rating, Notes: "a classic"},
		{UserID: f.Alice.ID, GameID: f.Doom.ID, Status: models.StatusPlaying},
		{UserID: f.Bob.ID, GameID: f.Zelda.ID, Status: models.StatusWishlist},
	}
	for i := range f.Entries {
		require.NoError(t, database.Create(&f.Entries[i]).Error)
	}

	f.Reviews = []models.Review{
		{UserID: f.Alice.ID, GameID: f.Zelda.ID, Rating: 5, Comment: "timeless", ReviewDate: time.Now()},
		{UserID: f.Bob.ID, GameID: f.Doom.ID, Rating: 4, Comment: "still rips", ReviewDate: time.Now()},
	}
	for i := range f.Reviews {
		require.NoError(t, database.Create(&f.Reviews[i]).Error)
	}

	return f
}
