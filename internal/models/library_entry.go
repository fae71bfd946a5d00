package models

// Library statuses offered by the client. The store does not enforce them.
const (
	StatusWishlist  = "Wishlist"
	StatusPlaying   = "Playing"
	StatusCompleted = "Completed"
	StatusDropped   = "Dropped"
	StatusBacklog   = "Backlog"
)

// LibraryEntry is a user's ownership/progress record for one game. A user may
// hold more than one entry per game; the schema carries no uniqueness
// constraint on (user, game).
type LibraryEntry struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"not null;index" json:"user_id"`
	GameID     uint   `gorm:"not null;index" json:"game_id"`
	Status     string `gorm:"not null" json:"status"`
	UserRating *int   `json:"user_rating"`
	Notes      string `json:"notes"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Game Game `gorm:"foreignKey:GameID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
