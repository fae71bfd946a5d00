package models

import "time"

// Review holds one user's rating of one game. The composite unique index
// rejects a second review for the same (user, game) pair at the store level.
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_reviews_user_game" json:"user_id"`
	GameID     uint      `gorm:"not null;uniqueIndex:idx_reviews_user_game" json:"game_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `json:"comment"`
	ReviewDate time.Time `gorm:"type:date;not null" json:"review_date"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Game Game `gorm:"foreignKey:GameID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
