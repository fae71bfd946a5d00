package models

import "time"

type Game struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null;index" json:"title"`
	Platform    string     `gorm:"not null" json:"platform"`
	Genre       string     `json:"genre"`
	Developer   string     `json:"developer"`
	ReleaseDate *time.Time `gorm:"type:date" json:"release_date"`

	// Relationships
	LibraryEntries []LibraryEntry `gorm:"foreignKey:GameID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Reviews        []Review       `gorm:"foreignKey:GameID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
