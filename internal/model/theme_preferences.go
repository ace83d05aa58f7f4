package model

import "time"

// ThemePreferencesID is the key of the single preferences row.
const ThemePreferencesID = "themePreferences"

type ThemePreferences struct {
	ID                 string    `gorm:"primaryKey;size:50" json:"id"`
	FavoriteLightTheme string    `gorm:"size:50;not null;default:light" json:"favorite_light_theme"`
	FavoriteDarkTheme  string    `gorm:"size:50;not null;default:dark" json:"favorite_dark_theme"`
	AutoMode           bool      `gorm:"not null;default:false" json:"auto_mode"`
	UpdatedAt          time.Time `json:"updated_at"`
}
