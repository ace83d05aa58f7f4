package repository

import (
	"context"

	"github.com/lshigami/studytrack/internal/model"
	"gorm.io/gorm"
)

type ThemePreferencesRepository interface {
	FindOrCreate(ctx context.Context) (*model.ThemePreferences, error)
	Save(ctx context.Context, prefs *model.ThemePreferences) error
}

type themePreferencesRepository struct {
	db *gorm.DB
}

func NewThemePreferencesRepository(db *gorm.DB) ThemePreferencesRepository {
	return &themePreferencesRepository{db: db}
}

// FindOrCreate returns the singleton row, inserting the defaults on first use.
func (r *themePreferencesRepository) FindOrCreate(ctx context.Context) (*model.ThemePreferences, error) {
	prefs := model.ThemePreferences{ID: model.ThemePreferencesID}
	err := r.db.WithContext(ctx).
		Where(model.ThemePreferences{ID: model.ThemePreferencesID}).
		Attrs(model.ThemePreferences{FavoriteLightTheme: "light", FavoriteDarkTheme: "dark"}).
		FirstOrCreate(&prefs).Error
	if err != nil {
		return nil, translate(err)
	}
	return &prefs, nil
}

func (r *themePreferencesRepository) Save(ctx context.Context, prefs *model.ThemePreferences) error {
	prefs.ID = model.ThemePreferencesID
	return r.db.WithContext(ctx).Save(prefs).Error
}
