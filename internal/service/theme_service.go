package service

import (
	"context"
	"strings"

	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/model"
	"github.com/lshigami/studytrack/internal/repository"
)

type ThemeService interface {
	GetPreferences(ctx context.Context) (*dto.ThemePreferencesResponse, error)
	UpdatePreferences(ctx context.Context, req dto.UpdateThemePreferencesRequest) (*dto.ThemePreferencesResponse, error)
}

type themeService struct {
	repo repository.ThemePreferencesRepository
}

func NewThemeService(repo repository.ThemePreferencesRepository) ThemeService {
	return &themeService{repo: repo}
}

func (s *themeService) GetPreferences(ctx context.Context) (*dto.ThemePreferencesResponse, error) {
	prefs, err := s.repo.FindOrCreate(ctx)
	if err != nil {
		return nil, storeError(err, "theme preferences")
	}
	return toThemeResponse(prefs), nil
}

func (s *themeService) UpdatePreferences(ctx context.Context, req dto.UpdateThemePreferencesRequest) (*dto.ThemePreferencesResponse, error) {
	prefs, err := s.repo.FindOrCreate(ctx)
	if err != nil {
		return nil, storeError(err, "theme preferences")
	}
	if req.FavoriteLightTheme != nil {
		theme := strings.TrimSpace(*req.FavoriteLightTheme)
		if theme == "" {
			return nil, invalidInput("favorite_light_theme must not be empty")
		}
		prefs.FavoriteLightTheme = theme
	}
	if req.FavoriteDarkTheme != nil {
		theme := strings.TrimSpace(*req.FavoriteDarkTheme)
		if theme == "" {
			return nil, invalidInput("favorite_dark_theme must not be empty")
		}
		prefs.FavoriteDarkTheme = theme
	}
	if req.AutoMode != nil {
		prefs.AutoMode = *req.AutoMode
	}
	if err := s.repo.Save(ctx, prefs); err != nil {
		return nil, storeError(err, "save theme preferences")
	}
	return toThemeResponse(prefs), nil
}

func toThemeResponse(prefs *model.ThemePreferences) *dto.ThemePreferencesResponse {
	return &dto.ThemePreferencesResponse{
		FavoriteLightTheme: prefs.FavoriteLightTheme,
		FavoriteDarkTheme:  prefs.FavoriteDarkTheme,
		AutoMode:           prefs.AutoMode,
	}
}
