package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studytrack/internal/controller"
	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/service"
)

type SettingsController struct {
	themeService service.ThemeService
}

func NewSettingsController(themeService service.ThemeService) *SettingsController {
	return &SettingsController{themeService: themeService}
}

func (c *SettingsController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/settings/theme", c.GetTheme)
	api.PUT("/settings/theme", c.UpdateTheme)
}

// GetTheme godoc
// @Summary Get theme preferences
// @Tags Settings
// @Produce json
// @Success 200 {object} dto.ThemePreferencesResponse
// @Router /settings/theme [get]
func (c *SettingsController) GetTheme(ctx *gin.Context) {
	prefs, err := c.themeService.GetPreferences(ctx.Request.Context())
	if err != nil {
		controller.Fail(ctx, err, "Failed to get theme preferences")
		return
	}
	ctx.JSON(http.StatusOK, prefs)
}

// UpdateTheme godoc
// @Summary Update theme preferences
// @Tags Settings
// @Accept json
// @Produce json
// @Param preferences body dto.UpdateThemePreferencesRequest true "Fields to change"
// @Success 200 {object} dto.ThemePreferencesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /settings/theme [put]
func (c *SettingsController) UpdateTheme(ctx *gin.Context) {
	var req dto.UpdateThemePreferencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	prefs, err := c.themeService.UpdatePreferences(ctx.Request.Context(), req)
	if err != nil {
		controller.Fail(ctx, err, "Failed to update theme preferences")
		return
	}
	ctx.JSON(http.StatusOK, prefs)
}
