package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studytrack/internal/controller"
	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminController struct {
	planService    service.DailyPlanService
	attemptService service.AttemptService
	debugService   service.DebugService
}

func NewAdminController(
	planService service.DailyPlanService,
	attemptService service.AttemptService,
	debugService service.DebugService,
) *AdminController {
	return &AdminController{
		planService:    planService,
		attemptService: attemptService,
		debugService:   debugService,
	}
}

func (c *AdminController) RegisterRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin")
	admin.POST("/plans/merge", c.MergePlans)
	admin.POST("/plans/:date_key/cap", c.CapPlan)
	admin.DELETE("/attempts/:id", c.DeleteAttempt)
	admin.GET("/debug/stats", c.DebugStats)
}

// MergePlans godoc
// @Summary (Admin) Merge one daily plan into another
// @Description Moves the source plan's attempts to the target, unions the question sets (optionally capped to the target's limit, answered questions kept), recomputes the target and deletes the source. Runs in one transaction.
// @Tags Admin - Plans
// @Accept json
// @Produce json
// @Param merge body dto.MergePlansRequest true "Source and target day keys"
// @Success 200 {object} dto.DailyPlanResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid or identical day keys"
// @Failure 404 {object} dto.ErrorResponse "Neither plan exists"
// @Failure 409 {object} dto.ErrorResponse "Target modified concurrently"
// @Router /admin/plans/merge [post]
func (c *AdminController) MergePlans(ctx *gin.Context) {
	var req dto.MergePlansRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	plan, err := c.planService.MergePlans(ctx.Request.Context(), req.SourceDateKey, req.TargetDateKey, req.Cap)
	if err != nil {
		controller.Fail(ctx, err, "Failed to merge plans")
		return
	}
	log.Info().Str("source", req.SourceDateKey).Str("target", req.TargetDateKey).Msg("Admin MergePlans: merged")
	ctx.JSON(http.StatusOK, plan)
}

// CapPlan godoc
// @Summary (Admin) Trim a plan to its question limit
// @Tags Admin - Plans
// @Produce json
// @Param date_key path string true "Study day key (YYYY-MM-DD)"
// @Success 200 {object} dto.DailyPlanResponse
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Router /admin/plans/{date_key}/cap [post]
func (c *AdminController) CapPlan(ctx *gin.Context) {
	plan, err := c.planService.CapPlan(ctx.Request.Context(), ctx.Param("date_key"))
	if err != nil {
		controller.Fail(ctx, err, "Failed to cap plan")
		return
	}
	ctx.JSON(http.StatusOK, plan)
}

// DeleteAttempt godoc
// @Summary (Admin) Delete an attempt
// @Description The plan the attempt belonged to is recomputed.
// @Tags Admin - Attempts
// @Param id path string true "Attempt ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /admin/attempts/{id} [delete]
func (c *AdminController) DeleteAttempt(ctx *gin.Context) {
	if err := c.attemptService.DeleteAttempt(ctx.Request.Context(), ctx.Param("id")); err != nil {
		controller.Fail(ctx, err, "Failed to delete attempt")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DebugStats godoc
// @Summary (Admin) Database row counts
// @Tags Admin - Debug
// @Produce json
// @Success 200 {object} dto.DebugStatsResponse
// @Router /admin/debug/stats [get]
func (c *AdminController) DebugStats(ctx *gin.Context) {
	stats, err := c.debugService.Stats(ctx.Request.Context())
	if err != nil {
		controller.Fail(ctx, err, "Failed to collect debug stats")
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
