package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studytrack/internal/controller"
	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/service"
	"github.com/rs/zerolog/log"
)

type PlanController struct {
	planService service.DailyPlanService
}

func NewPlanController(planService service.DailyPlanService) *PlanController {
	return &PlanController{planService: planService}
}

func (c *PlanController) RegisterRoutes(api *gin.RouterGroup) {
	plans := api.Group("/plans")
	plans.POST("", c.GetOrCreatePlan)
	plans.GET("/recent", c.ListRecentPlans)
	plans.GET("/today", c.GetTodayPlan)
	plans.GET("/:date_key", c.GetPlan)
	plans.POST("/:date_key/recompute", c.RecomputePlan)
	plans.PATCH("/:date_key/complete", c.CompletePlan)
}

// GetOrCreatePlan godoc
// @Summary Get or create the plan for a study day
// @Description Returns the stored plan for date_key. When none exists one is created from the supplied defaults; an empty question_ids lets the server pick the day's questions.
// @Tags Daily Plans
// @Accept json
// @Produce json
// @Param plan body dto.CreatePlanRequest true "Day key and defaults for a new plan"
// @Success 200 {object} dto.DailyPlanResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid day key or missing focus subject"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans [post]
func (c *PlanController) GetOrCreatePlan(ctx *gin.Context) {
	var req dto.CreatePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	plan, err := c.planService.GetOrCreatePlan(ctx.Request.Context(), req.DateKey, req.PlanDefaults)
	if err != nil {
		controller.Fail(ctx, err, "Failed to get or create daily plan")
		return
	}
	ctx.JSON(http.StatusOK, plan)
}

// GetPlan godoc
// @Summary Get the plan for a study day
// @Tags Daily Plans
// @Produce json
// @Param date_key path string true "Study day key (YYYY-MM-DD)"
// @Success 200 {object} dto.DailyPlanResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid day key"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Router /plans/{date_key} [get]
func (c *PlanController) GetPlan(ctx *gin.Context) {
	plan, err := c.planService.GetPlan(ctx.Request.Context(), ctx.Param("date_key"))
	if err != nil {
		controller.Fail(ctx, err, "Failed to get daily plan")
		return
	}
	ctx.JSON(http.StatusOK, plan)
}

// GetTodayPlan godoc
// @Summary Get the current study day and its plan
// @Description The study day starts at 06:00 UTC+3. plan is null when no plan exists yet.
// @Tags Daily Plans
// @Produce json
// @Success 200 {object} dto.TodayPlanResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans/today [get]
func (c *PlanController) GetTodayPlan(ctx *gin.Context) {
	today, err := c.planService.GetTodayPlan(ctx.Request.Context())
	if err != nil {
		controller.Fail(ctx, err, "Failed to get today's plan")
		return
	}
	ctx.JSON(http.StatusOK, today)
}

// ListRecentPlans godoc
// @Summary List recent plans
// @Tags Daily Plans
// @Produce json
// @Param days query int false "How many plans to return (default 7)"
// @Success 200 {array} dto.DailyPlanResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid days parameter"
// @Router /plans/recent [get]
func (c *PlanController) ListRecentPlans(ctx *gin.Context) {
	days := 0
	if raw := ctx.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "days must be a non-negative integer"})
			return
		}
		days = n
	}
	plans, err := c.planService.ListRecentPlans(ctx.Request.Context(), days)
	if err != nil {
		controller.Fail(ctx, err, "Failed to list recent plans")
		return
	}
	ctx.JSON(http.StatusOK, plans)
}

// RecomputePlan godoc
// @Summary Recompute a plan's progress from its attempts
// @Tags Daily Plans
// @Produce json
// @Param date_key path string true "Study day key (YYYY-MM-DD)"
// @Success 200 {object} dto.DailyPlanResponse
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Failure 409 {object} dto.ErrorResponse "Plan modified concurrently"
// @Router /plans/{date_key}/recompute [post]
func (c *PlanController) RecomputePlan(ctx *gin.Context) {
	dateKey := ctx.Param("date_key")
	plan, err := c.planService.RecomputePlan(ctx.Request.Context(), dateKey)
	if err != nil {
		controller.Fail(ctx, err, "Failed to recompute daily plan")
		return
	}
	log.Info().Str("dateKey", dateKey).Int("answered", plan.AnsweredCount).Msg("User RecomputePlan: plan recomputed")
	ctx.JSON(http.StatusOK, plan)
}

// CompletePlan godoc
// @Summary Mark a plan complete
// @Tags Daily Plans
// @Produce json
// @Param date_key path string true "Study day key (YYYY-MM-DD)"
// @Success 200 {object} dto.DailyPlanResponse
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Router /plans/{date_key}/complete [patch]
func (c *PlanController) CompletePlan(ctx *gin.Context) {
	plan, err := c.planService.CompletePlan(ctx.Request.Context(), ctx.Param("date_key"))
	if err != nil {
		controller.Fail(ctx, err, "Failed to complete daily plan")
		return
	}
	ctx.JSON(http.StatusOK, plan)
}
