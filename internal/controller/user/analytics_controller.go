package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studytrack/internal/controller"
	"github.com/lshigami/studytrack/internal/service"
)

type AnalyticsController struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsController(analyticsService service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

func (c *AnalyticsController) RegisterRoutes(api *gin.RouterGroup) {
	analytics := api.Group("/analytics")
	analytics.GET("/subjects", c.GetSubjectStats)
	analytics.GET("/topics", c.GetTopicStats)
	analytics.GET("/trend", c.GetTrend)
}

// GetSubjectStats godoc
// @Summary Accuracy per subject
// @Description An object keyed by subject in canonical order. Every tracked subject is present; unattempted ones report status N/A.
// @Tags Analytics
// @Produce json
// @Success 200 {object} map[string]dto.SubjectStats
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/subjects [get]
func (c *AnalyticsController) GetSubjectStats(ctx *gin.Context) {
	stats, err := c.analyticsService.GetSubjectStats(ctx.Request.Context())
	if err != nil {
		controller.Fail(ctx, err, "Failed to compute subject stats")
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetTopicStats godoc
// @Summary Accuracy per topic of one subject
// @Tags Analytics
// @Produce json
// @Param subject query string true "Subject name"
// @Success 200 {array} dto.TopicStats
// @Failure 400 {object} dto.ErrorResponse "Missing subject"
// @Router /analytics/topics [get]
func (c *AnalyticsController) GetTopicStats(ctx *gin.Context) {
	topics, err := c.analyticsService.GetTopicStats(ctx.Request.Context(), ctx.Query("subject"))
	if err != nil {
		controller.Fail(ctx, err, "Failed to compute topic stats")
		return
	}
	ctx.JSON(http.StatusOK, topics)
}

// GetTrend godoc
// @Summary Cumulative accuracy per study day
// @Tags Analytics
// @Produce json
// @Success 200 {array} dto.TrendPoint
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/trend [get]
func (c *AnalyticsController) GetTrend(ctx *gin.Context) {
	trend, err := c.analyticsService.GetTrend(ctx.Request.Context())
	if err != nil {
		controller.Fail(ctx, err, "Failed to compute accuracy trend")
		return
	}
	ctx.JSON(http.StatusOK, trend)
}
