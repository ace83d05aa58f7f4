package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studytrack/internal/controller"
	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/service"
)

type PriorityController struct {
	priorityService service.SubjectPriorityService
}

func NewPriorityController(priorityService service.SubjectPriorityService) *PriorityController {
	return &PriorityController{priorityService: priorityService}
}

func (c *PriorityController) RegisterRoutes(api *gin.RouterGroup) {
	priorities := api.Group("/priorities")
	priorities.GET("", c.ListPriorities)
	priorities.PATCH("/reorder", c.Reorder)
	priorities.PATCH("/:subject/toggle", c.Toggle)
	priorities.POST("/round-two", c.AdvanceRound)
}

// ListPriorities godoc
// @Summary List the subject study queue
// @Description On first use the queue is seeded from the weakness ranking, weakest subject first.
// @Tags Priorities
// @Produce json
// @Success 200 {array} dto.SubjectPriorityResponse
// @Router /priorities [get]
func (c *PriorityController) ListPriorities(ctx *gin.Context) {
	priorities, err := c.priorityService.ListPriorities(ctx.Request.Context())
	if err != nil {
		controller.Fail(ctx, err, "Failed to list priorities")
		return
	}
	ctx.JSON(http.StatusOK, priorities)
}

// Reorder godoc
// @Summary Reorder subjects
// @Tags Priorities
// @Accept json
// @Produce json
// @Param order body dto.ReorderPrioritiesRequest true "Subjects, most urgent first"
// @Success 200 {array} dto.SubjectPriorityResponse
// @Failure 400 {object} dto.ErrorResponse "Empty order"
// @Failure 409 {object} dto.ErrorResponse "Modified concurrently"
// @Router /priorities/reorder [patch]
func (c *PriorityController) Reorder(ctx *gin.Context) {
	var req dto.ReorderPrioritiesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	priorities, err := c.priorityService.Reorder(ctx.Request.Context(), req.Order)
	if err != nil {
		controller.Fail(ctx, err, "Failed to reorder priorities")
		return
	}
	ctx.JSON(http.StatusOK, priorities)
}

// Toggle godoc
// @Summary Toggle a subject's completion
// @Tags Priorities
// @Produce json
// @Param subject path string true "Subject name"
// @Success 200 {object} dto.SubjectPriorityResponse
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /priorities/{subject}/toggle [patch]
func (c *PriorityController) Toggle(ctx *gin.Context) {
	priority, err := c.priorityService.Toggle(ctx.Request.Context(), ctx.Param("subject"))
	if err != nil {
		controller.Fail(ctx, err, "Failed to toggle subject")
		return
	}
	ctx.JSON(http.StatusOK, priority)
}

// AdvanceRound godoc
// @Summary Start the next round
// @Description Clears completion on every subject and moves all of them to the next round.
// @Tags Priorities
// @Produce json
// @Success 200 {array} dto.SubjectPriorityResponse
// @Router /priorities/round-two [post]
func (c *PriorityController) AdvanceRound(ctx *gin.Context) {
	priorities, err := c.priorityService.AdvanceRound(ctx.Request.Context())
	if err != nil {
		controller.Fail(ctx, err, "Failed to advance round")
		return
	}
	ctx.JSON(http.StatusOK, priorities)
}
