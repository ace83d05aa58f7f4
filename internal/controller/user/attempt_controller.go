package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studytrack/internal/controller"
	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/repository"
	"github.com/lshigami/studytrack/internal/service"
)

type AttemptController struct {
	attemptService service.AttemptService
}

func NewAttemptController(attemptService service.AttemptService) *AttemptController {
	return &AttemptController{attemptService: attemptService}
}

func (c *AttemptController) RegisterRoutes(api *gin.RouterGroup) {
	attempts := api.Group("/attempts")
	attempts.POST("", c.RecordAttempt)
	attempts.GET("", c.ListAttempts)
	attempts.GET("/answered-ids", c.AnsweredQuestionIDs)
	attempts.GET("/:id", c.GetAttempt)
}

// RecordAttempt godoc
// @Summary Record an answer
// @Description Stores one attempt. When plan_date_key names an existing plan, its progress is recomputed.
// @Tags Attempts
// @Accept json
// @Produce json
// @Param attempt body dto.RecordAttemptRequest true "Attempt; attempt_id is generated when empty"
// @Success 201 {object} dto.AttemptResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Attempt id already used"
// @Router /attempts [post]
func (c *AttemptController) RecordAttempt(ctx *gin.Context) {
	var req dto.RecordAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	attempt, err := c.attemptService.RecordAttempt(ctx.Request.Context(), req)
	if err != nil {
		controller.Fail(ctx, err, "Failed to record attempt")
		return
	}
	ctx.JSON(http.StatusCreated, attempt)
}

// ListAttempts godoc
// @Summary List attempts, newest first
// @Tags Attempts
// @Produce json
// @Param subject query string false "Filter by subject"
// @Param topic query string false "Filter by topic"
// @Param question_id query string false "Filter by question"
// @Success 200 {array} dto.AttemptResponse
// @Router /attempts [get]
func (c *AttemptController) ListAttempts(ctx *gin.Context) {
	filter := repository.AttemptFilter{
		Subject:    ctx.Query("subject"),
		Topic:      ctx.Query("topic"),
		QuestionID: ctx.Query("question_id"),
	}
	attempts, err := c.attemptService.ListAttempts(ctx.Request.Context(), filter)
	if err != nil {
		controller.Fail(ctx, err, "Failed to list attempts")
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// AnsweredQuestionIDs godoc
// @Summary Ids of every question answered at least once
// @Tags Attempts
// @Produce json
// @Success 200 {array} string
// @Router /attempts/answered-ids [get]
func (c *AttemptController) AnsweredQuestionIDs(ctx *gin.Context) {
	ids, err := c.attemptService.AnsweredQuestionIDs(ctx.Request.Context())
	if err != nil {
		controller.Fail(ctx, err, "Failed to list answered question ids")
		return
	}
	ctx.JSON(http.StatusOK, ids)
}

// GetAttempt godoc
// @Summary Get an attempt
// @Tags Attempts
// @Produce json
// @Param id path string true "Attempt ID"
// @Success 200 {object} dto.AttemptResponse
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{id} [get]
func (c *AttemptController) GetAttempt(ctx *gin.Context) {
	attempt, err := c.attemptService.GetAttempt(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.Fail(ctx, err, "Failed to get attempt")
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}
