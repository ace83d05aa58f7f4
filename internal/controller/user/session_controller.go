package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studytrack/internal/controller"
	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/service"
)

type SessionController struct {
	sessionService service.ExamSessionService
}

func NewSessionController(sessionService service.ExamSessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

func (c *SessionController) RegisterRoutes(api *gin.RouterGroup) {
	sessions := api.Group("/sessions")
	sessions.POST("", c.StartSession)
	sessions.GET("/incomplete", c.ListIncomplete)
	sessions.GET("/:id", c.GetSession)
	sessions.PATCH("/:id/progress", c.SaveProgress)
	sessions.DELETE("/:id", c.DeleteSession)
}

// StartSession godoc
// @Summary Start an exam session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session body dto.CreateExamSessionRequest true "Mode, questions and settings"
// @Success 201 {object} dto.ExamSessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /sessions [post]
func (c *SessionController) StartSession(ctx *gin.Context) {
	var req dto.CreateExamSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	session, err := c.sessionService.StartSession(ctx.Request.Context(), req)
	if err != nil {
		controller.Fail(ctx, err, "Failed to start session")
		return
	}
	ctx.JSON(http.StatusCreated, session)
}

// ListIncomplete godoc
// @Summary List sessions that are not complete
// @Tags Sessions
// @Produce json
// @Success 200 {array} dto.ExamSessionResponse
// @Router /sessions/incomplete [get]
func (c *SessionController) ListIncomplete(ctx *gin.Context) {
	sessions, err := c.sessionService.ListIncomplete(ctx.Request.Context())
	if err != nil {
		controller.Fail(ctx, err, "Failed to list incomplete sessions")
		return
	}
	ctx.JSON(http.StatusOK, sessions)
}

// GetSession godoc
// @Summary Get a session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.ExamSessionResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	session, err := c.sessionService.GetSession(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.Fail(ctx, err, "Failed to get session")
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// SaveProgress godoc
// @Summary Save session progress
// @Description Partial update. Answers and time spent are merged per question.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param progress body dto.SessionProgressRequest true "Fields to change"
// @Success 200 {object} dto.ExamSessionResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/progress [patch]
func (c *SessionController) SaveProgress(ctx *gin.Context) {
	var req dto.SessionProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	session, err := c.sessionService.SaveProgress(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		controller.Fail(ctx, err, "Failed to save session progress")
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// DeleteSession godoc
// @Summary Delete a session
// @Tags Sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [delete]
func (c *SessionController) DeleteSession(ctx *gin.Context) {
	if err := c.sessionService.DeleteSession(ctx.Request.Context(), ctx.Param("id")); err != nil {
		controller.Fail(ctx, err, "Failed to delete session")
		return
	}
	ctx.Status(http.StatusNoContent)
}
