package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studytrack/internal/controller"
	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/repository"
	"github.com/lshigami/studytrack/internal/service"
)

type QuestionController struct {
	questionService    service.QuestionService
	explanationService service.ExplanationService
}

func NewQuestionController(questionService service.QuestionService, explanationService service.ExplanationService) *QuestionController {
	return &QuestionController{questionService: questionService, explanationService: explanationService}
}

func (c *QuestionController) RegisterRoutes(api *gin.RouterGroup) {
	questions := api.Group("/questions")
	questions.GET("", c.ListQuestions)
	questions.POST("", c.CreateQuestion)
	questions.POST("/bulk", c.Bulk)
	questions.GET("/:id", c.GetQuestion)
	questions.PUT("/:id", c.UpdateQuestion)
	questions.DELETE("/:id", c.DeleteQuestion)
	questions.POST("/:id/explanation", c.Explain)
}

// ListQuestions godoc
// @Summary List questions
// @Tags Questions
// @Produce json
// @Param subject query string false "Filter by subject"
// @Param topic query string false "Filter by topic"
// @Success 200 {array} dto.QuestionResponse
// @Router /questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	filter := repository.QuestionFilter{Subject: ctx.Query("subject"), Topic: ctx.Query("topic")}
	questions, err := c.questionService.ListQuestions(ctx.Request.Context(), filter)
	if err != nil {
		controller.Fail(ctx, err, "Failed to list questions")
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// CreateQuestion godoc
// @Summary Create a question
// @Tags Questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionRequest true "Question; question_id is generated when empty"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Question id already used"
// @Router /questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	question, err := c.questionService.CreateQuestion(ctx.Request.Context(), req)
	if err != nil {
		controller.Fail(ctx, err, "Failed to create question")
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// Bulk godoc
// @Summary Fetch or create many questions
// @Description With ids, returns the matching questions. With questions, creates each one and reports failures per item.
// @Tags Questions
// @Accept json
// @Produce json
// @Param request body dto.BulkQuestionsRequest true "Either ids or questions"
// @Success 200 {array} dto.QuestionResponse "When fetching by ids"
// @Success 201 {object} dto.BulkCreateQuestionsResponse "When creating"
// @Failure 400 {object} dto.ErrorResponse "Neither ids nor questions given"
// @Router /questions/bulk [post]
func (c *QuestionController) Bulk(ctx *gin.Context) {
	var req dto.BulkQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	switch {
	case len(req.Questions) > 0:
		resp, err := c.questionService.BulkCreateQuestions(ctx.Request.Context(), req.Questions)
		if err != nil {
			controller.Fail(ctx, err, "Failed to create questions")
			return
		}
		ctx.JSON(http.StatusCreated, resp)
	case len(req.IDs) > 0:
		questions, err := c.questionService.GetQuestionsByIDs(ctx.Request.Context(), req.IDs)
		if err != nil {
			controller.Fail(ctx, err, "Failed to fetch questions")
			return
		}
		ctx.JSON(http.StatusOK, questions)
	default:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "ids or questions array required"})
	}
}

// GetQuestion godoc
// @Summary Get a question
// @Tags Questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	question, err := c.questionService.GetQuestion(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.Fail(ctx, err, "Failed to get question")
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// UpdateQuestion godoc
// @Summary Replace a question
// @Tags Questions
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param question body dto.QuestionRequest true "New question content"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	var req dto.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	question, err := c.questionService.UpdateQuestion(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		controller.Fail(ctx, err, "Failed to update question")
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags Questions
// @Param id path string true "Question ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	if err := c.questionService.DeleteQuestion(ctx.Request.Context(), ctx.Param("id")); err != nil {
		controller.Fail(ctx, err, "Failed to delete question")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Explain godoc
// @Summary Explain a question with Gemini
// @Description Returns a Markdown explanation of the correct answer. Unavailable when no Gemini API key is configured.
// @Tags Questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} dto.ExplanationResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 503 {object} dto.ErrorResponse "Explanation assistant unavailable"
// @Router /questions/{id}/explanation [post]
func (c *QuestionController) Explain(ctx *gin.Context) {
	explanation, err := c.explanationService.Explain(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.Fail(ctx, err, "Failed to explain question")
		return
	}
	ctx.JSON(http.StatusOK, explanation)
}
