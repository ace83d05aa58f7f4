package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studytrack/internal/controller"
	"github.com/lshigami/studytrack/internal/dto"
	"github.com/lshigami/studytrack/internal/service"
)

type ExamController struct {
	examService service.ExamService
}

func NewExamController(examService service.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

func (c *ExamController) RegisterRoutes(api *gin.RouterGroup) {
	exams := api.Group("/exams")
	exams.GET("", c.ListExams)
	exams.POST("", c.CreateExam)
	exams.GET("/:id", c.GetExam)
	exams.DELETE("/:id", c.DeleteExam)
}

// ListExams godoc
// @Summary List exams, newest first
// @Tags Exams
// @Produce json
// @Success 200 {array} dto.ExamResponse
// @Router /exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	exams, err := c.examService.ListExams(ctx.Request.Context())
	if err != nil {
		controller.Fail(ctx, err, "Failed to list exams")
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// CreateExam godoc
// @Summary Create an exam
// @Tags Exams
// @Accept json
// @Produce json
// @Param exam body dto.CreateExamRequest true "Title and question ids"
// @Success 201 {object} dto.ExamResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, err)
		return
	}
	exam, err := c.examService.CreateExam(ctx.Request.Context(), req)
	if err != nil {
		controller.Fail(ctx, err, "Failed to create exam")
		return
	}
	ctx.JSON(http.StatusCreated, exam)
}

// GetExam godoc
// @Summary Get an exam
// @Tags Exams
// @Produce json
// @Param id path string true "Exam ID"
// @Success 200 {object} dto.ExamResponse
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	exam, err := c.examService.GetExam(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.Fail(ctx, err, "Failed to get exam")
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// DeleteExam godoc
// @Summary Delete an exam
// @Tags Exams
// @Param id path string true "Exam ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	if err := c.examService.DeleteExam(ctx.Request.Context(), ctx.Param("id")); err != nil {
		controller.Fail(ctx, err, "Failed to delete exam")
		return
	}
	ctx.Status(http.StatusNoContent)
}
