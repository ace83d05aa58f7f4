package user

import (
	"net/http"
	"testing"

	"github.com/lshigami/studytrack/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionRoutes(t *testing.T) {
	r := newTestRouter(t)
	question := map[string]any{
		"question":       "What is the height of a complete binary tree with n nodes?",
		"choices":        []string{"O(log n)", "O(n)"},
		"correct_answer": "O(log n)",
		"subject":        dsa,
	}

	var created dto.QuestionResponse
	w := do(t, r, http.MethodPost, "/api/v1/questions", question, &created)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotEmpty(t, created.QuestionID)

	w = do(t, r, http.MethodPost, "/api/v1/questions", map[string]any{"subject": dsa}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var bulk dto.BulkCreateQuestionsResponse
	w = do(t, r, http.MethodPost, "/api/v1/questions/bulk", map[string]any{
		"questions": []map[string]any{question, {"question": "missing subject", "correct_answer": "a"}},
	}, &bulk)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, bulk.Created, 1)
	require.Len(t, bulk.Errors, 1)
	assert.Equal(t, 1, bulk.Errors[0].Index)

	var fetched []dto.QuestionResponse
	w = do(t, r, http.MethodPost, "/api/v1/questions/bulk", map[string]any{"ids": []string{created.QuestionID}}, &fetched)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, fetched, 1)

	w = do(t, r, http.MethodPost, "/api/v1/questions/bulk", map[string]any{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var list []dto.QuestionResponse
	w = do(t, r, http.MethodGet, "/api/v1/questions?subject=Operating%20System", nil, &list)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, list)

	w = do(t, r, http.MethodPost, "/api/v1/questions/"+created.QuestionID+"/explanation", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(t, r, http.MethodDelete, "/api/v1/questions/"+created.QuestionID, nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, r, http.MethodGet, "/api/v1/questions/"+created.QuestionID, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExamRoutes(t *testing.T) {
	r := newTestRouter(t)

	var exam dto.ExamResponse
	w := do(t, r, http.MethodPost, "/api/v1/exams", map[string]any{"title": "Mock final", "question_ids": []string{"q1"}}, &exam)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var exams []dto.ExamResponse
	w = do(t, r, http.MethodGet, "/api/v1/exams", nil, &exams)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, exams, 1)
	assert.Equal(t, exam.ExamID, exams[0].ExamID)

	w = do(t, r, http.MethodDelete, "/api/v1/exams/"+exam.ExamID, nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, r, http.MethodGet, "/api/v1/exams/"+exam.ExamID, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
