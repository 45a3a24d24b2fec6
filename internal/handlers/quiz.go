package handlers

import (
	"net/http"

	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

type QuizCategory struct {
	ID   looseString `json:"id" swaggertype:"integer" example:"1"`
	Type string      `json:"type" example:"Science"`
}

type NextQuestionRequest struct {
	PreviousQuestions []uint        `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// NextQuestionResponse carries a null question once the category is exhausted.
type NextQuestionResponse struct {
	Success  bool      `json:"success" example:"true"`
	Question *Question `json:"question"`
}

// NextQuestion godoc
// @Summary      Next quiz question
// @Description  Returns the first question of the category not yet played. Category id 0 means
// @Description  every category. question is null when nothing is left.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body NextQuestionRequest true "Played question ids and category"
// @Success      200 {object} NextQuestionResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req NextQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		abortWithStatus(c, http.StatusBadRequest)
		return
	}

	categoryID := services.AnyCategory
	if req.QuizCategory != nil {
		id, err := req.QuizCategory.ID.uintValue()
		if err != nil {
			_ = c.Error(err)
			abortWithStatus(c, http.StatusBadRequest)
			return
		}
		categoryID = id
	}

	question, err := h.quizService.NextQuestion(c.Request.Context(), categoryID, req.PreviousQuestions)
	if err != nil {
		abortWithError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, NextQuestionResponse{Success: true, Question: question})
}
