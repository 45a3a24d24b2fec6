package handlers

import (
	"net/http"
	"strconv"

	"trivia-api/internal/services"
	"trivia-api/internal/ws"

	"github.com/gin-gonic/gin"
)

// Publisher receives question events after a successful write.
type Publisher interface {
	Publish(categoryID uint, msg ws.Message)
}

type QuestionHandler struct {
	questionService *services.QuestionService
	categoryService *services.CategoryService
	events          Publisher
}

func NewQuestionHandler(questionService *services.QuestionService, categoryService *services.CategoryService, events Publisher) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
		events:          events,
	}
}

// CreateOrSearchRequest is either a search (SearchTerm set) or a new question.
type CreateOrSearchRequest struct {
	SearchTerm string      `json:"searchTerm" example:"title"`
	Question   string      `json:"question" example:"Who discovered penicillin?"`
	Answer     string      `json:"answer" example:"Alexander Fleming"`
	Category   looseString `json:"category" swaggertype:"string" example:"1"`
	Difficulty looseString `json:"difficulty" swaggertype:"integer" example:"3"`
}

type QuestionsResponse struct {
	Success         bool            `json:"success" example:"true"`
	Questions       []Question      `json:"questions"`
	TotalQuestions  int64           `json:"total_questions" example:"19"`
	Categories      map[uint]string `json:"categories"`
	CurrentCategory string          `json:"current_category" example:"All"`
}

type SearchResponse struct {
	Success         bool       `json:"success" example:"true"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int64      `json:"total_questions" example:"2"`
	CurrentCategory string     `json:"current_category" example:"All"`
}

type CreatedResponse struct {
	Success bool `json:"success" example:"true"`
	Created uint `json:"created" example:"24"`
}

type DeletedResponse struct {
	Success        bool  `json:"success" example:"true"`
	Deleted        uint  `json:"deleted" example:"5"`
	TotalQuestions int64 `json:"total_questions" example:"18"`
}

// ListQuestions godoc
// @Summary      List questions
// @Description  Paginated questions (10 per page) with every category
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} QuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	page, err := h.questionService.ListQuestions(ctx, pageParam(c))
	if err != nil {
		abortWithError(c, err, http.StatusInternalServerError)
		return
	}

	cats, err := h.categoryService.CategoryMap(ctx)
	if err != nil {
		abortWithError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, QuestionsResponse{
		Success:         true,
		Questions:       page.Questions,
		TotalQuestions:  page.Total,
		Categories:      cats,
		CurrentCategory: "All",
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} DeletedResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, ok := idParam(c, "id")
	if !ok {
		abortWithStatus(c, http.StatusNotFound)
		return
	}

	question, remaining, err := h.questionService.DeleteQuestion(c.Request.Context(), questionID)
	if err != nil {
		abortWithError(c, err, http.StatusUnprocessableEntity)
		return
	}

	h.publish(question.Category, ws.EventQuestionDeleted, question)

	c.JSON(http.StatusOK, DeletedResponse{
		Success:        true,
		Deleted:        question.ID,
		TotalQuestions: remaining,
	})
}

// CreateOrSearchQuestions godoc
// @Summary      Create or search questions
// @Description  With searchTerm: case-insensitive substring search, paginated.
// @Description  Without: create a question from question, answer, category and difficulty,
// @Description  answered with {success, created}.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        page    query int                   false "Page number for searches" default(1)
// @Param        request body  CreateOrSearchRequest true  "Search term or new question"
// @Success      200 {object} SearchResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateOrSearchQuestions(c *gin.Context) {
	var req CreateOrSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		abortWithStatus(c, http.StatusBadRequest)
		return
	}

	if req.SearchTerm != "" {
		h.search(c, req.SearchTerm)
		return
	}

	question, err := h.questionService.CreateQuestion(c.Request.Context(), services.QuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   string(req.Category),
		Difficulty: string(req.Difficulty),
	})
	if err != nil {
		abortWithError(c, err, http.StatusUnprocessableEntity)
		return
	}

	h.publish(question.Category, ws.EventQuestionCreated, question)

	c.JSON(http.StatusOK, CreatedResponse{Success: true, Created: question.ID})
}

func (h *QuestionHandler) search(c *gin.Context, term string) {
	page, err := h.questionService.SearchQuestions(c.Request.Context(), term, pageParam(c))
	if err != nil {
		abortWithError(c, err, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Success:         true,
		Questions:       page.Questions,
		TotalQuestions:  page.Total,
		CurrentCategory: "All",
	})
}

func (h *QuestionHandler) publish(category, event string, data interface{}) {
	if h.events == nil {
		return
	}
	categoryID, err := strconv.ParseUint(category, 10, 64)
	if err != nil {
		categoryID = uint64(ws.AllCategories)
	}
	h.events.Publish(uint(categoryID), ws.Message{Type: event, Data: data})
}
