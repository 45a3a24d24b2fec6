package handlers

import (
	"net/http"

	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	questionService *services.QuestionService
}

func NewCategoryHandler(categoryService *services.CategoryService, questionService *services.QuestionService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, questionService: questionService}
}

type CategoriesResponse struct {
	Success         bool            `json:"success" example:"true"`
	Categories      map[uint]string `json:"categories"`
	TotalCategories int             `json:"total_categories" example:"6"`
}

type CategoryQuestionsResponse struct {
	Success         bool       `json:"success" example:"true"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int64      `json:"total_questions" example:"3"`
	CurrentCategory string     `json:"current_category" example:"Science"`
}

// ListCategories godoc
// @Summary      List categories
// @Description  Get every category keyed by id
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      500 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	cats, err := h.categoryService.CategoryMap(c.Request.Context())
	if err != nil {
		abortWithError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{
		Success:         true,
		Categories:      cats,
		TotalCategories: len(cats),
	})
}

// ListCategoryQuestions godoc
// @Summary      List questions in a category
// @Description  Paginated questions (10 per page) whose category is the given id
// @Tags         categories
// @Produce      json
// @Param        id   path  int true  "Category ID"
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	categoryID, ok := idParam(c, "id")
	if !ok {
		abortWithStatus(c, http.StatusNotFound)
		return
	}

	ctx := c.Request.Context()
	cat, err := h.categoryService.GetCategory(ctx, categoryID)
	if err != nil {
		abortWithError(c, err, http.StatusInternalServerError)
		return
	}

	page, err := h.questionService.QuestionsByCategory(ctx, cat.ID, pageParam(c))
	if err != nil {
		abortWithError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       page.Questions,
		TotalQuestions:  page.Total,
		CurrentCategory: cat.Type,
	})
}
