package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"trivia-api/internal/models"

	"gorm.io/gorm"
)

// AnyCategory selects questions from every category.
const AnyCategory uint = 0

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// NextQuestion returns the lowest-id question in categoryID that is not in
// previous. It returns nil without error once the category is exhausted.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID uint, previous []uint) (*models.Question, error) {
	db := s.db.WithContext(ctx)

	q := db.Model(&models.Question{})
	if categoryID != AnyCategory {
		var count int64
		if err := db.Model(&models.Category{}).Where("id = ?", categoryID).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("lookup category %d: %w", categoryID, err)
		}
		if count == 0 {
			return nil, ErrCategoryNotFound
		}
		q = q.Where("category = ?", strconv.FormatUint(uint64(categoryID), 10))
	}
	if len(previous) > 0 {
		q = q.Where("id NOT IN ?", previous)
	}

	var question models.Question
	err := q.Order("id ASC").First(&question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("next quiz question: %w", err)
	}
	return &question, nil
}
