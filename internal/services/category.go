package services

import (
	"context"
	"errors"
	"fmt"

	"trivia-api/internal/models"

	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// ListCategories returns every category ordered by id.
func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// CategoryMap returns categories keyed by id, the shape the listing endpoints
// expose.
func (s *CategoryService) CategoryMap(ctx context.Context) (map[uint]string, error) {
	cats, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[uint]string, len(cats))
	for _, c := range cats {
		out[c.ID] = c.Type
	}
	return out, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var cat models.Category
	err := s.db.WithContext(ctx).First(&cat, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	return &cat, nil
}
