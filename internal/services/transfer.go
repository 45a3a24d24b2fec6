package services

import (
	"context"
	"fmt"

	"trivia-api/internal/models"
)

const importBatchSize = 100

// AllQuestions returns every question ordered by id, for export.
func (s *QuestionService) AllQuestions(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list all questions: %w", err)
	}
	return questions, nil
}

// ImportQuestions validates every input before inserting any, so a bad row
// leaves the table untouched. Errors name the row by its Source, or by its
// 1-based position when Source is empty.
func (s *QuestionService) ImportQuestions(ctx context.Context, inputs []QuestionInput) (int, error) {
	questions := make([]models.Question, 0, len(inputs))
	for i, in := range inputs {
		q, err := in.validate()
		if err != nil {
			source := in.Source
			if source == "" {
				source = fmt.Sprintf("row %d", i+1)
			}
			return 0, fmt.Errorf("%s: %w", source, err)
		}
		questions = append(questions, q)
	}
	if len(questions) == 0 {
		return 0, nil
	}

	if err := s.db.WithContext(ctx).CreateInBatches(&questions, importBatchSize).Error; err != nil {
		return 0, fmt.Errorf("import questions: %w", err)
	}
	return len(questions), nil
}
