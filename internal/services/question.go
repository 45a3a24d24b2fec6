package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"trivia-api/internal/models"
	"trivia-api/internal/pagination"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

// QuestionPage is one page of a question listing. Total counts every match,
// not just the questions on the page.
type QuestionPage struct {
	Questions []models.Question
	Total     int64
}

// QuestionInput carries the raw creation fields. Category and Difficulty
// arrive as text because clients send them either as strings or numbers.
// Source names where an imported row came from, e.g. "CSV line 4".
type QuestionInput struct {
	Question   string
	Answer     string
	Category   string
	Difficulty string
	Source     string
}

func (s *QuestionService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	return s.paginate(ctx, s.db.WithContext(ctx).Model(&models.Question{}), page)
}

// SearchQuestions matches term as a case-insensitive substring of the
// question text.
func (s *QuestionService) SearchQuestions(ctx context.Context, term string, page int) (*QuestionPage, error) {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	q := s.db.WithContext(ctx).Model(&models.Question{}).
		Where(`LOWER(question) LIKE ? ESCAPE '\'`, pattern)
	return s.paginate(ctx, q, page)
}

func (s *QuestionService) QuestionsByCategory(ctx context.Context, categoryID uint, page int) (*QuestionPage, error) {
	q := s.db.WithContext(ctx).Model(&models.Question{}).
		Where("category = ?", strconv.FormatUint(uint64(categoryID), 10))
	return s.paginate(ctx, q, page)
}

func (s *QuestionService) paginate(ctx context.Context, q *gorm.DB, page int) (*QuestionPage, error) {
	if _, _, ok := pagination.Bounds(page); !ok {
		return nil, ErrPageNotFound
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}

	var questions []models.Question
	err := q.Session(&gorm.Session{}).
		Order("id ASC").
		Scopes(pagination.Scope(page)).
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrPageNotFound
	}

	return &QuestionPage{Questions: questions, Total: total}, nil
}

func (s *QuestionService) GetQuestion(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	err := s.db.WithContext(ctx).First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get question %d: %w", id, err)
	}
	return &question, nil
}

func (s *QuestionService) CreateQuestion(ctx context.Context, input QuestionInput) (*models.Question, error) {
	q, err := input.validate()
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&q).Error; err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return &q, nil
}

// validate trims every field and builds the question to store. Whitespace-only
// fields, category "0" and difficulty 0 count as missing.
func (in QuestionInput) validate() (models.Question, error) {
	question := strings.TrimSpace(in.Question)
	answer := strings.TrimSpace(in.Answer)
	category := strings.TrimSpace(in.Category)
	difficultyText := strings.TrimSpace(in.Difficulty)

	if question == "" || answer == "" || category == "" || category == "0" || difficultyText == "" {
		return models.Question{}, ErrMissingFields
	}

	difficulty, err := strconv.Atoi(difficultyText)
	if err != nil {
		return models.Question{}, ErrInvalidDifficulty
	}
	if difficulty == 0 {
		return models.Question{}, ErrMissingFields
	}

	return models.Question{
		Question:   question,
		Answer:     answer,
		Category:   category,
		Difficulty: difficulty,
	}, nil
}

// DeleteQuestion removes a question and returns it together with the number
// of questions left.
func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint) (*models.Question, int64, error) {
	question, err := s.GetQuestion(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	if err := s.db.WithContext(ctx).Delete(question).Error; err != nil {
		return nil, 0, fmt.Errorf("delete question %d: %w", id, err)
	}

	var remaining int64
	if err := s.db.WithContext(ctx).Model(&models.Question{}).Count(&remaining).Error; err != nil {
		return nil, 0, fmt.Errorf("count questions: %w", err)
	}
	return question, remaining, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
