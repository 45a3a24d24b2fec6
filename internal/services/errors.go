package services

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers branch on these with errors.Is; any other error is a
// storage or unexpected failure.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

var (
	ErrMissingFields     = fmt.Errorf("%w: question, answer, category and difficulty are required", ErrInvalidInput)
	ErrInvalidDifficulty = fmt.Errorf("%w: difficulty must be a non-zero integer", ErrInvalidInput)

	ErrQuestionNotFound = fmt.Errorf("question %w", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
	ErrPageNotFound     = fmt.Errorf("page %w", ErrNotFound)
)
