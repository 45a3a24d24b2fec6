package services

import (
	"context"
	"testing"

	"trivia-api/internal/models"
	"trivia-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionService_AllQuestions(t *testing.T) {
	db := testutil.SetupSeededDB(t)
	created := testutil.CreateQuestions(t, db, "5", 23)
	svc := NewQuestionService(db)

	all, err := svc.AllQuestions(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 23)
	assert.Equal(t, created[0].ID, all[0].ID)
	assert.Equal(t, created[22].ID, all[22].ID)
}

func TestQuestionService_ImportQuestions(t *testing.T) {
	db := testutil.SetupSeededDB(t)
	svc := NewQuestionService(db)
	ctx := context.Background()

	inputs := make([]QuestionInput, 0, 150)
	for i := 0; i < 150; i++ {
		inputs = append(inputs, QuestionInput{Question: " q? ", Answer: "a", Category: "2", Difficulty: "4"})
	}

	n, err := svc.ImportQuestions(ctx, inputs)
	require.NoError(t, err)
	assert.Equal(t, 150, n)

	var stored []models.Question
	require.NoError(t, db.Where("category = ?", "2").Find(&stored).Error)
	require.Len(t, stored, 150)
	assert.Equal(t, "q?", stored[0].Question)
	assert.Equal(t, 4, stored[0].Difficulty)
}

func TestQuestionService_ImportQuestions_BadRowWritesNothing(t *testing.T) {
	db := testutil.SetupSeededDB(t)
	svc := NewQuestionService(db)

	_, err := svc.ImportQuestions(context.Background(), []QuestionInput{
		{Question: "q1?", Answer: "a", Category: "1", Difficulty: "1"},
		{Question: "q2?", Answer: "a", Category: "1", Difficulty: "hard"},
	})
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
	assert.ErrorContains(t, err, "row 2")

	var count int64
	require.NoError(t, db.Model(&models.Question{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestQuestionService_ImportQuestions_Empty(t *testing.T) {
	svc := NewQuestionService(testutil.SetupSeededDB(t))

	n, err := svc.ImportQuestions(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}
