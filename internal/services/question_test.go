package services

import (
	"context"
	"errors"
	"testing"

	"trivia-api/internal/models"
	"trivia-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionService_ListQuestions_Pages(t *testing.T) {
	db := testutil.SetupSeededDB(t)
	created := testutil.CreateQuestions(t, db, "1", 12)
	svc := NewQuestionService(db)
	ctx := context.Background()

	first, err := svc.ListQuestions(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, first.Questions, 10)
	assert.Equal(t, int64(12), first.Total)

	second, err := svc.ListQuestions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, second.Questions, 2)
	assert.Equal(t, int64(12), second.Total)
	assert.Equal(t, created[10].ID, second.Questions[0].ID)
	assert.Equal(t, created[11].ID, second.Questions[1].ID)
}

func TestQuestionService_ListQuestions_OutOfRange(t *testing.T) {
	db := testutil.SetupSeededDB(t)
	testutil.CreateQuestions(t, db, "1", 12)
	svc := NewQuestionService(db)

	for _, page := range []int{3, 1000, 0, -1} {
		_, err := svc.ListQuestions(context.Background(), page)
		assert.ErrorIs(t, err, ErrPageNotFound, "page %d", page)
		assert.ErrorIs(t, err, ErrNotFound, "page %d", page)
	}
}

func TestQuestionService_ListQuestions_Empty(t *testing.T) {
	svc := NewQuestionService(testutil.SetupSeededDB(t))

	_, err := svc.ListQuestions(context.Background(), 1)
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestQuestionService_SearchQuestions(t *testing.T) {
	db := testutil.SetupSeededDB(t)
	require.NoError(t, db.Create(&[]models.Question{
		{Question: "What was the TITLE of the film?", Answer: "a", Category: "5", Difficulty: 1},
		{Question: "Whose autobiography is entitled this?", Answer: "b", Category: "4", Difficulty: 2},
		{Question: "Who discovered penicillin?", Answer: "c", Category: "1", Difficulty: 3},
		{Question: "Is 100% of it here?", Answer: "d", Category: "1", Difficulty: 3},
	}).Error)
	svc := NewQuestionService(db)
	ctx := context.Background()

	page, err := svc.SearchQuestions(ctx, "title", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Questions, 2)
	assert.Contains(t, page.Questions[0].Question, "TITLE")
	assert.Contains(t, page.Questions[1].Question, "entitled")

	page, err = svc.SearchQuestions(ctx, "100%", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	_, err = svc.SearchQuestions(ctx, "notTitle", 1)
	assert.ErrorIs(t, err, ErrPageNotFound)

	_, err = svc.SearchQuestions(ctx, "_", 1)
	assert.ErrorIs(t, err, ErrPageNotFound, "wildcards are matched literally")

	_, err = svc.SearchQuestions(ctx, "title", 2)
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestQuestionService_SearchQuestions_FoldsNonASCII(t *testing.T) {
	db := testutil.SetupSeededDB(t)
	require.NoError(t, db.Create(&[]models.Question{
		{Question: "Which painter finished LA NUIT ÉTOILÉE in 1889?", Answer: "Van Gogh", Category: "2", Difficulty: 2},
		{Question: "Where is the Straße des 17. Juni?", Answer: "Berlin", Category: "3", Difficulty: 3},
	}).Error)
	svc := NewQuestionService(db)
	ctx := context.Background()

	page, err := svc.SearchQuestions(ctx, "étoilée", 1)
	require.NoError(t, err)
	require.Len(t, page.Questions, 1)
	assert.Equal(t, "Van Gogh", page.Questions[0].Answer)

	_, err = svc.SearchQuestions(ctx, "STRASSE", 1)
	assert.ErrorIs(t, err, ErrPageNotFound, "folding is case only, not transliteration")

	page, err = svc.SearchQuestions(ctx, "STRAßE", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
}

func TestQuestionService_SearchQuestions_TotalCountsAllMatches(t *testing.T) {
	db := testutil.SetupSeededDB(t)
	testutil.CreateQuestions(t, db, "2", 15)
	svc := NewQuestionService(db)

	page, err := svc.SearchQuestions(context.Background(), "question", 2)
	require.NoError(t, err)
	assert.Len(t, page.Questions, 5)
	assert.Equal(t, int64(15), page.Total)
}

func TestQuestionService_QuestionsByCategory(t *testing.T) {
	db := testutil.SetupSeededDB(t)
	science := testutil.CreateQuestions(t, db, "1", 3)
	testutil.CreateQuestions(t, db, "2", 4)
	svc := NewQuestionService(db)
	ctx := context.Background()

	page, err := svc.QuestionsByCategory(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Questions, 3)
	for i, q := range page.Questions {
		assert.Equal(t, science[i].ID, q.ID)
		assert.Equal(t, "1", q.Category)
	}

	_, err = svc.QuestionsByCategory(ctx, 3, 1)
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestQuestionService_CreateQuestion(t *testing.T) {
	db := testutil.SetupSeededDB(t)
	svc := NewQuestionService(db)
	ctx := context.Background()

	q, err := svc.CreateQuestion(ctx, QuestionInput{
		Question:   "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?",
		Answer:     "Maya Angelou",
		Category:   "4",
		Difficulty: "2",
	})
	require.NoError(t, err)
	assert.NotZero(t, q.ID)
	assert.Equal(t, 2, q.Difficulty)

	stored, err := svc.GetQuestion(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maya Angelou", stored.Answer)
	assert.Equal(t, "4", stored.Category)
}

func TestQuestionService_CreateQuestion_Validation(t *testing.T) {
	valid := QuestionInput{Question: "q?", Answer: "a", Category: "1", Difficulty: "3"}

	tests := []struct {
		name    string
		mutate  func(in *QuestionInput)
		wantErr error
	}{
		{name: "missing question", mutate: func(in *QuestionInput) { in.Question = "" }, wantErr: ErrMissingFields},
		{name: "blank answer", mutate: func(in *QuestionInput) { in.Answer = "   " }, wantErr: ErrMissingFields},
		{name: "missing category", mutate: func(in *QuestionInput) { in.Category = "" }, wantErr: ErrMissingFields},
		{name: "zero category", mutate: func(in *QuestionInput) { in.Category = "0" }, wantErr: ErrMissingFields},
		{name: "missing difficulty", mutate: func(in *QuestionInput) { in.Difficulty = "" }, wantErr: ErrMissingFields},
		{name: "zero difficulty", mutate: func(in *QuestionInput) { in.Difficulty = "0" }, wantErr: ErrMissingFields},
		{name: "non-numeric difficulty", mutate: func(in *QuestionInput) { in.Difficulty = "hard" }, wantErr: ErrInvalidDifficulty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.SetupSeededDB(t)
			svc := NewQuestionService(db)

			in := valid
			tt.mutate(&in)
			_, err := svc.CreateQuestion(context.Background(), in)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidInput)

			var count int64
			require.NoError(t, db.Model(&models.Question{}).Count(&count).Error)
			assert.Zero(t, count)
		})
	}
}

func TestQuestionService_DeleteQuestion(t *testing.T) {
	db := testutil.SetupSeededDB(t)
	created := testutil.CreateQuestions(t, db, "1", 3)
	svc := NewQuestionService(db)
	ctx := context.Background()

	deleted, remaining, err := svc.DeleteQuestion(ctx, created[1].ID)
	require.NoError(t, err)
	assert.Equal(t, created[1].ID, deleted.ID)
	assert.Equal(t, int64(2), remaining)

	_, err = svc.GetQuestion(ctx, created[1].ID)
	assert.ErrorIs(t, err, ErrQuestionNotFound)

	_, _, err = svc.DeleteQuestion(ctx, created[1].ID)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuestionService_StorageFailureIsUnclassified(t *testing.T) {
	db := testutil.SetupSeededDB(t)
	svc := NewQuestionService(db)
	testutil.BreakDB(t, db)
	ctx := context.Background()

	_, err := svc.ListQuestions(ctx, 1)
	requireUnclassified(t, err)

	_, err = svc.SearchQuestions(ctx, "x", 1)
	requireUnclassified(t, err)

	_, err = svc.CreateQuestion(ctx, QuestionInput{Question: "q?", Answer: "a", Category: "1", Difficulty: "1"})
	requireUnclassified(t, err)

	_, _, err = svc.DeleteQuestion(ctx, 1)
	requireUnclassified(t, err)
}

func requireUnclassified(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound), "storage error classified as not found: %v", err)
	assert.False(t, errors.Is(err, ErrInvalidInput), "storage error classified as invalid input: %v", err)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now \\ ok`, escapeLike(`50% off_now \ ok`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
