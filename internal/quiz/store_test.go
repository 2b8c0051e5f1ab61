package quiz_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mind-engage/mindengage-quiz/internal/db"
	"github.com/mind-engage/mindengage-quiz/internal/quiz"
)

func openTestDB(t *testing.T) *quiz.SQLStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	dbh, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = dbh.Close() })
	return quiz.NewSQLStore(dbh)
}

func exerciseStore(t *testing.T, s quiz.Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.GetQuiz(ctx, "missing"); !errors.Is(err, quiz.ErrQuizNotFound) {
		t.Fatalf("get missing: %v", err)
	}
	if err := s.PutQuiz(ctx, quiz.Quiz{}); err == nil {
		t.Fatalf("put without id should fail")
	}

	in := quiz.Quiz{ID: "q1", Questions: twoQuestions(), CreatedAt: time.Unix(1700000000, 0).UTC()}
	if err := s.PutQuiz(ctx, in); err != nil {
		t.Fatalf("put: %v", err)
	}
	in.Questions[0].Options[0] = "mutated"

	got, err := s.GetQuiz(ctx, "q1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Questions) != 2 || got.Questions[0].Options[0] != "A" {
		t.Fatalf("stored questions = %+v", got.Questions)
	}
	if !got.Questions[1].HasAnswer || got.Questions[1].CorrectAnswer != "D" {
		t.Fatalf("answer lost: %+v", got.Questions[1])
	}
	if !got.CreatedAt.Equal(in.CreatedAt) {
		t.Fatalf("created_at = %v, want %v", got.CreatedAt, in.CreatedAt)
	}

	// overwrite keeps the id
	in.Questions = in.Questions[:1]
	if err := s.PutQuiz(ctx, in); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = s.GetQuiz(ctx, "q1")
	if len(got.Questions) != 1 {
		t.Fatalf("overwrite not applied: %d questions", len(got.Questions))
	}
}

func TestInMemoryStore(t *testing.T) {
	exerciseStore(t, quiz.NewInMemoryStore())
}

func TestSQLStore(t *testing.T) {
	exerciseStore(t, openTestDB(t))
}
