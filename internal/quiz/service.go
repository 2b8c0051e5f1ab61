package quiz

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	syncx "github.com/mind-engage/mindengage-quiz/internal/sync"
)

type Service struct {
	store  Store
	events syncx.Appender
	now    func() time.Time
	newID  func() string
	log    *zap.Logger
}

type ServiceOption func(*Service)

func WithClock(now func() time.Time) ServiceOption { return func(s *Service) { s.now = now } }
func WithIDs(gen func() string) ServiceOption      { return func(s *Service) { s.newID = gen } }
func WithLogger(l *zap.Logger) ServiceOption       { return func(s *Service) { s.log = l } }

func NewService(store Store, events syncx.Appender, opts ...ServiceOption) *Service {
	if events == nil {
		events = syncx.Discard{}
	}
	s := &Service{
		store:  store,
		events: events,
		now:    time.Now,
		newID:  uuid.NewString,
		log:    zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// CreateQuiz parses text and stores the result under a fresh ID. Nothing is
// stored when parsing fails or yields no questions.
func (s *Service) CreateQuiz(ctx context.Context, text string) (Quiz, error) {
	questions, err := ParseQuestionSet(text)
	if err != nil {
		return Quiz{}, err
	}
	q := Quiz{
		ID:        s.newID(),
		Questions: questions,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.PutQuiz(ctx, q); err != nil {
		return Quiz{}, fmt.Errorf("store quiz: %w", err)
	}
	s.emit(ctx, syncx.TypeQuizCreated, q.ID, map[string]any{
		"questions":   len(questions),
		"unscoreable": Unscoreable(questions),
	})
	return q, nil
}

// StartQuiz loads quizID and begins a fresh session over it.
func (s *Service) StartQuiz(ctx context.Context, quizID string) (Session, error) {
	if quizID == "" {
		return Session{}, ErrQuizNotFound
	}
	q, err := s.store.GetQuiz(ctx, quizID)
	if err != nil {
		return Session{}, err
	}
	return Start(q.ID, q.Questions, s.now())
}

// Answer advances sess by one answer.
func (s *Service) Answer(ctx context.Context, sess *Session, answer string) (bool, error) {
	done, err := sess.Submit(answer, s.now())
	if err != nil {
		return done, err
	}
	s.finish(ctx, sess, done)
	return done, nil
}

// AnswerChoice advances sess with the option at index i.
func (s *Service) AnswerChoice(ctx context.Context, sess *Session, i int) (bool, error) {
	done, err := sess.SubmitChoice(i, s.now())
	if err != nil {
		return done, err
	}
	s.finish(ctx, sess, done)
	return done, nil
}

func (s *Service) finish(ctx context.Context, sess *Session, done bool) {
	if !done {
		return
	}
	rep, err := sess.Report()
	if err != nil {
		return
	}
	s.emit(ctx, syncx.TypeQuizCompleted, sess.QuizID, rep)
}

// emit records an event; the event log never fails a user request.
func (s *Service) emit(ctx context.Context, typ, key string, data any) {
	e, err := syncx.NewEvent(typ, key, data)
	if err == nil {
		err = s.events.Append(ctx, e)
	}
	if err != nil {
		s.log.Warn("event append failed", zap.String("type", typ), zap.String("key", key), zap.Error(err))
	}
}
