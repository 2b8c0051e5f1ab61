package quiz

import (
	"errors"
	"time"
)

type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in_progress"
	case StateComplete:
		return "complete"
	default:
		return "not_started"
	}
}

var (
	ErrEmptyQuestionSet = errors.New("question set is empty")
	ErrNotStarted       = errors.New("quiz not started")
	ErrStaleSession     = errors.New("no question left in session")
	ErrQuizComplete     = errors.New("quiz already complete")
	ErrQuizIncomplete   = errors.New("quiz not complete")
)

// Session is one user's walk through a snapshot of a question set.
// A zero Session is NotStarted. QuizID may be set while NotStarted to
// remember which stored quiz the next Start should use.
type Session struct {
	State     State         `json:"state"`
	QuizID    string        `json:"quiz_id,omitempty"`
	Questions []Question    `json:"questions,omitempty"`
	Index     int           `json:"index"`
	Score     int           `json:"score"`
	StartedAt time.Time     `json:"started_at"`
	TimeTaken time.Duration `json:"time_taken"`
}

// Progress is what the quiz view shows for the current question.
type Progress struct {
	Number   int // 1-based
	Total    int
	Score    int
	Answered int
	Question Question
}

// Percent is how far through the quiz the current question sits.
func (p Progress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return p.Number * 100 / p.Total
}

type Report struct {
	Score     int           `json:"score"`
	Total     int           `json:"total"`
	TimeTaken time.Duration `json:"time_taken"`
	Verdict   Verdict       `json:"verdict"`
}

// Seconds is the elapsed time in whole seconds.
func (r Report) Seconds() int { return int(r.TimeTaken / time.Second) }

// Start initializes an InProgress session over a copy of questions.
func Start(quizID string, questions []Question, now time.Time) (Session, error) {
	if len(questions) == 0 {
		return Session{}, ErrEmptyQuestionSet
	}
	return Session{
		State:     StateInProgress,
		QuizID:    quizID,
		Questions: cloneQuestions(questions),
		StartedAt: now,
	}, nil
}

// Pending returns a NotStarted session pointing at a stored quiz.
func Pending(quizID string) Session {
	return Session{QuizID: quizID}
}

func (s *Session) Total() int { return len(s.Questions) }

func (s *Session) Current() (Progress, error) {
	if s.State != StateInProgress {
		return Progress{}, ErrNotStarted
	}
	if s.Index >= len(s.Questions) {
		return Progress{}, ErrStaleSession
	}
	return Progress{
		Number:   s.Index + 1,
		Total:    len(s.Questions),
		Score:    s.Score,
		Answered: s.Index,
		Question: s.Questions[s.Index],
	}, nil
}

// Submit scores answer against the current question by exact string match
// and advances. done is true once the last question has been answered.
func (s *Session) Submit(answer string, now time.Time) (done bool, err error) {
	switch s.State {
	case StateNotStarted:
		return false, ErrNotStarted
	case StateComplete:
		return true, ErrQuizComplete
	}
	if s.Index >= len(s.Questions) {
		return false, ErrStaleSession
	}

	q := s.Questions[s.Index]
	if q.HasAnswer && answer == q.CorrectAnswer {
		s.Score++
	}
	s.Index++

	if s.Index == len(s.Questions) {
		s.State = StateComplete
		s.TimeTaken = elapsed(s.StartedAt, now)
		return true, nil
	}
	return false, nil
}

// SubmitChoice answers with the option at index i of the current question.
// An index outside the options scores as wrong.
func (s *Session) SubmitChoice(i int, now time.Time) (bool, error) {
	if s.State == StateInProgress && s.Index < len(s.Questions) {
		opts := s.Questions[s.Index].Options
		if i >= 0 && i < len(opts) {
			return s.Submit(opts[i], now)
		}
		return s.skip(now)
	}
	return s.Submit("", now)
}

func (s *Session) skip(now time.Time) (bool, error) {
	s.Index++
	if s.Index == len(s.Questions) {
		s.State = StateComplete
		s.TimeTaken = elapsed(s.StartedAt, now)
		return true, nil
	}
	return false, nil
}

func (s *Session) Report() (Report, error) {
	if s.State != StateComplete {
		return Report{}, ErrQuizIncomplete
	}
	return Report{
		Score:     s.Score,
		Total:     len(s.Questions),
		TimeTaken: s.TimeTaken,
		Verdict:   Classify(s.Score, len(s.Questions)),
	}, nil
}

// Reset discards all progress.
func (s *Session) Reset() { *s = Session{} }

func elapsed(start, now time.Time) time.Duration {
	d := now.Sub(start).Truncate(time.Second)
	if d < 0 {
		return 0
	}
	return d
}
