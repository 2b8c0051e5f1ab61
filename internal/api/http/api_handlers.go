package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/mind-engage/mindengage-quiz/internal/quiz"
)

type quizTextRequest struct {
	QuizText string `json:"quiz_text"`
}

type parseResponse struct {
	Questions   []quiz.Question `json:"questions"`
	Unscoreable []int           `json:"unscoreable"`
}

type createResponse struct {
	ID            string `json:"id"`
	QuestionCount int    `json:"question_count"`
	StartURL      string `json:"start_url"`
	Unscoreable   []int  `json:"unscoreable"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeQuizText(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req quizTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if isTooLarge(err) {
			writeJSONError(w, http.StatusRequestEntityTooLarge, msgTooLarge)
			return "", false
		}
		writeJSONError(w, http.StatusBadRequest, "bad json")
		return "", false
	}
	if strings.TrimSpace(req.QuizText) == "" {
		writeJSONError(w, http.StatusUnprocessableEntity, msgEmptyText)
		return "", false
	}
	return req.QuizText, true
}

// POST /api/parse: parse only, nothing is stored.
func ParseHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, ok := decodeQuizText(w, r)
		if !ok {
			return
		}
		qs, err := quiz.ParseQuestionSet(text)
		if err != nil {
			msg, status := createErrorMessage(err)
			writeJSONError(w, status, msg)
			return
		}
		bad := quiz.Unscoreable(qs)
		if bad == nil {
			bad = []int{}
		}
		writeJSON(w, http.StatusOK, parseResponse{Questions: qs, Unscoreable: bad})
	}
}

// POST /api/quizzes: parse and store; the response carries a start link.
func CreateQuizAPIHandler(svc *quiz.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, ok := decodeQuizText(w, r)
		if !ok {
			return
		}
		q, err := svc.CreateQuiz(r.Context(), text)
		if err != nil {
			msg, status := createErrorMessage(err)
			if status >= http.StatusInternalServerError {
				log.Error("create quiz", zap.Error(err))
			}
			writeJSONError(w, status, msg)
			return
		}
		bad := quiz.Unscoreable(q.Questions)
		if bad == nil {
			bad = []int{}
		}
		w.Header().Set("Location", "/start/"+q.ID)
		writeJSON(w, http.StatusCreated, createResponse{
			ID:            q.ID,
			QuestionCount: len(q.Questions),
			StartURL:      "/start/" + q.ID,
			Unscoreable:   bad,
		})
	}
}

// maxBody caps request bodies at n bytes.
func maxBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}

func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
