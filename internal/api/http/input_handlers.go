package http

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/mind-engage/mindengage-quiz/internal/quiz"
	"github.com/mind-engage/mindengage-quiz/internal/websession"
)

const (
	msgEmptyText   = "Please paste some quiz text."
	msgNoQuestions = "No questions could be parsed from the text. Please check the format."
	msgParseFailed = "Error parsing quiz: "
	msgStoreFailed = "Could not save the quiz. Please try again."
	msgTooLarge    = "Quiz text is too large."
)

// GET /: the input form. Coming back here discards any quiz in progress.
func IndexHandler(sessions *websession.Manager, v *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.Clear(websession.IDFromContext(r.Context()))
		v.Index(w, http.StatusOK, "", "")
	}
}

// POST /: form field quiz_text. On success the quiz is stored and the
// browser is sent to /start, which begins it.
func CreateQuizHandler(svc *quiz.Service, sessions *websession.Manager, v *Views, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			if isTooLarge(err) {
				v.Index(w, http.StatusRequestEntityTooLarge, msgTooLarge, "")
				return
			}
			v.Index(w, http.StatusBadRequest, msgEmptyText, "")
			return
		}
		text := r.PostFormValue("quiz_text")
		if strings.TrimSpace(text) == "" {
			v.Index(w, http.StatusUnprocessableEntity, msgEmptyText, text)
			return
		}

		q, err := svc.CreateQuiz(r.Context(), text)
		if err != nil {
			msg, status := createErrorMessage(err)
			if status >= http.StatusInternalServerError {
				log.Error("create quiz", zap.Error(err))
			} else {
				log.Info("quiz text rejected", zap.Error(err))
			}
			v.Index(w, status, msg, text)
			return
		}

		if bad := quiz.Unscoreable(q.Questions); len(bad) > 0 {
			log.Warn("quiz has unscoreable questions",
				zap.String("quiz_id", q.ID), zap.Ints("questions", bad))
		}

		sessions.Put(websession.IDFromContext(r.Context()), quiz.Pending(q.ID))
		http.Redirect(w, r, "/start", http.StatusSeeOther)
	}
}

func createErrorMessage(err error) (string, int) {
	var pe *quiz.ParseError
	switch {
	case errors.Is(err, quiz.ErrNoQuestions):
		return msgNoQuestions, http.StatusUnprocessableEntity
	case errors.As(err, &pe):
		return msgParseFailed + pe.Error(), http.StatusUnprocessableEntity
	default:
		return msgStoreFailed, http.StatusInternalServerError
	}
}
