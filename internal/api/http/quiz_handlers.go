package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mind-engage/mindengage-quiz/internal/quiz"
	"github.com/mind-engage/mindengage-quiz/internal/websession"
)

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// GET|POST /start and /start/{quizID}: begin (or restart) a stored quiz.
// Without a quiz ID in the path, the one remembered in the session is used.
func StartHandler(svc *quiz.Service, sessions *websession.Manager, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid := websession.IDFromContext(r.Context())
		quizID := strings.TrimSpace(chi.URLParam(r, "quizID"))
		if quizID == "" {
			quizID = sessions.Get(sid).QuizID
		}

		sess, err := svc.StartQuiz(r.Context(), quizID)
		if err != nil {
			if !errors.Is(err, quiz.ErrQuizNotFound) && !errors.Is(err, quiz.ErrEmptyQuestionSet) {
				log.Error("start quiz", zap.String("quiz_id", quizID), zap.Error(err))
			}
			redirectHome(w, r)
			return
		}

		sessions.Put(sid, sess)
		http.Redirect(w, r, "/quiz", http.StatusSeeOther)
	}
}

// GET /quiz: the current question. Anything but an in-progress session
// goes back to the input page.
func QuizViewHandler(sessions *websession.Manager, v *Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessions.Get(websession.IDFromContext(r.Context()))
		p, err := sess.Current()
		if err != nil {
			redirectHome(w, r)
			return
		}
		v.Quiz(w, p)
	}
}

// POST /quiz: form field answer (option text) or choice (option index).
// Renders the final report after the last question, otherwise redirects
// back to GET /quiz.
func AnswerHandler(svc *quiz.Service, sessions *websession.Manager, v *Views, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid := websession.IDFromContext(r.Context())
		sess := sessions.Get(sid)
		if sess.State != quiz.StateInProgress {
			redirectHome(w, r)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}

		var (
			done bool
			err  error
		)
		if _, ok := r.PostForm["answer"]; !ok && r.PostFormValue("choice") != "" {
			i, convErr := strconv.Atoi(r.PostFormValue("choice"))
			if convErr != nil {
				i = -1
			}
			done, err = svc.AnswerChoice(r.Context(), &sess, i)
		} else {
			done, err = svc.Answer(r.Context(), &sess, r.PostFormValue("answer"))
		}
		if err != nil {
			log.Info("answer rejected", zap.String("state", sess.State.String()), zap.Error(err))
			redirectHome(w, r)
			return
		}
		sessions.Put(sid, sess)

		if !done {
			http.Redirect(w, r, "/quiz", http.StatusSeeOther)
			return
		}
		rep, err := sess.Report()
		if err != nil {
			redirectHome(w, r)
			return
		}
		v.Final(w, rep)
	}
}
