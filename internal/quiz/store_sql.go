package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

type quizRow struct {
	ID            string `db:"id"`
	QuestionsJSON string `db:"questions_json"`
	CreatedAt     int64  `db:"created_at"`
}

func (s *SQLStore) PutQuiz(ctx context.Context, q Quiz) error {
	if q.ID == "" {
		return errors.New("quiz id required")
	}
	qj, err := json.Marshal(q.Questions)
	if err != nil {
		return err
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}
	_, err = s.db.ExecContext(ctx, s.db.Rebind(`INSERT INTO quizzes (id,questions_json,created_at)
		VALUES (?,?,?)
		ON CONFLICT (id) DO UPDATE SET questions_json=EXCLUDED.questions_json`),
		q.ID, string(qj), q.CreatedAt.UnixNano())
	return err
}

func (s *SQLStore) GetQuiz(ctx context.Context, id string) (Quiz, error) {
	var row quizRow
	err := s.db.GetContext(ctx, &row, s.db.Rebind(`SELECT id,questions_json,created_at FROM quizzes WHERE id=?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Quiz{}, ErrQuizNotFound
		}
		return Quiz{}, err
	}
	q := Quiz{ID: row.ID, CreatedAt: time.Unix(0, row.CreatedAt).UTC()}
	if err := json.Unmarshal([]byte(row.QuestionsJSON), &q.Questions); err != nil {
		return Quiz{}, err
	}
	return q, nil
}
