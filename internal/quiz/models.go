package quiz

import "time"

// Question is one numbered block of pasted quiz text.
type Question struct {
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct,omitempty"`
	HasAnswer     bool     `json:"has_answer"` // an Answer: line was seen
}

// CorrectIndex returns the position of the option equal to the recorded
// answer, or -1 when there is no answer or it matches no option.
func (q Question) CorrectIndex() int {
	if !q.HasAnswer {
		return -1
	}
	for i, o := range q.Options {
		if o == q.CorrectAnswer {
			return i
		}
	}
	return -1
}

// Scoreable reports whether some displayed option can be scored correct.
func (q Question) Scoreable() bool { return q.CorrectIndex() >= 0 }

// Quiz is a parsed question set kept under its own identifier.
type Quiz struct {
	ID        string     `json:"id"`
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"created_at"`
}

func cloneQuestions(in []Question) []Question {
	out := make([]Question, len(in))
	for i, q := range in {
		out[i] = q
		out[i].Options = append([]string(nil), q.Options...)
	}
	return out
}
