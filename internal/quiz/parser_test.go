package quiz_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/mind-engage/mindengage-quiz/internal/quiz"
)

const capitalQuiz = `
1. Capital of France?
a) Berlin
b) Paris
c) Rome
d) Madrid
Answer: b) Paris
`

func TestParseCapitalOfFrance(t *testing.T) {
	qs, err := quiz.Parse(capitalQuiz)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("want 1 question, got %d", len(qs))
	}
	q := qs[0]
	if q.Text != "Capital of France?" {
		t.Fatalf("question text = %q", q.Text)
	}
	want := []string{"Berlin", "Paris", "Rome", "Madrid"}
	if strings.Join(q.Options, "|") != strings.Join(want, "|") {
		t.Fatalf("options = %q, want %q", q.Options, want)
	}
	if !q.HasAnswer || q.CorrectAnswer != "Paris" {
		t.Fatalf("answer = %q (has=%v), want Paris", q.CorrectAnswer, q.HasAnswer)
	}
	if q.CorrectIndex() != 1 {
		t.Fatalf("correct index = %d, want 1", q.CorrectIndex())
	}
}

func TestParseCountsQuestionsInOrder(t *testing.T) {
	text := `Some intro line that is ignored.

  1. First?
  a) one
  b) two
  Answer: a) one

2. Second?
a) x
b) y
c) z
Answer: c) z
random trailing chatter
3. Third, no options
`
	qs, err := quiz.Parse(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("want 3 questions, got %d", len(qs))
	}
	if qs[0].Text != "First?" || len(qs[0].Options) != 2 {
		t.Fatalf("q1 = %+v", qs[0])
	}
	if got := strings.Join(qs[1].Options, ","); got != "x,y,z" {
		t.Fatalf("q2 options = %q", got)
	}
	if qs[2].Options == nil || len(qs[2].Options) != 0 {
		t.Fatalf("q3 options should be empty, got %#v", qs[2].Options)
	}
	if qs[2].HasAnswer {
		t.Fatalf("q3 should have no answer")
	}
}

func TestParseEmptyAndIrrelevant(t *testing.T) {
	for _, in := range []string{"", "   \n\n", "irrelevant text with no markers"} {
		qs, err := quiz.Parse(in)
		if err != nil {
			t.Fatalf("parse(%q): %v", in, err)
		}
		if len(qs) != 0 {
			t.Fatalf("parse(%q) = %d questions, want 0", in, len(qs))
		}
		if _, err := quiz.ParseQuestionSet(in); !errors.Is(err, quiz.ErrNoQuestions) {
			t.Fatalf("ParseQuestionSet(%q) err = %v, want ErrNoQuestions", in, err)
		}
	}
}

func TestParseAnswerForms(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"Answer: c) Paris", "Paris"},
		{"Answer: Paris", "Paris"},
		{"Answer: d) a) nested", "a) nested"},
	}
	for _, c := range cases {
		qs, err := quiz.Parse("1. Q?\na) Paris\n" + c.line)
		if err != nil {
			t.Fatalf("%q: %v", c.line, err)
		}
		if !qs[0].HasAnswer || qs[0].CorrectAnswer != c.want {
			t.Fatalf("%q: answer = %q, want %q", c.line, qs[0].CorrectAnswer, c.want)
		}
	}
}

func TestParseLastAnswerWins(t *testing.T) {
	qs, err := quiz.Parse("1. Q?\na) A\nb) B\nAnswer: a) A\nAnswer: b) B\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if qs[0].CorrectAnswer != "B" {
		t.Fatalf("answer = %q, want B", qs[0].CorrectAnswer)
	}
}

func TestParseIgnoresUppercaseAndLateLetters(t *testing.T) {
	qs, err := quiz.Parse("1. Q?\nA) upper\ne) fifth\na) ok\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(qs[0].Options) != 1 || qs[0].Options[0] != "ok" {
		t.Fatalf("options = %q", qs[0].Options)
	}
}

func TestParseAnswerBeforeQuestionIgnored(t *testing.T) {
	qs, err := quiz.Parse("Answer: a) stray\na) stray option\n1. Q?\na) A\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if qs[0].HasAnswer {
		t.Fatalf("stray answer attached: %+v", qs[0])
	}
	if len(qs[0].Options) != 1 {
		t.Fatalf("stray option attached: %q", qs[0].Options)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]int{
		"1. Q?\na) A\nAnswer:A": 3,
		"1.Q?":                  1,
		"1. Q?\na)A":            2,
	}
	for in, line := range cases {
		_, err := quiz.Parse(in)
		var pe *quiz.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("parse(%q) err = %v, want *ParseError", in, err)
		}
		if pe.Line != line {
			t.Fatalf("parse(%q) line = %d, want %d", in, pe.Line, line)
		}
	}
}

func TestParseLineTooLong(t *testing.T) {
	_, err := quiz.Parse("1. " + strings.Repeat("x", 2<<20))
	var pe *quiz.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
}

func TestUnscoreable(t *testing.T) {
	qs, err := quiz.Parse(`1. ok
a) A
Answer: a) A
2. missing answer
a) A
3. answer not in options
a) A
Answer: b) B
`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := quiz.Unscoreable(qs)
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Fatalf("unscoreable = %v, want [2 3]", got)
	}
}
