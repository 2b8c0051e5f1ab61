package quiz

import (
	"bufio"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	questionStart = regexp.MustCompile(`^\d+\.`)
	optionStart   = regexp.MustCompile(`^[a-d]\)`)
)

const (
	answerPrefix    = "Answer:"
	answerSep       = "Answer: "
	questionSep     = ". "
	optionSep       = ") "
	maxLineCapacity = 1 << 20
)

// ErrNoQuestions is returned when pasted text holds no numbered question.
var ErrNoQuestions = errors.New("no questions could be parsed")

// ParseError reports a line that matched a marker but not its separator.
type ParseError struct {
	Line   int // 1-based, counting only non-blank lines
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Parse converts quiz text into questions in order of appearance.
//
// Recognized lines, after trimming:
//
//	1. Question text
//	a) Option text          (a-d only)
//	Answer: c) Option text  (or "Answer: text")
//
// Anything else is ignored. A question without an Answer: line keeps
// HasAnswer=false. Later Answer: lines overwrite earlier ones.
func Parse(text string) ([]Question, error) {
	var (
		questions []Question
		current   *Question
		options   []string
		lineNo    int
	)

	flush := func() {
		if current == nil {
			return
		}
		current.Options = options
		questions = append(questions, *current)
	}

	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineCapacity)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lineNo++

		switch {
		case questionStart.MatchString(line):
			_, rest, ok := strings.Cut(line, questionSep)
			if !ok {
				return nil, &ParseError{Line: lineNo, Text: line, Reason: `question line has no ". " separator`}
			}
			flush()
			current = &Question{Text: rest}
			options = []string{}

		case optionStart.MatchString(line):
			_, rest, ok := strings.Cut(line, optionSep)
			if !ok {
				return nil, &ParseError{Line: lineNo, Text: line, Reason: `option line has no ") " separator`}
			}
			options = append(options, rest)

		case strings.HasPrefix(line, answerPrefix):
			_, rest, ok := strings.Cut(line, answerSep)
			if !ok {
				return nil, &ParseError{Line: lineNo, Text: line, Reason: `answer line has no "Answer: " separator`}
			}
			if current == nil {
				continue
			}
			if _, label, found := strings.Cut(rest, optionSep); found {
				rest = label
			}
			current.CorrectAnswer = rest
			current.HasAnswer = true
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &ParseError{Line: lineNo + 1, Reason: "line too long"}
		}
		return nil, fmt.Errorf("read quiz text: %w", err)
	}
	flush()

	return questions, nil
}

// ParseQuestionSet is Parse with an empty result reported as ErrNoQuestions.
func ParseQuestionSet(text string) ([]Question, error) {
	qs, err := Parse(text)
	if err != nil {
		return nil, err
	}
	if len(qs) == 0 {
		return nil, ErrNoQuestions
	}
	return qs, nil
}

// Unscoreable lists the 1-based numbers of questions whose answer matches
// none of their options.
func Unscoreable(questions []Question) []int {
	var out []int
	for i, q := range questions {
		if !q.Scoreable() {
			out = append(out, i+1)
		}
	}
	return out
}
