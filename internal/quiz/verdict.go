package quiz

import "encoding/json"

type Verdict int

const (
	VerdictNeedsImprovement Verdict = iota
	VerdictGood
	VerdictExcellent
)

// Classify bands a final score. The 70% threshold uses integer math so
// exactly 7 of 10 is good.
func Classify(score, total int) Verdict {
	switch {
	case score == total:
		return VerdictExcellent
	case score*10 >= total*7:
		return VerdictGood
	default:
		return VerdictNeedsImprovement
	}
}

func (v Verdict) String() string {
	switch v {
	case VerdictExcellent:
		return "excellent"
	case VerdictGood:
		return "good"
	default:
		return "needs improvement"
	}
}

// Class is the CSS class used by the report page.
func (v Verdict) Class() string {
	switch v {
	case VerdictExcellent:
		return "excellent"
	case VerdictGood:
		return "good"
	default:
		return "needs-improvement"
	}
}

func (v Verdict) Message() string {
	switch v {
	case VerdictExcellent:
		return "Excellent! Perfect score!"
	case VerdictGood:
		return "Good job! Keep it up!"
	default:
		return "Keep practicing, you'll improve!"
	}
}

func (v Verdict) MarshalJSON() ([]byte, error) { return json.Marshal(v.String()) }
