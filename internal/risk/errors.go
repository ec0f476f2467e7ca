package risk

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// Sentinel answer errors. Match with errors.Is.
var (
	ErrMissingAnswer      = eris.New("risk: missing answer")
	ErrInvalidAnswerValue = eris.New("risk: invalid answer value")
	ErrUnknownQuestion    = eris.New("risk: unknown question")
)

// AnswerError reports which question an answer error belongs to.
type AnswerError struct {
	QuestionID string
	Value      int
	Err        error
}

func (e *AnswerError) Error() string {
	switch e.Err {
	case ErrMissingAnswer:
		return fmt.Sprintf("risk: missing answer for %q", e.QuestionID)
	case ErrInvalidAnswerValue:
		return fmt.Sprintf("risk: invalid answer %d for %q", e.Value, e.QuestionID)
	case ErrUnknownQuestion:
		return fmt.Sprintf("risk: unknown question %q", e.QuestionID)
	}
	return fmt.Sprintf("risk: question %q: %v", e.QuestionID, e.Err)
}

func (e *AnswerError) Unwrap() error { return e.Err }
