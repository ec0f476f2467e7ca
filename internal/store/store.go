// Package store persists completed assessments.
package store

import (
	"context"
	"encoding/json"

	"github.com/rotisserie/eris"

	"github.com/sells-group/advisor-cli/internal/model"
)

// ErrNotFound is returned when an assessment ID does not exist.
var ErrNotFound = eris.New("store: assessment not found")

// AssessmentFilter specifies criteria for listing assessments.
type AssessmentFilter struct {
	UserID    string `json:"user_id,omitempty"`
	Tolerance string `json:"risk_tolerance,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

const defaultListLimit = 100

func (f AssessmentFilter) limit() int {
	if f.Limit <= 0 {
		return defaultListLimit
	}
	return f.Limit
}

// Store defines the persistence interface for assessment history.
type Store interface {
	SaveAssessment(ctx context.Context, a *model.Assessment) error
	GetAssessment(ctx context.Context, id string) (*model.Assessment, error)
	// ListAssessments returns matching assessments, newest first.
	ListAssessments(ctx context.Context, filter AssessmentFilter) ([]model.Assessment, error)
	DeleteAssessment(ctx context.Context, id string) error

	Migrate(ctx context.Context) error
	Close() error
}

// encoded holds the JSON columns of an assessment row.
type encoded struct {
	answers, profile, matches []byte
}

func encodeAssessment(a *model.Assessment) (encoded, error) {
	var e encoded
	var err error
	if a.ID == "" {
		return e, eris.New("store: assessment id is required")
	}
	if e.answers, err = json.Marshal(a.Answers); err != nil {
		return e, eris.Wrap(err, "store: marshal answers")
	}
	if e.profile, err = json.Marshal(a.Profile); err != nil {
		return e, eris.Wrap(err, "store: marshal profile")
	}
	matches := a.Matches
	if matches == nil {
		matches = []model.SuitabilityResult{}
	}
	if e.matches, err = json.Marshal(matches); err != nil {
		return e, eris.Wrap(err, "store: marshal matches")
	}
	return e, nil
}

func decodeAssessment(a *model.Assessment, e encoded) error {
	if err := json.Unmarshal(e.answers, &a.Answers); err != nil {
		return eris.Wrap(err, "store: unmarshal answers")
	}
	if err := json.Unmarshal(e.profile, &a.Profile); err != nil {
		return eris.Wrap(err, "store: unmarshal profile")
	}
	if err := json.Unmarshal(e.matches, &a.Matches); err != nil {
		return eris.Wrap(err, "store: unmarshal matches")
	}
	return nil
}
