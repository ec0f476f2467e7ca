package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/model"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	return &PostgresStore{pool: mock}, mock
}

var assessmentColumns = []string{"id", "user_id", "answers", "profile", "matches", "config_hash", "created_at"}

func assessmentRow(t *testing.T, a *model.Assessment) []any {
	t.Helper()
	e, err := encodeAssessment(a)
	require.NoError(t, err)
	return []any{a.ID, a.UserID, e.answers, e.profile, e.matches, a.ConfigHash, a.CreatedAt}
}

func TestPostgresStore_Migrate(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS assessments`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SaveAssessment(t *testing.T) {
	s, mock := newMockPostgresStore(t)
	a := sampleAssessment("a1", "alice", 70, model.Aggressive, base)

	mock.ExpectExec(`INSERT INTO assessments .* ON CONFLICT \(id\) DO UPDATE`).
		WithArgs("a1", "alice", 70.0, "aggressive",
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), "abc123", base).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, s.SaveAssessment(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SaveAssessment_Error(t *testing.T) {
	s, mock := newMockPostgresStore(t)
	a := sampleAssessment("a1", "alice", 70, model.Aggressive, base)

	mock.ExpectExec(`INSERT INTO assessments`).
		WillReturnError(errors.New("connection reset by peer"))

	err := s.SaveAssessment(context.Background(), a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres: save assessment a1")
}

func TestPostgresStore_GetAssessment(t *testing.T) {
	s, mock := newMockPostgresStore(t)
	a := sampleAssessment("a1", "alice", 70, model.Aggressive, base)

	mock.ExpectQuery(`SELECT id, user_id, answers, profile, matches, config_hash, created_at FROM assessments WHERE id = \$1`).
		WithArgs("a1").
		WillReturnRows(pgxmock.NewRows(assessmentColumns).AddRow(assessmentRow(t, a)...))

	got, err := s.GetAssessment(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, a.Profile, got.Profile)
	assert.Equal(t, a.Answers, got.Answers)
	require.Len(t, got.Matches, 1)
	assert.Equal(t, "growth", got.Matches[0].Portfolio.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetAssessment_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT .* FROM assessments WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetAssessment(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetAssessment_BadJSON(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT .* FROM assessments`).
		WithArgs("a1").
		WillReturnRows(pgxmock.NewRows(assessmentColumns).
			AddRow("a1", "u", []byte(`{}`), []byte(`{"risk_tolerance":"reckless"}`), []byte(`[]`), "", base))

	_, err := s.GetAssessment(context.Background(), "a1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal profile")
}

func TestPostgresStore_ListAssessments(t *testing.T) {
	s, mock := newMockPostgresStore(t)
	a1 := sampleAssessment("a1", "alice", 70, model.Aggressive, base)
	a2 := sampleAssessment("a2", "alice", 45, model.Moderate, base)

	mock.ExpectQuery(`FROM assessments WHERE true AND user_id = \$1 AND tolerance = \$2 ORDER BY created_at DESC, id LIMIT \$3 OFFSET \$4`).
		WithArgs("alice", "aggressive", 10, 5).
		WillReturnRows(pgxmock.NewRows(assessmentColumns).
			AddRow(assessmentRow(t, a1)...).
			AddRow(assessmentRow(t, a2)...))

	got, err := s.ListAssessments(context.Background(), AssessmentFilter{
		UserID: "alice", Tolerance: "aggressive", Limit: 10, Offset: 5,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a1", got[0].ID)
	assert.Equal(t, "a2", got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListAssessments_DefaultLimit(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`FROM assessments WHERE true ORDER BY created_at DESC, id LIMIT \$1$`).
		WithArgs(defaultListLimit).
		WillReturnRows(pgxmock.NewRows(assessmentColumns))

	got, err := s.ListAssessments(context.Background(), AssessmentFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_DeleteAssessment(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`DELETE FROM assessments WHERE id = \$1`).
		WithArgs("a1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM assessments WHERE id = \$1`).
		WithArgs("a2").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, s.DeleteAssessment(context.Background(), "a1"))
	assert.ErrorIs(t, s.DeleteAssessment(context.Background(), "a2"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Ping(t *testing.T) {
	s, mock := newMockPostgresStore(t)
	mock.ExpectPing()
	require.NoError(t, s.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEncodedProfileIsFlatJSON(t *testing.T) {
	e, err := encodeAssessment(sampleAssessment("a1", "u", 70, model.Aggressive, base))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(e.profile, &m))
	assert.Equal(t, "aggressive", m["risk_tolerance"])
	assert.Equal(t, "long_term", m["investment_horizon"])
}
