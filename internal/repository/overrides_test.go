package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stpnv0/TalkWave/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

const (
	selectQuery = `SELECT value FROM overrides WHERE key=\$1`
	upsertQuery = `INSERT INTO overrides`
)

func newOverrideRepo(t *testing.T) (*OverrideRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewOverrideRepo(&dbpg.DB{Master: db}), mock
}

func valueRow(value string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"value"}).AddRow(value)
}

func noRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"value"})
}

// --- hidden events ---

func TestOverrideRepo_HiddenEventIDs(t *testing.T) {
	repo, mock := newOverrideRepo(t)

	mock.ExpectQuery(selectQuery).WithArgs(keyHiddenEvents).
		WillReturnRows(valueRow(`["a","b"]`))

	assert.Equal(t, []string{"a", "b"}, repo.HiddenEventIDs(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOverrideRepo_HiddenEventIDs_MissingKey(t *testing.T) {
	repo, mock := newOverrideRepo(t)

	mock.ExpectQuery(selectQuery).WithArgs(keyHiddenEvents).WillReturnRows(noRows())

	assert.Empty(t, repo.HiddenEventIDs(context.Background()))
}

func TestOverrideRepo_HiddenEventIDs_CorruptValueFailsSoft(t *testing.T) {
	repo, mock := newOverrideRepo(t)

	mock.ExpectQuery(selectQuery).WithArgs(keyHiddenEvents).
		WillReturnRows(valueRow(`{definitely not a json array`))

	assert.Empty(t, repo.HiddenEventIDs(context.Background()))
}

func TestOverrideRepo_HideEvent_AppendsToSet(t *testing.T) {
	repo, mock := newOverrideRepo(t)

	mock.ExpectQuery(selectQuery).WithArgs(keyHiddenEvents).
		WillReturnRows(valueRow(`["a"]`))
	mock.ExpectExec(upsertQuery).
		WithArgs(keyHiddenEvents, `["a","b"]`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.HideEvent(context.Background(), "b"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOverrideRepo_HideEvent_DuplicateIsNoop(t *testing.T) {
	repo, mock := newOverrideRepo(t)

	mock.ExpectQuery(selectQuery).WithArgs(keyHiddenEvents).
		WillReturnRows(valueRow(`["a"]`))

	// no write expected
	require.NoError(t, repo.HideEvent(context.Background(), "a"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOverrideRepo_UnhideEvent(t *testing.T) {
	repo, mock := newOverrideRepo(t)

	mock.ExpectQuery(selectQuery).WithArgs(keyHiddenEvents).
		WillReturnRows(valueRow(`["a","b"]`))
	mock.ExpectExec(upsertQuery).
		WithArgs(keyHiddenEvents, `["b"]`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UnhideEvent(context.Background(), "a"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOverrideRepo_UnhideEvent_LastEntryWritesEmptySet(t *testing.T) {
	repo, mock := newOverrideRepo(t)

	mock.ExpectQuery(selectQuery).WithArgs(keyHiddenEvents).
		WillReturnRows(valueRow(`["a"]`))
	mock.ExpectExec(upsertQuery).
		WithArgs(keyHiddenEvents, `[]`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UnhideEvent(context.Background(), "a"))
	require.NoError(t, mock.ExpectationsWereMet())
}

// --- user profile ---

func TestOverrideRepo_UserProfileRoundTrip(t *testing.T) {
	repo, mock := newOverrideRepo(t)

	stored := `{"name":"Alice","bio":"Go developer"}`
	mock.ExpectExec(upsertQuery).
		WithArgs(keyUserProfile, stored, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(selectQuery).WithArgs(keyUserProfile).
		WillReturnRows(valueRow(stored))

	profile := domain.UserProfile{Name: "Alice", Bio: "Go developer"}
	require.NoError(t, repo.SaveUserProfile(context.Background(), profile))

	assert.Equal(t, profile, repo.UserProfile(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOverrideRepo_UserProfileRoundTrip_EmptyStrings(t *testing.T) {
	repo, mock := newOverrideRepo(t)

	stored := `{"name":"","bio":""}`
	mock.ExpectExec(upsertQuery).
		WithArgs(keyUserProfile, stored, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(selectQuery).WithArgs(keyUserProfile).
		WillReturnRows(valueRow(stored))

	require.NoError(t, repo.SaveUserProfile(context.Background(), domain.UserProfile{}))

	assert.Equal(t, domain.UserProfile{}, repo.UserProfile(context.Background()))
}

func TestOverrideRepo_UserProfile_MissingYieldsEmpty(t *testing.T) {
	repo, mock := newOverrideRepo(t)

	mock.ExpectQuery(selectQuery).WithArgs(keyUserProfile).WillReturnRows(noRows())

	assert.Equal(t, domain.UserProfile{}, repo.UserProfile(context.Background()))
}

func TestOverrideRepo_UserProfile_CorruptValueFailsSoft(t *testing.T) {
	repo, mock := newOverrideRepo(t)

	mock.ExpectQuery(selectQuery).WithArgs(keyUserProfile).
		WillReturnRows(valueRow(`not a profile`))

	assert.Equal(t, domain.UserProfile{}, repo.UserProfile(context.Background()))
}

// --- api key ---

func TestOverrideRepo_APIKeyRoundTrip(t *testing.T) {
	repo, mock := newOverrideRepo(t)

	mock.ExpectExec(upsertQuery).
		WithArgs(keyAPIKey, "sk-local", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(selectQuery).WithArgs(keyAPIKey).
		WillReturnRows(valueRow("sk-local"))

	require.NoError(t, repo.SaveAPIKey(context.Background(), "sk-local"))
	assert.Equal(t, "sk-local", repo.APIKey(context.Background()))
}

func TestOverrideRepo_HasAPIKey(t *testing.T) {
	repo, mock := newOverrideRepo(t)

	mock.ExpectQuery(selectQuery).WithArgs(keyAPIKey).
		WillReturnRows(valueRow("sk-local"))

	assert.True(t, repo.HasAPIKey(context.Background()))
}

func TestOverrideRepo_HasAPIKey_MissingOrEmpty(t *testing.T) {
	repo, mock := newOverrideRepo(t)

	mock.ExpectQuery(selectQuery).WithArgs(keyAPIKey).WillReturnRows(noRows())
	mock.ExpectQuery(selectQuery).WithArgs(keyAPIKey).WillReturnRows(valueRow(""))

	assert.False(t, repo.HasAPIKey(context.Background()))
	assert.False(t, repo.HasAPIKey(context.Background()))
}
