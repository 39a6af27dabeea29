package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
)

// reverseSealer is a reversible stand-in for the AES sealer.
type reverseSealer struct{ failSeal, failOpen bool }

func (r reverseSealer) Seal(plain string) (string, error) {
	if r.failSeal {
		return "", errors.New("seal boom")
	}
	return "sealed:" + reverse(plain), nil
}

func (r reverseSealer) Open(sealed string) (string, error) {
	if r.failOpen || !strings.HasPrefix(sealed, "sealed:") {
		return "", errors.New("open boom")
	}
	return reverse(strings.TrimPrefix(sealed, "sealed:")), nil
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestCredentialStore(t *testing.T, sealer reverseSealer) (*sqliteCredentialStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return &sqliteCredentialStore{
		db:     &DB{DB: db, logger: l},
		sealer: sealer,
		logger: l,
		now:    func() time.Time { return fixedNow },
	}, mock
}

func TestCredentialStore_Get(t *testing.T) {
	s, mock := newTestCredentialStore(t, reverseSealer{})

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM secure_store WHERE name = ?")).
		WithArgs("api-token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("sealed:cba"))

	v, err := s.Get(context.Background(), "api-token")
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialStore_Get_NotFound(t *testing.T) {
	s, mock := newTestCredentialStore(t, reverseSealer{})

	mock.ExpectQuery("SELECT value FROM secure_store").
		WithArgs("user-id").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), "user-id")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestCredentialStore_Get_DBError(t *testing.T) {
	s, mock := newTestCredentialStore(t, reverseSealer{})

	mock.ExpectQuery("SELECT value FROM secure_store").
		WillReturnError(errors.New("disk I/O error"))

	_, err := s.Get(context.Background(), "user-id")
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
}

func TestCredentialStore_Get_OpenFails(t *testing.T) {
	s, mock := newTestCredentialStore(t, reverseSealer{failOpen: true})

	mock.ExpectQuery("SELECT value FROM secure_store").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("garbage"))

	_, err := s.Get(context.Background(), "api-token")
	assert.ErrorIs(t, err, ErrSealing)
}

func TestCredentialStore_Set(t *testing.T) {
	s, mock := newTestCredentialStore(t, reverseSealer{})

	mock.ExpectExec("INSERT INTO secure_store").
		WithArgs("user-id", "sealed:24", fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), "user-id", "42"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialStore_Set_SealFails(t *testing.T) {
	s, mock := newTestCredentialStore(t, reverseSealer{failSeal: true})

	err := s.Set(context.Background(), "user-id", "42")
	assert.ErrorIs(t, err, ErrSealing)
	// nothing reaches the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialStore_Set_ExecFails(t *testing.T) {
	s, mock := newTestCredentialStore(t, reverseSealer{})

	mock.ExpectExec("INSERT INTO secure_store").
		WillReturnError(errors.New("database is locked"))

	err := s.Set(context.Background(), "user-id", "42")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestCredentialStore_Delete(t *testing.T) {
	s, mock := newTestCredentialStore(t, reverseSealer{})

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM secure_store WHERE name = ?")).
		WithArgs("api-token").
		WillReturnResult(sqlmock.NewResult(0, 0))

	// zero affected rows is still success
	require.NoError(t, s.Delete(context.Background(), "api-token"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialStore_Delete_ExecFails(t *testing.T) {
	s, mock := newTestCredentialStore(t, reverseSealer{})

	mock.ExpectExec("DELETE FROM secure_store").
		WillReturnError(errors.New("readonly database"))

	err := s.Delete(context.Background(), "api-token")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
