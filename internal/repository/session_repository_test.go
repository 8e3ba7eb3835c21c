package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Massi21022535/Asistencia-Back/internal/models"
)

func newSessionMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestSessionRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newSessionMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	mock.ExpectExec("INSERT INTO sessions").
		WillReturnResult(sqlmock.NewResult(1, 1))

	token := "tok-1"
	session := &models.Session{GroupID: "group-1", Token: &token}
	require.NoError(t, repo.Create(context.Background(), session))
	assert.NotEmpty(t, session.ID)
	assert.False(t, session.OpenedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryFindByToken(t *testing.T) {
	db, mock, cleanup := newSessionMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	rows := sqlmock.NewRows([]string{"id", "group_id", "opened_at", "token", "note", "created_at"}).
		AddRow("sess-1", "group-1", time.Now(), "tok-1", nil, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, group_id, opened_at, token, note, created_at FROM sessions WHERE token = $1`)).
		WithArgs("tok-1").
		WillReturnRows(rows)

	session, err := repo.FindByToken(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", session.ID)
	require.NotNil(t, session.Token)
	assert.Equal(t, "tok-1", *session.Token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryFindByTokenMissing(t *testing.T) {
	db, mock, cleanup := newSessionMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, group_id, opened_at, token, note, created_at FROM sessions WHERE token = $1`)).
		WithArgs("unknown").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByToken(context.Background(), "unknown")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryListByGroup(t *testing.T) {
	db, mock, cleanup := newSessionMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	rows := sqlmock.NewRows([]string{"id", "group_id", "opened_at", "token", "note", "created_at"}).
		AddRow("sess-2", "group-1", time.Now(), nil, "recuperatorio", time.Now()).
		AddRow("sess-1", "group-1", time.Now().Add(-24*time.Hour), "tok-1", nil, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, group_id, opened_at, token, note, created_at
FROM sessions WHERE group_id = $1 ORDER BY opened_at DESC`)).
		WithArgs("group-1").
		WillReturnRows(rows)

	sessions, err := repo.ListByGroup(context.Background(), "group-1")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "sess-2", sessions[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryDeleteInGroup(t *testing.T) {
	db, mock, cleanup := newSessionMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM sessions WHERE id = $1 AND group_id = $2`)).
		WithArgs("sess-1", "group-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteInGroup(context.Background(), "sess-1", "group-1"))

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM sessions WHERE id = $1 AND group_id = $2`)).
		WithArgs("sess-1", "group-2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteInGroup(context.Background(), "sess-1", "group-2")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
