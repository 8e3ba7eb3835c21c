package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTeachingAssignmentMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestTeachingAssignmentRepositoryExists(t *testing.T) {
	db, mock, cleanup := newTeachingAssignmentMock(t)
	defer cleanup()
	repo := NewTeachingAssignmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1 FROM teaching_assignments WHERE teacher_id = $1 AND group_id = $2 LIMIT 1`)).
		WithArgs("teacher-1", "group-1").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), "teacher-1", "group-1")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1 FROM teaching_assignments WHERE teacher_id = $1 AND group_id = $2 LIMIT 1`)).
		WithArgs("teacher-1", "group-2").
		WillReturnError(sql.ErrNoRows)

	exists, err = repo.Exists(context.Background(), "teacher-1", "group-2")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeachingAssignmentRepositoryListGroupsByTeacher(t *testing.T) {
	db, mock, cleanup := newTeachingAssignmentMock(t)
	defer cleanup()
	repo := NewTeachingAssignmentRepository(db)

	rows := sqlmock.NewRows([]string{"subject_id", "subject_name", "group_id", "group_name"}).
		AddRow("sub-1", "Matematica", "group-1", "1A").
		AddRow("sub-1", "Matematica", "group-2", "1B")
	mock.ExpectQuery(regexp.QuoteMeta(`
SELECT sub.id AS subject_id, sub.name AS subject_name, g.id AS group_id, g.name AS group_name
FROM teaching_assignments ta
JOIN groups g ON g.id = ta.group_id
JOIN subjects sub ON sub.id = g.subject_id
WHERE ta.teacher_id = $1
ORDER BY sub.name ASC, g.name ASC`)).
		WithArgs("teacher-1").
		WillReturnRows(rows)

	groups, err := repo.ListGroupsByTeacher(context.Background(), "teacher-1")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "1A", groups[0].GroupName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
