package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Massi21022535/Asistencia-Back/internal/models"
	appErrors "github.com/Massi21022535/Asistencia-Back/pkg/errors"
)

type attendanceReaderMock struct {
	report []models.GroupReportRow
	detail []models.SessionDetailRow
}

func (m *attendanceReaderMock) GroupReport(ctx context.Context, groupID string) ([]models.GroupReportRow, error) {
	return m.report, nil
}

func (m *attendanceReaderMock) SessionDetail(ctx context.Context, sessionID, groupID string) ([]models.SessionDetailRow, error) {
	return m.detail, nil
}

func newReportFixture() *ReportService {
	pct := 66.67
	attendance := &attendanceReaderMock{
		report: []models.GroupReportRow{
			{StudentID: "stu-1", LastName: "Gomez", FirstNames: "Ana", PresentCount: 2, TotalSessions: 3, Percentage: &pct},
			{StudentID: "stu-2", LastName: "Perez", FirstNames: "Luis"},
		},
		detail: []models.SessionDetailRow{
			{StudentID: "stu-1", LastName: "Gomez", FirstNames: "Ana", Present: true},
		},
	}
	sessions := &sessionReaderMock{byID: map[string]*models.Session{
		"sess-1": {ID: "sess-1", GroupID: "group-1"},
	}}
	assignments := &assignmentCheckerMock{assigned: map[string]bool{"teacher-1/group-1": true}}
	return NewReportService(attendance, sessions, assignments, zap.NewNop())
}

func TestReportServiceGroupReportTeacherScoped(t *testing.T) {
	svc := newReportFixture()

	rows, err := svc.GroupReport(context.Background(), models.Identity{UserID: "teacher-1", Role: models.RoleTeacher}, "group-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 66.67, *rows[0].Percentage)
	assert.Nil(t, rows[1].Percentage)

	_, err = svc.GroupReport(context.Background(), models.Identity{UserID: "teacher-1", Role: models.RoleTeacher}, "group-2")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestReportServiceGroupReportDirectorUnrestricted(t *testing.T) {
	svc := newReportFixture()

	rows, err := svc.GroupReport(context.Background(), models.Identity{UserID: "dir-1", Role: models.RoleDirector}, "group-2")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestReportServiceGroupReportUnknownRole(t *testing.T) {
	svc := newReportFixture()

	_, err := svc.GroupReport(context.Background(), models.Identity{UserID: "x", Role: "STUDENT"}, "group-1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestReportServiceSessionDetail(t *testing.T) {
	svc := newReportFixture()

	rows, err := svc.SessionDetail(context.Background(), models.Identity{UserID: "teacher-1", Role: models.RoleTeacher}, "sess-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Present)
}

func TestReportServiceSessionDetailNotFound(t *testing.T) {
	svc := newReportFixture()

	_, err := svc.SessionDetail(context.Background(), models.Identity{UserID: "dir-1", Role: models.RoleDirector}, "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestReportServiceSessionDetailTeacherForeignGroup(t *testing.T) {
	svc := newReportFixture()

	_, err := svc.SessionDetail(context.Background(), models.Identity{UserID: "teacher-2", Role: models.RoleTeacher}, "sess-1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}
