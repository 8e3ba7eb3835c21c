package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Massi21022535/Asistencia-Back/internal/models"
	appErrors "github.com/Massi21022535/Asistencia-Back/pkg/errors"
)

type sessionStoreMock struct {
	sessions  map[string]*models.Session
	createErr error
	deleteErr error
}

func (m *sessionStoreMock) Create(ctx context.Context, session *models.Session) error {
	if m.createErr != nil {
		return m.createErr
	}
	if session.ID == "" {
		session.ID = "sess-generated"
	}
	if m.sessions == nil {
		m.sessions = make(map[string]*models.Session)
	}
	m.sessions[session.ID] = session
	return nil
}

func (m *sessionStoreMock) FindByID(ctx context.Context, id string) (*models.Session, error) {
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, sql.ErrNoRows
}

func (m *sessionStoreMock) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	for _, s := range m.sessions {
		if s.Token != nil && *s.Token == token {
			return s, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *sessionStoreMock) ListByGroup(ctx context.Context, groupID string) ([]models.Session, error) {
	var out []models.Session
	for _, s := range m.sessions {
		if s.GroupID == groupID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *sessionStoreMock) DeleteInGroup(ctx context.Context, sessionID, groupID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	s, ok := m.sessions[sessionID]
	if !ok || s.GroupID != groupID {
		return sql.ErrNoRows
	}
	delete(m.sessions, sessionID)
	return nil
}

func newSessionFixture() (*SessionService, *sessionStoreMock) {
	store := &sessionStoreMock{sessions: make(map[string]*models.Session)}
	assignments := &assignmentCheckerMock{assigned: map[string]bool{"teacher-1/group-1": true}}
	svc := NewSessionService(store, assignments, validator.New(), zap.NewNop(), "http://localhost:3001/")
	return svc, store
}

func TestSessionServiceOpenTokenMode(t *testing.T) {
	svc, store := newSessionFixture()

	result, err := svc.Open(context.Background(), "teacher-1", "group-1", OpenSessionRequest{Mode: "token"})
	require.NoError(t, err)
	require.NotNil(t, result.Session.Token)
	require.NotNil(t, result.RedemptionLink)
	assert.Contains(t, *result.RedemptionLink, "http://localhost:3001/asistencia?token=")
	assert.Contains(t, *result.RedemptionLink, *result.Session.Token)
	assert.Len(t, store.sessions, 1)
}

func TestSessionServiceOpenManualMode(t *testing.T) {
	svc, _ := newSessionFixture()

	result, err := svc.Open(context.Background(), "teacher-1", "group-1", OpenSessionRequest{Mode: "manual"})
	require.NoError(t, err)
	assert.Nil(t, result.Session.Token)
	assert.Nil(t, result.RedemptionLink)
}

func TestSessionServiceOpenTokensUnique(t *testing.T) {
	svc, _ := newSessionFixture()

	first, err := svc.Open(context.Background(), "teacher-1", "group-1", OpenSessionRequest{Mode: "token"})
	require.NoError(t, err)
	second, err := svc.Open(context.Background(), "teacher-1", "group-1", OpenSessionRequest{Mode: "token"})
	require.NoError(t, err)
	assert.NotEqual(t, *first.Session.Token, *second.Session.Token)
}

func TestSessionServiceOpenInvalidMode(t *testing.T) {
	svc, _ := newSessionFixture()

	_, err := svc.Open(context.Background(), "teacher-1", "group-1", OpenSessionRequest{Mode: "qr"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSessionServiceOpenForbidden(t *testing.T) {
	svc, _ := newSessionFixture()

	_, err := svc.Open(context.Background(), "teacher-2", "group-1", OpenSessionRequest{Mode: "token"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestSessionServiceDeleteNotFound(t *testing.T) {
	svc, store := newSessionFixture()
	store.sessions["sess-1"] = &models.Session{ID: "sess-1", GroupID: "group-2"}

	err := svc.Delete(context.Background(), "teacher-1", "group-1", "sess-1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	// The session in the other group is untouched.
	assert.Len(t, store.sessions, 1)
}

func TestSessionServiceDelete(t *testing.T) {
	svc, store := newSessionFixture()
	store.sessions["sess-1"] = &models.Session{ID: "sess-1", GroupID: "group-1"}

	require.NoError(t, svc.Delete(context.Background(), "teacher-1", "group-1", "sess-1"))
	assert.Empty(t, store.sessions)
}

func TestSessionServiceDeletedTokenUnresolvable(t *testing.T) {
	sessionSvc, store := newSessionFixture()
	students := &studentReaderMock{
		byDocument: map[string]*models.Student{"11222333": {ID: "stu-1", DocumentNumber: "11222333"}},
		enrolled:   map[string]bool{"11222333/group-1": true},
	}
	assignments := &assignmentCheckerMock{assigned: map[string]bool{"teacher-1/group-1": true}}
	attendanceSvc := NewAttendanceService(&presenceStoreMock{}, store, students, &enrollmentCheckerMock{}, assignments, validator.New(), zap.NewNop())

	opened, err := sessionSvc.Open(context.Background(), "teacher-1", "group-1", OpenSessionRequest{Mode: "token"})
	require.NoError(t, err)
	token := *opened.Session.Token

	require.NoError(t, attendanceSvc.MarkByToken(context.Background(), MarkByTokenRequest{Token: token, DocumentNumber: "11222333"}))

	require.NoError(t, sessionSvc.Delete(context.Background(), "teacher-1", "group-1", opened.Session.ID))

	// The token dies with the session.
	err = attendanceSvc.MarkByToken(context.Background(), MarkByTokenRequest{Token: token, DocumentNumber: "11222333"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidToken.Code, appErrors.FromError(err).Code)
}
