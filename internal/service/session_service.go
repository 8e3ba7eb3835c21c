package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Massi21022535/Asistencia-Back/internal/models"
	appErrors "github.com/Massi21022535/Asistencia-Back/pkg/errors"
)

type sessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	FindByID(ctx context.Context, id string) (*models.Session, error)
	ListByGroup(ctx context.Context, groupID string) ([]models.Session, error)
	DeleteInGroup(ctx context.Context, sessionID, groupID string) error
}

type assignmentChecker interface {
	Exists(ctx context.Context, teacherID, groupID string) (bool, error)
}

// OpenSessionRequest describes the payload for opening a session.
type OpenSessionRequest struct {
	Mode string  `json:"mode" validate:"required,session_mode"`
	Note *string `json:"note"`
}

// SessionService opens, lists and deletes class sessions and issues
// their redemption tokens.
type SessionService struct {
	sessions    sessionRepository
	assignments assignmentChecker
	validator   *validator.Validate
	logger      *zap.Logger
	frontendURL string
}

// NewSessionService constructs the session service.
func NewSessionService(sessions sessionRepository, assignments assignmentChecker, validate *validator.Validate, logger *zap.Logger, frontendURL string) *SessionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &SessionService{
		sessions:    sessions,
		assignments: assignments,
		validator:   validate,
		logger:      logger,
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}
	// The tag lands on the caller's validator, which main shares
	// across services; a repeat registration replaces the function.
	if err := svc.validator.RegisterValidation("session_mode", func(fl validator.FieldLevel) bool {
		return models.SessionMode(strings.ToLower(fl.Field().String())).Valid()
	}); err != nil {
		svc.logger.Warn("failed to register session_mode validation", zap.Error(err))
	}
	return svc
}

// Open creates a session for the group. Token mode draws the token
// from the uuid v4 space (122 random bits), which keeps collision
// probability negligible across all sessions ever issued. The token
// stays redeemable until the session is deleted.
func (s *SessionService) Open(ctx context.Context, teacherID, groupID string, req OpenSessionRequest) (*models.OpenSessionResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid session payload")
	}

	if err := s.requireAssignment(ctx, teacherID, groupID); err != nil {
		return nil, err
	}

	session := &models.Session{GroupID: groupID, Note: req.Note}

	var link *string
	if models.SessionMode(strings.ToLower(req.Mode)) == models.SessionModeToken {
		token := uuid.NewString()
		session.Token = &token
		url := fmt.Sprintf("%s/asistencia?token=%s", s.frontendURL, token)
		link = &url
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, storeError(err, "failed to create session")
	}

	s.logger.Info("session opened",
		zap.String("session_id", session.ID),
		zap.String("group_id", groupID),
		zap.Bool("token_mode", session.Token != nil),
	)

	return &models.OpenSessionResult{Session: *session, RedemptionLink: link}, nil
}

// List returns the group's sessions, newest first.
func (s *SessionService) List(ctx context.Context, teacherID, groupID string) ([]models.Session, error) {
	if err := s.requireAssignment(ctx, teacherID, groupID); err != nil {
		return nil, err
	}

	sessions, err := s.sessions.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, storeError(err, "failed to list sessions")
	}
	return sessions, nil
}

// Delete removes a session and, via cascade, its presence records.
// The session must belong to the group or NotFound is returned.
func (s *SessionService) Delete(ctx context.Context, teacherID, groupID, sessionID string) error {
	if err := s.requireAssignment(ctx, teacherID, groupID); err != nil {
		return err
	}

	if err := s.sessions.DeleteInGroup(ctx, sessionID, groupID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "session not found in this group")
		}
		return storeError(err, "failed to delete session")
	}

	s.logger.Info("session deleted", zap.String("session_id", sessionID), zap.String("group_id", groupID))
	return nil
}

func (s *SessionService) requireAssignment(ctx context.Context, teacherID, groupID string) error {
	assigned, err := s.assignments.Exists(ctx, teacherID, groupID)
	if err != nil {
		return storeError(err, "failed to check teaching assignment")
	}
	if !assigned {
		return appErrors.Clone(appErrors.ErrForbidden, "no teaching assignment for this group")
	}
	return nil
}
