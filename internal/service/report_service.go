package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/Massi21022535/Asistencia-Back/internal/models"
	appErrors "github.com/Massi21022535/Asistencia-Back/pkg/errors"
)

type attendanceReader interface {
	GroupReport(ctx context.Context, groupID string) ([]models.GroupReportRow, error)
	SessionDetail(ctx context.Context, sessionID, groupID string) ([]models.SessionDetailRow, error)
}

type sessionFinder interface {
	FindByID(ctx context.Context, id string) (*models.Session, error)
}

// ReportService is the aggregation engine. Reports are recomputed
// from store state on every query; nothing is cached.
type ReportService struct {
	attendance  attendanceReader
	sessions    sessionFinder
	assignments assignmentChecker
	logger      *zap.Logger
}

// NewReportService constructs the report service.
func NewReportService(attendance attendanceReader, sessions sessionFinder, assignments assignmentChecker, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{attendance: attendance, sessions: sessions, assignments: assignments, logger: logger}
}

// GroupReport returns per-student attendance percentages for a group.
// Directors see any group; teachers only groups they are assigned to.
func (s *ReportService) GroupReport(ctx context.Context, actor models.Identity, groupID string) ([]models.GroupReportRow, error) {
	if err := s.authorizeGroup(ctx, actor, groupID); err != nil {
		return nil, err
	}

	rows, err := s.attendance.GroupReport(ctx, groupID)
	if err != nil {
		return nil, storeError(err, "failed to compute attendance report")
	}
	return rows, nil
}

// SessionDetail lists the session's roster with presence flags,
// applying the same group-scoped authorization.
func (s *ReportService) SessionDetail(ctx context.Context, actor models.Identity, sessionID string) ([]models.SessionDetailRow, error) {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found")
		}
		return nil, storeError(err, "failed to fetch session")
	}

	if err := s.authorizeGroup(ctx, actor, session.GroupID); err != nil {
		return nil, err
	}

	rows, err := s.attendance.SessionDetail(ctx, sessionID, session.GroupID)
	if err != nil {
		return nil, storeError(err, "failed to compute session detail")
	}
	return rows, nil
}

func (s *ReportService) authorizeGroup(ctx context.Context, actor models.Identity, groupID string) error {
	switch actor.Role {
	case models.RoleDirector:
		return nil
	case models.RoleTeacher:
		assigned, err := s.assignments.Exists(ctx, actor.UserID, groupID)
		if err != nil {
			return storeError(err, "failed to check teaching assignment")
		}
		if !assigned {
			return appErrors.Clone(appErrors.ErrForbidden, "no teaching assignment for this group")
		}
		return nil
	default:
		return appErrors.Clone(appErrors.ErrForbidden, "")
	}
}
