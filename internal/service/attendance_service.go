package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Massi21022535/Asistencia-Back/internal/models"
	appErrors "github.com/Massi21022535/Asistencia-Back/pkg/errors"
)

type presenceRepository interface {
	Insert(ctx context.Context, studentID, sessionID string) (bool, error)
}

type sessionReader interface {
	FindByID(ctx context.Context, id string) (*models.Session, error)
	FindByToken(ctx context.Context, token string) (*models.Session, error)
}

type studentReader interface {
	FindByDocument(ctx context.Context, documentNumber string) (*models.Student, error)
	FindEnrolledByDocument(ctx context.Context, documentNumber, groupID string) (*models.Student, error)
}

type enrollmentChecker interface {
	IsEnrolled(ctx context.Context, studentID, groupID string) (bool, error)
}

// MarkByTokenRequest is the self-service marking payload.
type MarkByTokenRequest struct {
	Token          string `json:"token" validate:"required"`
	DocumentNumber string `json:"document_number" validate:"required"`
}

// BulkMarkRequest carries the IDs of students to mark present.
type BulkMarkRequest struct {
	StudentIDs []string `json:"student_ids" validate:"required,min=1"`
}

// AttendanceService is the attendance ledger: it records presence via
// the self-service token path and the manual bulk path. Both paths
// are idempotent.
type AttendanceService struct {
	presence    presenceRepository
	sessions    sessionReader
	students    studentReader
	enrollments enrollmentChecker
	assignments assignmentChecker
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(presence presenceRepository, sessions sessionReader, students studentReader, enrollments enrollmentChecker, assignments assignmentChecker, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{
		presence:    presence,
		sessions:    sessions,
		students:    students,
		enrollments: enrollments,
		assignments: assignments,
		validator:   validate,
		logger:      logger,
	}
}

// MarkByToken resolves a redemption token and records presence for
// the student owning the document number. Marking twice succeeds both
// times and leaves exactly one record. Unknown documents and
// unenrolled students get the same answer so callers cannot probe the
// student roster.
func (s *AttendanceService) MarkByToken(ctx context.Context, req MarkByTokenRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid marking payload")
	}

	session, err := s.sessions.FindByToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrInvalidToken, "")
		}
		return storeError(err, "failed to resolve token")
	}

	student, err := s.students.FindEnrolledByDocument(ctx, req.DocumentNumber, session.GroupID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, lookupErr := s.students.FindByDocument(ctx, req.DocumentNumber); lookupErr != nil {
				s.logger.Debug("mark rejected: unknown document", zap.String("session_id", session.ID))
			} else {
				s.logger.Debug("mark rejected: student not enrolled", zap.String("session_id", session.ID))
			}
			return appErrors.Clone(appErrors.ErrNotEnrolled, "")
		}
		return storeError(err, "failed to resolve student")
	}

	inserted, err := s.presence.Insert(ctx, student.ID, session.ID)
	if err != nil {
		return storeError(err, "failed to record presence")
	}

	s.logger.Info("presence marked",
		zap.String("session_id", session.ID),
		zap.String("student_id", student.ID),
		zap.Bool("duplicate", !inserted),
	)
	return nil
}

// MarkBulk records presence for a set of students in one session.
// Rows for unknown or unenrolled students are skipped, never aborting
// the batch; existing marks are left untouched (the call is additive,
// not a replace-set).
func (s *AttendanceService) MarkBulk(ctx context.Context, teacherID, groupID, sessionID string, req BulkMarkRequest) (*models.BulkMarkResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid bulk marking payload")
	}

	assigned, err := s.assignments.Exists(ctx, teacherID, groupID)
	if err != nil {
		return nil, storeError(err, "failed to check teaching assignment")
	}
	if !assigned {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "no teaching assignment for this group")
	}

	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found")
		}
		return nil, storeError(err, "failed to fetch session")
	}
	if session.GroupID != groupID {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found in this group")
	}

	result := &models.BulkMarkResult{Requested: len(req.StudentIDs)}
	for _, studentID := range req.StudentIDs {
		enrolled, err := s.enrollments.IsEnrolled(ctx, studentID, groupID)
		if err != nil {
			s.logger.Warn("bulk mark: enrollment check failed, skipping row",
				zap.String("student_id", studentID), zap.Error(err))
			result.Skipped++
			continue
		}
		if !enrolled {
			result.Skipped++
			continue
		}
		if _, err := s.presence.Insert(ctx, studentID, session.ID); err != nil {
			s.logger.Warn("bulk mark: insert failed, skipping row",
				zap.String("student_id", studentID), zap.Error(err))
			result.Skipped++
			continue
		}
		result.Marked++
	}

	s.logger.Info("bulk presence marked",
		zap.String("session_id", session.ID),
		zap.Int("requested", result.Requested),
		zap.Int("marked", result.Marked),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}
