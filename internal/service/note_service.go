package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Massi21022535/Asistencia-Back/internal/models"
	appErrors "github.com/Massi21022535/Asistencia-Back/pkg/errors"
)

type noteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	ListByStudentGroup(ctx context.Context, studentID, groupID string) ([]models.Note, error)
}

// CreateNoteRequest is the payload for recording a note.
type CreateNoteRequest struct {
	Title string `json:"title" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// NoteService manages append-only annotations on students.
type NoteService struct {
	notes       noteRepository
	assignments assignmentChecker
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewNoteService constructs the note service.
func NewNoteService(notes noteRepository, assignments assignmentChecker, validate *validator.Validate, logger *zap.Logger) *NoteService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoteService{notes: notes, assignments: assignments, validator: validate, logger: logger}
}

// Create records a note for a student within a group the teacher
// manages.
func (s *NoteService) Create(ctx context.Context, teacherID, groupID, studentID string, req CreateNoteRequest) (*models.Note, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid note payload")
	}

	if err := s.requireAssignment(ctx, teacherID, groupID); err != nil {
		return nil, err
	}

	note := &models.Note{
		StudentID: studentID,
		GroupID:   groupID,
		Title:     req.Title,
		Value:     req.Value,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, storeError(err, "failed to create note")
	}
	return note, nil
}

// List returns a student's notes within a group, newest first.
func (s *NoteService) List(ctx context.Context, teacherID, groupID, studentID string) ([]models.Note, error) {
	if err := s.requireAssignment(ctx, teacherID, groupID); err != nil {
		return nil, err
	}

	notes, err := s.notes.ListByStudentGroup(ctx, studentID, groupID)
	if err != nil {
		return nil, storeError(err, "failed to list notes")
	}
	return notes, nil
}

func (s *NoteService) requireAssignment(ctx context.Context, teacherID, groupID string) error {
	assigned, err := s.assignments.Exists(ctx, teacherID, groupID)
	if err != nil {
		return storeError(err, "failed to check teaching assignment")
	}
	if !assigned {
		return appErrors.Clone(appErrors.ErrForbidden, "no teaching assignment for this group")
	}
	return nil
}
