package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Massi21022535/Asistencia-Back/internal/models"
	appErrors "github.com/Massi21022535/Asistencia-Back/pkg/errors"
)

type groupLister interface {
	ListAll(ctx context.Context) ([]models.GroupDetail, error)
}

type teacherGroupLister interface {
	Exists(ctx context.Context, teacherID, groupID string) (bool, error)
	ListGroupsByTeacher(ctx context.Context, teacherID string) ([]models.GroupDetail, error)
}

type rosterReader interface {
	ListByGroup(ctx context.Context, groupID string) ([]models.Student, error)
}

// GroupService serves group listings and rosters with role-scoped
// visibility.
type GroupService struct {
	groups      groupLister
	assignments teacherGroupLister
	students    rosterReader
	logger      *zap.Logger
}

// NewGroupService constructs the group service.
func NewGroupService(groups groupLister, assignments teacherGroupLister, students rosterReader, logger *zap.Logger) *GroupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GroupService{groups: groups, assignments: assignments, students: students, logger: logger}
}

// GroupsForTeacher lists the subject/group pairs the teacher is
// assigned to.
func (s *GroupService) GroupsForTeacher(ctx context.Context, teacherID string) ([]models.GroupDetail, error) {
	groups, err := s.assignments.ListGroupsByTeacher(ctx, teacherID)
	if err != nil {
		return nil, storeError(err, "failed to list teacher groups")
	}
	return groups, nil
}

// AllGroups lists every subject/group pair. Director visibility is
// global; no assignment check applies.
func (s *GroupService) AllGroups(ctx context.Context) ([]models.GroupDetail, error) {
	groups, err := s.groups.ListAll(ctx)
	if err != nil {
		return nil, storeError(err, "failed to list groups")
	}
	return groups, nil
}

// Roster lists the students enrolled in a group the teacher manages.
func (s *GroupService) Roster(ctx context.Context, teacherID, groupID string) ([]models.Student, error) {
	assigned, err := s.assignments.Exists(ctx, teacherID, groupID)
	if err != nil {
		return nil, storeError(err, "failed to check teaching assignment")
	}
	if !assigned {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "no teaching assignment for this group")
	}

	students, err := s.students.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, storeError(err, "failed to list students")
	}
	return students, nil
}
