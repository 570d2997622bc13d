package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	dom "github.com/Pedroxsbai/TODOAPP/internal/domain"
	"github.com/Pedroxsbai/TODOAPP/internal/repo"
	"github.com/Pedroxsbai/TODOAPP/internal/session"

	"golang.org/x/sync/singleflight"
)

var ErrInvalidTask = errors.New("invalid task")

// ValidationError carries one message per rejected form field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%v: %s", ErrInvalidTask, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidTask }

// NewTaskInput is an add-task submission after form binding.
type NewTaskInput struct {
	Label       string
	Description string
	DueDate     *dom.Date
	Status      dom.Status
}

type TaskService struct {
	repo repo.TaskRepo
	sf   singleflight.Group
}

func NewTaskService(r repo.TaskRepo) *TaskService {
	return &TaskService{repo: r}
}

func listKey(sess *session.Session) string { return "list:" + sess.ID }

// List returns the session's tasks. Concurrent reads of one session share a
// single store round trip, which is not tied to any one caller's context.
func (s *TaskService) List(ctx context.Context, sess *session.Session) (dom.TaskList, error) {
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(listKey(sess), func() (interface{}, error) {
		return s.repo.GetAll(shared, sess)
	})
	if err != nil {
		return nil, err
	}
	return v.(dom.TaskList), nil
}

// Add validates in and appends it. A *ValidationError means nothing was stored.
func (s *TaskService) Add(ctx context.Context, sess *session.Session, in NewTaskInput) (dom.Task, error) {
	t, err := ValidateTask(in)
	if err != nil {
		return dom.Task{}, err
	}
	if err := s.repo.Add(ctx, sess, t); err != nil {
		return dom.Task{}, err
	}
	// Reads already in flight started before the write; later ones must not join them.
	s.sf.Forget(listKey(sess))
	return t, nil
}

// ValidateTask trims text fields and defaults an empty status to Todo.
func ValidateTask(in NewTaskInput) (dom.Task, error) {
	t := dom.Task{
		Label:       strings.TrimSpace(in.Label),
		Description: strings.TrimSpace(in.Description),
		DueDate:     in.DueDate,
		Status:      in.Status,
	}
	if t.Status == "" {
		t.Status = dom.StatusTodo
	}

	fields := map[string]string{}
	if t.Label == "" {
		fields["label"] = "label is required"
	}
	if t.Description == "" {
		fields["description"] = "description is required"
	}
	if !t.Status.Valid() {
		fields["status"] = dom.ErrInvalidStatus.Error()
	}
	if len(fields) > 0 {
		return dom.Task{}, &ValidationError{Fields: fields}
	}
	return t, nil
}
