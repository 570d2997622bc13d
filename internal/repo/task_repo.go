package repo

import (
	"context"
	"encoding/json"

	dom "github.com/Pedroxsbai/TODOAPP/internal/domain"
	"github.com/Pedroxsbai/TODOAPP/internal/session"
)

// TaskRepo reads and writes the task list of one session.
type TaskRepo interface {
	GetAll(ctx context.Context, sess *session.Session) (dom.TaskList, error)
	Add(ctx context.Context, sess *session.Session, t dom.Task) error
}

// SessionTaskRepo keeps the whole list as one JSON value under the "todos" key.
//
// Add is read-modify-write without a lock: two concurrent Adds in the same
// session can lose one of the tasks.
type SessionTaskRepo struct{}

func NewSessionTaskRepo() *SessionTaskRepo {
	return &SessionTaskRepo{}
}

// GetAll returns the stored list, or an empty list if there is none.
func (r *SessionTaskRepo) GetAll(ctx context.Context, sess *session.Session) (dom.TaskList, error) {
	raw, ok, err := sess.GetObject(ctx, session.KeyTodos)
	if err != nil {
		return nil, err
	}
	if !ok {
		return dom.TaskList{}, nil
	}
	list, ok := decodeTaskList(raw)
	if !ok {
		return dom.TaskList{}, nil
	}
	return list, nil
}

// Add appends t and writes the whole list back.
func (r *SessionTaskRepo) Add(ctx context.Context, sess *session.Session, t dom.Task) error {
	list, err := r.GetAll(ctx, sess)
	if err != nil {
		return err
	}
	list = append(list, t)
	return sess.SetObject(ctx, session.KeyTodos, list)
}

// decodeTaskList treats an undecodable payload as absent.
func decodeTaskList(raw []byte) (dom.TaskList, bool) {
	var list dom.TaskList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false
	}
	if list == nil {
		list = dom.TaskList{}
	}
	return list, true
}
