package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Status is the progress state of a task.
type Status string

const (
	StatusTodo  Status = "Todo"
	StatusDoing Status = "Doing"
	StatusDone  Status = "Done"
)

var ErrInvalidStatus = errors.New("status must be Todo, Doing or Done")

// Statuses returns every valid status in display order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusDoing, StatusDone}
}

// ParseStatus accepts only the exact status names.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.TrimSpace(s))
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusDoing, StatusDone:
		return true
	}
	return false
}

func (s Status) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
	}
	return json.Marshal(string(s))
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	st, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// DateLayout is the wire and form format of a due date.
const DateLayout = "2006-01-02"

// Date is a calendar date (midnight UTC).
type Date struct{ time.Time }

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("due date: use YYYY-MM-DD: %w", err)
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

func (d Date) String() string { return d.Format(DateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Task is one entry of a session's todo list.
// Label and Description are never empty once a task is stored.
type Task struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	DueDate     *Date  `json:"dueDate,omitempty"`
	Status      Status `json:"status"`
}

// TaskList is ordered by insertion; display order is the same.
type TaskList []Task
