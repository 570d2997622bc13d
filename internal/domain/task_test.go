package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, st := range Statuses() {
		got, err := ParseStatus(string(st))
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}

	for _, bad := range []string{"", "todo", "DONE", "InProgress", "1"} {
		_, err := ParseStatus(bad)
		assert.Truef(t, errors.Is(err, ErrInvalidStatus), "ParseStatus(%q) err=%v", bad, err)
	}
}

func TestTaskList_JSONRoundTrip(t *testing.T) {
	due := NewDate(2026, time.March, 14)
	list := TaskList{
		{Label: "Buy milk", Description: "2%", Status: StatusTodo},
		{Label: "Ship", Description: "release 1.2", DueDate: &due, Status: StatusDoing},
	}

	b, err := json.Marshal(list)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"dueDate":"2026-03-14"`)

	var got TaskList
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, list, got)
}

func TestTask_UnknownStatusRejected(t *testing.T) {
	var task Task
	err := json.Unmarshal([]byte(`{"label":"a","description":"b","status":"Blocked"}`), &task)
	assert.Error(t, err)

	_, err = json.Marshal(Task{Label: "a", Description: "b", Status: "Blocked"})
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2026-02-19 ")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2026, time.February, 19), d)
	assert.Equal(t, "2026-02-19", d.String())

	_, err = ParseDate("19/02/2026")
	assert.Error(t, err)
}
