package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    TaskStatus
		wantErr bool
	}{
		{in: "TODO", want: StatusTodo},
		{in: "in_progress", want: StatusInProgress},
		{in: " Done ", want: StatusDone},
		{in: "closed", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTaskStatus(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTask_ChangeStatus(t *testing.T) {
	task := &Task{Status: StatusTodo}

	require.NoError(t, task.ChangeStatus(StatusInProgress))
	assert.Equal(t, StatusInProgress, task.Status)

	require.NoError(t, task.ChangeStatus(StatusInProgress), "same status is accepted")
	assert.Equal(t, StatusInProgress, task.Status)

	require.NoError(t, task.ChangeStatus(StatusDone))
	require.NoError(t, task.ChangeStatus(StatusTodo), "done tasks can be reopened")

	err := task.ChangeStatus(TaskStatus("BLOCKED"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, StatusTodo, task.Status, "status unchanged on error")
}

func TestTask_AssignTo(t *testing.T) {
	project, owner := newTestProject(t)
	bob := User{UserID: "bob"}
	project.AddMember(bob)

	task, err := project.CreateTask("review", owner)
	require.NoError(t, err)

	require.NoError(t, task.AssignTo(&bob, project))
	assert.True(t, task.IsAssignedTo("bob"))

	err = task.AssignTo(&User{UserID: "eve"}, project)
	assert.ErrorIs(t, err, ErrNotMember)
	assert.True(t, task.IsAssignedTo("bob"), "assignee unchanged on error")

	other := &Project{ProjectID: "p2", Members: []User{bob}}
	err = task.AssignTo(&bob, other)
	assert.ErrorIs(t, err, ErrNotMember, "membership is checked against the task's own project")

	task.Unassign()
	assert.Nil(t, task.AssigneeID)
	assert.False(t, task.IsAssignedTo("bob"))
}

func TestTask_AddComment(t *testing.T) {
	project, owner := newTestProject(t)
	task, err := project.CreateTask("review", owner)
	require.NoError(t, err)
	task.TaskID = "t1"

	comment, err := task.AddComment(owner, project, "  looks good ")
	require.NoError(t, err)
	assert.Equal(t, "t1", comment.TaskID)
	assert.Equal(t, owner.UserID, comment.AuthorID)
	assert.Equal(t, "looks good", comment.Content)

	_, err = task.AddComment(owner, project, " ")
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = task.AddComment(&User{UserID: "eve"}, project, "hi")
	assert.ErrorIs(t, err, ErrNotMember)

	// чужой пользователь получает NOT_MEMBER даже с пустым текстом
	_, err = task.AddComment(&User{UserID: "eve"}, project, "   ")
	assert.ErrorIs(t, err, ErrNotMember)
}
