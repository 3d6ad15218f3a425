package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestProjectAddTaskIdempotent(t *testing.T) {
	project := NewProject(1, "Website", "")

	require.True(t, project.AddTask(10))
	before := project.UpdatedAt

	// Second add of the same ID must not change the list or the timestamp.
	require.False(t, project.AddTask(10))
	require.Len(t, project.Tasks, 1)
	require.Equal(t, before, project.UpdatedAt)
}

func TestProjectRemoveTask(t *testing.T) {
	project := NewProject(1, "Website", "")
	project.AddTask(10)
	project.AddTask(11)

	require.True(t, project.RemoveTask(10))
	require.Equal(t, []uint64{11}, project.Tasks)

	before := project.UpdatedAt
	require.False(t, project.RemoveTask(10))
	require.Equal(t, before, project.UpdatedAt)
}

func TestProjectMembers(t *testing.T) {
	project := NewProject(1, "Website", "")

	require.True(t, project.AddMember(1))
	require.True(t, project.AddMember(2))
	require.False(t, project.AddMember(1))
	require.Equal(t, []uint64{1, 2}, project.Members)

	require.True(t, project.RemoveMember(1))
	require.False(t, project.RemoveMember(99))
	require.Equal(t, []uint64{2}, project.Members)
}

func TestProjectSetEndDate(t *testing.T) {
	project := NewProject(1, "Website", "")
	require.Nil(t, project.EndDate)

	end := time.Now().AddDate(0, 1, 0)
	project.SetEndDate(end)
	require.NotNil(t, project.EndDate)
	require.True(t, project.EndDate.Equal(end))
}
