package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KoruApps/courseboard-go/internal/enrollment"
)

func demoSemester(id string) enrollment.Semester {
	return enrollment.Semester{
		ID:   id,
		Name: "Demo",
		Schedule: []enrollment.SchoolDay{{
			Day: "Monday",
			Courses: []enrollment.Course{
				{ID: "archery", Name: "Archery", MaxCapacity: 2, AvailableGrades: []string{"4"}, EnrolledChildren: []string{"c1"}},
			},
		}},
		Children: []enrollment.Child{{
			ID: "c1", Name: "Emma", Class: "4A", FirstChoice: "archery",
			Enrollments: map[int]enrollment.DayActivity{0: enrollment.Enrolled("archery")},
		}},
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Save(ctx, demoSemester("fall")))
	require.NoError(t, s.Save(ctx, demoSemester("spring")))

	got, err := s.Get(ctx, "fall")
	require.NoError(t, err)
	assert.Equal(t, demoSemester("fall"), got)

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "fall", all[0].ID)
	assert.Equal(t, "spring", all[1].ID)
}

func TestMemoryStoreSaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Save(ctx, demoSemester("fall")))

	updated := demoSemester("fall")
	updated = enrollment.MoveChildToWaitingList("c1", 0, updated)
	require.NoError(t, s.Save(ctx, updated))

	got, err := s.Get(ctx, "fall")
	require.NoError(t, err)
	assert.Empty(t, got.Schedule[0].Courses[0].EnrolledChildren)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryStoreIsolatesSnapshots(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Save(ctx, demoSemester("fall")))

	got, err := s.Get(ctx, "fall")
	require.NoError(t, err)
	got.Schedule[0].Courses[0].EnrolledChildren[0] = "mutated"

	again, err := s.Get(ctx, "fall")
	require.NoError(t, err)
	assert.Equal(t, "c1", again.Schedule[0].Courses[0].EnrolledChildren[0])
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Save(ctx, demoSemester("fall")))
	require.NoError(t, s.Delete(ctx, "fall"))
	require.NoError(t, s.Delete(ctx, "fall"))

	_, err := s.Get(ctx, "fall")
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
