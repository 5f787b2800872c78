package enrollment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveChildBetweenCourses(t *testing.T) {
	sem := AllocateFirstChoices(0, boardFixture())

	sem = MoveChildToCourse("a", "football", 0, sem)
	requireMirror(t, sem, 0)

	day, _ := sem.Day(0)
	archery, _ := day.Course("archery")
	football, _ := day.Course("football")
	assert.Empty(t, archery.EnrolledChildren)
	assert.Equal(t, []string{"c", "a"}, football.EnrolledChildren)

	a, _ := sem.Child("a")
	assert.Equal(t, Enrolled("football"), a.Enrollments[0])
}

func TestMoveChildToGoHome(t *testing.T) {
	sem := AllocateFirstChoices(0, boardFixture())

	sem = MoveChildToCourse("a", GoHome, 0, sem)
	requireMirror(t, sem, 0)

	day, _ := sem.Day(0)
	archery, _ := day.Course("archery")
	assert.Empty(t, archery.EnrolledChildren)

	a, _ := sem.Child("a")
	assert.Equal(t, Home(), a.Enrollments[0])
}

func TestMoveUnknownTargetIsNoop(t *testing.T) {
	sem := AllocateFirstChoices(0, boardFixture())
	assert.Equal(t, sem, MoveChildToCourse("a", "pottery", 0, sem))
	assert.Equal(t, sem, MoveChildToCourse("ghost", "archery", 0, sem))
	assert.Equal(t, sem, MoveChildToCourse("a", "archery", 9, sem))
}

func TestMoveDoesNotTouchOtherDays(t *testing.T) {
	sem := AllocateFirstChoices(0, boardFixture())
	sem = MoveChildToCourse("a", "archery", 1, sem)

	sem = MoveChildToCourse("a", GoHome, 0, sem)
	requireMirror(t, sem, 1)

	a, _ := sem.Child("a")
	assert.Equal(t, Enrolled("archery"), a.Enrollments[1])
}

func TestTryMoveRefusesBlocked(t *testing.T) {
	sem := AllocateFirstChoices(0, boardFixture())

	// football is full (c holds the only seat).
	out, err := TryMoveChildToCourse("a", "football", 0, sem)
	require.Error(t, err)

	var blocked *BlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, "Course is full (1/1)", blocked.Reason)
	assert.Equal(t, sem, out, "refused move must not change state")
}

func TestTryMovePermitted(t *testing.T) {
	sem := AllocateFirstChoices(0, boardFixture())

	out, err := TryMoveChildToCourse("b", "archery", 0, sem)
	require.NoError(t, err)
	requireMirror(t, out, 0)

	b, _ := out.Child("b")
	assert.Equal(t, Enrolled("archery"), b.Enrollments[0])
}

func TestMoveChildToWaitingList(t *testing.T) {
	sem := AllocateFirstChoices(0, boardFixture())

	sem = MoveChildToWaitingList("a", 0, sem)
	requireMirror(t, sem, 0)

	day, _ := sem.Day(0)
	archery, _ := day.Course("archery")
	assert.Empty(t, archery.EnrolledChildren)

	a, _ := sem.Child("a")
	assert.Equal(t, Unassigned(), a.Enrollments[0])
}

// Mirror invariant survives an arbitrary mix of writes.
func TestMirrorInvariantAcrossWriteSequence(t *testing.T) {
	sem := boardFixture()

	steps := []func(Semester) Semester{
		func(s Semester) Semester { return AllocateFirstChoices(0, s) },
		func(s Semester) Semester { return MoveChildToCourse("b", "archery", 0, s) },
		func(s Semester) Semester { return MoveChildToCourse("a", "football", 0, s) },
		func(s Semester) Semester { return MoveChildToWaitingList("c", 0, s) },
		func(s Semester) Semester { return MoveChildToCourse("c", GoHome, 0, s) },
		func(s Semester) Semester { return ToggleForcedFull("archery", 0, s) },
		func(s Semester) Semester { return AllocateFirstChoices(0, s) },
	}
	for _, step := range steps {
		sem = step(sem)
		requireMirror(t, sem, 0)
	}
}
