package enrollment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildrenInCourse(t *testing.T) {
	sem := AllocateFirstChoices(0, boardFixture())
	sem = MoveChildToCourse("b", "archery", 0, sem)

	children := ChildrenInCourse("archery", 0, sem)
	require.Len(t, children, 2)
	assert.Equal(t, "a", children[0].ID)
	assert.Equal(t, "b", children[1].ID)

	assert.Nil(t, ChildrenInCourse("pottery", 0, sem))
}

func TestChildSchedule(t *testing.T) {
	sem := AllocateFirstChoices(0, boardFixture())

	full := ChildSchedule("a", sem, false, 0)
	require.Len(t, full, 2)
	assert.Equal(t, ScheduleEntry{Day: "Monday", DayIndex: 0, Activity: "archery"}, full[0])
	// Day 1 was never allocated: shown as going home.
	assert.Equal(t, ScheduleEntry{Day: "Tuesday", DayIndex: 1, Activity: GoHome}, full[1])

	excluded := ChildSchedule("a", sem, true, 0)
	require.Len(t, excluded, 1)
	assert.Equal(t, 1, excluded[0].DayIndex)
}

func TestCurrentRank(t *testing.T) {
	sem := AllocateFirstChoices(0, boardFixture())

	assert.Equal(t, 1, CurrentRank("a", 0, sem)) // first choice archery
	assert.Equal(t, 0, CurrentRank("b", 0, sem)) // home, never ranked

	sem = MoveChildToCourse("a", "football", 0, sem)
	assert.Equal(t, 2, CurrentRank("a", 0, sem)) // second choice

	sem = MoveChildToWaitingList("a", 0, sem)
	assert.Equal(t, 0, CurrentRank("a", 0, sem))
}

func TestRankOf(t *testing.T) {
	sem := boardFixture()

	assert.Equal(t, 1, RankOf("a", "archery", sem))
	assert.Equal(t, 2, RankOf("a", "football", sem))
	assert.Equal(t, 0, RankOf("a", "volleyball", sem))
	// The go-home sentinel is never reported as a ranked activity.
	assert.Equal(t, 0, RankOf("a", GoHome, sem))
	assert.Equal(t, 0, RankOf("ghost", "archery", sem))
}

func TestAvailableMoveTargets(t *testing.T) {
	sem := AllocateFirstChoices(0, boardFixture())

	// From archery: football is full, so only go-home remains.
	targets := AvailableMoveTargets("archery", 0, sem)
	require.Len(t, targets, 1)
	assert.Equal(t, MoveTarget{ID: GoHome, Name: "Go Home", Unlimited: true}, targets[0])

	// From football: archery has one open seat.
	targets = AvailableMoveTargets("football", 0, sem)
	require.Len(t, targets, 2)
	assert.Equal(t, MoveTarget{ID: "archery", Name: "Archery", Seats: 1}, targets[0])
	assert.Equal(t, GoHome, targets[1].ID)
}

func TestAvailableMoveTargetsSkipClosedCourses(t *testing.T) {
	sem := boardFixture()
	sem.Schedule[0].Courses[0].ForcedFull = true

	targets := AvailableMoveTargets("football", 0, sem)
	require.Len(t, targets, 1)
	assert.Equal(t, GoHome, targets[0].ID)
}

func TestWaitingVersusGoingHomePartition(t *testing.T) {
	sem := boardFixture()
	// e has no go-home preference anywhere: off-roster means waiting.
	sem.Children = append(sem.Children, Child{
		ID: "e", Name: "Ava Wilson", Class: "3A",
		FirstChoice: "football", SecondChoice: "football", ThirdChoice: "football",
		Enrollments: map[int]DayActivity{},
	})

	sem = AllocateFirstChoices(0, sem)
	// b (go-home pref, sent home) and d (all go-home) are intentional;
	// e is grade-blocked from football with no fallback.

	waiting := WaitingChildren(0, sem)
	require.Len(t, waiting, 1)
	assert.Equal(t, "e", waiting[0].ID)

	home := GoingHomeChildren(0, sem)
	require.Len(t, home, 2)
	assert.Equal(t, "b", home[0].ID) // 3B before 4B
	assert.Equal(t, "d", home[1].ID)

	// No child appears in both groups.
	for _, w := range waiting {
		for _, h := range home {
			assert.NotEqual(t, w.ID, h.ID)
		}
	}
}

func TestPartitionIgnoresEnrolledChildren(t *testing.T) {
	sem := AllocateFirstChoices(0, boardFixture())
	for _, child := range append(WaitingChildren(0, sem), GoingHomeChildren(0, sem)...) {
		act, _ := child.Activity(0)
		assert.NotEqual(t, ActivityEnrolled, act.Kind)
	}
}

func TestSortChildrenByClassThenName(t *testing.T) {
	children := []Child{
		{ID: "1", Name: "Zoe", Class: "4A"},
		{ID: "2", Name: "Anna", Class: "4A"},
		{ID: "3", Name: "Mia", Class: "3B"},
	}
	SortChildren(children)
	assert.Equal(t, []string{"3", "2", "1"}, []string{children[0].ID, children[1].ID, children[2].ID})
}

func TestOverfilledCourses(t *testing.T) {
	sem := boardFixture()
	sem.Children[0].FirstChoice = "football"
	sem.Children[2].FirstChoice = "football"
	sem = AllocateFirstChoices(0, sem)

	reports := OverfilledCourses(0, sem)
	require.Len(t, reports, 1)
	assert.Equal(t, OverfillReport{CourseID: "football", CourseName: "Football", Enrolled: 2, MaxCapacity: 1}, reports[0])
}

func TestToggleApproval(t *testing.T) {
	sem := boardFixture()

	assert.False(t, IsApproved("archery", 0, sem))

	sem = ToggleApproval("archery", 0, sem)
	assert.True(t, IsApproved("archery", 0, sem))
	// Approval is per day and per course.
	assert.False(t, IsApproved("archery", 1, sem))
	assert.False(t, IsApproved("football", 0, sem))

	sem = ToggleApproval("archery", 0, sem)
	assert.False(t, IsApproved("archery", 0, sem))

	// Unknown courses cannot be approved.
	assert.Equal(t, sem.Approvals, ToggleApproval("pottery", 0, sem).Approvals)
}

func TestToggleForcedFull(t *testing.T) {
	sem := ToggleForcedFull("archery", 0, boardFixture())
	day, _ := sem.Day(0)
	archery, _ := day.Course("archery")
	require.True(t, archery.ForcedFull)

	sem = ToggleForcedFull("archery", 0, sem)
	day, _ = sem.Day(0)
	archery, _ = day.Course("archery")
	require.False(t, archery.ForcedFull)
}
