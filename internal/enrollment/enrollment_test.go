package enrollment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// boardFixture builds a one-day semester close to the demo data: archery
// (grades 3-5), football (grades 4-5, small), plus a mixed set of
// children.
func boardFixture() Semester {
	return Semester{
		ID:   "fall2024",
		Name: "Fall 2024",
		Schedule: []SchoolDay{
			{
				Day: "Monday",
				Courses: []Course{
					{ID: "archery", Name: "Archery", MaxCapacity: 2, Teacher: "Ms. Johnson", Room: "Gym A", AvailableGrades: []string{"3", "4", "5"}},
					{ID: "football", Name: "Football", MaxCapacity: 1, Teacher: "Mr. Smith", Room: "Field 1", AvailableGrades: []string{"4", "5"}},
				},
			},
			{
				Day: "Tuesday",
				Courses: []Course{
					{ID: "archery", Name: "Archery", MaxCapacity: 2, AvailableGrades: []string{"3", "4", "5"}},
				},
			},
		},
		Children: []Child{
			{ID: "a", Name: "Emma Johnson", Class: "4A", FirstChoice: "archery", SecondChoice: "football", ThirdChoice: GoHome, Enrollments: map[int]DayActivity{}},
			{ID: "b", Name: "Liam Smith", Class: "3B", FirstChoice: "football", SecondChoice: "archery", ThirdChoice: GoHome, Enrollments: map[int]DayActivity{}},
			{ID: "c", Name: "Olivia Brown", Class: "5A", FirstChoice: "football", SecondChoice: "archery", ThirdChoice: "football", Enrollments: map[int]DayActivity{}},
			{ID: "d", Name: "Noah Davis", Class: "4B", FirstChoice: GoHome, SecondChoice: GoHome, ThirdChoice: GoHome, Enrollments: map[int]DayActivity{}},
		},
	}
}

// requireMirror asserts the roster/enrollment mirror invariant for a
// day: each course roster holds exactly the children whose enrollment
// entry names that course.
func requireMirror(t *testing.T, sem Semester, dayIndex int) {
	t.Helper()
	day, ok := sem.Day(dayIndex)
	require.True(t, ok)

	for _, course := range day.Courses {
		seen := make(map[string]bool)
		for _, id := range course.EnrolledChildren {
			require.False(t, seen[id], "duplicate roster entry %s in %s", id, course.ID)
			seen[id] = true
			child, ok := sem.Child(id)
			require.True(t, ok, "roster entry %s has no child record", id)
			act, _ := child.Activity(dayIndex)
			require.Equal(t, Enrolled(course.ID), act,
				"child %s on roster %s but enrollment says %+v", id, course.ID, act)
		}
	}
	for _, child := range sem.Children {
		act, ok := child.Activity(dayIndex)
		if !ok || act.Kind != ActivityEnrolled {
			for _, course := range day.Courses {
				require.False(t, course.HasChild(child.ID),
					"child %s not enrolled but on roster %s", child.ID, course.ID)
			}
			continue
		}
		course, ok := day.Course(act.CourseID)
		require.True(t, ok)
		require.True(t, course.HasChild(child.ID),
			"child %s enrolled in %s but missing from roster", child.ID, act.CourseID)
	}
}

func TestCloneIsDeep(t *testing.T) {
	sem := boardFixture()
	sem = AllocateFirstChoices(0, sem)

	clone := sem.Clone()
	clone.Schedule[0].Courses[0].EnrolledChildren[0] = "mutated"
	clone.Children[0].Enrollments[0] = Home()
	clone.Schedule[0].Courses[0].Notes = append(clone.Schedule[0].Courses[0].Notes, CourseNote{ID: "x"})

	require.NotEqual(t, "mutated", sem.Schedule[0].Courses[0].EnrolledChildren[0])
	require.Equal(t, Enrolled("archery"), sem.Children[0].Enrollments[0])
	require.Empty(t, sem.Schedule[0].Courses[0].Notes)
}

func TestApprovalKeyTextRoundTrip(t *testing.T) {
	key := ApprovalKey{SemesterID: "fall2024", DayIndex: 2, CourseID: "go-home"}
	text, err := key.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "fall2024:2:go-home", string(text))

	var back ApprovalKey
	require.NoError(t, back.UnmarshalText(text))
	require.Equal(t, key, back)

	require.Error(t, back.UnmarshalText([]byte("nonsense")))
}
