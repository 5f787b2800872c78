package enrollment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noteAt(t *testing.T, sem Semester, courseID string, idx int) CourseNote {
	t.Helper()
	day, ok := sem.Day(0)
	require.True(t, ok)
	course, ok := day.Course(courseID)
	require.True(t, ok)
	require.Greater(t, len(course.Notes), idx)
	return course.Notes[idx]
}

func TestAddNote(t *testing.T) {
	sem := AddNote("archery", "  Bow strings need replacement  ", "Ms. Johnson", 0, boardFixture())

	note := noteAt(t, sem, "archery", 0)
	assert.NotEmpty(t, note.ID)
	assert.Equal(t, "Bow strings need replacement", note.Text)
	assert.Equal(t, "Ms. Johnson", note.Author)
	assert.WithinDuration(t, time.Now(), note.Timestamp, time.Minute)
	assert.False(t, note.IsProblem)
	assert.False(t, note.IsResolved)
}

func TestAddNoteRejectsBlankText(t *testing.T) {
	sem := boardFixture()
	assert.Equal(t, sem, AddNote("archery", "   ", "Admin", 0, sem))
	assert.Equal(t, sem, AddNote("archery", "", "Admin", 0, sem))
}

func TestAddNoteUnknownCourseIsNoop(t *testing.T) {
	sem := boardFixture()
	assert.Equal(t, sem, AddNote("pottery", "text", "Admin", 0, sem))
}

func TestToggleProblemClearsResolved(t *testing.T) {
	sem := AddNote("archery", "Targets are torn", "Admin", 0, boardFixture())
	noteID := noteAt(t, sem, "archery", 0).ID

	sem = ToggleProblem("archery", noteID, 0, sem)
	sem = ToggleResolved("archery", noteID, 0, sem)

	note := noteAt(t, sem, "archery", 0)
	require.True(t, note.IsProblem)
	require.True(t, note.IsResolved)

	// Dropping the problem flag must also drop resolved.
	sem = ToggleProblem("archery", noteID, 0, sem)
	note = noteAt(t, sem, "archery", 0)
	assert.False(t, note.IsProblem)
	assert.False(t, note.IsResolved)
}

func TestEditNote(t *testing.T) {
	sem := AddNote("archery", "old text", "Admin", 0, boardFixture())
	noteID := noteAt(t, sem, "archery", 0).ID

	sem = EditNote("archery", noteID, " new text ", 0, sem)
	assert.Equal(t, "new text", noteAt(t, sem, "archery", 0).Text)

	unchanged := EditNote("archery", noteID, "  ", 0, sem)
	assert.Equal(t, sem, unchanged)
}

func TestDeleteNote(t *testing.T) {
	sem := AddNote("archery", "first", "Admin", 0, boardFixture())
	sem = AddNote("archery", "second", "Admin", 0, sem)
	noteID := noteAt(t, sem, "archery", 0).ID

	sem = DeleteNote("archery", noteID, 0, sem)

	day, _ := sem.Day(0)
	course, _ := day.Course("archery")
	require.Len(t, course.Notes, 1)
	assert.Equal(t, "second", course.Notes[0].Text)
}

func TestOpenProblemsNewestFirst(t *testing.T) {
	sem := boardFixture()
	now := time.Now()

	sem.Schedule[0].Courses[0].Notes = []CourseNote{
		{ID: "n1", Text: "old problem", Timestamp: now.Add(-2 * time.Hour), IsProblem: true},
		{ID: "n2", Text: "resolved", Timestamp: now.Add(-time.Hour), IsProblem: true, IsResolved: true},
		{ID: "n3", Text: "plain note", Timestamp: now},
	}
	sem.Schedule[0].Courses[1].Notes = []CourseNote{
		{ID: "n4", Text: "fresh problem", Timestamp: now.Add(-time.Minute), IsProblem: true},
	}

	problems := OpenProblems(0, sem)
	require.Len(t, problems, 2)
	assert.Equal(t, "n4", problems[0].Note.ID)
	assert.Equal(t, "Football", problems[0].CourseName)
	assert.Equal(t, "n1", problems[1].Note.ID)
	assert.Equal(t, "Archery", problems[1].CourseName)
}
