package enrollment

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AddNote appends a note to a course on the given day. Blank or
// whitespace-only text is a silent no-op. The note gets a fresh ID and
// the current timestamp and starts as a plain (non-problem) note.
func AddNote(courseID, text, author string, dayIndex int, sem Semester) Semester {
	text = strings.TrimSpace(text)
	if text == "" {
		return sem
	}
	return updateCourse(courseID, dayIndex, sem, func(course *Course) {
		course.Notes = append(course.Notes, CourseNote{
			ID:        uuid.NewString(),
			Text:      text,
			Author:    author,
			Timestamp: time.Now(),
		})
	})
}

// ToggleProblem flips the note's problem flag. Turning the flag off also
// clears the resolved flag, so a note can never be resolved without
// being a problem.
func ToggleProblem(courseID, noteID string, dayIndex int, sem Semester) Semester {
	return updateNote(courseID, noteID, dayIndex, sem, func(note *CourseNote) {
		note.IsProblem = !note.IsProblem
		if !note.IsProblem {
			note.IsResolved = false
		}
	})
}

// ToggleResolved flips the note's resolved flag. It is only meaningful
// on problem notes; callers are expected not to toggle it elsewhere.
func ToggleResolved(courseID, noteID string, dayIndex int, sem Semester) Semester {
	return updateNote(courseID, noteID, dayIndex, sem, func(note *CourseNote) {
		note.IsResolved = !note.IsResolved
	})
}

// EditNote replaces the note text. Blank text is a silent no-op.
func EditNote(courseID, noteID, newText string, dayIndex int, sem Semester) Semester {
	newText = strings.TrimSpace(newText)
	if newText == "" {
		return sem
	}
	return updateNote(courseID, noteID, dayIndex, sem, func(note *CourseNote) {
		note.Text = newText
	})
}

// DeleteNote removes the note unconditionally.
func DeleteNote(courseID, noteID string, dayIndex int, sem Semester) Semester {
	return updateCourse(courseID, dayIndex, sem, func(course *Course) {
		kept := course.Notes[:0]
		for _, n := range course.Notes {
			if n.ID != noteID {
				kept = append(kept, n)
			}
		}
		course.Notes = kept
	})
}

// Problem is one open problem note with the course it belongs to.
type Problem struct {
	CourseID   string     `json:"course_id"`
	CourseName string     `json:"course_name"`
	Note       CourseNote `json:"note"`
}

// OpenProblems collects every unresolved problem note across the day's
// courses, most recent first.
func OpenProblems(dayIndex int, sem Semester) []Problem {
	day, ok := sem.Day(dayIndex)
	if !ok {
		return nil
	}
	var problems []Problem
	for _, course := range day.Courses {
		for _, note := range course.Notes {
			if note.IsProblem && !note.IsResolved {
				problems = append(problems, Problem{
					CourseID:   course.ID,
					CourseName: course.Name,
					Note:       note,
				})
			}
		}
	}
	sort.SliceStable(problems, func(i, j int) bool {
		return problems[i].Note.Timestamp.After(problems[j].Note.Timestamp)
	})
	return problems
}

// updateCourse clones the semester and applies fn to the matching course
// on the day. Unknown days or courses return the input unchanged.
func updateCourse(courseID string, dayIndex int, sem Semester, fn func(*Course)) Semester {
	day, ok := sem.Day(dayIndex)
	if !ok {
		return sem
	}
	if _, ok := day.Course(courseID); !ok {
		return sem
	}
	out := sem.Clone()
	for i := range out.Schedule[dayIndex].Courses {
		if out.Schedule[dayIndex].Courses[i].ID == courseID {
			fn(&out.Schedule[dayIndex].Courses[i])
		}
	}
	return out
}

func updateNote(courseID, noteID string, dayIndex int, sem Semester, fn func(*CourseNote)) Semester {
	return updateCourse(courseID, dayIndex, sem, func(course *Course) {
		for i := range course.Notes {
			if course.Notes[i].ID == noteID {
				fn(&course.Notes[i])
			}
		}
	})
}
