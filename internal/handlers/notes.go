package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KoruApps/courseboard-go/internal/enrollment"
	"github.com/KoruApps/courseboard-go/internal/middleware"
	"github.com/KoruApps/courseboard-go/internal/store"
)

// NoteRequest is the request body for creating or editing a note.
type NoteRequest struct {
	Text string `json:"text" binding:"required"`
}

func courseOnDay(c *gin.Context, sem enrollment.Semester, day int) (string, bool) {
	courseID := c.Param("course")
	schoolDay, _ := sem.Day(day)
	if _, ok := schoolDay.Course(courseID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return "", false
	}
	return courseID, true
}

func noteOnCourse(c *gin.Context, sem enrollment.Semester, day int, courseID string) (string, bool) {
	noteID := c.Param("note")
	schoolDay, _ := sem.Day(day)
	course, _ := schoolDay.Course(courseID)
	for _, note := range course.Notes {
		if note.ID == noteID {
			return noteID, true
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
	return "", false
}

// AddNote appends a note to a course. The author comes from the
// authenticated user, not the request body.
func AddNote(semesters store.SemesterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sem, ok := currentSemester(c)
		if !ok {
			return
		}
		day, ok := dayIndex(c, sem)
		if !ok {
			return
		}
		courseID, ok := courseOnDay(c, sem, day)
		if !ok {
			return
		}

		var req NoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Note text cannot be empty"})
			return
		}

		author, ok := middleware.GetAuthorName(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		updated := enrollment.AddNote(courseID, req.Text, author, day, sem)
		if !saveSemester(c, semesters, updated) {
			return
		}

		updatedDay, _ := updated.Day(day)
		course, _ := updatedDay.Course(courseID)
		c.JSON(http.StatusCreated, course.Notes[len(course.Notes)-1])
	}
}

// EditNote replaces a note's text
func EditNote(semesters store.SemesterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sem, ok := currentSemester(c)
		if !ok {
			return
		}
		day, ok := dayIndex(c, sem)
		if !ok {
			return
		}
		courseID, ok := courseOnDay(c, sem, day)
		if !ok {
			return
		}
		noteID, ok := noteOnCourse(c, sem, day, courseID)
		if !ok {
			return
		}

		var req NoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Note text cannot be empty"})
			return
		}

		updated := enrollment.EditNote(courseID, noteID, req.Text, day, sem)
		if !saveSemester(c, semesters, updated) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Note updated", "note_id": noteID})
	}
}

// DeleteNote removes a note unconditionally
func DeleteNote(semesters store.SemesterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sem, ok := currentSemester(c)
		if !ok {
			return
		}
		day, ok := dayIndex(c, sem)
		if !ok {
			return
		}
		courseID, ok := courseOnDay(c, sem, day)
		if !ok {
			return
		}
		noteID, ok := noteOnCourse(c, sem, day, courseID)
		if !ok {
			return
		}

		updated := enrollment.DeleteNote(courseID, noteID, day, sem)
		if !saveSemester(c, semesters, updated) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Note deleted", "note_id": noteID})
	}
}

// ToggleNoteProblem flips the problem flag; clearing it also clears the
// resolved flag.
func ToggleNoteProblem(semesters store.SemesterStore) gin.HandlerFunc {
	return toggleNote(semesters, enrollment.ToggleProblem)
}

// ToggleNoteResolved flips the resolved flag of a problem note
func ToggleNoteResolved(semesters store.SemesterStore) gin.HandlerFunc {
	return toggleNote(semesters, enrollment.ToggleResolved)
}

func toggleNote(semesters store.SemesterStore, op func(string, string, int, enrollment.Semester) enrollment.Semester) gin.HandlerFunc {
	return func(c *gin.Context) {
		sem, ok := currentSemester(c)
		if !ok {
			return
		}
		day, ok := dayIndex(c, sem)
		if !ok {
			return
		}
		courseID, ok := courseOnDay(c, sem, day)
		if !ok {
			return
		}
		noteID, ok := noteOnCourse(c, sem, day, courseID)
		if !ok {
			return
		}

		updated := op(courseID, noteID, day, sem)
		if !saveSemester(c, semesters, updated) {
			return
		}

		updatedDay, _ := updated.Day(day)
		course, _ := updatedDay.Course(courseID)
		for _, note := range course.Notes {
			if note.ID == noteID {
				c.JSON(http.StatusOK, note)
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Note updated", "note_id": noteID})
	}
}

// GetOpenProblems lists every unresolved problem note across the day's
// courses, most recent first.
func GetOpenProblems() gin.HandlerFunc {
	return func(c *gin.Context) {
		sem, ok := currentSemester(c)
		if !ok {
			return
		}
		day, ok := dayIndex(c, sem)
		if !ok {
			return
		}

		problems := enrollment.OpenProblems(day, sem)
		c.JSON(http.StatusOK, gin.H{"problems": problems, "total": len(problems)})
	}
}
