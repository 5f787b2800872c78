package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KoruApps/courseboard-go/internal/enrollment"
	"github.com/KoruApps/courseboard-go/internal/models"
	"github.com/KoruApps/courseboard-go/internal/store"
)

// GetCourseChildren returns the resolved roster of one course
func GetCourseChildren() gin.HandlerFunc {
	return func(c *gin.Context) {
		sem, ok := currentSemester(c)
		if !ok {
			return
		}
		day, ok := dayIndex(c, sem)
		if !ok {
			return
		}

		courseID := c.Param("course")
		schoolDay, _ := sem.Day(day)
		if _, ok := schoolDay.Course(courseID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}

		roster := enrollment.ChildrenInCourse(courseID, day, sem)
		c.JSON(http.StatusOK, gin.H{
			"course_id": courseID,
			"children":  boardChildren(roster, day, sem),
			"total":     len(roster),
		})
	}
}

// GetMoveTargets lists where a child could be moved from this course:
// every other course with open seats, plus go-home.
func GetMoveTargets() gin.HandlerFunc {
	return func(c *gin.Context) {
		sem, ok := currentSemester(c)
		if !ok {
			return
		}
		day, ok := dayIndex(c, sem)
		if !ok {
			return
		}

		targets := enrollment.AvailableMoveTargets(c.Param("course"), day, sem)
		c.JSON(http.StatusOK, gin.H{"targets": targets})
	}
}

// GetBlockingReason runs the oracle for a proposed move without
// executing anything. The reason is advisory: the move endpoint will
// still honor force.
func GetBlockingReason() gin.HandlerFunc {
	return func(c *gin.Context) {
		sem, ok := currentSemester(c)
		if !ok {
			return
		}
		day, ok := dayIndex(c, sem)
		if !ok {
			return
		}

		childID := c.Param("child")
		targetID := c.Query("target")
		if targetID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "target query parameter required"})
			return
		}

		reason := enrollment.BlockingReason(childID, targetID, day, sem)
		c.JSON(http.StatusOK, models.BlockingReasonResponse{
			ChildID:  childID,
			TargetID: targetID,
			Blocked:  reason != "",
			Reason:   reason,
		})
	}
}

// ToggleCourseFull flips the closure flag of a course for the day
func ToggleCourseFull(semesters store.SemesterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sem, ok := currentSemester(c)
		if !ok {
			return
		}
		day, ok := dayIndex(c, sem)
		if !ok {
			return
		}

		courseID := c.Param("course")
		schoolDay, _ := sem.Day(day)
		if _, ok := schoolDay.Course(courseID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}

		updated := enrollment.ToggleForcedFull(courseID, day, sem)
		if !saveSemester(c, semesters, updated) {
			return
		}

		updatedDay, _ := updated.Day(day)
		course, _ := updatedDay.Course(courseID)
		c.JSON(http.StatusOK, gin.H{
			"course_id":   courseID,
			"forced_full": course.ForcedFull,
		})
	}
}

// ToggleCourseApproval flips the per-day review mark of a course
func ToggleCourseApproval(semesters store.SemesterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sem, ok := currentSemester(c)
		if !ok {
			return
		}
		day, ok := dayIndex(c, sem)
		if !ok {
			return
		}

		courseID := c.Param("course")
		schoolDay, _ := sem.Day(day)
		if _, ok := schoolDay.Course(courseID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}

		updated := enrollment.ToggleApproval(courseID, day, sem)
		if !saveSemester(c, semesters, updated) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"course_id": courseID,
			"approved":  enrollment.IsApproved(courseID, day, updated),
		})
	}
}
