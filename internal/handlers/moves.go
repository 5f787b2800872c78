package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KoruApps/courseboard-go/internal/enrollment"
	"github.com/KoruApps/courseboard-go/internal/store"
)

// MoveChildRequest is the request body for a manual move. Force skips
// the oracle check, turning an otherwise blocked move into an explicit
// administrator override.
type MoveChildRequest struct {
	ChildID  string `json:"child_id" binding:"required"`
	TargetID string `json:"target_id" binding:"required"`
	Force    bool   `json:"force"`
}

// WaitlistRequest is the request body for a waiting-list move.
type WaitlistRequest struct {
	ChildID string `json:"child_id" binding:"required"`
}

// AllocateDay recomputes the whole day from every child's first choice
func AllocateDay(semesters store.SemesterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sem, ok := currentSemester(c)
		if !ok {
			return
		}
		day, ok := dayIndex(c, sem)
		if !ok {
			return
		}

		updated := enrollment.AllocateFirstChoices(day, sem)
		if !saveSemester(c, semesters, updated) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":    "Day allocated from first choices",
			"day_index":  day,
			"overfilled": enrollment.OverfilledCourses(day, updated),
		})
	}
}

// MoveChild moves one child to a course or go-home. Without force, a
// blocked move returns 409 with the oracle reason and no state change.
func MoveChild(semesters store.SemesterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sem, ok := currentSemester(c)
		if !ok {
			return
		}
		day, ok := dayIndex(c, sem)
		if !ok {
			return
		}

		var req MoveChildRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
			return
		}

		if _, ok := sem.Child(req.ChildID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Child not found"})
			return
		}

		var updated enrollment.Semester
		if req.Force {
			updated = enrollment.MoveChildToCourse(req.ChildID, req.TargetID, day, sem)
		} else {
			var err error
			updated, err = enrollment.TryMoveChildToCourse(req.ChildID, req.TargetID, day, sem)

			var blocked *enrollment.BlockedError
			if errors.As(err, &blocked) {
				c.JSON(http.StatusConflict, gin.H{"error": "Move blocked", "reason": blocked.Reason})
				return
			}
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move child", "details": err.Error()})
				return
			}
		}

		if !saveSemester(c, semesters, updated) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":   "Child moved",
			"child_id":  req.ChildID,
			"target_id": req.TargetID,
			"forced":    req.Force,
		})
	}
}

// MoveChildToWaitingList removes a child from every roster for the day
// without recording a go-home intent.
func MoveChildToWaitingList(semesters store.SemesterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sem, ok := currentSemester(c)
		if !ok {
			return
		}
		day, ok := dayIndex(c, sem)
		if !ok {
			return
		}

		var req WaitlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
			return
		}

		if _, ok := sem.Child(req.ChildID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Child not found"})
			return
		}

		updated := enrollment.MoveChildToWaitingList(req.ChildID, day, sem)
		if !saveSemester(c, semesters, updated) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "Child moved to waiting list",
			"child_id": req.ChildID,
		})
	}
}
