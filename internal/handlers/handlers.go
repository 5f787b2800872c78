package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KoruApps/courseboard-go/internal/enrollment"
	"github.com/KoruApps/courseboard-go/internal/middleware"
	"github.com/KoruApps/courseboard-go/internal/store"
)

// currentSemester pulls the snapshot the semester middleware loaded.
func currentSemester(c *gin.Context) (enrollment.Semester, bool) {
	sem, ok := middleware.GetSemester(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Semester context not found"})
		return enrollment.Semester{}, false
	}
	return sem, true
}

// dayIndex parses and bounds-checks the :day URL parameter.
func dayIndex(c *gin.Context, sem enrollment.Semester) (int, bool) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 0 || day >= len(sem.Schedule) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day index"})
		return 0, false
	}
	return day, true
}

// saveSemester persists the replacement snapshot produced by an engine
// operation. The write is the whole document; rosters and enrollments
// can never be persisted separately.
func saveSemester(c *gin.Context, semesters store.SemesterStore, sem enrollment.Semester) bool {
	if err := semesters.Save(c.Request.Context(), sem); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save semester", "details": err.Error()})
		return false
	}
	return true
}
