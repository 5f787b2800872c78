package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KoruApps/courseboard-go/internal/models"
	"github.com/KoruApps/courseboard-go/internal/store"
)

// ListSemesters returns a summary of every stored semester
func ListSemesters(semesters store.SemesterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := semesters.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list semesters", "details": err.Error()})
			return
		}

		summaries := make([]models.SemesterSummary, 0, len(all))
		for _, sem := range all {
			days := make([]string, 0, len(sem.Schedule))
			for _, day := range sem.Schedule {
				days = append(days, day.Day)
			}
			summaries = append(summaries, models.SemesterSummary{
				ID:       sem.ID,
				Name:     sem.Name,
				Days:     days,
				Children: len(sem.Children),
			})
		}

		c.JSON(http.StatusOK, gin.H{"semesters": summaries, "total": len(summaries)})
	}
}

// GetSemester returns the full semester snapshot
func GetSemester() gin.HandlerFunc {
	return func(c *gin.Context) {
		sem, ok := currentSemester(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, sem)
	}
}
