package middleware

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/KoruApps/courseboard-go/internal/enrollment"
	"github.com/KoruApps/courseboard-go/internal/store"
)

type contextKey string

const (
	SemesterContextKey contextKey = "semester"
	SemesterIDKey      contextKey = "semester_id"
)

var semesterIDRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$`)

// SemesterMiddleware resolves the :semester URL parameter, loads the
// current snapshot from the store and stores it in the request context.
// Handlers read the snapshot from context, apply engine operations and
// save the replacement themselves.
func SemesterMiddleware(semesters store.SemesterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("semester")

		if !ValidateSemesterID(id) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid semester identifier",
			})
			c.Abort()
			return
		}

		sem, err := semesters.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{
					"error":    "Semester not found",
					"semester": id,
				})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Failed to load semester",
				})
			}
			c.Abort()
			return
		}

		c.Set(string(SemesterIDKey), id)
		c.Set(string(SemesterContextKey), sem)

		c.Next()
	}
}

// GetSemester retrieves the semester snapshot from context
func GetSemester(c *gin.Context) (enrollment.Semester, bool) {
	val, exists := c.Get(string(SemesterContextKey))
	if !exists {
		return enrollment.Semester{}, false
	}
	sem, ok := val.(enrollment.Semester)
	return sem, ok
}

// ValidateSemesterID checks if a semester ID is usable as a URL segment
// and a storage key.
// Rules:
//   - 3-50 characters
//   - Lowercase letters, numbers, hyphens only
//   - Must start and end with letter or number
//   - Cannot have consecutive hyphens
func ValidateSemesterID(id string) bool {
	if len(id) < 3 || len(id) > 50 {
		return false
	}

	if !semesterIDRegex.MatchString(id) {
		return false
	}

	for i := 1; i < len(id); i++ {
		if id[i] == '-' && id[i-1] == '-' {
			return false
		}
	}

	return true
}
