package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KoruApps/courseboard-go/internal/enrollment"
	"github.com/KoruApps/courseboard-go/internal/models"
)

func boardChild(child enrollment.Child, dayIndex int, sem enrollment.Semester) models.BoardChild {
	return models.BoardChild{
		ID:          child.ID,
		Name:        child.Name,
		Class:       child.Class,
		CurrentRank: enrollment.CurrentRank(child.ID, dayIndex, sem),
	}
}

func boardChildren(children []enrollment.Child, dayIndex int, sem enrollment.Semester) []models.BoardChild {
	out := make([]models.BoardChild, 0, len(children))
	for _, child := range children {
		out = append(out, boardChild(child, dayIndex, sem))
	}
	return out
}

// GetBoard returns the whole board for one day: course panels with
// resolved rosters, the going-home and waiting sections, and the open
// problems across the day's courses.
func GetBoard() gin.HandlerFunc {
	return func(c *gin.Context) {
		sem, ok := currentSemester(c)
		if !ok {
			return
		}
		day, ok := dayIndex(c, sem)
		if !ok {
			return
		}

		schoolDay, _ := sem.Day(day)
		courses := make([]models.BoardCourse, 0, len(schoolDay.Courses))
		for _, course := range schoolDay.Courses {
			seats, _ := enrollment.AvailableSeats(course.ID, day, sem)
			roster := enrollment.ChildrenInCourse(course.ID, day, sem)
			courses = append(courses, models.BoardCourse{
				ID:          course.ID,
				Name:        course.Name,
				Teacher:     course.Teacher,
				Room:        course.Room,
				MaxCapacity: course.MaxCapacity,
				Grades:      course.AvailableGrades,
				ForcedFull:  course.ForcedFull,
				Approved:    enrollment.IsApproved(course.ID, day, sem),
				Overfilled:  len(course.EnrolledChildren) > course.MaxCapacity,
				Seats:       seats,
				Children:    boardChildren(roster, day, sem),
				Notes:       course.Notes,
			})
		}

		c.JSON(http.StatusOK, models.BoardResponse{
			SemesterID:   sem.ID,
			SemesterName: sem.Name,
			Day:          schoolDay.Day,
			DayIndex:     day,
			Courses:      courses,
			GoingHome:    boardChildren(enrollment.GoingHomeChildren(day, sem), day, sem),
			Waiting:      boardChildren(enrollment.WaitingChildren(day, sem), day, sem),
			Problems:     enrollment.OpenProblems(day, sem),
		})
	}
}

// GetChildSchedule returns a child's week. With exclude_day set, the
// given day is left out (the board shows "the rest of the week" next to
// the selected day).
func GetChildSchedule() gin.HandlerFunc {
	return func(c *gin.Context) {
		sem, ok := currentSemester(c)
		if !ok {
			return
		}

		childID := c.Param("child")
		child, ok := sem.Child(childID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Child not found"})
			return
		}

		excludeDay := -1
		if v := c.Query("exclude_day"); v != "" {
			day, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exclude_day"})
				return
			}
			excludeDay = day
		}

		c.JSON(http.StatusOK, models.ChildScheduleResponse{
			ChildID:  child.ID,
			Name:     child.Name,
			Schedule: enrollment.ChildSchedule(childID, sem, excludeDay >= 0, excludeDay),
		})
	}
}
