package enrollment

import (
	"fmt"
	"strings"
)

// Blocking reasons, in precedence order. The exact wording is part of
// the API contract: the host shows these strings to administrators.
const (
	ReasonChildNotFound  = "Child not found"
	ReasonAlreadyInPlace = "Already in this course/status"
	ReasonCourseNotFound = "Course not found"
	ReasonCourseClosed   = "Course is marked as closed"
)

// IsEligible reports whether the child may occupy the course on the
// given day. Going home is always eligible; otherwise the course must
// exist for that day and admit the child's grade level.
func IsEligible(child Child, courseID string, dayIndex int, sem Semester) bool {
	if courseID == GoHome {
		return true
	}
	day, ok := sem.Day(dayIndex)
	if !ok {
		return false
	}
	course, ok := day.Course(courseID)
	if !ok {
		return false
	}
	return course.AllowsGrade(child.Grade())
}

// AvailableSeats returns the remaining seats in a course for a day.
// unlimited is true only for the go-home target. A forcedFull or
// unknown course has zero seats. The count may be negative when the
// course is overfilled; zero and negative both mean "no seats".
func AvailableSeats(courseID string, dayIndex int, sem Semester) (seats int, unlimited bool) {
	if courseID == GoHome {
		return 0, true
	}
	day, ok := sem.Day(dayIndex)
	if !ok {
		return 0, false
	}
	course, ok := day.Course(courseID)
	if !ok || course.ForcedFull {
		return 0, false
	}
	return course.MaxCapacity - len(course.EnrolledChildren), false
}

// BlockingReason explains why moving the child to the target should not
// proceed, or returns "" when the move is fine. The checks run in a
// fixed precedence order: already-in-place, go-home shortcut, course
// existence, closure, grade eligibility, capacity. The reason is
// advisory; the movement controller does not enforce it.
func BlockingReason(childID, targetCourseID string, dayIndex int, sem Semester) string {
	child, ok := sem.Child(childID)
	if !ok {
		return ReasonChildNotFound
	}

	// Same target as the current status counts as blocked, even when the
	// target is go-home or a closed course.
	current, _ := child.Activity(dayIndex)
	switch {
	case current.Kind == ActivityEnrolled && current.CourseID == targetCourseID:
		return ReasonAlreadyInPlace
	case current.Kind != ActivityEnrolled && targetCourseID == GoHome:
		return ReasonAlreadyInPlace
	}

	if targetCourseID == GoHome {
		return ""
	}

	day, ok := sem.Day(dayIndex)
	if !ok {
		return ReasonCourseNotFound
	}
	course, ok := day.Course(targetCourseID)
	if !ok {
		return ReasonCourseNotFound
	}

	if course.ForcedFull {
		return ReasonCourseClosed
	}

	if grade := child.Grade(); !course.AllowsGrade(grade) {
		return fmt.Sprintf("Not eligible (Grade %s not allowed, only grades %s)",
			grade, strings.Join(course.AvailableGrades, ", "))
	}

	if spots := course.MaxCapacity - len(course.EnrolledChildren); spots <= 0 {
		return fmt.Sprintf("Course is full (%d/%d)", len(course.EnrolledChildren), course.MaxCapacity)
	}

	return ""
}
