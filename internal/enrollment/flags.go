package enrollment

// ToggleForcedFull flips a course's closure flag for one day. A closed
// course reports zero seats and sends first-choice children home during
// allocation.
func ToggleForcedFull(courseID string, dayIndex int, sem Semester) Semester {
	return updateCourse(courseID, dayIndex, sem, func(course *Course) {
		course.ForcedFull = !course.ForcedFull
	})
}

// ToggleApproval flips the administrator review mark for a course on one
// day. Approvals are keyed by (semester, day, course) and stored next to
// the schedule; they never affect rosters or eligibility.
func ToggleApproval(courseID string, dayIndex int, sem Semester) Semester {
	day, ok := sem.Day(dayIndex)
	if !ok {
		return sem
	}
	if _, ok := day.Course(courseID); !ok {
		return sem
	}
	out := sem.Clone()
	if out.Approvals == nil {
		out.Approvals = make(map[ApprovalKey]bool)
	}
	key := ApprovalKey{SemesterID: out.ID, DayIndex: dayIndex, CourseID: courseID}
	out.Approvals[key] = !out.Approvals[key]
	return out
}

// IsApproved reports the review mark for a course on one day.
func IsApproved(courseID string, dayIndex int, sem Semester) bool {
	return sem.Approvals[ApprovalKey{SemesterID: sem.ID, DayIndex: dayIndex, CourseID: courseID}]
}
