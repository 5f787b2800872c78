package enrollment

// BlockedError reports a refused move together with the oracle's reason.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string { return e.Reason }

// MoveChildToCourse moves a single child on one day, regardless of any
// blocking reason (administrator override). The child is removed from
// whichever course roster currently holds them, added to the target
// roster unless the target is go-home, and their enrollment entry is
// updated in the same write, keeping rosters and enrollments in
// lockstep.
//
// Unknown children and unknown non-home targets leave the semester
// unchanged.
func MoveChildToCourse(childID, targetCourseID string, dayIndex int, sem Semester) Semester {
	day, ok := sem.Day(dayIndex)
	if !ok {
		return sem
	}
	if _, ok := sem.Child(childID); !ok {
		return sem
	}
	if targetCourseID != GoHome {
		if _, ok := day.Course(targetCourseID); !ok {
			return sem
		}
	}

	out := sem.Clone()

	for i := range out.Schedule[dayIndex].Courses {
		course := &out.Schedule[dayIndex].Courses[i]
		course.EnrolledChildren = removeID(course.EnrolledChildren, childID)
		if course.ID == targetCourseID {
			course.EnrolledChildren = append(course.EnrolledChildren, childID)
		}
	}

	for i := range out.Children {
		if out.Children[i].ID != childID {
			continue
		}
		if targetCourseID == GoHome {
			out.Children[i].Enrollments[dayIndex] = Home()
		} else {
			out.Children[i].Enrollments[dayIndex] = Enrolled(targetCourseID)
		}
	}

	return out
}

// TryMoveChildToCourse is the validating variant: it refuses with a
// BlockedError when the oracle reports a reason, so overrides have to go
// through MoveChildToCourse explicitly.
func TryMoveChildToCourse(childID, targetCourseID string, dayIndex int, sem Semester) (Semester, error) {
	if reason := BlockingReason(childID, targetCourseID, dayIndex, sem); reason != "" {
		return sem, &BlockedError{Reason: reason}
	}
	return MoveChildToCourse(childID, targetCourseID, dayIndex, sem), nil
}

// MoveChildToWaitingList takes the child off every course roster for the
// day and marks them unassigned. Unlike a go-home move this records no
// intent: the child is simply without a placement.
func MoveChildToWaitingList(childID string, dayIndex int, sem Semester) Semester {
	if _, ok := sem.Day(dayIndex); !ok {
		return sem
	}
	if _, ok := sem.Child(childID); !ok {
		return sem
	}

	out := sem.Clone()

	for i := range out.Schedule[dayIndex].Courses {
		course := &out.Schedule[dayIndex].Courses[i]
		course.EnrolledChildren = removeID(course.EnrolledChildren, childID)
	}
	for i := range out.Children {
		if out.Children[i].ID == childID {
			out.Children[i].Enrollments[dayIndex] = Unassigned()
		}
	}

	return out
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
