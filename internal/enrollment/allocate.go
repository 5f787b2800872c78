package enrollment

// AllocateFirstChoices rebuilds one day's placements from scratch: every
// course roster for the day is cleared, then each child is assigned
// their first choice, or home when the choice is go-home, closed, or
// not open to their grade. Capacity is deliberately not checked, so a
// popular course may end up overfilled; overfill is surfaced by the
// queries, not prevented here. Second and third choices are never
// consulted.
//
// The pass is independent per child, so the result does not depend on
// child order, and re-running it on the same preferences is a no-op.
func AllocateFirstChoices(dayIndex int, sem Semester) Semester {
	day, ok := sem.Day(dayIndex)
	if !ok {
		return sem
	}

	out := sem.Clone()

	// Decide each child's placement from their first choice alone.
	placements := make(map[string]string, len(out.Children))
	for _, child := range out.Children {
		placements[child.ID] = placeByFirstChoice(child, dayIndex, day)
	}

	// Rebuild both sides of the mirror from the placement map.
	for i := range out.Schedule[dayIndex].Courses {
		course := &out.Schedule[dayIndex].Courses[i]
		course.EnrolledChildren = []string{}
		for _, child := range out.Children {
			if placements[child.ID] == course.ID {
				course.EnrolledChildren = append(course.EnrolledChildren, child.ID)
			}
		}
	}
	for i := range out.Children {
		child := &out.Children[i]
		if target := placements[child.ID]; target == GoHome {
			child.Enrollments[dayIndex] = Home()
		} else {
			child.Enrollments[dayIndex] = Enrolled(target)
		}
	}

	return out
}

func placeByFirstChoice(child Child, dayIndex int, day SchoolDay) string {
	if child.FirstChoice == GoHome {
		return GoHome
	}
	course, ok := day.Course(child.FirstChoice)
	if !ok || course.ForcedFull || !course.AllowsGrade(child.Grade()) {
		return GoHome
	}
	return child.FirstChoice
}
