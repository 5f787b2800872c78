package enrollment

import "sort"

// ChildrenInCourse resolves a course roster to child records, in roster
// order. Roster entries without a matching child are skipped.
func ChildrenInCourse(courseID string, dayIndex int, sem Semester) []Child {
	day, ok := sem.Day(dayIndex)
	if !ok {
		return nil
	}
	course, ok := day.Course(courseID)
	if !ok {
		return nil
	}
	children := make([]Child, 0, len(course.EnrolledChildren))
	for _, id := range course.EnrolledChildren {
		if child, ok := sem.Child(id); ok {
			children = append(children, child)
		}
	}
	return children
}

// ScheduleEntry is one day of a child's week as shown on the board.
// Activity is a course ID, or the go-home sentinel when the child has no
// enrollment that day.
type ScheduleEntry struct {
	Day      string `json:"day"`
	DayIndex int    `json:"day_index"`
	Activity string `json:"activity"`
}

// ChildSchedule maps every day to the child's activity, optionally
// leaving out the currently selected day.
func ChildSchedule(childID string, sem Semester, excludeDay bool, selectedDay int) []ScheduleEntry {
	child, ok := sem.Child(childID)
	if !ok {
		return nil
	}
	entries := make([]ScheduleEntry, 0, len(sem.Schedule))
	for i, day := range sem.Schedule {
		if excludeDay && i == selectedDay {
			continue
		}
		activity := GoHome
		if a, ok := child.Activity(i); ok && a.Kind == ActivityEnrolled {
			activity = a.CourseID
		}
		entries = append(entries, ScheduleEntry{Day: day.Day, DayIndex: i, Activity: activity})
	}
	return entries
}

// CurrentRank reports which ranked choice (1..3) the child's current
// enrollment satisfies, or 0 when the child is not enrolled that day or
// the enrollment matches no choice. Home never has a rank.
func CurrentRank(childID string, dayIndex int, sem Semester) int {
	child, ok := sem.Child(childID)
	if !ok {
		return 0
	}
	current, ok := child.Activity(dayIndex)
	if !ok || current.Kind != ActivityEnrolled {
		return 0
	}
	for rank, choice := range child.Choices() {
		if choice == current.CourseID {
			return rank + 1
		}
	}
	return 0
}

// RankOf reports which of the child's three ranked choices names the
// activity, ignoring the current enrollment. Go-home and unranked
// activities yield 0.
func RankOf(childID, activity string, sem Semester) int {
	child, ok := sem.Child(childID)
	if !ok || activity == GoHome {
		return 0
	}
	for rank, choice := range child.Choices() {
		if choice == activity {
			return rank + 1
		}
	}
	return 0
}

// MoveTarget is a course a child could be moved to, annotated with its
// remaining seats. Unlimited is true only for the go-home entry.
type MoveTarget struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Seats     int    `json:"seats"`
	Unlimited bool   `json:"unlimited"`
}

// AvailableMoveTargets lists every other course on the day with seats
// remaining, followed by the go-home option. Closed courses count as
// having no seats.
func AvailableMoveTargets(currentCourseID string, dayIndex int, sem Semester) []MoveTarget {
	day, ok := sem.Day(dayIndex)
	if !ok {
		return nil
	}
	var targets []MoveTarget
	for _, course := range day.Courses {
		if course.ID == currentCourseID {
			continue
		}
		seats, _ := AvailableSeats(course.ID, dayIndex, sem)
		if seats <= 0 {
			continue
		}
		targets = append(targets, MoveTarget{ID: course.ID, Name: course.Name, Seats: seats})
	}
	targets = append(targets, MoveTarget{ID: GoHome, Name: "Go Home", Unlimited: true})
	return targets
}

// HasGoHomePreference reports whether any of the child's three choices
// is the go-home sentinel. This is what decides whether a roster-less
// child is intentionally going home or stuck waiting.
func HasGoHomePreference(child Child) bool {
	for _, choice := range child.Choices() {
		if choice == GoHome {
			return true
		}
	}
	return false
}

// GoingHomeChildren lists children without a roster entry on the day who
// have a go-home preference, sorted by class then name.
func GoingHomeChildren(dayIndex int, sem Semester) []Child {
	return offRosterChildren(dayIndex, sem, true)
}

// WaitingChildren lists children without a roster entry on the day and
// without any go-home preference: genuinely unplaced, sorted by class
// then name. A child never appears in both this and GoingHomeChildren.
func WaitingChildren(dayIndex int, sem Semester) []Child {
	return offRosterChildren(dayIndex, sem, false)
}

func offRosterChildren(dayIndex int, sem Semester, goingHome bool) []Child {
	day, ok := sem.Day(dayIndex)
	if !ok {
		return nil
	}
	onRoster := make(map[string]bool)
	for _, course := range day.Courses {
		for _, id := range course.EnrolledChildren {
			onRoster[id] = true
		}
	}
	var out []Child
	for _, child := range sem.Children {
		if onRoster[child.ID] {
			continue
		}
		if HasGoHomePreference(child) == goingHome {
			out = append(out, child)
		}
	}
	SortChildren(out)
	return out
}

// SortChildren orders children by class label, then by name.
func SortChildren(children []Child) {
	sort.SliceStable(children, func(i, j int) bool {
		if children[i].Class != children[j].Class {
			return children[i].Class < children[j].Class
		}
		return children[i].Name < children[j].Name
	})
}

// OverfillReport flags one course whose roster exceeds its capacity.
type OverfillReport struct {
	CourseID    string `json:"course_id"`
	CourseName  string `json:"course_name"`
	Enrolled    int    `json:"enrolled"`
	MaxCapacity int    `json:"max_capacity"`
}

// OverfilledCourses lists the day's courses with more children than
// seats. Overfill is a legitimate state the board surfaces for manual
// correction, not an error.
func OverfilledCourses(dayIndex int, sem Semester) []OverfillReport {
	day, ok := sem.Day(dayIndex)
	if !ok {
		return nil
	}
	var out []OverfillReport
	for _, course := range day.Courses {
		if len(course.EnrolledChildren) > course.MaxCapacity {
			out = append(out, OverfillReport{
				CourseID:    course.ID,
				CourseName:  course.Name,
				Enrolled:    len(course.EnrolledChildren),
				MaxCapacity: course.MaxCapacity,
			})
		}
	}
	return out
}
