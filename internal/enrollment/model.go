package enrollment

import (
	"fmt"
	"strings"
	"time"
)

// GoHome is the sentinel activity meaning the child leaves after school
// instead of attending a course. It is valid anywhere a course ID is
// accepted (preferences, move targets).
const GoHome = "go-home"

// ActivityKind tags a child's per-day status.
type ActivityKind string

const (
	// ActivityEnrolled means the child attends the referenced course.
	ActivityEnrolled ActivityKind = "enrolled"
	// ActivityHome means the child intentionally goes home that day.
	ActivityHome ActivityKind = "home"
	// ActivityUnassigned means the child has no placement (waiting list).
	ActivityUnassigned ActivityKind = "unassigned"
)

// DayActivity is a child's status for a single school day. CourseID is
// set only when Kind is ActivityEnrolled.
type DayActivity struct {
	Kind     ActivityKind `json:"kind"`
	CourseID string       `json:"course_id,omitempty"`
}

// Enrolled builds an enrolled activity for courseID.
func Enrolled(courseID string) DayActivity {
	return DayActivity{Kind: ActivityEnrolled, CourseID: courseID}
}

// Home is the explicit going-home activity.
func Home() DayActivity { return DayActivity{Kind: ActivityHome} }

// Unassigned is the explicit waiting-list activity.
func Unassigned() DayActivity { return DayActivity{Kind: ActivityUnassigned} }

// Child is one enrolled child with their three ranked course preferences
// and per-day placements. Enrollments is keyed by day index into the
// semester schedule; a missing key means the day was never allocated or
// touched by an administrator.
type Child struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Class        string              `json:"class"`
	FirstChoice  string              `json:"first_choice"`
	SecondChoice string              `json:"second_choice"`
	ThirdChoice  string              `json:"third_choice"`
	Enrollments  map[int]DayActivity `json:"enrollments"`
}

// Grade extracts the grade level from the class label ("4A" -> "4").
func (c Child) Grade() string {
	if c.Class == "" {
		return ""
	}
	return c.Class[:1]
}

// Choices returns the ranked preferences in order.
func (c Child) Choices() [3]string {
	return [3]string{c.FirstChoice, c.SecondChoice, c.ThirdChoice}
}

// Activity returns the child's status for a day. A missing entry reports
// ActivityUnassigned with ok=false so callers can fall back to the
// preference-based classification.
func (c Child) Activity(dayIndex int) (DayActivity, bool) {
	a, ok := c.Enrollments[dayIndex]
	if !ok {
		return Unassigned(), false
	}
	return a, true
}

// CourseNote is an administrator annotation on a course. IsResolved is
// only meaningful while IsProblem is set; clearing IsProblem clears it.
type CourseNote struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	Author     string    `json:"author"`
	Timestamp  time.Time `json:"timestamp"`
	IsProblem  bool      `json:"is_problem"`
	IsResolved bool      `json:"is_resolved"`
}

// Course is one capacity-bounded activity slot on a single day. The same
// course ID may appear on several days; each day's entry carries its own
// roster and notes. MaxCapacity is a soft cap: rosters may exceed it.
type Course struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	MaxCapacity      int          `json:"max_capacity"`
	EnrolledChildren []string     `json:"enrolled_children"`
	Teacher          string       `json:"teacher"`
	Room             string       `json:"room"`
	AvailableGrades  []string     `json:"available_grades"`
	ForcedFull       bool         `json:"forced_full,omitempty"`
	Notes            []CourseNote `json:"notes"`
}

// AllowsGrade reports whether the course admits the given grade level.
func (c Course) AllowsGrade(grade string) bool {
	for _, g := range c.AvailableGrades {
		if g == grade {
			return true
		}
	}
	return false
}

// HasChild reports whether childID is on the course roster.
func (c Course) HasChild(childID string) bool {
	for _, id := range c.EnrolledChildren {
		if id == childID {
			return true
		}
	}
	return false
}

// SchoolDay is one day's course offering.
type SchoolDay struct {
	Day     string   `json:"day"`
	Courses []Course `json:"courses"`
}

// Course returns the day's course with the given ID.
func (d SchoolDay) Course(courseID string) (Course, bool) {
	for _, c := range d.Courses {
		if c.ID == courseID {
			return c, true
		}
	}
	return Course{}, false
}

// ApprovalKey identifies a per-day course review mark. Approval is
// observational metadata: it lives next to the schedule but is not part
// of the roster/enrollment mirror.
type ApprovalKey struct {
	SemesterID string
	DayIndex   int
	CourseID   string
}

// MarshalText encodes the key as "semester:day:course" so approval maps
// survive JSON round trips as object keys.
func (k ApprovalKey) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%s:%d:%s", k.SemesterID, k.DayIndex, k.CourseID)), nil
}

// UnmarshalText decodes a "semester:day:course" key.
func (k *ApprovalKey) UnmarshalText(text []byte) error {
	parts := strings.SplitN(string(text), ":", 3)
	if len(parts) != 3 {
		return fmt.Errorf("invalid approval key %q", string(text))
	}
	var day int
	if _, err := fmt.Sscanf(parts[1], "%d", &day); err != nil {
		return fmt.Errorf("invalid approval key %q: %w", string(text), err)
	}
	k.SemesterID = parts[0]
	k.DayIndex = day
	k.CourseID = parts[2]
	return nil
}

// Semester is the unit of mutation: the full dataset for one term. Every
// write operation takes a Semester value and returns a replacement, so
// the course rosters and child enrollment maps always change together.
type Semester struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Schedule  []SchoolDay          `json:"schedule"`
	Children  []Child              `json:"children"`
	Approvals map[ApprovalKey]bool `json:"approvals,omitempty"`
}

// Day returns the schedule entry for dayIndex.
func (s Semester) Day(dayIndex int) (SchoolDay, bool) {
	if dayIndex < 0 || dayIndex >= len(s.Schedule) {
		return SchoolDay{}, false
	}
	return s.Schedule[dayIndex], true
}

// Child returns the child with the given ID.
func (s Semester) Child(childID string) (Child, bool) {
	for _, c := range s.Children {
		if c.ID == childID {
			return c, true
		}
	}
	return Child{}, false
}

// Clone deep-copies the semester. All write operations clone first and
// mutate the copy, never the input.
func (s Semester) Clone() Semester {
	out := Semester{
		ID:       s.ID,
		Name:     s.Name,
		Schedule: make([]SchoolDay, len(s.Schedule)),
		Children: make([]Child, len(s.Children)),
	}
	for i, day := range s.Schedule {
		nd := SchoolDay{Day: day.Day, Courses: make([]Course, len(day.Courses))}
		for j, course := range day.Courses {
			nc := course
			nc.EnrolledChildren = append([]string(nil), course.EnrolledChildren...)
			nc.AvailableGrades = append([]string(nil), course.AvailableGrades...)
			nc.Notes = append([]CourseNote(nil), course.Notes...)
			nd.Courses[j] = nc
		}
		out.Schedule[i] = nd
	}
	for i, child := range s.Children {
		nc := child
		nc.Enrollments = make(map[int]DayActivity, len(child.Enrollments))
		for day, act := range child.Enrollments {
			nc.Enrollments[day] = act
		}
		out.Children[i] = nc
	}
	if s.Approvals != nil {
		out.Approvals = make(map[ApprovalKey]bool, len(s.Approvals))
		for k, v := range s.Approvals {
			out.Approvals[k] = v
		}
	}
	return out
}
