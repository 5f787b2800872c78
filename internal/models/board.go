package models

import "github.com/KoruApps/courseboard-go/internal/enrollment"

// BoardChild is a child as shown inside a course panel or one of the
// go-home/waiting sections.
type BoardChild struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Class       string `json:"class"`
	CurrentRank int    `json:"current_rank,omitempty"`
}

// BoardCourse is one course panel for the selected day.
type BoardCourse struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Teacher     string                  `json:"teacher"`
	Room        string                  `json:"room"`
	MaxCapacity int                     `json:"max_capacity"`
	Grades      []string                `json:"available_grades"`
	ForcedFull  bool                    `json:"forced_full"`
	Approved    bool                    `json:"approved"`
	Overfilled  bool                    `json:"overfilled"`
	Seats       int                     `json:"seats"`
	Children    []BoardChild            `json:"children"`
	Notes       []enrollment.CourseNote `json:"notes"`
}

// BoardResponse is the whole state of the board for one day: every
// course panel plus the partition of roster-less children into
// intentionally-home and waiting.
type BoardResponse struct {
	SemesterID   string               `json:"semester_id"`
	SemesterName string               `json:"semester_name"`
	Day          string               `json:"day"`
	DayIndex     int                  `json:"day_index"`
	Courses      []BoardCourse        `json:"courses"`
	GoingHome    []BoardChild         `json:"going_home"`
	Waiting      []BoardChild         `json:"waiting"`
	Problems     []enrollment.Problem `json:"problems"`
}

// SemesterSummary is a semester list entry.
type SemesterSummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Days     []string `json:"days"`
	Children int      `json:"children"`
}

// ChildScheduleResponse maps one child's week.
type ChildScheduleResponse struct {
	ChildID  string                     `json:"child_id"`
	Name     string                     `json:"name"`
	Schedule []enrollment.ScheduleEntry `json:"schedule"`
}

// BlockingReasonResponse carries the oracle verdict for a proposed move.
// Reason is empty when the move is fine.
type BlockingReasonResponse struct {
	ChildID  string `json:"child_id"`
	TargetID string `json:"target_id"`
	Blocked  bool   `json:"blocked"`
	Reason   string `json:"reason,omitempty"`
}
