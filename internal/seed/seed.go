// Package seed provides the demo dataset the board ships with: two
// semesters of archery/football/volleyball over Monday-Wednesday, and a
// couple of demo accounts. Production deployments load real data into
// the store instead.
package seed

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/KoruApps/courseboard-go/internal/enrollment"
	"github.com/KoruApps/courseboard-go/internal/models"
)

func child(id, name, class, first, second, third string, enrollments map[int]string) enrollment.Child {
	m := make(map[int]enrollment.DayActivity, len(enrollments))
	for day, courseID := range enrollments {
		m[day] = enrollment.Enrolled(courseID)
	}
	return enrollment.Child{
		ID:           id,
		Name:         name,
		Class:        class,
		FirstChoice:  first,
		SecondChoice: second,
		ThirdChoice:  third,
		Enrollments:  m,
	}
}

func course(id, name string, capacity int, teacher, room string, grades []string, roster []string, notes ...enrollment.CourseNote) enrollment.Course {
	if notes == nil {
		notes = []enrollment.CourseNote{}
	}
	return enrollment.Course{
		ID:               id,
		Name:             name,
		MaxCapacity:      capacity,
		EnrolledChildren: roster,
		Teacher:          teacher,
		Room:             room,
		AvailableGrades:  grades,
		Notes:            notes,
	}
}

// Semesters returns the demo semesters. Fall 2024 comes pre-enrolled
// (volleyball deliberately overfilled on Monday so the overfill
// surfacing is visible out of the box); Spring 2025 is a clean slate
// awaiting allocation.
func Semesters() []enrollment.Semester {
	all := []string{"3", "4", "5"}
	upper := []string{"4", "5"}

	fall := enrollment.Semester{
		ID:   "fall2024",
		Name: "Fall 2024",
		Schedule: []enrollment.SchoolDay{
			{
				Day: "Monday",
				Courses: []enrollment.Course{
					course("archery", "Archery", 12, "Ms. Johnson", "Gym A", all, []string{"10", "14", "23"}),
					course("football", "Football", 16, "Mr. Smith", "Field 1", upper, []string{"9", "12", "16", "21", "25"}),
					course("volleyball", "Volleyball", 14, "Ms. Brown", "Gym B", all,
						[]string{"1", "2", "3", "4", "5", "6", "7", "8", "11", "13", "15", "17", "18", "19", "20", "22", "24", "26", "27"},
						enrollment.CourseNote{
							ID:        "note1",
							Text:      "Need to check equipment before class starts",
							Author:    "Admin",
							Timestamp: time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC),
							IsProblem: true,
						}),
				},
			},
			{
				Day: "Tuesday",
				Courses: []enrollment.Course{
					course("archery", "Archery", 12, "Ms. Johnson", "Gym A", all,
						[]string{"2", "3", "8", "9", "11", "14", "17", "20", "23", "26"},
						enrollment.CourseNote{
							ID:        "note2",
							Text:      "Bow strings need replacement",
							Author:    "Ms. Johnson",
							Timestamp: time.Date(2024, time.January, 16, 14, 20, 0, 0, time.UTC),
							IsProblem: true,
						}),
					course("football", "Football", 16, "Mr. Smith", "Field 1", upper,
						[]string{"1", "4", "6", "10", "12", "15", "16", "18", "21", "22", "24", "25"}),
					course("volleyball", "Volleyball", 14, "Ms. Brown", "Gym B", all,
						[]string{"5", "7", "13", "19", "27"}),
				},
			},
			{
				Day: "Wednesday",
				Courses: []enrollment.Course{
					course("archery", "Archery", 12, "Ms. Johnson", "Gym A", all, []string{"5", "6"}),
					course("football", "Football", 16, "Mr. Smith", "Field 1", upper, []string{"3", "10"}),
					course("volleyball", "Volleyball", 14, "Ms. Brown", "Gym B", all,
						[]string{"1", "2", "4", "7", "8", "9", "11", "12", "13", "14", "15", "17", "18", "19"}),
				},
			},
		},
		Children: []enrollment.Child{
			child("1", "Emma Johnson", "4A", "volleyball", "archery", enrollment.GoHome, map[int]string{0: "volleyball", 1: "football", 2: "volleyball"}),
			child("2", "Liam Smith", "3B", "volleyball", "archery", enrollment.GoHome, map[int]string{0: "volleyball", 1: "archery", 2: "volleyball"}),
			child("3", "Olivia Brown", "5A", "volleyball", "archery", "football", map[int]string{0: "volleyball", 1: "archery", 2: "football"}),
			child("4", "Noah Davis", "4B", "volleyball", "football", enrollment.GoHome, map[int]string{0: "volleyball", 1: "football", 2: "volleyball"}),
			child("5", "Ava Wilson", "3A", "volleyball", "archery", enrollment.GoHome, map[int]string{0: "volleyball", 1: "volleyball", 2: "archery"}),
			child("6", "Ethan Miller", "5B", "volleyball", "football", "archery", map[int]string{0: "volleyball", 1: "football", 2: "archery"}),
			child("7", "Sophia Garcia", "4A", "volleyball", "archery", enrollment.GoHome, map[int]string{0: "volleyball", 1: "volleyball", 2: "volleyball"}),
			child("8", "Mason Taylor", "3A", "volleyball", "archery", enrollment.GoHome, map[int]string{0: "volleyball", 1: "archery", 2: "volleyball"}),
			child("9", "Isabella Rodriguez", "4B", "football", "archery", "volleyball", map[int]string{0: "football", 1: "archery", 2: "volleyball"}),
			child("10", "Lucas Anderson", "5A", "archery", "football", "volleyball", map[int]string{0: "archery", 1: "football", 2: "football"}),
			child("11", "Mia Thomas", "3B", "volleyball", "archery", enrollment.GoHome, map[int]string{0: "volleyball", 1: "archery", 2: "volleyball"}),
			child("12", "Alexander Jackson", "4A", "football", "volleyball", "archery", map[int]string{0: "football", 1: "football", 2: "volleyball"}),
			child("13", "Charlotte White", "5B", "volleyball", "football", enrollment.GoHome, map[int]string{0: "volleyball", 1: "football", 2: "volleyball"}),
			child("14", "Benjamin Harris", "3A", "archery", "volleyball", enrollment.GoHome, map[int]string{0: "archery", 1: "archery", 2: "volleyball"}),
			child("15", "Amelia Martin", "4B", "volleyball", "football", enrollment.GoHome, map[int]string{0: "volleyball", 1: "football", 2: "volleyball"}),
			child("16", "James Thompson", "5A", "football", "archery", "volleyball", map[int]string{0: "football", 1: "football", 2: "volleyball"}),
			child("17", "Harper Garcia", "3B", "volleyball", "archery", enrollment.GoHome, map[int]string{0: "volleyball", 1: "archery", 2: "volleyball"}),
			child("18", "William Martinez", "4A", "volleyball", "football", "archery", map[int]string{0: "volleyball", 1: "football", 2: "volleyball"}),
			child("19", "Evelyn Robinson", "5B", "volleyball", "archery", "football", map[int]string{0: "volleyball", 1: "volleyball", 2: "volleyball"}),
			child("20", "Henry Clark", "3A", "volleyball", "archery", enrollment.GoHome, map[int]string{0: "volleyball", 1: "archery"}),
			child("21", "Abigail Rodriguez", "4B", "football", "volleyball", enrollment.GoHome, map[int]string{0: "football", 1: "football"}),
			child("22", "Sebastian Lewis", "5A", "volleyball", "football", "archery", map[int]string{0: "volleyball", 1: "football"}),
			child("23", "Emily Lee", "3B", "archery", "volleyball", enrollment.GoHome, map[int]string{0: "archery", 1: "archery"}),
			child("24", "Matthew Walker", "4A", "volleyball", "football", "archery", map[int]string{0: "volleyball", 1: "football"}),
			child("25", "Elizabeth Hall", "5B", "football", "volleyball", "archery", map[int]string{0: "football", 1: "football"}),
			child("26", "Daniel Allen", "3A", "volleyball", "archery", enrollment.GoHome, map[int]string{0: "volleyball", 1: "archery"}),
			child("27", "Chloe Young", "4B", "volleyball", "archery", "football", map[int]string{0: "volleyball", 1: "volleyball"}),
			child("28", "Sofia Martinez", "3A", enrollment.GoHome, enrollment.GoHome, enrollment.GoHome, nil),
			child("29", "Jack Wilson", "4A", enrollment.GoHome, enrollment.GoHome, enrollment.GoHome, nil),
			child("30", "Luna Chen", "5B", enrollment.GoHome, enrollment.GoHome, enrollment.GoHome, nil),
		},
	}

	spring := enrollment.Semester{
		ID:   "spring2025",
		Name: "Spring 2025",
		Schedule: []enrollment.SchoolDay{
			{Day: "Monday", Courses: springCourses(all, upper)},
			{Day: "Tuesday", Courses: springCourses(all, upper)},
			{Day: "Wednesday", Courses: springCourses(all, upper)},
		},
		Children: []enrollment.Child{
			child("1", "Emma Johnson", "4A", "volleyball", "archery", enrollment.GoHome, nil),
			child("2", "Liam Smith", "3B", "archery", "volleyball", enrollment.GoHome, nil),
			child("3", "Olivia Brown", "5A", "football", "volleyball", "archery", nil),
			child("4", "Noah Davis", "4B", "football", "archery", "volleyball", nil),
			child("5", "Ava Wilson", "3A", "volleyball", "archery", enrollment.GoHome, nil),
			child("6", "Ethan Miller", "5B", "archery", "football", "volleyball", nil),
			child("7", "Sophia Garcia", "4A", "volleyball", "football", "archery", nil),
			child("8", "Mason Taylor", "3A", "archery", "volleyball", enrollment.GoHome, nil),
			child("9", "Isabella Rodriguez", "4B", "archery", "football", enrollment.GoHome, nil),
			child("10", "Lucas Anderson", "5A", "volleyball", "archery", "football", nil),
			child("11", "Mia Thomas", "3B", "archery", "volleyball", enrollment.GoHome, nil),
			child("12", "Alexander Jackson", "4A", "football", "volleyball", enrollment.GoHome, nil),
			child("13", "Charlotte White", "5B", "football", "volleyball", "archery", nil),
			child("14", "Benjamin Harris", "3A", "volleyball", "archery", enrollment.GoHome, nil),
			child("15", "Amelia Martin", "4B", "volleyball", "archery", "football", nil),
			child("16", "James Thompson", "5A", "archery", "football", enrollment.GoHome, nil),
			child("17", "Harper Garcia", "3B", "volleyball", "archery", enrollment.GoHome, nil),
			child("18", "William Martinez", "4A", "archery", "volleyball", "football", nil),
			child("19", "Evelyn Robinson", "5B", "volleyball", "football", "archery", nil),
			child("20", "Henry Clark", "3A", "archery", "volleyball", enrollment.GoHome, nil),
		},
	}

	return []enrollment.Semester{fall, spring}
}

func springCourses(all, upper []string) []enrollment.Course {
	return []enrollment.Course{
		course("archery", "Archery", 12, "Ms. Johnson", "Gym A", all, []string{}),
		course("football", "Football", 16, "Mr. Smith", "Field 1", upper, []string{}),
		course("volleyball", "Volleyball", 14, "Ms. Brown", "Gym B", all, []string{}),
	}
}

// Users returns the demo accounts. Password hashes are generated at
// startup so no hash material is committed.
func Users() ([]models.User, error) {
	demo := []struct {
		username, displayName, password string
		isAdmin                         bool
	}{
		{"admin", "Admin", "admin", true},
		{"johnson", "Ms. Johnson", "archery", false},
	}

	users := make([]models.User, 0, len(demo))
	for _, d := range demo {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		users = append(users, models.User{
			ID:           uuid.New(),
			Username:     d.username,
			DisplayName:  d.displayName,
			PasswordHash: string(hash),
			IsAdmin:      d.isAdmin,
			LoginEnabled: true,
		})
	}
	return users, nil
}
