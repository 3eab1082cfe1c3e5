// Package school holds the in-memory school records that feed the
// dashboard and the props of the detail, form, fee and attendance modals.
package school

import (
	"strings"
	"time"
)

// StudentStatus is the enrollment state of a student.
type StudentStatus string

const (
	StatusActive    StudentStatus = "active"
	StatusSuspended StudentStatus = "suspended"
	StatusGraduated StudentStatus = "graduated"
)

type Student struct {
	ID        string        `yaml:"id"`
	FirstName string        `yaml:"first_name"`
	LastName  string        `yaml:"last_name"`
	ClassID   string        `yaml:"class_id"`
	Guardian  string        `yaml:"guardian"`
	Phone     string        `yaml:"phone"`
	Email     string        `yaml:"email"`
	Status    StudentStatus `yaml:"status"`
	Enrolled  time.Time     `yaml:"enrolled"`
}

// FullName returns "First Last".
func (s Student) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

type Teacher struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Email    string   `yaml:"email"`
	Phone    string   `yaml:"phone"`
	Subjects []string `yaml:"subjects"`
}

type Class struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	TeacherID string `yaml:"teacher_id"`
	Room      string `yaml:"room"`
	Capacity  int    `yaml:"capacity"`
}

type Subject struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

// FeeItem is one line of the fee structure. Amounts are in minor units.
type FeeItem struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Term   string `yaml:"term"`
	Amount int64  `yaml:"amount"`
}

type Payment struct {
	ID        string    `yaml:"id"`
	StudentID string    `yaml:"student_id"`
	Amount    int64     `yaml:"amount"`
	Method    string    `yaml:"method"`
	Reference string    `yaml:"reference"`
	PaidAt    time.Time `yaml:"paid_at"`
}

// AttendanceStatus is the mark given to a student for one day.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
)

type AttendanceRecord struct {
	StudentID string           `yaml:"student_id"`
	ClassID   string           `yaml:"class_id"`
	Date      time.Time        `yaml:"date"`
	Status    AttendanceStatus `yaml:"status"`
}

// AttendanceSummary aggregates attendance marks for one student.
type AttendanceSummary struct {
	StudentID string
	Name      string
	Present   int
	Absent    int
	Late      int
}

// Rate returns the share of days the student attended, late included.
func (a AttendanceSummary) Rate() float64 {
	total := a.Present + a.Absent + a.Late
	if total == 0 {
		return 0
	}
	return float64(a.Present+a.Late) / float64(total)
}

type Event struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Location    string    `yaml:"location"`
	ClassID     string    `yaml:"class_id"`
	Start       time.Time `yaml:"start"`
	End         time.Time `yaml:"end"`
}

type TimetableSlot struct {
	ClassID   string       `yaml:"class_id"`
	Day       time.Weekday `yaml:"day"`
	Start     string       `yaml:"start"`
	SubjectID string       `yaml:"subject_id"`
	TeacherID string       `yaml:"teacher_id"`
}

// SameDay reports whether a and b fall on the same calendar date in a's
// location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
