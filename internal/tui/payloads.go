package tui

import (
	"time"

	"github.com/hay-kot/campus/internal/core/school"
)

// Payloads passed to OnConfirm by renderers whose result is not a plain
// school record. Student, teacher, class, subject, event, payment and
// timetable forms confirm with the school type itself.

type ExamDraft struct {
	ClassID   string
	SubjectID string
	Title     string
	Date      time.Time
	MaxScore  int
}

type Announcement struct {
	Title    string
	Body     string
	Audience []string
}

type AttendanceMarks struct {
	ClassID string
	Date    time.Time
	Marks   map[string]school.AttendanceStatus
}

type ProfileUpdate struct {
	Name  string
	Email string
	Phone string
}

type PasswordChange struct {
	UserID  string
	Current string
	New     string
}

type NotificationPrefs struct {
	Enabled []string
}

type ThemeChoice struct {
	Theme string
}

// FileSelection is the confirmed result of the file upload and data
// import pickers.
type FileSelection struct {
	EntityType string
	Paths      []string
	Bytes      int64
}

type ExportRequest struct {
	EntityType string
	Format     string
	Path       string
}

type FilterSelection struct {
	Field    string
	Selected []string
}
