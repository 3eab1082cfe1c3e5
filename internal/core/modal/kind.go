// Package modal implements the dialog stack that every screen of campus
// shares: one active entry, a LIFO history of suspended entries, typed
// props per kind and the confirm/notify workflows layered on top.
//
// The package has no UI dependency. Rendering lives in internal/tui, which
// owns the single Manager instance and funnels every mutation through the
// Bubble Tea Update loop.
package modal

import "fmt"

// Kind identifies one modal variety. The set is closed and fixed at
// compile time.
type Kind int

const (
	KindNone Kind = iota

	// Confirmation.
	KindConfirm
	KindDeleteConfirm
	KindLogoutConfirm

	// Notifications.
	KindSuccess
	KindError
	KindWarning
	KindInfo
	KindNotificationHistory

	// Details.
	KindUserDetail
	KindStudentDetail
	KindTeacherDetail
	KindClassDetail
	KindEventDetail

	// Forms.
	KindStudentForm
	KindTeacherForm
	KindClassForm
	KindSubjectForm
	KindExamForm
	KindAnnouncementForm

	// Fees.
	KindFeeCollection
	KindFeeReceipt
	KindFeeStructure

	// Attendance.
	KindMarkAttendance
	KindAttendanceReport

	// Calendar and scheduling.
	KindEventForm
	KindCalendarDay
	KindScheduleClass
	KindTimetable

	// Files and media.
	KindFileUpload
	KindImagePreview
	KindDocumentViewer

	// Settings.
	KindSettings
	KindProfileSettings
	KindChangePassword
	KindNotificationSettings

	// Data import/export.
	KindDataImport
	KindDataExport

	// Search and filter.
	KindAdvancedSearch
	KindFilter

	// Misc.
	KindHelp
	KindLoading

	// KindUnknown is never registered with a renderer. It exists so that
	// misconfiguration paths can be exercised.
	KindUnknown

	kindCount
)

var kindNames = [...]string{
	KindNone:                 "none",
	KindConfirm:              "confirm",
	KindDeleteConfirm:        "delete-confirm",
	KindLogoutConfirm:        "logout-confirm",
	KindSuccess:              "success",
	KindError:                "error",
	KindWarning:              "warning",
	KindInfo:                 "info",
	KindNotificationHistory:  "notification-history",
	KindUserDetail:           "user-detail",
	KindStudentDetail:        "student-detail",
	KindTeacherDetail:        "teacher-detail",
	KindClassDetail:          "class-detail",
	KindEventDetail:          "event-detail",
	KindStudentForm:          "student-form",
	KindTeacherForm:          "teacher-form",
	KindClassForm:            "class-form",
	KindSubjectForm:          "subject-form",
	KindExamForm:             "exam-form",
	KindAnnouncementForm:     "announcement-form",
	KindFeeCollection:        "fee-collection",
	KindFeeReceipt:           "fee-receipt",
	KindFeeStructure:         "fee-structure",
	KindMarkAttendance:       "mark-attendance",
	KindAttendanceReport:     "attendance-report",
	KindEventForm:            "event-form",
	KindCalendarDay:          "calendar-day",
	KindScheduleClass:        "schedule-class",
	KindTimetable:            "timetable",
	KindFileUpload:           "file-upload",
	KindImagePreview:         "image-preview",
	KindDocumentViewer:       "document-viewer",
	KindSettings:             "settings",
	KindProfileSettings:      "profile-settings",
	KindChangePassword:       "change-password",
	KindNotificationSettings: "notification-settings",
	KindDataImport:           "data-import",
	KindDataExport:           "data-export",
	KindAdvancedSearch:       "advanced-search",
	KindFilter:               "filter",
	KindHelp:                 "help",
	KindLoading:              "loading",
	KindUnknown:              "unknown",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is a declared kind other than KindNone.
func (k Kind) Valid() bool {
	return k > KindNone && k < kindCount
}

// IsNotice reports whether k is one of the toast-style notification kinds.
func (k Kind) IsNotice() bool {
	switch k { //nolint:exhaustive // only notice kinds return true
	case KindSuccess, KindError, KindWarning, KindInfo:
		return true
	}
	return false
}

// Kinds returns every declared kind except KindNone, in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, int(kindCount)-1)
	for k := KindNone + 1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	for k := KindNone; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("unknown modal kind %q", name)
}
