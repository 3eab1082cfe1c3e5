package modal

import (
	"time"

	"github.com/hay-kot/campus/internal/core/notify"
	"github.com/hay-kot/campus/internal/core/school"
)

// Props is the tagged union of modal prop records. Each kind has exactly
// one props type, and the kind of an entry is always derived from it.
type Props interface {
	Kind() Kind
}

// Variant controls the emphasis of a confirmation dialog.
type Variant string

const (
	VariantInfo    Variant = "info"
	VariantWarning Variant = "warning"
	VariantDanger  Variant = "danger"
)

// Confirmation.

type ConfirmProps struct {
	Title       string
	Message     string
	ConfirmText string
	CancelText  string
	Variant     Variant
}

type DeleteConfirmProps struct {
	EntityName  string
	EntityType  string
	Title       string
	Message     string
	ConfirmText string
	CancelText  string
}

type LogoutConfirmProps struct {
	UserName string
}

// Notifications.

// Notice holds the fields shared by every toast-style notification.
type Notice struct {
	Title   string
	Message string
	// Duration is the auto-dismiss delay. Zero means the notice stays
	// until dismissed.
	Duration time.Duration
}

type (
	SuccessNotice struct{ Notice }
	ErrorNotice   struct{ Notice }
	WarningNotice struct{ Notice }
	InfoNotice    struct{ Notice }
)

// Level maps a notice kind to its notification level.
func (k Kind) Level() notify.Level {
	switch k { //nolint:exhaustive // non-notice kinds default to info
	case KindSuccess:
		return notify.LevelSuccess
	case KindError:
		return notify.LevelError
	case KindWarning:
		return notify.LevelWarning
	}
	return notify.LevelInfo
}

type NotificationHistoryProps struct {
	Title string
}

// Details.

type UserDetailProps struct {
	UserID string
	Name   string
	Role   string
	Email  string
}

type StudentDetailProps struct {
	Student   school.Student
	ClassName string
	Balance   int64
}

type TeacherDetailProps struct {
	Teacher school.Teacher
	Classes []school.Class
}

type ClassDetailProps struct {
	Class    school.Class
	Teacher  string
	Students []school.Student
}

type EventDetailProps struct {
	Event school.Event
}

// Forms. A nil record means "create".

type StudentFormProps struct {
	Student *school.Student
	Classes []school.Class
}

type TeacherFormProps struct {
	Teacher  *school.Teacher
	Subjects []school.Subject
}

type ClassFormProps struct {
	Class    *school.Class
	Teachers []school.Teacher
}

type SubjectFormProps struct {
	Subject *school.Subject
}

type ExamFormProps struct {
	ClassID  string
	Subjects []school.Subject
	Date     time.Time
}

type AnnouncementFormProps struct {
	Audience []string
}

// Fees.

type FeeCollectionProps struct {
	Student     school.Student
	Outstanding int64
	Methods     []string
}

type FeeReceiptProps struct {
	Payment school.Payment
	Student school.Student
}

type FeeStructureProps struct {
	Term  string
	Items []school.FeeItem
}

// Attendance.

type MarkAttendanceProps struct {
	Class    school.Class
	Date     time.Time
	Students []school.Student
}

type AttendanceReportProps struct {
	Class   school.Class
	Summary []school.AttendanceSummary
}

// Calendar and scheduling.

type EventFormProps struct {
	Event   *school.Event
	Date    time.Time
	Classes []school.Class
}

type CalendarDayProps struct {
	Date   time.Time
	Events []school.Event
}

type ScheduleClassProps struct {
	Class    school.Class
	Subjects []school.Subject
	Teachers []school.Teacher
}

type TimetableProps struct {
	Class    school.Class
	Slots    []school.TimetableSlot
	Subjects []school.Subject // for labels
	Teachers []school.Teacher
}

// Files and media.

type FileUploadProps struct {
	Title string
	// Accept holds doublestar patterns a chosen path must match, e.g.
	// "**/*.csv". Empty accepts anything.
	Accept   []string
	MaxBytes int64
	Multiple bool
}

type ImagePreviewProps struct {
	Path    string
	Caption string
}

type DocumentViewerProps struct {
	Title    string
	Markdown string
}

// Settings.

type SettingsProps struct {
	Theme  string
	Themes []string
}

type ProfileSettingsProps struct {
	Name  string
	Email string
	Phone string
}

type ChangePasswordProps struct {
	UserID string
}

type NotificationSettingsProps struct {
	Channels []string
	Enabled  []string
}

// Data import/export.

type DataImportProps struct {
	EntityType string
	Accept     []string
}

type DataExportProps struct {
	EntityType string
	Formats    []string
}

// Search and filter.

type AdvancedSearchProps struct {
	Scope string
	Query string
}

type FilterProps struct {
	Field    string
	Options  []string
	Selected []string
}

// Misc.

type HelpSection struct {
	Title   string
	Entries [][2]string
}

type HelpProps struct {
	Title    string
	Sections []HelpSection
}

type LoadingProps struct {
	Message  string
	Progress int
}

// UnknownProps reports KindUnknown and is never rendered by a real
// renderer.
type UnknownProps struct {
	Name string
}

func (ConfirmProps) Kind() Kind              { return KindConfirm }
func (DeleteConfirmProps) Kind() Kind        { return KindDeleteConfirm }
func (LogoutConfirmProps) Kind() Kind        { return KindLogoutConfirm }
func (SuccessNotice) Kind() Kind             { return KindSuccess }
func (ErrorNotice) Kind() Kind               { return KindError }
func (WarningNotice) Kind() Kind             { return KindWarning }
func (InfoNotice) Kind() Kind                { return KindInfo }
func (NotificationHistoryProps) Kind() Kind  { return KindNotificationHistory }
func (UserDetailProps) Kind() Kind           { return KindUserDetail }
func (StudentDetailProps) Kind() Kind        { return KindStudentDetail }
func (TeacherDetailProps) Kind() Kind        { return KindTeacherDetail }
func (ClassDetailProps) Kind() Kind          { return KindClassDetail }
func (EventDetailProps) Kind() Kind          { return KindEventDetail }
func (StudentFormProps) Kind() Kind          { return KindStudentForm }
func (TeacherFormProps) Kind() Kind          { return KindTeacherForm }
func (ClassFormProps) Kind() Kind            { return KindClassForm }
func (SubjectFormProps) Kind() Kind          { return KindSubjectForm }
func (ExamFormProps) Kind() Kind             { return KindExamForm }
func (AnnouncementFormProps) Kind() Kind     { return KindAnnouncementForm }
func (FeeCollectionProps) Kind() Kind        { return KindFeeCollection }
func (FeeReceiptProps) Kind() Kind           { return KindFeeReceipt }
func (FeeStructureProps) Kind() Kind         { return KindFeeStructure }
func (MarkAttendanceProps) Kind() Kind       { return KindMarkAttendance }
func (AttendanceReportProps) Kind() Kind     { return KindAttendanceReport }
func (EventFormProps) Kind() Kind            { return KindEventForm }
func (CalendarDayProps) Kind() Kind          { return KindCalendarDay }
func (ScheduleClassProps) Kind() Kind        { return KindScheduleClass }
func (TimetableProps) Kind() Kind            { return KindTimetable }
func (FileUploadProps) Kind() Kind           { return KindFileUpload }
func (ImagePreviewProps) Kind() Kind         { return KindImagePreview }
func (DocumentViewerProps) Kind() Kind       { return KindDocumentViewer }
func (SettingsProps) Kind() Kind             { return KindSettings }
func (ProfileSettingsProps) Kind() Kind      { return KindProfileSettings }
func (ChangePasswordProps) Kind() Kind       { return KindChangePassword }
func (NotificationSettingsProps) Kind() Kind { return KindNotificationSettings }
func (DataImportProps) Kind() Kind           { return KindDataImport }
func (DataExportProps) Kind() Kind           { return KindDataExport }
func (AdvancedSearchProps) Kind() Kind       { return KindAdvancedSearch }
func (FilterProps) Kind() Kind               { return KindFilter }
func (HelpProps) Kind() Kind                 { return KindHelp }
func (LoadingProps) Kind() Kind              { return KindLoading }
func (UnknownProps) Kind() Kind              { return KindUnknown }
