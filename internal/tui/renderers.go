package tui

import (
	"github.com/hay-kot/campus/internal/core/modal"
	tuinotify "github.com/hay-kot/campus/internal/tui/notify"
)

// RendererEnv carries what the renderers need from the program: the
// currency fees are shown in, the notification bus, the directory file
// pickers browse and the search source.
type RendererEnv struct {
	Currency string
	Bus      *tuinotify.Bus
	FileRoot string
	Searcher Searcher
}

// DefaultRegistry returns a registry with a renderer for every kind
// except KindUnknown.
func DefaultRegistry(env RendererEnv) *Registry {
	r := NewRegistry()
	registerRenderers(r, env)
	return r
}

func registerRenderers(r *Registry, env RendererEnv) {
	if env.FileRoot == "" {
		env.FileRoot = "."
	}

	// Confirmation
	r.Register(modal.KindConfirm, Typed(newConfirmModal))
	r.Register(modal.KindDeleteConfirm, Typed(newDeleteModal))
	r.Register(modal.KindLogoutConfirm, Typed(newLogoutModal))

	// Notifications
	for _, k := range []modal.Kind{modal.KindSuccess, modal.KindError, modal.KindWarning, modal.KindInfo} {
		r.Register(k, noticeRenderer(k))
	}
	r.Register(modal.KindNotificationHistory, Typed(newNotificationModal(env.Bus)))

	// Details
	r.Register(modal.KindUserDetail, Typed(renderUserDetail))
	r.Register(modal.KindStudentDetail, Typed(studentDetailRenderer(env.Currency)))
	r.Register(modal.KindTeacherDetail, Typed(renderTeacherDetail))
	r.Register(modal.KindClassDetail, Typed(renderClassDetail))
	r.Register(modal.KindEventDetail, Typed(renderEventDetail))

	// Forms
	r.Register(modal.KindStudentForm, Typed(renderStudentForm))
	r.Register(modal.KindTeacherForm, Typed(renderTeacherForm))
	r.Register(modal.KindClassForm, Typed(renderClassForm))
	r.Register(modal.KindSubjectForm, Typed(renderSubjectForm))
	r.Register(modal.KindExamForm, Typed(renderExamForm))
	r.Register(modal.KindAnnouncementForm, Typed(renderAnnouncementForm))

	// Fees
	r.Register(modal.KindFeeCollection, Typed(feeCollectionRenderer(env.Currency)))
	r.Register(modal.KindFeeReceipt, Typed(feeReceiptRenderer(env.Currency)))
	r.Register(modal.KindFeeStructure, Typed(feeStructureRenderer(env.Currency)))

	// Attendance
	r.Register(modal.KindMarkAttendance, Typed(renderMarkAttendance))
	r.Register(modal.KindAttendanceReport, Typed(renderAttendanceReport))

	// Calendar and scheduling
	r.Register(modal.KindEventForm, Typed(renderEventForm))
	r.Register(modal.KindCalendarDay, Typed(renderCalendarDay))
	r.Register(modal.KindScheduleClass, Typed(renderScheduleClass))
	r.Register(modal.KindTimetable, Typed(renderTimetable))

	// Files and media
	r.Register(modal.KindFileUpload, Typed(fileUploadRenderer(env.FileRoot)))
	r.Register(modal.KindImagePreview, Typed(renderImagePreview))
	r.Register(modal.KindDocumentViewer, Typed(renderDocumentViewer))

	// Settings
	r.Register(modal.KindSettings, Typed(renderSettings))
	r.Register(modal.KindProfileSettings, Typed(renderProfileSettings))
	r.Register(modal.KindChangePassword, Typed(renderChangePassword))
	r.Register(modal.KindNotificationSettings, Typed(renderNotificationSettings))

	// Data
	r.Register(modal.KindDataImport, Typed(dataImportRenderer(env.FileRoot)))
	r.Register(modal.KindDataExport, Typed(renderDataExport))

	// Search and filter
	r.Register(modal.KindAdvancedSearch, Typed(advancedSearchRenderer(env.Searcher)))
	r.Register(modal.KindFilter, Typed(renderFilter))

	// Misc
	r.Register(modal.KindHelp, Typed(renderHelp))
	r.Register(modal.KindLoading, Typed(renderLoading))
}
