package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/campus/internal/core/modal"
	"github.com/hay-kot/campus/internal/core/school"
)

func TestStudentDetail_shows_balance(t *testing.T) {
	seed := testSeed(t)
	spy := &handlerSpy{}
	c := studentDetailRenderer("KES")(modal.StudentDetailProps{
		Student:   seed.Students[1],
		ClassName: "Grade 7A",
		Balance:   3470000,
	}, spy.handlers())

	out := c.View(120, 40)
	assert.Contains(t, out, "Bilal Hassan")
	assert.Contains(t, out, "Grade 7A")
	assert.Contains(t, out, "Yusuf Hassan")
	assert.Contains(t, out, "KES 34,700.00")

	c.Update(downKey)
	assert.Equal(t, 0, spy.closed)

	c.Update(enterKey)
	assert.Equal(t, 1, spy.closed)
}

func TestInfoModal_enter_before_view_closes(t *testing.T) {
	spy := &handlerSpy{}
	c := renderUserDetail(modal.UserDetailProps{Name: "School Administrator"}, spy.handlers())

	c.Update(downKey)
	c.Update(enterKey)

	assert.Equal(t, 1, spy.closed)
}

func TestUserDetail_dashes_empty_fields(t *testing.T) {
	c := renderUserDetail(modal.UserDetailProps{Name: "School Administrator"}, Handlers{})

	out := c.View(120, 40)
	assert.Contains(t, out, "School Administrator")
	assert.Contains(t, out, "-")
}

func TestClassDetail_roster(t *testing.T) {
	seed := testSeed(t)
	c := renderClassDetail(modal.ClassDetailProps{
		Class:    seed.Classes[0],
		Teacher:  "Adaeze Okafor",
		Students: seed.Students[:2],
	}, Handlers{})

	out := c.View(120, 40)
	assert.Contains(t, out, "Grade 7A")
	assert.Contains(t, out, "Adaeze Okafor")
	assert.Contains(t, out, "2 / 30")
	assert.Contains(t, out, "Amani Otieno")
}

func TestFeeStructure_totals(t *testing.T) {
	seed := testSeed(t)
	c := feeStructureRenderer("KES")(modal.FeeStructureProps{Term: "Term 1", Items: seed.Fees}, Handlers{})

	out := c.View(120, 40)
	assert.Contains(t, out, "Fee Structure - Term 1")
	assert.Contains(t, out, "Tuition")
	assert.Contains(t, out, "Total KES 54,700.00")
}

func TestFeeReceipt(t *testing.T) {
	seed := testSeed(t)
	c := feeReceiptRenderer("KES")(modal.FeeReceiptProps{Payment: seed.Payments[0], Student: seed.Students[0]}, Handlers{})

	out := c.View(120, 40)
	assert.Contains(t, out, "Receipt pay-0001")
	assert.Contains(t, out, "KES 45,000.00")
	assert.Contains(t, out, "BNK-88421")
}

func TestTimetable_groups_by_day(t *testing.T) {
	seed := testSeed(t)
	c := renderTimetable(modal.TimetableProps{
		Class:    seed.Classes[0],
		Slots:    seed.Timetable,
		Subjects: seed.Subjects,
		Teachers: seed.Teachers,
	}, Handlers{})

	out := c.View(120, 40)
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "Tuesday")
	assert.Contains(t, out, "Mathematics - Adaeze Okafor")
}

func TestTimetable_empty(t *testing.T) {
	c := renderTimetable(modal.TimetableProps{Class: school.Class{Name: "Grade 9C"}}, Handlers{})

	assert.Contains(t, c.View(120, 40), "No lessons scheduled")
}

func TestAttendanceReport_rates(t *testing.T) {
	c := renderAttendanceReport(modal.AttendanceReportProps{
		Class: school.Class{Name: "Grade 7A"},
		Summary: []school.AttendanceSummary{
			{Name: "Amani Otieno", Present: 2},
			{Name: "Bilal Hassan", Late: 1, Absent: 1},
		},
	}, Handlers{})

	out := c.View(120, 40)
	assert.Contains(t, out, "Attendance - Grade 7A")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, " 50%")
}

func TestCalendarDay_lists_events(t *testing.T) {
	seed := testSeed(t)
	day := time.Date(2024, 2, 16, 0, 0, 0, 0, time.UTC)
	c := renderCalendarDay(modal.CalendarDayProps{Date: day, Events: seed.Events[:2]}, Handlers{})

	out := c.View(120, 40)
	assert.Contains(t, out, "Fri 16 Feb 2024")
	assert.Contains(t, out, "Inter-house sports day")
	assert.Contains(t, out, "PTA meeting")
}
