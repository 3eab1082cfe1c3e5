package school

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDirectory(t *testing.T) *Directory {
	t.Helper()
	seed, err := DefaultSeed()
	require.NoError(t, err)
	return NewDirectory(seed)
}

func TestDefaultSeed(t *testing.T) {
	seed, err := DefaultSeed()
	require.NoError(t, err)

	assert.Len(t, seed.Classes, 3)
	assert.Len(t, seed.Students, 6)
	assert.Equal(t, time.Monday, seed.Timetable[0].Day)

	for _, s := range seed.Students {
		assert.NoError(t, s.Validate(), s.ID)
	}
}

func TestParseSeed_invalid(t *testing.T) {
	_, err := ParseSeed([]byte("students: [oops"))
	assert.ErrorContains(t, err, "parse seed")
}

func TestLoadSeed(t *testing.T) {
	seed, err := LoadSeed("")
	require.NoError(t, err)
	assert.Len(t, seed.Students, 6)

	path := filepath.Join(t.TempDir(), "records.yaml")
	require.NoError(t, os.WriteFile(path, []byte("subjects:\n  - { id: sub-art, name: Art, code: ART }\n"), 0o644))
	seed, err = LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, seed.Subjects, 1)
	assert.Equal(t, "Art", seed.Subjects[0].Name)

	_, err = LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read seed file")
}

func TestDirectory_Students(t *testing.T) {
	d := newTestDirectory(t)

	tests := []struct {
		name    string
		query   StudentQuery
		wantIDs []string
		total   int
	}{
		{
			name:    "by class sorted by name",
			query:   StudentQuery{ClassID: "cls-7a"},
			wantIDs: []string{"stu-bilal", "stu-amani"},
			total:   2,
		},
		{
			name:    "by status",
			query:   StudentQuery{Status: StatusSuspended},
			wantIDs: []string{"stu-dario"},
			total:   1,
		},
		{
			name:    "paged",
			query:   StudentQuery{Offset: 1, Limit: 2},
			wantIDs: []string{"stu-bilal", "stu-esi"},
			total:   6,
		},
		{
			name:    "offset past end",
			query:   StudentQuery{Offset: 50},
			wantIDs: []string{},
			total:   6,
		},
		{
			name:    "fuzzy search",
			query:   StudentQuery{Search: "chlo"},
			wantIDs: []string{"stu-chloe"},
			total:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := d.Students(tt.query)
			ids := make([]string, 0, len(page.Items))
			for _, s := range page.Items {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.total, page.Total)
		})
	}
}

func TestDirectory_Students_desc(t *testing.T) {
	d := newTestDirectory(t)
	page := d.Students(StudentQuery{Sort: SortByName, Desc: true, Limit: 1})
	require.Len(t, page.Items, 1)
	assert.Equal(t, "stu-dario", page.Items[0].ID)
}

func TestDirectory_AddStudent(t *testing.T) {
	d := newTestDirectory(t)

	s, err := d.AddStudent(Student{FirstName: "Grace", LastName: "Hopper", ClassID: "cls-8a"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(s.ID, "stu-"))
	assert.Equal(t, StatusActive, s.Status)
	assert.False(t, s.Enrolled.IsZero())

	got, err := d.Student(s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", got.FullName())
}

func TestDirectory_AddStudent_validation(t *testing.T) {
	d := newTestDirectory(t)

	_, err := d.AddStudent(Student{FirstName: "Grace", Email: "nope"})
	require.Error(t, err)

	var fe criterio.FieldErrors
	require.ErrorAs(t, err, &fe)

	fields := map[string]bool{}
	for _, e := range fe {
		fields[e.Field] = true
	}
	assert.True(t, fields["last_name"])
	assert.True(t, fields["class_id"])
	assert.True(t, fields["email"])
}

func TestDirectory_AddStudent_unknownClass(t *testing.T) {
	d := newTestDirectory(t)
	_, err := d.AddStudent(Student{FirstName: "A", LastName: "B", ClassID: "cls-none"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDirectory_AddStudent_capacity(t *testing.T) {
	seed, err := DefaultSeed()
	require.NoError(t, err)
	seed.Classes[0].Capacity = 2
	d := NewDirectory(seed)

	_, err = d.AddStudent(Student{FirstName: "A", LastName: "B", ClassID: "cls-7a"})
	assert.ErrorIs(t, err, ErrClassAtCapacity)
}

func TestDirectory_UpdateStudent(t *testing.T) {
	d := newTestDirectory(t)

	s, err := d.Student("stu-amani")
	require.NoError(t, err)
	s.Phone = "+254 722 000 000"
	require.NoError(t, d.UpdateStudent(s))

	got, err := d.Student("stu-amani")
	require.NoError(t, err)
	assert.Equal(t, "+254 722 000 000", got.Phone)

	s.ID = "stu-missing"
	assert.ErrorIs(t, d.UpdateStudent(s), ErrNotFound)
}

func TestDirectory_DeleteStudent(t *testing.T) {
	d := newTestDirectory(t)

	require.NoError(t, d.DeleteStudent("stu-bilal"))

	_, err := d.Student("stu-bilal")
	assert.ErrorIs(t, err, ErrNotFound)

	for _, sum := range d.AttendanceSummary("cls-7a") {
		assert.NotEqual(t, "stu-bilal", sum.StudentID)
	}
	assert.NotEmpty(t, d.Payments("stu-bilal"), "payments are kept")

	assert.ErrorIs(t, d.DeleteStudent("stu-bilal"), ErrNotFound)
}

func TestDirectory_Outstanding(t *testing.T) {
	d := newTestDirectory(t)

	assert.Equal(t, int64(970000), d.Outstanding("stu-amani"))
	assert.Equal(t, int64(0), d.Outstanding("stu-esi"))
	assert.Equal(t, int64(5470000), d.Outstanding("stu-farah"))
}

func TestDirectory_RecordPayment(t *testing.T) {
	d := newTestDirectory(t)

	p, err := d.RecordPayment(Payment{StudentID: "stu-amani", Amount: 970000, Method: "cash"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p.ID, "pay-"))
	assert.Equal(t, int64(0), d.Outstanding("stu-amani"))
	assert.Len(t, d.Payments("stu-amani"), 2)

	_, err = d.RecordPayment(Payment{StudentID: "stu-amani", Amount: 1, Method: "cash"})
	assert.ErrorIs(t, err, ErrOverpayment)

	_, err = d.RecordPayment(Payment{StudentID: "stu-amani", Amount: 0, Method: "cash"})
	assert.ErrorContains(t, err, "amount")

	_, err = d.RecordPayment(Payment{StudentID: "stu-nobody", Amount: 10, Method: "cash"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDirectory_FeeStructure(t *testing.T) {
	d := newTestDirectory(t)
	assert.Len(t, d.FeeStructure("Term 1"), 3)
	assert.Empty(t, d.FeeStructure("Term 2"))
	assert.Len(t, d.FeeStructure(""), 3)
}

func TestDirectory_MarkAttendance(t *testing.T) {
	d := newTestDirectory(t)
	day := time.Date(2024, 2, 6, 0, 0, 0, 0, time.UTC)

	err := d.MarkAttendance("cls-7a", day, map[string]AttendanceStatus{
		"stu-amani": Late,
		"stu-bilal": Present,
	})
	require.NoError(t, err)

	summary := d.AttendanceSummary("cls-7a")
	require.Len(t, summary, 2)

	byID := map[string]AttendanceSummary{}
	for _, s := range summary {
		byID[s.StudentID] = s
	}

	assert.Equal(t, AttendanceSummary{StudentID: "stu-amani", Name: "Amani Otieno", Present: 1, Late: 1}, byID["stu-amani"])
	assert.Equal(t, AttendanceSummary{StudentID: "stu-bilal", Name: "Bilal Hassan", Present: 1, Late: 1}, byID["stu-bilal"])

	assert.ErrorIs(t, d.MarkAttendance("cls-none", day, nil), ErrNotFound)
}

func TestAttendanceSummary_Rate(t *testing.T) {
	assert.InDelta(t, 0.0, AttendanceSummary{}.Rate(), 0.0001)
	assert.InDelta(t, 0.75, AttendanceSummary{Present: 2, Late: 1, Absent: 1}.Rate(), 0.0001)
}

func TestDirectory_EventsOn(t *testing.T) {
	d := newTestDirectory(t)

	events := d.EventsOn(time.Date(2024, 2, 16, 12, 0, 0, 0, time.UTC))
	require.Len(t, events, 2)
	assert.Equal(t, "evt-sports", events[0].ID)
	assert.Equal(t, "evt-pta", events[1].ID)

	assert.Empty(t, d.EventsOn(time.Date(2024, 2, 17, 0, 0, 0, 0, time.UTC)))
}

func TestDirectory_AddEvent(t *testing.T) {
	d := newTestDirectory(t)
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	_, err := d.AddEvent(Event{Title: "Backwards", Start: start, End: start.Add(-time.Hour)})
	assert.ErrorContains(t, err, "end")

	e, err := d.AddEvent(Event{Title: "Open day", Start: start})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(e.ID, "evt-"))
	assert.Len(t, d.EventsOn(start), 1)
}

func TestDirectory_Timetable(t *testing.T) {
	d := newTestDirectory(t)

	slots := d.Timetable("cls-7a")
	require.Len(t, slots, 3)
	assert.Equal(t, "sub-math", slots[0].SubjectID)
	assert.Equal(t, time.Tuesday, slots[2].Day)

	err := d.AddSlot(TimetableSlot{ClassID: "cls-7a", Day: time.Monday, Start: "08:00"})
	assert.ErrorContains(t, err, "already taken")

	require.NoError(t, d.AddSlot(TimetableSlot{ClassID: "cls-7a", Day: time.Friday, Start: "08:00"}))
	assert.Len(t, d.Timetable("cls-7a"), 4)
}

func TestDirectory_Search(t *testing.T) {
	d := newTestDirectory(t)

	hits := d.Search("okafor")
	require.NotEmpty(t, hits)
	assert.Equal(t, HitTeacher, hits[0].Kind)
	assert.Equal(t, "tch-okafor", hits[0].ID)

	hits = d.Search("grade 8")
	require.NotEmpty(t, hits)
	assert.Equal(t, HitClass, hits[0].Kind)

	assert.Len(t, d.Search(""), 12)
	assert.Empty(t, d.Search("zzzzzz"))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 2, 16, 23, 0, 0, 0, time.UTC)
	assert.True(t, SameDay(a, time.Date(2024, 2, 16, 1, 0, 0, 0, time.UTC)))
	assert.False(t, SameDay(a, time.Date(2024, 2, 17, 1, 0, 0, 0, time.UTC)))
}
