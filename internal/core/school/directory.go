package school

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/hay-kot/campus/pkg/randid"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrOverpayment     = errors.New("payment exceeds outstanding balance")
	ErrClassAtCapacity = errors.New("class is at capacity")
)

// SortBy selects the ordering of student listings.
type SortBy string

const (
	SortByName     SortBy = "name"
	SortByClass    SortBy = "class"
	SortByEnrolled SortBy = "enrolled"
)

// StudentQuery filters, orders and pages a student listing.
type StudentQuery struct {
	ClassID string
	Status  StudentStatus
	Search  string
	Sort    SortBy
	Desc    bool
	Offset  int
	Limit   int
}

// Page is one page of a listing plus the total count before paging.
type Page[T any] struct {
	Items []T
	Total int
}

// Directory is the in-memory store of school records. It is safe for
// concurrent use; workflow actions run on tea.Cmd goroutines.
type Directory struct {
	mu         sync.RWMutex
	classes    []Class
	teachers   []Teacher
	subjects   []Subject
	students   []Student
	fees       []FeeItem
	payments   []Payment
	attendance []AttendanceRecord
	events     []Event
	timetable  []TimetableSlot
	now        func() time.Time
}

// NewDirectory returns a directory holding copies of the seed records.
func NewDirectory(seed Seed) *Directory {
	return &Directory{
		classes:    slices.Clone(seed.Classes),
		teachers:   slices.Clone(seed.Teachers),
		subjects:   slices.Clone(seed.Subjects),
		students:   slices.Clone(seed.Students),
		fees:       slices.Clone(seed.Fees),
		payments:   slices.Clone(seed.Payments),
		attendance: slices.Clone(seed.Attendance),
		events:     slices.Clone(seed.Events),
		timetable:  slices.Clone(seed.Timetable),
		now:        time.Now,
	}
}

// Students returns the students matching q.
func (d *Directory) Students(q StudentQuery) Page[Student] {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Student, 0, len(d.students))
	for _, s := range d.students {
		if q.ClassID != "" && s.ClassID != q.ClassID {
			continue
		}
		if q.Status != "" && s.Status != q.Status {
			continue
		}
		out = append(out, s)
	}

	if q.Search != "" {
		out = fuzzyStudents(out, q.Search)
	} else {
		sortStudents(out, q.Sort, q.Desc)
	}

	total := len(out)
	if q.Offset > 0 {
		out = out[min(q.Offset, len(out)):]
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return Page[Student]{Items: out, Total: total}
}

type studentNames []Student

func (s studentNames) String(i int) string { return s[i].FullName() }
func (s studentNames) Len() int            { return len(s) }

// fuzzyStudents keeps the students whose name matches query, best first.
func fuzzyStudents(in []Student, query string) []Student {
	matches := fuzzy.FindFrom(query, studentNames(in))
	out := make([]Student, 0, len(matches))
	for _, m := range matches {
		out = append(out, in[m.Index])
	}
	return out
}

func sortStudents(s []Student, by SortBy, desc bool) {
	cmp := func(a, b Student) int {
		switch by {
		case SortByClass:
			if c := strings.Compare(a.ClassID, b.ClassID); c != 0 {
				return c
			}
		case SortByEnrolled:
			if c := a.Enrolled.Compare(b.Enrolled); c != 0 {
				return c
			}
		}
		if c := strings.Compare(a.LastName, b.LastName); c != 0 {
			return c
		}
		return strings.Compare(a.FirstName, b.FirstName)
	}
	slices.SortStableFunc(s, func(a, b Student) int {
		if desc {
			return -cmp(a, b)
		}
		return cmp(a, b)
	})
}

// Student returns the student with the given id.
func (d *Directory) Student(id string) (Student, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	i := d.studentIndex(id)
	if i < 0 {
		return Student{}, fmt.Errorf("student %s: %w", id, ErrNotFound)
	}
	return d.students[i], nil
}

func (d *Directory) studentIndex(id string) int {
	return slices.IndexFunc(d.students, func(s Student) bool { return s.ID == id })
}

// AddStudent validates s, assigns an id and stores it.
func (d *Directory) AddStudent(s Student) (Student, error) {
	if err := s.Validate(); err != nil {
		return Student{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	class, ok := d.classByID(s.ClassID)
	if !ok {
		return Student{}, fmt.Errorf("class %s: %w", s.ClassID, ErrNotFound)
	}
	if class.Capacity > 0 && d.classSize(class.ID) >= class.Capacity {
		return Student{}, fmt.Errorf("%s: %w", class.Name, ErrClassAtCapacity)
	}

	s.ID = randid.WithPrefix("stu", 6)
	if s.Status == "" {
		s.Status = StatusActive
	}
	if s.Enrolled.IsZero() {
		s.Enrolled = d.now()
	}
	d.students = append(d.students, s)
	return s, nil
}

// UpdateStudent replaces the stored record with the same id.
func (d *Directory) UpdateStudent(s Student) error {
	if err := s.Validate(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.studentIndex(s.ID)
	if i < 0 {
		return fmt.Errorf("student %s: %w", s.ID, ErrNotFound)
	}
	if _, ok := d.classByID(s.ClassID); !ok {
		return fmt.Errorf("class %s: %w", s.ClassID, ErrNotFound)
	}
	d.students[i] = s
	return nil
}

// DeleteStudent removes a student along with their attendance marks.
// Payments are kept as financial history.
func (d *Directory) DeleteStudent(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.studentIndex(id)
	if i < 0 {
		return fmt.Errorf("student %s: %w", id, ErrNotFound)
	}
	d.students = slices.Delete(d.students, i, i+1)
	d.attendance = slices.DeleteFunc(d.attendance, func(r AttendanceRecord) bool {
		return r.StudentID == id
	})
	return nil
}

func (d *Directory) Classes() []Class {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.classes)
}

func (d *Directory) Class(id string) (Class, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.classByID(id)
	if !ok {
		return Class{}, fmt.Errorf("class %s: %w", id, ErrNotFound)
	}
	return c, nil
}

func (d *Directory) classByID(id string) (Class, bool) {
	i := slices.IndexFunc(d.classes, func(c Class) bool { return c.ID == id })
	if i < 0 {
		return Class{}, false
	}
	return d.classes[i], true
}

func (d *Directory) classSize(id string) int {
	n := 0
	for _, s := range d.students {
		if s.ClassID == id && s.Status != StatusGraduated {
			n++
		}
	}
	return n
}

// AddClass validates c, assigns an id and stores it.
func (d *Directory) AddClass(c Class) (Class, error) {
	if err := c.Validate(); err != nil {
		return Class{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	c.ID = randid.WithPrefix("cls", 6)
	d.classes = append(d.classes, c)
	return c, nil
}

func (d *Directory) Teachers() []Teacher {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.teachers)
}

func (d *Directory) Teacher(id string) (Teacher, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	i := slices.IndexFunc(d.teachers, func(t Teacher) bool { return t.ID == id })
	if i < 0 {
		return Teacher{}, fmt.Errorf("teacher %s: %w", id, ErrNotFound)
	}
	return d.teachers[i], nil
}

// AddTeacher validates t, assigns an id and stores it.
func (d *Directory) AddTeacher(t Teacher) (Teacher, error) {
	if err := t.Validate(); err != nil {
		return Teacher{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	t.ID = randid.WithPrefix("tch", 6)
	d.teachers = append(d.teachers, t)
	return t, nil
}

// TeacherClasses returns the classes whose form teacher is id.
func (d *Directory) TeacherClasses(id string) []Class {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []Class
	for _, c := range d.classes {
		if c.TeacherID == id {
			out = append(out, c)
		}
	}
	return out
}

func (d *Directory) Subjects() []Subject {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.subjects)
}

// AddSubject stores a subject, assigning an id when missing.
func (d *Directory) AddSubject(s Subject) (Subject, error) {
	if err := required(s.Name); err != nil {
		return Subject{}, fmt.Errorf("name %w", err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if s.ID == "" {
		s.ID = randid.WithPrefix("sub", 6)
	}
	d.subjects = append(d.subjects, s)
	return s, nil
}

// FeeStructure returns the fee items for term, or every item when term is
// empty.
func (d *Directory) FeeStructure(term string) []FeeItem {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []FeeItem
	for _, f := range d.fees {
		if term == "" || f.Term == term {
			out = append(out, f)
		}
	}
	return out
}

// Outstanding returns what a student still owes against the fee
// structure.
func (d *Directory) Outstanding(studentID string) int64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.outstanding(studentID)
}

func (d *Directory) outstanding(studentID string) int64 {
	var due, paid int64
	for _, f := range d.fees {
		due += f.Amount
	}
	for _, p := range d.payments {
		if p.StudentID == studentID {
			paid += p.Amount
		}
	}
	return max(due-paid, 0)
}

// RecordPayment validates and stores a payment, rejecting overpayment.
func (d *Directory) RecordPayment(p Payment) (Payment, error) {
	if err := p.Validate(); err != nil {
		return Payment{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.studentIndex(p.StudentID) < 0 {
		return Payment{}, fmt.Errorf("student %s: %w", p.StudentID, ErrNotFound)
	}
	if p.Amount > d.outstanding(p.StudentID) {
		return Payment{}, ErrOverpayment
	}

	p.ID = randid.WithPrefix("pay", 8)
	if p.PaidAt.IsZero() {
		p.PaidAt = d.now()
	}
	d.payments = append(d.payments, p)
	return p, nil
}

// Payments returns the payments of one student, oldest first.
func (d *Directory) Payments(studentID string) []Payment {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []Payment
	for _, p := range d.payments {
		if p.StudentID == studentID {
			out = append(out, p)
		}
	}
	return out
}

// MarkAttendance records one mark per student of classID for date,
// replacing marks already recorded for that day.
func (d *Directory) MarkAttendance(classID string, date time.Time, marks map[string]AttendanceStatus) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.classByID(classID); !ok {
		return fmt.Errorf("class %s: %w", classID, ErrNotFound)
	}

	d.attendance = slices.DeleteFunc(d.attendance, func(r AttendanceRecord) bool {
		_, marked := marks[r.StudentID]
		return marked && r.ClassID == classID && SameDay(r.Date, date)
	})

	ids := make([]string, 0, len(marks))
	for id := range marks {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		d.attendance = append(d.attendance, AttendanceRecord{
			StudentID: id,
			ClassID:   classID,
			Date:      date,
			Status:    marks[id],
		})
	}
	return nil
}

// AttendanceSummary aggregates marks per student of a class, ordered by
// name.
func (d *Directory) AttendanceSummary(classID string) []AttendanceSummary {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []AttendanceSummary
	for _, s := range d.students {
		if s.ClassID != classID {
			continue
		}
		sum := AttendanceSummary{StudentID: s.ID, Name: s.FullName()}
		for _, r := range d.attendance {
			if r.StudentID != s.ID || r.ClassID != classID {
				continue
			}
			switch r.Status {
			case Present:
				sum.Present++
			case Absent:
				sum.Absent++
			case Late:
				sum.Late++
			}
		}
		out = append(out, sum)
	}
	slices.SortFunc(out, func(a, b AttendanceSummary) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// EventsOn returns the events starting on the same day as date.
func (d *Directory) EventsOn(date time.Time) []Event {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []Event
	for _, e := range d.events {
		if SameDay(date, e.Start) {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b Event) int { return a.Start.Compare(b.Start) })
	return out
}

// Events returns every event ordered by start.
func (d *Directory) Events() []Event {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := slices.Clone(d.events)
	slices.SortFunc(out, func(a, b Event) int { return a.Start.Compare(b.Start) })
	return out
}

// AddEvent validates e, assigns an id and stores it.
func (d *Directory) AddEvent(e Event) (Event, error) {
	if err := e.Validate(); err != nil {
		return Event{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	e.ID = randid.WithPrefix("evt", 6)
	d.events = append(d.events, e)
	return e, nil
}

// Timetable returns the slots of a class ordered by day and time.
func (d *Directory) Timetable(classID string) []TimetableSlot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []TimetableSlot
	for _, s := range d.timetable {
		if s.ClassID == classID {
			out = append(out, s)
		}
	}
	slices.SortFunc(out, func(a, b TimetableSlot) int {
		if a.Day != b.Day {
			return int(a.Day) - int(b.Day)
		}
		return strings.Compare(a.Start, b.Start)
	})
	return out
}

// AddSlot stores a timetable slot, rejecting a clash with an existing
// slot of the same class at the same time.
func (d *Directory) AddSlot(slot TimetableSlot) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, s := range d.timetable {
		if s.ClassID == slot.ClassID && s.Day == slot.Day && s.Start == slot.Start {
			return fmt.Errorf("%s %s is already taken", slot.Day, slot.Start)
		}
	}
	d.timetable = append(d.timetable, slot)
	return nil
}

// HitKind names the record type of a search hit.
type HitKind string

const (
	HitStudent HitKind = "student"
	HitTeacher HitKind = "teacher"
	HitClass   HitKind = "class"
)

// Hit is one search result.
type Hit struct {
	Kind  HitKind
	ID    string
	Label string
	Score int
}

// Search fuzzy-matches query against student, teacher and class names,
// best matches first.
func (d *Directory) Search(query string) []Hit {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var (
		labels []string
		hits   []Hit
	)
	for _, s := range d.students {
		labels = append(labels, s.FullName())
		hits = append(hits, Hit{Kind: HitStudent, ID: s.ID, Label: s.FullName()})
	}
	for _, t := range d.teachers {
		labels = append(labels, t.Name)
		hits = append(hits, Hit{Kind: HitTeacher, ID: t.ID, Label: t.Name})
	}
	for _, c := range d.classes {
		labels = append(labels, c.Name)
		hits = append(hits, Hit{Kind: HitClass, ID: c.ID, Label: c.Name})
	}

	if strings.TrimSpace(query) == "" {
		return hits
	}

	matches := fuzzy.Find(query, labels)
	out := make([]Hit, 0, len(matches))
	for _, m := range matches {
		h := hits[m.Index]
		h.Score = m.Score
		out = append(out, h)
	}
	return out
}
