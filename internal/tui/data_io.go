package tui

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/campus/internal/core/school"
)

// studentColumns are the CSV columns read on import and written on export.
var studentColumns = []string{"first_name", "last_name", "class_id", "guardian", "phone", "email", "status"}

// parseStudentCSV reads students from a CSV document with a header row.
// Columns are matched by name and may appear in any order; unknown
// columns are ignored.
func parseStudentCSV(r io.Reader) ([]school.Student, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range []string{"first_name", "last_name", "class_id"} {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var out []school.Student
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		get := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		out = append(out, school.Student{
			FirstName: get("first_name"),
			LastName:  get("last_name"),
			ClassID:   get("class_id"),
			Guardian:  get("guardian"),
			Phone:     get("phone"),
			Email:     get("email"),
			Status:    school.StudentStatus(get("status")),
		})
	}
	return out, nil
}

// readStudentFiles parses every CSV file in paths, which are relative to
// root unless absolute.
func readStudentFiles(root string, paths []string) ([]school.Student, error) {
	var all []school.Student
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(root, p)
		}
		f, err := os.Open(p)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", filepath.Base(p), err)
		}
		students, err := parseStudentCSV(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(p), err)
		}
		all = append(all, students...)
	}
	return all, nil
}

type exportedStudent struct {
	ID        string `json:"id" yaml:"id"`
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	ClassID   string `json:"class_id" yaml:"class_id"`
	Guardian  string `json:"guardian,omitempty" yaml:"guardian,omitempty"`
	Phone     string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email     string `json:"email,omitempty" yaml:"email,omitempty"`
	Status    string `json:"status" yaml:"status"`
}

// writeStudents encodes students to w in the given format: csv, json or
// yaml.
func writeStudents(w io.Writer, format string, students []school.Student) error {
	rows := make([]exportedStudent, 0, len(students))
	for _, s := range students {
		rows = append(rows, exportedStudent{
			ID:        s.ID,
			FirstName: s.FirstName,
			LastName:  s.LastName,
			ClassID:   s.ClassID,
			Guardian:  s.Guardian,
			Phone:     s.Phone,
			Email:     s.Email,
			Status:    string(s.Status),
		})
	}

	switch format {
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write(append([]string{"id"}, studentColumns...)); err != nil {
			return err
		}
		for _, r := range rows {
			if err := cw.Write([]string{r.ID, r.FirstName, r.LastName, r.ClassID, r.Guardian, r.Phone, r.Email, r.Status}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// exportStudentsFile writes students to path, relative to root unless
// absolute, and returns the path written. A failed export leaves no file.
func exportStudentsFile(root string, req ExportRequest, students []school.Student) (string, error) {
	path := req.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	if err := writeStudents(f, req.Format, students); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	return path, nil
}
