package tui

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/campus/internal/core/school"
)

func TestParseStudentCSV(t *testing.T) {
	in := "Last_Name, first_name ,class_id,nickname\n" +
		"Kamau,Wanjiru,cls-7a,WK\n" +
		"Odhiambo, Brian ,cls-8a,\n"

	got, err := parseStudentCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []school.Student{
		{FirstName: "Wanjiru", LastName: "Kamau", ClassID: "cls-7a"},
		{FirstName: "Brian", LastName: "Odhiambo", ClassID: "cls-8a"},
	}, got)
}

func TestParseStudentCSV_errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: "empty file"},
		{name: "missing column", in: "first_name,last_name\nA,B\n", want: `missing column "class_id"`},
		{name: "ragged row", in: "first_name,last_name,class_id\nA,B\n", want: "line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseStudentCSV(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadStudentFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.csv", "first_name,last_name,class_id\nA,One,cls-7a\n")
	abs := writeFile(t, root, "b.csv", "first_name,last_name,class_id\nB,Two,cls-7b\n")

	got, err := readStudentFiles(root, []string{"a.csv", abs})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "One", got[0].LastName)
	assert.Equal(t, "Two", got[1].LastName)

	_, err = readStudentFiles(root, []string{"missing.csv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open missing.csv")
}

func TestWriteStudents_formats(t *testing.T) {
	students := []school.Student{
		{ID: "stu-1", FirstName: "Wanjiru", LastName: "Kamau", ClassID: "cls-7a", Status: school.StatusActive},
	}

	t.Run("csv", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeStudents(&buf, "csv", students))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "id,first_name,last_name,class_id,guardian,phone,email,status", lines[0])
		assert.Equal(t, "stu-1,Wanjiru,Kamau,cls-7a,,,,active", lines[1])
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeStudents(&buf, "json", students))

		var got []exportedStudent
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Wanjiru", got[0].FirstName)
		assert.NotContains(t, buf.String(), "guardian")
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeStudents(&buf, "yaml", students))

		var got []exportedStudent
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "cls-7a", got[0].ClassID)
	})

	t.Run("unsupported", func(t *testing.T) {
		err := writeStudents(&bytes.Buffer{}, "xml", students)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unsupported export format "xml"`)
	})
}

func TestExportStudentsFile_roundtrips_through_import(t *testing.T) {
	root := t.TempDir()
	seed := testSeed(t)

	path, err := exportStudentsFile(root, ExportRequest{Format: "csv", Path: "students.csv"}, seed.Students)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "students.csv"), path)

	got, err := readStudentFiles(root, []string{"students.csv"})
	require.NoError(t, err)
	require.Len(t, got, len(seed.Students))
	assert.Equal(t, seed.Students[0].FullName(), got[0].FullName())
	assert.Equal(t, seed.Students[3].Status, got[3].Status)
}

func TestExportStudentsFile_bad_format_reports_error(t *testing.T) {
	root := t.TempDir()

	_, err := exportStudentsFile(root, ExportRequest{Format: "xml", Path: "out.xml"}, nil)
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(root, "out.xml"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}
