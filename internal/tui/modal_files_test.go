package tui

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/campus/internal/core/modal"
)

func writeFile(t *testing.T, root, name, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func pickerRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "a.csv", "first_name,last_name,class_id\n")
	writeFile(t, root, "notes.txt", "hello")
	writeFile(t, root, "sub/c.csv", strings.Repeat("x", 2048))
	writeFile(t, root, ".hidden/d.csv", "secret")
	return root
}

func TestFilePicker_lists_accepted_files(t *testing.T) {
	root := pickerRoot(t)
	c := fileUploadRenderer(root)(modal.FileUploadProps{Accept: []string{"**/*.csv"}}, Handlers{})

	out := c.View(100, 40)
	assert.Contains(t, out, "Upload File")
	assert.Contains(t, out, "a.csv")
	assert.Contains(t, out, "sub/c.csv")
	assert.NotContains(t, out, "notes.txt")
	assert.NotContains(t, out, "d.csv")
	assert.Contains(t, out, "(2 of 2)")
}

func TestFilePicker_enter_confirms_selection(t *testing.T) {
	root := pickerRoot(t)
	spy := &handlerSpy{}
	c := fileUploadRenderer(root)(modal.FileUploadProps{Accept: []string{"**/*.csv"}}, spy.handlers())

	c.Update(enterKey)

	got, ok := spy.lastPayload(t).(FileSelection)
	require.True(t, ok)
	assert.Equal(t, []string{filepath.Join(root, "a.csv")}, got.Paths)
	assert.Empty(t, got.EntityType)
}

func TestFilePicker_filter_narrows(t *testing.T) {
	root := pickerRoot(t)
	spy := &handlerSpy{}
	c := fileUploadRenderer(root)(modal.FileUploadProps{}, spy.handlers())

	typeText(c, "sub")
	assert.Contains(t, c.View(100, 40), "(1 of 3)")

	c.Update(enterKey)

	got := spy.lastPayload(t).(FileSelection)
	assert.Equal(t, []string{filepath.Join(root, "sub", "c.csv")}, got.Paths)
	assert.Equal(t, int64(2048), got.Bytes)
}

func TestFilePicker_multiple_marks(t *testing.T) {
	root := pickerRoot(t)
	spy := &handlerSpy{}
	c := fileUploadRenderer(root)(modal.FileUploadProps{Accept: []string{"**/*.csv"}, Multiple: true}, spy.handlers())

	c.Update(tabKey)
	c.Update(downKey)
	c.Update(tabKey)
	assert.Contains(t, c.View(100, 40), "[x]")

	c.Update(enterKey)

	got := spy.lastPayload(t).(FileSelection)
	assert.Len(t, got.Paths, 2)
}

func TestFilePicker_rejects_large_files(t *testing.T) {
	root := pickerRoot(t)
	spy := &handlerSpy{}
	c := fileUploadRenderer(root)(modal.FileUploadProps{Accept: []string{"sub/*.csv"}, MaxBytes: 1024}, spy.handlers())

	c.Update(enterKey)

	assert.Empty(t, spy.confirmed)
	assert.Contains(t, c.View(100, 40), "limit is 1.0 kB")
}

func TestFilePicker_no_files(t *testing.T) {
	spy := &handlerSpy{}
	c := fileUploadRenderer(t.TempDir())(modal.FileUploadProps{}, spy.handlers())

	c.Update(enterKey)

	assert.Empty(t, spy.confirmed)
	out := c.View(100, 40)
	assert.Contains(t, out, "No matching files")
	assert.Contains(t, out, "no file selected")
}

func TestDataImport_sets_entity_type(t *testing.T) {
	root := pickerRoot(t)
	spy := &handlerSpy{}
	c := dataImportRenderer(root)(modal.DataImportProps{EntityType: "students"}, spy.handlers())

	assert.Contains(t, c.View(100, 40), "Import students")

	c.Update(enterKey)

	got := spy.lastPayload(t).(FileSelection)
	assert.Equal(t, "students", got.EntityType)
	assert.Equal(t, []string{filepath.Join(root, "a.csv")}, got.Paths)
}

func TestImagePreview_describes_png(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badge.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 3))))
	require.NoError(t, f.Close())

	spy := &handlerSpy{}
	c := renderImagePreview(modal.ImagePreviewProps{Path: path, Caption: "School badge"}, spy.handlers())

	out := c.View(100, 40)
	assert.Contains(t, out, "badge.png")
	assert.Contains(t, out, "School badge")
	assert.Contains(t, out, "png")
	assert.Contains(t, out, "4 x 3")

	c.Update(enterKey)
	assert.Equal(t, 1, spy.closed)
}

func TestImagePreview_not_an_image(t *testing.T) {
	path := writeFile(t, t.TempDir(), "notes.txt", "hello")

	c := renderImagePreview(modal.ImagePreviewProps{Path: path}, Handlers{})

	assert.Contains(t, c.View(100, 40), "not a supported image")
}

func TestImagePreview_missing_file(t *testing.T) {
	c := renderImagePreview(modal.ImagePreviewProps{Path: filepath.Join(t.TempDir(), "gone.png")}, Handlers{})

	assert.Contains(t, c.View(100, 40), "gone.png")
}

func TestDocumentViewer_renders_markdown(t *testing.T) {
	spy := &handlerSpy{}
	c := renderDocumentViewer(modal.DocumentViewerProps{
		Title:    "Handbook",
		Markdown: "# Arrival\n\nGates open at **07:15**.",
	}, spy.handlers())

	out := c.View(100, 40)
	assert.Contains(t, out, "Handbook")
	assert.Contains(t, out, "Arrival")
	assert.Contains(t, out, "07:15")

	c.Update(keyRunes("q"))
	assert.Equal(t, 1, spy.closed)
}

func TestDocumentViewer_default_title(t *testing.T) {
	c := renderDocumentViewer(modal.DocumentViewerProps{Markdown: "plain"}, Handlers{})

	assert.Contains(t, c.View(100, 40), "Document")
}
