package storage_test

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"portfolio/internal/apperr"
	"portfolio/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a *multipart.FileHeader the way Fiber hands it to the
// services, without going through an HTTP request.
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File["file"][0]
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "photo.jpg", storage.SanitizeFilename("photo.jpg"))
	assert.Equal(t, "my_photo.jpg", storage.SanitizeFilename("my photo.jpg"))
	assert.Equal(t, "passwd", storage.SanitizeFilename("../../etc/passwd"))
	assert.Equal(t, "evil.png", storage.SanitizeFilename("..\\..\\evil.png"))
	assert.Equal(t, "file", storage.SanitizeFilename("///"))
}

func TestFileStore_SaveImage(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.SaveImage(fileHeader(t, "head shot.PNG", []byte("img")))
	assert.NoError(t, err)
	assert.Equal(t, "head_shot.PNG", name)
	assert.True(t, store.Exists(name))

	data, err := os.ReadFile(store.Path(name))
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), data)
}

func TestFileStore_SaveImage_DisallowedExtension(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.SaveImage(fileHeader(t, "payload.exe", []byte("nope")))
	assert.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeUnsupportedFile))
	assert.Empty(t, name)
}

func TestFileStore_SaveDocument_TimestampPrefix(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.SaveDocument(fileHeader(t, "resume.pdf", []byte("pdf")))
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "_resume.pdf"))
	assert.True(t, store.Exists(name))
}

func TestFileStore_Remove_ToleratesAbsence(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Remove("never-stored.pdf"))
	assert.NoError(t, store.Remove(""))
}

func TestFileStore_Path_CannotEscapeRoot(t *testing.T) {
	root := t.TempDir()
	store, err := storage.NewFileStore(root)
	require.NoError(t, err)

	p := store.Path("../../etc/passwd")
	assert.Equal(t, filepath.Join(root, "passwd"), p)
}
