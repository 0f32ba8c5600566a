package composer

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewLocalFile(t *testing.T) {
	path := writeTemp(t, "HOLIDAY.JPG", "jpeg-bytes")

	f, err := NewLocalFile(path)
	require.NoError(t, err)

	assert.Equal(t, "HOLIDAY.JPG", f.Name())
	assert.Equal(t, "image/jpeg", f.ContentType())
	assert.EqualValues(t, 10, f.Size())

	rc, err := f.Open()
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestNewLocalFileVideoExtensions(t *testing.T) {
	for ext, want := range map[string]string{
		".mp4":  "video/mp4",
		".webm": "video/webm",
		".mov":  "video/quicktime",
		".avi":  "video/x-msvideo",
	} {
		f, err := NewLocalFile(writeTemp(t, "clip"+ext, "x"))
		require.NoError(t, err)
		assert.Equal(t, want, f.ContentType(), ext)
	}
}

func TestNewLocalFileMissing(t *testing.T) {
	_, err := NewLocalFile(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
}

func TestNewLocalFileDirectory(t *testing.T) {
	_, err := NewLocalFile(t.TempDir())
	require.Error(t, err)
}

func TestUnknownExtensionRejectedAtIntake(t *testing.T) {
	f, err := NewLocalFile(writeTemp(t, "notes.txt", "hello"))
	require.NoError(t, err)

	comp := newComposer(&fakeUploads{}, &fakePosts{})
	accepted, rejected := comp.Attach(f)
	assert.Empty(t, accepted)
	require.Len(t, rejected, 1)
	assert.Equal(t, "notes.txt", rejected[0].Name)
}
