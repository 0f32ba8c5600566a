package composer

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// File is a locally-selected file to attach to a draft. Size and content type
// are known up front so intake can validate without reading the bytes.
type File interface {
	Name() string
	ContentType() string
	Size() int64
	Open() (io.ReadCloser, error)
}

// The platform only accepts these; everything else is rejected at intake.
var typeByExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
}

type LocalFile struct {
	path        string
	size        int64
	contentType string
}

func NewLocalFile(path string) (*LocalFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("inspecting %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	contentType, ok := typeByExt[ext]
	if !ok {
		contentType = mime.TypeByExtension(ext)
	}

	return &LocalFile{
		path:        path,
		size:        info.Size(),
		contentType: contentType,
	}, nil
}

func (f *LocalFile) Name() string {
	return filepath.Base(f.path)
}

func (f *LocalFile) ContentType() string {
	return f.contentType
}

func (f *LocalFile) Size() int64 {
	return f.size
}

func (f *LocalFile) Open() (io.ReadCloser, error) {
	return os.Open(f.path)
}
