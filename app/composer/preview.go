package composer

import (
	"fmt"
	"io"
)

// Preview is a live handle to an attachment's bytes, held open so the UI can
// render the file while the draft exists. It must be released when the
// attachment is removed or the draft is cleared, on every exit path.
type Preview struct {
	rc       io.ReadCloser
	released bool
}

func NewPreview(f File) (*Preview, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening preview of %s: %w", f.Name(), err)
	}

	return &Preview{rc: rc}, nil
}

func (p *Preview) Reader() io.Reader {
	return p.rc
}

// Release closes the underlying handle. Safe to call more than once.
func (p *Preview) Release() error {
	if p.released {
		return nil
	}
	p.released = true
	return p.rc.Close()
}

func (p *Preview) Released() bool {
	return p.released
}
