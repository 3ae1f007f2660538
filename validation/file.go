package validation

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var imageTypes = map[string][]string{
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
}

var (
	ErrNotImage     = errors.New("file is not a jpeg or png image")
	ErrFileTooLarge = errors.New("file is too large")
)

// CheckFileIsImage passes when field carries no upload, or when the
// upload's content is JPEG or PNG and its extension, if any, agrees.
func CheckFileIsImage(req *Request, field string) error {
	fh := req.File(field)
	if fh == nil {
		return nil
	}

	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", field, err)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", field, err)
	}

	exts, ok := imageTypes[mtype.String()]
	if !ok {
		return ErrNotImage
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == "" {
		return nil
	}
	for _, e := range exts {
		if e == ext {
			return nil
		}
	}
	return ErrNotImage
}

// CheckFileMaxSize passes when field carries no upload or the upload is
// at most max bytes.
func CheckFileMaxSize(req *Request, field string, max int64) error {
	fh := req.File(field)
	if fh == nil {
		return nil
	}
	if fh.Size > max {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, fh.Size, max)
	}
	return nil
}
