package upload

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

const (
	DefaultMaxSize = 32 << 20
	FieldFile      = "file"

	// Room left for the multipart envelope
	formOverhead = 512
)

var (
	ErrTooLarge    = errors.New("uploaded file too large")
	ErrMissingFile = errors.New("missing uploaded file")
)

type File struct {
	multipart.File
	Filename  string
	MediaType string
	Size      int64
}

// ReadFile retrieves the uploaded file of a multipart request. The caller is
// responsible for closing the returned file.
func ReadFile(w http.ResponseWriter, r *http.Request, maxSize int64) (*File, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxSize+formOverhead)

	if err := r.ParseMultipartForm(maxSize + formOverhead); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, errors.WithStack(ErrTooLarge)
		}

		return nil, errors.Wrap(err, "could not parse multipart form")
	}

	file, header, err := r.FormFile(FieldFile)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, errors.WithStack(ErrMissingFile)
		}

		return nil, errors.Wrap(err, "could not read form file")
	}

	mediaType := header.Header.Get("Content-Type")
	if mediaType == "" || mediaType == "application/octet-stream" {
		mediaType, err = detectMediaType(file)
		if err != nil {
			file.Close()
			return nil, errors.WithStack(err)
		}
	}

	return &File{
		File:      file,
		Filename:  header.Filename,
		MediaType: mediaType,
		Size:      header.Size,
	}, nil
}

// detectMediaType sniffs the content of the file and rewinds it.
func detectMediaType(file multipart.File) (string, error) {
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", errors.Wrap(err, "could not detect media type")
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", errors.WithStack(err)
	}

	return mtype.String(), nil
}
