package validators

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/viper"
)

var (
	ErrImageTooLarge        = errors.New("image too large")
	ErrImageTypeUnsupported = errors.New("unsupported image type")
	ErrNoImage              = errors.New("no image provided")
)

// ImageValidator checks an uploaded image against the configured size and
// type limits. The returned file is rewound and ready to read, the caller
// owns closing it
func ImageValidator(fh *multipart.FileHeader) (int, multipart.File, *mimetype.MIME, error) {
	if fh == nil {
		return http.StatusBadRequest, nil, nil, ErrNoImage
	}

	// Check headers first which is easy to spoof, but faster for legit clients
	ct := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") {
		return http.StatusBadRequest, nil, nil, ErrImageTypeUnsupported
	}

	if fh.Size > viper.GetInt64("upload.max_size") {
		return http.StatusRequestEntityTooLarge, nil, nil, ErrImageTooLarge
	}

	// And now do the checks on the actual file to avoid
	// malicious clients
	f, err := fh.Open()
	if err != nil {
		return http.StatusInternalServerError, nil, nil, err
	}

	mime, err := mimetype.DetectReader(f)
	if err != nil {
		f.Close()
		return http.StatusInternalServerError, nil, nil, err
	}

	allowed := viper.GetStringSlice("upload.allowed_types")

	ok := len(allowed) == 0
	for _, t := range allowed {
		if mime.Is(t) {
			ok = true
			break
		}
	}

	if !ok {
		f.Close()
		return http.StatusBadRequest, nil, nil, ErrImageTypeUnsupported
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return http.StatusInternalServerError, nil, nil, err
	}

	return 0, f, mime, nil
}
