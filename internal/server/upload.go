package server

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/ukaji3/carpetarea-go/internal/config"
)

// FileField is the multipart field holding the workbook.
const FileField = "file"

var (
	errNoFile   = errors.New("no file uploaded")
	errTooLarge = errors.New("upload too large")
)

// readUpload returns the uploaded workbook bytes. It returns errNoFile when the
// request carries no decodable file and errTooLarge when the body exceeds its
// limit.
func readUpload(r *http.Request, mode config.InputMode, maxMemory int64) ([]byte, error) {
	switch mode {
	case config.InputBase64:
		return readBase64(r)
	default:
		return readMultipart(r, maxMemory)
	}
}

func readMultipart(r *http.Request, maxMemory int64) ([]byte, error) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		if isTooLarge(err) {
			return nil, errTooLarge
		}
		return nil, fmt.Errorf("%w: %v", errNoFile, err)
	}
	defer r.MultipartForm.RemoveAll()

	file, _, err := r.FormFile(FileField)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errNoFile, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if len(data) == 0 {
		return nil, errNoFile
	}
	return data, nil
}

func readBase64(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, errNoFile
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		if isTooLarge(err) {
			return nil, errTooLarge
		}
		return nil, fmt.Errorf("reading body: %w", err)
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil, errNoFile
	}
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: body is not base64: %v", errNoFile, err)
	}
	if len(data) == 0 {
		return nil, errNoFile
	}
	return data, nil
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || errors.Is(err, multipart.ErrMessageTooLarge)
}
