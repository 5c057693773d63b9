package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"
)

const (
	// ContentTypeXLSX is the media type of the returned workbook.
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	// OutputFilename is the attachment name of the returned workbook.
	OutputFilename = "output.xlsx"
)

// Kind classifies the outcome of a request.
type Kind string

const (
	KindOK               Kind = "ok"
	KindMethodNotAllowed Kind = "method_not_allowed"
	KindMissingFile      Kind = "missing_file"
	KindMissingSheet     Kind = "missing_sheet"
	KindUploadTooLarge   Kind = "upload_too_large"
	KindInternalFailure  Kind = "internal_failure"
)

// result is one of success, rejection or failure.
type result interface {
	status() int
	kind() Kind
	write(w http.ResponseWriter)
}

// success carries the annotated workbook.
type success struct {
	workbook []byte
	base64   bool
	records  int
}

func (s success) status() int { return http.StatusOK }
func (s success) kind() Kind  { return KindOK }

func (s success) write(w http.ResponseWriter) {
	body := s.workbook
	h := w.Header()
	h.Set("Content-Type", ContentTypeXLSX)
	h.Set("Content-Disposition", `attachment; filename="`+OutputFilename+`"`)
	if s.base64 {
		body = []byte(base64.StdEncoding.EncodeToString(s.workbook))
		h.Set("Content-Transfer-Encoding", "base64")
	}
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// rejection is a validation error caused by the request.
type rejection struct {
	code    int
	reason  Kind
	message string
}

func (r rejection) status() int { return r.code }
func (r rejection) kind() Kind  { return r.reason }

func (r rejection) write(w http.ResponseWriter) {
	if r.code == http.StatusMethodNotAllowed {
		w.Header().Set("Allow", http.MethodPost)
	}
	writeError(w, r.code, r.message)
}

// failure is any other error. Its cause is logged, never sent.
type failure struct {
	err error
}

func (f failure) status() int { return http.StatusInternalServerError }
func (f failure) kind() Kind  { return KindInternalFailure }

func (f failure) write(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(errorBody{Error: message})
}
