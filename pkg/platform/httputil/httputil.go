// Package httputil holds the JSON envelope shared by the front door and the
// backing services:
//
//	{"status":"success","data":...}
//	{"status":"error","code":"...","message":"..."}
package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	dErrors "polyglot/pkg/domain-errors"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusRunning = "running"
)

// maxBodyBytes bounds request bodies decoded by DecodeAndValidate.
const maxBodyBytes = 1 << 20

// Envelope is the wire shape of every response.
type Envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data,omitempty"`
	Notice  string          `json:"notice,omitempty"`
	Code    string          `json:"code,omitempty"`
	Message string          `json:"message,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrEmptyBody is returned by Decode when the request carries no body.
var ErrEmptyBody = dErrors.New(dErrors.CodeBadRequest, "request body is required")

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("failed to encode response", "error", err)
	}
}

// WriteSuccess wraps data in a success envelope.
func WriteSuccess(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, successBody{Status: StatusSuccess, Data: data})
}

// WriteNotice writes a success envelope carrying an informational notice.
// Notices are reported conditions such as "no active session", not failures.
func WriteNotice(w http.ResponseWriter, notice, message string, data any) {
	WriteJSON(w, http.StatusOK, successBody{Status: StatusSuccess, Notice: notice, Message: message, Data: data})
}

type successBody struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Notice  string `json:"notice,omitempty"`
	Message string `json:"message,omitempty"`
}

// WriteRunning answers a liveness probe.
func WriteRunning(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": StatusRunning})
}

// WriteError maps a coded error to a status and error envelope. Internal
// errors never leak their message.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status := StatusFor(code)
	msg := dErrors.MessageOf(err)
	if code == dErrors.CodeInternal || msg == "" {
		msg = http.StatusText(status)
	}
	WriteJSON(w, status, Envelope{Status: StatusError, Code: string(code), Message: msg})
}

// WriteErrorData writes an error envelope that still carries a data payload.
// The session store uses it to answer a failed drop with data=false.
func WriteErrorData(w http.ResponseWriter, err error, data any) {
	code := dErrors.CodeOf(err)
	WriteJSON(w, StatusFor(code), struct {
		Status  string `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
		Data    any    `json:"data"`
	}{StatusError, string(code), dErrors.MessageOf(err), data})
}

// StatusFor maps an error code to an HTTP status.
func StatusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeInvalidInput:
		return http.StatusBadRequest
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeForbidden:
		return http.StatusForbidden
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeConflict:
		return http.StatusConflict
	case dErrors.CodeRateLimited:
		return http.StatusTooManyRequests
	case dErrors.CodeTimeout:
		return http.StatusGatewayTimeout
	case dErrors.CodeUnavailable:
		return http.StatusServiceUnavailable
	case dErrors.CodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// CodeFor maps an HTTP status back to an error code. Clients use it to
// classify error envelopes that carry no code.
func CodeFor(status int) dErrors.Code {
	switch status {
	case http.StatusBadRequest:
		return dErrors.CodeValidation
	case http.StatusUnauthorized:
		return dErrors.CodeUnauthorized
	case http.StatusForbidden:
		return dErrors.CodeForbidden
	case http.StatusNotFound:
		return dErrors.CodeNotFound
	case http.StatusConflict:
		return dErrors.CodeConflict
	case http.StatusTooManyRequests:
		return dErrors.CodeRateLimited
	case http.StatusServiceUnavailable:
		return dErrors.CodeUnavailable
	case http.StatusGatewayTimeout:
		return dErrors.CodeTimeout
	default:
		return dErrors.CodeUpstream
	}
}

// Decode decodes a JSON body into v without validation.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "malformed JSON body")
	}
	return nil
}

// DecodeAndValidate decodes a JSON body into v and runs struct validation.
func DecodeAndValidate(r *http.Request, v any) error {
	if err := Decode(r, v); err != nil {
		return err
	}
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return dErrors.Newf(dErrors.CodeValidation, "invalid field %s: %s", verrs[0].Field(), verrs[0].Tag())
		}
		return dErrors.Wrap(err, dErrors.CodeValidation, "invalid request")
	}
	return nil
}
