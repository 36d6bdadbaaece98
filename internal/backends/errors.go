package backends

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	dErrors "polyglot/pkg/domain-errors"
	"polyglot/pkg/platform/httputil"
	"polyglot/pkg/platform/sentinel"
	"polyglot/pkg/requestcontext"
)

// Translate turns a store error into a coded error. Coded errors pass
// through; sentinel facts map to their codes; anything else is internal.
func Translate(err error, msg string) error {
	var coded *dErrors.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &coded):
		return err
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, msg)
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(err, dErrors.CodeConflict, msg)
	case errors.Is(err, sentinel.ErrUnavailable):
		return dErrors.Wrap(err, dErrors.CodeUnavailable, msg)
	case errors.Is(err, context.DeadlineExceeded):
		return dErrors.Wrap(err, dErrors.CodeTimeout, msg)
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, msg)
	}
}

// WriteStoreError translates err, logs it when it is not a caller mistake and
// writes the error envelope.
func WriteStoreError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, msg string) {
	err = Translate(err, msg)
	switch dErrors.CodeOf(err) {
	case dErrors.CodeNotFound, dErrors.CodeValidation, dErrors.CodeBadRequest, dErrors.CodeConflict:
	default:
		logger.ErrorContext(r.Context(), msg,
			"path", r.URL.Path,
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
