package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"polyglot/contracts/wire"
	"polyglot/internal/registry"
	id "polyglot/pkg/domain"
)

// Entry is one user-visible action. Parameter values are coerced to text
// before they are shipped: strings as-is, everything else JSON-encoded.
type Entry struct {
	UserID     id.UserID
	Action     string
	Parameters map[string]any
	Tags       []string
}

// Sink persists entries. The log store client satisfies it.
type Sink interface {
	AppendLog(ctx context.Context, entry wire.AppendLog) (bool, error)
}

// Gate reports cached backing-service health.
type Gate interface {
	Available(svc registry.ServiceName) bool
}

// toWire converts an entry to the log store request body.
func (e Entry) toWire() wire.AppendLog {
	params := make(map[string]string, len(e.Parameters))
	for k, v := range e.Parameters {
		params[k] = coerce(v)
	}
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return wire.AppendLog{
		UserID:     e.UserID,
		Action:     e.Action,
		Parameters: params,
		Tags:       tags,
	}
}

func coerce(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case fmt.Stringer:
		// ids and tokens render as their text form
		return t.String()
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}
