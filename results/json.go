package results

import (
	"errors"

	"github.com/goccy/go-json"
)

type okJSON[T any] struct {
	Success bool `json:"success"`
	Value   T    `json:"value"`
}

type errJSON struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MarshalJSON encodes an Ok as {"success":true,"value":...} and an Err as
// {"success":false,"error":"<message>"}. Only the message of the error survives encoding.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.success {
		return json.Marshal(okJSON[T]{Success: true, Value: r.value})
	}

	var msg string
	if r.err != nil {
		msg = r.err.Error()
	}
	return json.Marshal(errJSON{Success: false, Error: msg})
}

// UnmarshalJSON decodes the form written by MarshalJSON. The "success" key is required, as is the
// payload key it selects. A decoded Err carries an error with the encoded message.
func (r *Result[T]) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Error.Wrap(err)
	}

	raw, ok := payload(fields, successKey)
	if !ok {
		return Error.New("missing %q key", successKey)
	}
	var success bool
	if err := json.Unmarshal(raw, &success); err != nil {
		return Error.New("decoding %q: %w", successKey, err)
	}

	if success {
		raw, ok := payload(fields, valueKey)
		if !ok {
			return Error.New("missing %q key", valueKey)
		}
		var val T
		if err := json.Unmarshal(raw, &val); err != nil {
			return Error.New("decoding %q: %w", valueKey, err)
		}
		*r = Ok(val)
		return nil
	}

	raw, ok = payload(fields, errorKey)
	if !ok {
		return Error.New("missing %q key", errorKey)
	}
	var msg string
	if err := json.Unmarshal(raw, &msg); err != nil {
		return Error.New("decoding %q: %w", errorKey, err)
	}
	*r = Err[T](errors.New(msg))
	return nil
}

func payload(fields map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := fields[key]
	if !ok {
		return nil, false
	}
	if len(raw) == 0 {
		raw = json.RawMessage("null")
	}
	return raw, true
}
