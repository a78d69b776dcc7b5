package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"
	"strings"
)

// Errors maps rendered field keys to their messages.
// Keys keep the order in which they first failed and messages keep rule order.
type Errors struct {
	keys     []string
	messages map[string][]string
}

func (e *Errors) add(key, msg string) {
	if e.messages == nil {
		e.messages = make(map[string][]string)
	}
	if _, ok := e.messages[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.messages[key] = append(e.messages[key], msg)
}

func (e Errors) clone() Errors {
	out := Errors{keys: slices.Clone(e.keys)}
	if e.messages != nil {
		out.messages = make(map[string][]string, len(e.messages))
		for k, v := range e.messages {
			out.messages[k] = slices.Clone(v)
		}
	}
	return out
}

// Error lists every message as "key: message", in failure order.
func (e Errors) Error() string {
	if len(e.keys) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(e.keys))
	for _, key := range e.keys {
		for _, msg := range e.messages[key] {
			parts = append(parts, key+": "+msg)
		}
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) hold for any Errors value.
func (e Errors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Has reports whether key has at least one message.
func (e Errors) Has(key string) bool {
	return len(e.messages[key]) > 0
}

// Get returns the messages stored under key.
func (e Errors) Get(key string) []string {
	return slices.Clone(e.messages[key])
}

// First returns the first message stored under key, or "".
func (e Errors) First(key string) string {
	if msgs := e.messages[key]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Fields returns the failed keys in first-failure order.
func (e Errors) Fields() []string {
	return slices.Clone(e.keys)
}

// Len returns the number of failed keys.
func (e Errors) Len() int {
	return len(e.keys)
}

// IsEmpty reports whether no key has failed.
func (e Errors) IsEmpty() bool {
	return len(e.keys) == 0
}

// Map returns a plain copy of the store.
func (e Errors) Map() map[string][]string {
	out := make(map[string][]string, len(e.messages))
	for k, v := range e.messages {
		out[k] = slices.Clone(v)
	}
	return out
}

// MarshalJSON encodes the store as an object whose keys follow first-failure order.
func (e Errors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range e.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.messages[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ExtractErrors extracts Errors from an error chain.
func ExtractErrors(err error) (Errors, bool) {
	if err == nil {
		return Errors{}, false
	}

	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return Errors{}, false
}

// IsValidationError reports whether err carries an Errors value.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var verrs Errors
	return errors.As(err, &verrs)
}
