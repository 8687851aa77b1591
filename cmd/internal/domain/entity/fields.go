package entity

import (
	"encoding/json"
	"errors"
)

// ErrDuplicateKey is returned by repositories when a write collides with a
// unique index.
var ErrDuplicateKey = errors.New("duplicate key")

// Fields holds the free-form part of a stored record, i.e. everything the
// client sent besides the keys the API itself understands.
type Fields map[string]any

// Clone returns a shallow copy. A nil receiver yields an empty map.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// splitFields decodes a JSON object and pulls out the string values of the
// given keys. Whatever is left is returned as Fields.
func splitFields(data []byte, keys ...string) (map[string]string, Fields, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, err
	}
	if raw == nil {
		return nil, nil, errors.New("expected a JSON object")
	}

	known := make(map[string]string, len(keys))
	for _, k := range keys {
		if s, ok := raw[k].(string); ok {
			known[k] = s
		}
		delete(raw, k)
	}
	return known, raw, nil
}

// joinFields is the inverse of splitFields: known keys win over free-form
// ones, and empty values are left out when omitEmpty lists them.
func joinFields(extra Fields, known map[string]string, omitEmpty ...string) ([]byte, error) {
	out := make(map[string]any, len(extra)+len(known))
	for k, v := range extra {
		out[k] = v
	}
	for k, v := range known {
		out[k] = v
	}
	for _, k := range omitEmpty {
		if known[k] == "" {
			delete(out, k)
		}
	}
	return json.Marshal(out)
}
