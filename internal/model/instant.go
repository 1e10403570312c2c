package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Instant is a timestamp field as exported by the original document
// store, which wrote the same field in three shapes over its lifetime:
// an RFC 3339 string, a number of epoch seconds, or a
// {seconds, nanoseconds} object. ParseInstant folds every shape into a
// single time.Time at the ingestion boundary so nothing downstream
// branches on representation.

type timestampObject struct {
	Seconds     *int64 `json:"seconds"`
	Nanoseconds int64  `json:"nanoseconds"`
	// Older exports used underscore-prefixed keys.
	USeconds     *int64 `json:"_seconds"`
	UNanoseconds int64  `json:"_nanoseconds"`
}

// ParseInstant decodes one raw timestamp value.
func ParseInstant(raw json.RawMessage) (time.Time, error) {
	if len(raw) == 0 {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, fmt.Errorf("timestamp string: %w", err)
		}
		return parseInstantString(s)
	case '{':
		var obj timestampObject
		if err := json.Unmarshal(raw, &obj); err != nil {
			return time.Time{}, fmt.Errorf("timestamp object: %w", err)
		}
		switch {
		case obj.Seconds != nil:
			return time.Unix(*obj.Seconds, obj.Nanoseconds), nil
		case obj.USeconds != nil:
			return time.Unix(*obj.USeconds, obj.UNanoseconds), nil
		default:
			return time.Time{}, fmt.Errorf("timestamp object without seconds")
		}
	default:
		var seconds float64
		if err := json.Unmarshal(raw, &seconds); err != nil {
			return time.Time{}, fmt.Errorf("timestamp number: %w", err)
		}
		sec := int64(seconds)
		nsec := int64((seconds - float64(sec)) * float64(time.Second))
		return time.Unix(sec, nsec), nil
	}
}

func parseInstantString(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
