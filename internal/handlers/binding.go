package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// looseString decodes a JSON string, number or null into text. Trivia clients
// send category ids and difficulties either way.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = looseString(str)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected string or number, got %s", data)
		}
		*s = looseString(n.String())
	}
	return nil
}

// uintValue parses the text as an id. Empty text is zero.
func (s looseString) uintValue() (uint, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(string(s), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}
