package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Count is a non-negative tally read leniently from JSON. Numbers and numeric
// strings are accepted; anything else yields an absent count that sorts as 0.
type Count struct {
	value   int
	present bool
}

func NewCount(n int) Count {
	return Count{value: n, present: true}
}

// Int returns the sort value, 0 when absent.
func (c Count) Int() int {
	return c.value
}

func (c Count) Present() bool {
	return c.present
}

func (c Count) String() string {
	if !c.present {
		return "—"
	}
	return strconv.Itoa(c.value)
}

func (c *Count) UnmarshalJSON(data []byte) error {
	*c = Count{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	var raw string
	switch data[0] {
	case '"':
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
		raw = strings.TrimSpace(raw)
	case 'n', 't', 'f', '[', '{':
		return nil
	default:
		raw = string(data)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	*c = Count{value: int(f), present: true}
	return nil
}

func (c Count) MarshalJSON() ([]byte, error) {
	if !c.present {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(c.value)), nil
}
