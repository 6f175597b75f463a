package predictions

import (
	"strings"
	"time"
)

// ESPNTime is a wrapper around time.Time that can unmarshal the mix of
// timestamp formats ESPN endpoints return: full RFC3339, the shorter
// “YYYY-MM-DDThh:mmZ” form, and plain dates.
type ESPNTime struct {
	time.Time
}

var espnTimeLayouts = []string{
	time.RFC3339,             // 2006-01-02T15:04:05Z07:00
	"2006-01-02T15:04Z07:00", // 2006-01-02T15:04Z (no seconds)
	"2006-01-02",             // date only
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *ESPNTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}

	var parseErr error
	for _, layout := range espnTimeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		parseErr = err
	}
	return parseErr
}

// MarshalJSON implements the json.Marshaler interface. Board and wizard
// queries serialize matches back out, so the round trip has to hold.
func (t ESPNTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}
