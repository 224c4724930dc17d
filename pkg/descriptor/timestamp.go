package descriptor

import (
	"fmt"
	"strconv"
	"time"
)

// Timestamp is a deployment creation time.
// It decodes from TOML datetimes, RFC 3339 strings, and epoch milliseconds.
type Timestamp struct {
	time.Time
}

// CreatedLayout matches the en-US locale rendering of a date and time.
const CreatedLayout = "1/2/2006, 3:04:05 PM"

func (ts *Timestamp) UnmarshalTOML(v interface{}) error {
	switch x := v.(type) {
	case time.Time:
		ts.Time = x
	case int64:
		ts.Time = time.UnixMilli(x)
	case float64:
		ts.Time = time.UnixMilli(int64(x))
	case string:
		if ms, err := strconv.ParseInt(x, 10, 64); err == nil {
			ts.Time = time.UnixMilli(ms)
			return nil
		}
		t, err := time.Parse(time.RFC3339Nano, x)
		if err != nil {
			return fmt.Errorf("invalid created timestamp %q: %w", x, err)
		}
		ts.Time = t
	default:
		return fmt.Errorf("invalid created timestamp of type %T", v)
	}
	return nil
}

func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.UTC().Format(time.RFC3339)), nil
}

// Display renders the timestamp in loc with CreatedLayout.
func (ts Timestamp) Display(loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return ts.In(loc).Format(CreatedLayout)
}
