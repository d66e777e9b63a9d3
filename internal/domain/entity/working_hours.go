package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// DayHours holds one weekday's opening configuration. Two JSON shapes exist
// in production data and both must be readable:
//
//	current: {"is_open": true, "start_time": "08:00", "end_time": "14:00"}
//	legacy:  {"closed": false, "start": "08:00", "end": "14:00"}
type DayHours struct {
	IsOpen    *bool  `json:"is_open,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`

	// Legacy shape
	Closed *bool  `json:"closed,omitempty"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
}

// Bounds normalizes both shapes into (start, end, open). A day with no
// usable boundary pair reports open=false.
func (d DayHours) Bounds() (start, end string, open bool) {
	switch {
	case d.IsOpen != nil:
		if !*d.IsOpen {
			return "", "", false
		}
		start, end = d.StartTime, d.EndTime
	case d.Closed != nil:
		if *d.Closed {
			return "", "", false
		}
		start, end = d.Start, d.End
	default:
		// Neither flag present: prefer whichever boundary pair is filled
		start, end = d.StartTime, d.EndTime
		if start == "" && end == "" {
			start, end = d.Start, d.End
		}
	}

	if start == "" || end == "" {
		return "", "", false
	}
	return start, end, true
}

// WorkingHours maps a weekday key to that day's hours. Keys written by the
// current admin form are lowercase English day names; legacy rows may carry
// localized or abbreviated keys (normalized at read time by the scheduling
// package).
type WorkingHours map[string]DayHours

// Value implements driver.Valuer for JSONB storage
func (w WorkingHours) Value() (driver.Value, error) {
	if len(w) == 0 {
		return nil, nil
	}
	return json.Marshal(w)
}

// Scan implements sql.Scanner for JSONB storage
func (w *WorkingHours) Scan(value interface{}) error {
	if value == nil {
		*w = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := WorkingHours{}
	err := json.Unmarshal(bytes, &result)
	*w = result
	return err
}
