package entity

import (
	"encoding/json"
	"testing"
)

func openDay(start, end string) DayHours {
	open := true
	return DayHours{IsOpen: &open, StartTime: start, EndTime: end}
}

func TestWorkingHoursScanBothShapes(t *testing.T) {
	raw := `{
		"sunday": {"is_open": true, "start_time": "08:00", "end_time": "14:00"},
		"monday": {"closed": false, "start": "09:00", "end": "15:00"},
		"friday": {"is_open": false}
	}`

	var wh WorkingHours
	if err := wh.Scan([]byte(raw)); err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	start, end, open := wh["sunday"].Bounds()
	if !open || start != "08:00" || end != "14:00" {
		t.Fatalf("sunday bounds = %q-%q open=%v", start, end, open)
	}

	start, end, open = wh["monday"].Bounds()
	if !open || start != "09:00" || end != "15:00" {
		t.Fatalf("monday legacy bounds = %q-%q open=%v", start, end, open)
	}

	if _, _, open = wh["friday"].Bounds(); open {
		t.Fatal("friday must report closed")
	}
}

func TestWorkingHoursScanString(t *testing.T) {
	var wh WorkingHours
	if err := wh.Scan(`{"sunday": {"is_open": true, "start_time": "08:00", "end_time": "12:00"}}`); err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if _, _, open := wh["sunday"].Bounds(); !open {
		t.Fatal("expected sunday open")
	}
}

func TestWorkingHoursScanNil(t *testing.T) {
	wh := WorkingHours{"sunday": openDay("08:00", "12:00")}
	if err := wh.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error: %v", err)
	}
	if wh != nil {
		t.Fatalf("expected nil map, got %v", wh)
	}
}

func TestWorkingHoursValueRoundTrip(t *testing.T) {
	wh := WorkingHours{"sunday": openDay("08:00", "14:00")}

	v, err := wh.Value()
	if err != nil {
		t.Fatalf("Value error: %v", err)
	}

	var decoded WorkingHours
	if err := json.Unmarshal(v.([]byte), &decoded); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	start, end, open := decoded["sunday"].Bounds()
	if !open || start != "08:00" || end != "14:00" {
		t.Fatalf("round trip bounds = %q-%q open=%v", start, end, open)
	}
}

func TestWorkingHoursValueEmpty(t *testing.T) {
	var wh WorkingHours
	v, err := wh.Value()
	if err != nil {
		t.Fatalf("Value error: %v", err)
	}
	if v != nil {
		t.Fatalf("empty map must store NULL, got %v", v)
	}
}

func TestDayHoursBoundsNoFlags(t *testing.T) {
	d := DayHours{StartTime: "08:00", EndTime: "12:00"}
	start, end, open := d.Bounds()
	if !open || start != "08:00" || end != "12:00" {
		t.Fatalf("bounds = %q-%q open=%v", start, end, open)
	}

	d = DayHours{Start: "10:00", End: "13:00"}
	start, end, open = d.Bounds()
	if !open || start != "10:00" || end != "13:00" {
		t.Fatalf("legacy bounds = %q-%q open=%v", start, end, open)
	}

	if _, _, open = (DayHours{}).Bounds(); open {
		t.Fatal("empty day must report closed")
	}
}
