package scheduling

import (
	"errors"
	"reflect"
	"testing"
)

func TestGenerateSlotsShortWindow(t *testing.T) {
	slots, err := GenerateSlots(Interval{Start: "08:00", End: "08:21"})
	if err != nil {
		t.Fatalf("GenerateSlots error: %v", err)
	}
	want := []string{"08:00", "08:07", "08:14"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestGenerateSlotsFullHour(t *testing.T) {
	slots, err := GenerateSlots(Interval{Start: "09:00", End: "10:00"})
	if err != nil {
		t.Fatalf("GenerateSlots error: %v", err)
	}
	if len(slots) != 9 {
		t.Fatalf("expected 9 slots, got %d: %v", len(slots), slots)
	}
	if slots[0] != "09:00" || slots[len(slots)-1] != "09:56" {
		t.Fatalf("unexpected boundary slots: %v", slots)
	}
}

func TestGenerateSlotsLatticeRestartsEachHour(t *testing.T) {
	slots, err := GenerateSlots(Interval{Start: "08:30", End: "09:30"})
	if err != nil {
		t.Fatalf("GenerateSlots error: %v", err)
	}
	want := []string{"08:35", "08:42", "08:49", "08:56", "09:00", "09:07", "09:14", "09:21", "09:28"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestGenerateSlotsEndExclusive(t *testing.T) {
	slots, err := GenerateSlots(Interval{Start: "08:00", End: "08:14"})
	if err != nil {
		t.Fatalf("GenerateSlots error: %v", err)
	}
	for _, s := range slots {
		if s == "08:14" {
			t.Fatalf("end boundary must be excluded, got %v", slots)
		}
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %v", slots)
	}
}

func TestGenerateSlotsBadClock(t *testing.T) {
	if _, err := GenerateSlots(Interval{Start: "8am", End: "10:00"}); !errors.Is(err, ErrInvalidClock) {
		t.Fatalf("expected ErrInvalidClock, got %v", err)
	}
}

func TestGenerateIntervalSlots(t *testing.T) {
	slots, err := GenerateIntervalSlots(Interval{Start: "08:00", End: "12:00"}, 30)
	if err != nil {
		t.Fatalf("GenerateIntervalSlots error: %v", err)
	}
	if len(slots) != 8 {
		t.Fatalf("expected 8 slots, got %d: %v", len(slots), slots)
	}
	if slots[0] != "08:00" || slots[len(slots)-1] != "11:30" {
		t.Fatalf("unexpected boundary slots: %v", slots)
	}
}

func TestGenerateIntervalSlotsRejectsStepOutOfRange(t *testing.T) {
	for _, step := range []int{0, 4, 121} {
		if _, err := GenerateIntervalSlots(Interval{Start: "08:00", End: "12:00"}, step); !errors.Is(err, ErrInvalidInterval) {
			t.Fatalf("step %d: expected ErrInvalidInterval, got %v", step, err)
		}
	}
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("09:05")
	if err != nil || h != 9 || m != 5 {
		t.Fatalf("ParseClock(09:05) = %d,%d,%v", h, m, err)
	}

	// Seconds component from a postgres time column is ignored
	h, m, err = ParseClock("14:30:00")
	if err != nil || h != 14 || m != 30 {
		t.Fatalf("ParseClock(14:30:00) = %d,%d,%v", h, m, err)
	}

	for _, bad := range []string{"", "9", "24:00", "10:60", "ab:cd"} {
		if _, _, err := ParseClock(bad); err == nil {
			t.Fatalf("ParseClock(%q) should fail", bad)
		}
	}
}

func TestTruncateToMinute(t *testing.T) {
	cases := map[string]string{
		"09:00:00": "09:00",
		"9:5":      "09:05",
		"14:35":    "14:35",
		"bogus":    "bogus",
	}
	for in, want := range cases {
		if got := TruncateToMinute(in); got != want {
			t.Fatalf("TruncateToMinute(%q) = %q, want %q", in, got, want)
		}
	}
}
