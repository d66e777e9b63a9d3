package scheduling

import (
	"reflect"
	"testing"

	"github.com/shifacare/medcenter-booking/internal/domain/entity"
)

func TestFilterAvailable(t *testing.T) {
	candidates := []string{"08:00", "08:07", "08:14", "08:21"}
	booked := []string{"08:07", "08:21"}

	got := FilterAvailable(candidates, booked)
	want := []string{"08:00", "08:14"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilterAvailableSecondsMismatch(t *testing.T) {
	// Booked times read back from a postgres time column carry seconds
	candidates := []string{"08:00", "08:07"}
	booked := []string{"08:00:00"}

	got := FilterAvailable(candidates, booked)
	want := []string{"08:07"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilterAvailableNoBookings(t *testing.T) {
	candidates := []string{"08:00", "08:07"}
	got := FilterAvailable(candidates, nil)
	if !reflect.DeepEqual(got, candidates) {
		t.Fatalf("expected %v, got %v", candidates, got)
	}
}

func TestPartitionBySlotActiveBlocks(t *testing.T) {
	existing := []entity.Appointment{
		{Status: entity.AppointmentStatusPending},
	}

	conflicting, reusable := PartitionBySlot(existing)
	if conflicting == nil {
		t.Fatal("pending appointment must block the slot")
	}
	if reusable != nil {
		t.Fatalf("unexpected reusable row: %+v", reusable)
	}

	existing[0].Status = entity.AppointmentStatusApproved
	conflicting, _ = PartitionBySlot(existing)
	if conflicting == nil {
		t.Fatal("approved appointment must block the slot")
	}
}

func TestPartitionBySlotFreedRowsAreReusable(t *testing.T) {
	for _, status := range []entity.AppointmentStatus{
		entity.AppointmentStatusCancelled,
		entity.AppointmentStatusRejected,
	} {
		conflicting, reusable := PartitionBySlot([]entity.Appointment{{Status: status}})
		if conflicting != nil {
			t.Fatalf("%s row must not block the slot", status)
		}
		if reusable == nil || reusable.Status != status {
			t.Fatalf("%s row must be reusable, got %+v", status, reusable)
		}
	}
}

func TestPartitionBySlotPrefersCancelledForReuse(t *testing.T) {
	existing := []entity.Appointment{
		{Status: entity.AppointmentStatusRejected},
		{Status: entity.AppointmentStatusCancelled},
	}

	_, reusable := PartitionBySlot(existing)
	if reusable == nil || reusable.Status != entity.AppointmentStatusCancelled {
		t.Fatalf("expected cancelled row preferred, got %+v", reusable)
	}
}

func TestPartitionBySlotEmpty(t *testing.T) {
	conflicting, reusable := PartitionBySlot(nil)
	if conflicting != nil || reusable != nil {
		t.Fatalf("empty slot must be fully free, got %+v / %+v", conflicting, reusable)
	}
}
