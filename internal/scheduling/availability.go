package scheduling

import "github.com/shifacare/medcenter-booking/internal/domain/entity"

// FilterAvailable removes candidate slots that collide with already-booked
// times. Pure set difference: candidate order is preserved, booked times are
// minute-truncated before comparison. The booked list must already exclude
// cancelled and rejected appointments.
func FilterAvailable(candidates []string, booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[TruncateToMinute(b)] = struct{}{}
	}

	available := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := taken[TruncateToMinute(c)]; !ok {
			available = append(available, c)
		}
	}
	return available
}

// PartitionBySlot examines the existing rows for one exact (clinic, date,
// time) and splits them for the submission-time conflict guard: a
// pending/approved row blocks the booking; a cancelled (or rejected) row is
// reusable and gets overwritten in place instead of inserting a second row.
// Cancelled rows are preferred for reuse when both exist.
func PartitionBySlot(existing []entity.Appointment) (conflicting, reusable *entity.Appointment) {
	for i := range existing {
		a := &existing[i]
		switch {
		case a.IsActive():
			if conflicting == nil {
				conflicting = a
			}
		case a.Status == entity.AppointmentStatusCancelled:
			if reusable == nil || reusable.Status != entity.AppointmentStatusCancelled {
				reusable = a
			}
		case a.Status == entity.AppointmentStatusRejected:
			if reusable == nil {
				reusable = a
			}
		}
	}
	return conflicting, reusable
}
