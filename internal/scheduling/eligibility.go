package scheduling

import (
	"errors"
	"strings"

	"github.com/shifacare/medcenter-booking/internal/domain/entity"
)

// ClinicType classifies a clinic by its name for patient eligibility rules.
// Classification is a substring heuristic on the Arabic clinic name; the
// clinics table has no type column.
type ClinicType string

const (
	ClinicGeneral          ClinicType = "general"
	ClinicPediatrics       ClinicType = "pediatrics"
	ClinicInternalMedicine ClinicType = "internal_medicine"
	ClinicObstetrics       ClinicType = "obstetrics"
)

// Eligibility bounds per clinic type.
const (
	PediatricsMaxAge       = 14
	InternalMedicineMinAge = 18
	MaxPatientAge          = 120
)

// Patient-facing eligibility messages, surfaced verbatim in the booking form.
var (
	ErrInvalidPatientAge = errors.New("عمر المريض غير صالح")

	ErrPediatricsAgeTooHigh = errors.New("عيادة الأطفال تستقبل المرضى حتى عمر 14 عامًا فقط")

	ErrInternalMedicineAgeTooLow = errors.New("العيادة الداخلية تستقبل المرضى من عمر 18 عامًا فما فوق")

	ErrObstetricsGender = errors.New("عيادة النساء والتوليد تستقبل المريضات الإناث فقط")
)

// classifier substrings checked in order; first match wins.
var clinicTypeMarkers = []struct {
	markers []string
	ctype   ClinicType
}{
	{[]string{"أطفال", "اطفال", "pediatric"}, ClinicPediatrics},
	{[]string{"داخلية", "باطنية", "internal"}, ClinicInternalMedicine},
	{[]string{"نساء", "توليد", "obstetric"}, ClinicObstetrics},
}

// ClassifyClinic derives the eligibility category from the clinic name.
func ClassifyClinic(name string) ClinicType {
	lowered := strings.ToLower(name)
	for _, entry := range clinicTypeMarkers {
		for _, marker := range entry.markers {
			if strings.Contains(lowered, marker) {
				return entry.ctype
			}
		}
	}
	return ClinicGeneral
}

// ValidateEligibility checks the entered patient snapshot against the
// clinic-type rule before any write occurs. Returns nil when eligible.
func ValidateEligibility(ctype ClinicType, age int, gender string) error {
	if age < 0 || age > MaxPatientAge {
		return ErrInvalidPatientAge
	}

	switch ctype {
	case ClinicPediatrics:
		if age > PediatricsMaxAge {
			return ErrPediatricsAgeTooHigh
		}
	case ClinicInternalMedicine:
		if age < InternalMedicineMinAge {
			return ErrInternalMedicineAgeTooLow
		}
	case ClinicObstetrics:
		if gender != entity.GenderFemale {
			return ErrObstetricsGender
		}
	}
	return nil
}
