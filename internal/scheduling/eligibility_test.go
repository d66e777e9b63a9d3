package scheduling

import (
	"errors"
	"testing"

	"github.com/shifacare/medcenter-booking/internal/domain/entity"
)

func TestClassifyClinic(t *testing.T) {
	cases := map[string]ClinicType{
		"عيادة الأطفال":         ClinicPediatrics,
		"عيادة اطفال":           ClinicPediatrics,
		"العيادة الداخلية":      ClinicInternalMedicine,
		"عيادة الباطنية":        ClinicInternalMedicine,
		"عيادة النساء والتوليد": ClinicObstetrics,
		"عيادة التوليد":         ClinicObstetrics,
		"العيادة العامة":        ClinicGeneral,
		"عيادة الأسنان":         ClinicGeneral,
	}
	for name, want := range cases {
		if got := ClassifyClinic(name); got != want {
			t.Fatalf("ClassifyClinic(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestValidateEligibilityPediatrics(t *testing.T) {
	if err := ValidateEligibility(ClinicPediatrics, 10, entity.GenderMale); err != nil {
		t.Fatalf("age 10 must be eligible for pediatrics: %v", err)
	}
	if err := ValidateEligibility(ClinicPediatrics, 14, entity.GenderFemale); err != nil {
		t.Fatalf("age 14 is the inclusive limit: %v", err)
	}
	if err := ValidateEligibility(ClinicPediatrics, 15, entity.GenderMale); !errors.Is(err, ErrPediatricsAgeTooHigh) {
		t.Fatalf("age 15 must be rejected, got %v", err)
	}
}

func TestValidateEligibilityInternalMedicine(t *testing.T) {
	if err := ValidateEligibility(ClinicInternalMedicine, 10, entity.GenderMale); !errors.Is(err, ErrInternalMedicineAgeTooLow) {
		t.Fatalf("age 10 must be rejected for internal medicine, got %v", err)
	}
	if err := ValidateEligibility(ClinicInternalMedicine, 18, entity.GenderMale); err != nil {
		t.Fatalf("age 18 is the inclusive minimum: %v", err)
	}
}

func TestValidateEligibilityObstetrics(t *testing.T) {
	if err := ValidateEligibility(ClinicObstetrics, 30, entity.GenderMale); !errors.Is(err, ErrObstetricsGender) {
		t.Fatalf("male patient must be rejected for obstetrics, got %v", err)
	}
	if err := ValidateEligibility(ClinicObstetrics, 30, entity.GenderFemale); err != nil {
		t.Fatalf("female patient must be eligible: %v", err)
	}
}

func TestValidateEligibilityGeneral(t *testing.T) {
	for _, age := range []int{0, 14, 15, 64, 120} {
		if err := ValidateEligibility(ClinicGeneral, age, entity.GenderMale); err != nil {
			t.Fatalf("general clinic must accept age %d: %v", age, err)
		}
	}
}

func TestValidateEligibilityAgeBounds(t *testing.T) {
	for _, age := range []int{-1, 121} {
		if err := ValidateEligibility(ClinicGeneral, age, entity.GenderMale); !errors.Is(err, ErrInvalidPatientAge) {
			t.Fatalf("age %d must be invalid, got %v", age, err)
		}
	}
}
