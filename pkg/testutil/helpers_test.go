package testutil

import "testing"

func TestReferenceInputs(t *testing.T) {
	in := ReferenceInputs()

	if err := in.Validate(); err != nil {
		t.Fatalf("reference inputs failed validation: %v", err)
	}
	if in.DownPaymentAmount() != 1000000 {
		t.Errorf("DownPaymentAmount() = %.2f, expected 1000000", in.DownPaymentAmount())
	}
	if in.LoanAmount() != 4000000 {
		t.Errorf("LoanAmount() = %.2f, expected 4000000", in.LoanAmount())
	}
	if in.Costs.Total() != 3300 {
		t.Errorf("Costs.Total() = %.2f, expected 3300", in.Costs.Total())
	}
	if in.ShortTermRental.Active() {
		t.Error("reference inputs should not let short-term")
	}
}

func TestShortTermInputs(t *testing.T) {
	in := ShortTermInputs()

	if err := in.Validate(); err != nil {
		t.Fatalf("short-term inputs failed validation: %v", err)
	}
	if !in.ShortTermRental.Active() {
		t.Error("short-term rental should be active")
	}

	// Each call returns an independent value.
	in.MonthlyRent = 1
	if ReferenceInputs().MonthlyRent != 25000 {
		t.Error("modifying returned inputs changed the reference scenario")
	}
}
