package utils

import "testing"

func TestNormalizePostcode(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"6811AB", "6811 AB", true},
		{"6811 ab", "6811 AB", true},
		{" 1234cd ", "1234 CD", true},
		{"0123 AB", "", false}, // postcodes never start with 0
		{"12 AB", "", false},
		{"6811ABC", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := NormalizePostcode(c.in)
		if got != c.want || ok != c.ok {
			t.Fatalf("NormalizePostcode(%q)=(%q,%v), want (%q,%v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestDutchValidators(t *testing.T) {
	v := NewCustomValidator()

	type payload struct {
		Postcode string `validate:"dutch_postcode"`
		Phone    string `validate:"dutch_phone"`
	}

	valid := []payload{
		{"6811 AB", "0612345678"},
		{"1234CD", "+31612345678"},
		{"9999 zz", "06 12 34 56 78"},
		{"6811AB", "026-1234567"},
	}
	for _, p := range valid {
		if err := v.Validate(p); err != nil {
			t.Fatalf("expected %+v to be valid: %v", p, err)
		}
	}

	invalid := []payload{
		{"0811 AB", "0612345678"},
		{"6811 AB", "12345"},
		{"6811 AB", "+4912345678901"},
	}
	for _, p := range invalid {
		if err := v.Validate(p); err == nil {
			t.Fatalf("expected %+v to be invalid", p)
		}
	}
}

func TestValidationErrorsMessages(t *testing.T) {
	v := NewCustomValidator()

	type payload struct {
		Name     string `validate:"required"`
		Postcode string `validate:"dutch_postcode"`
	}

	err := v.Validate(payload{})
	if err == nil {
		t.Fatal("expected a validation error")
	}

	fields := v.ValidationErrors(err)
	if fields["Name"] != "dit veld is verplicht" {
		t.Fatalf("Name message %q", fields["Name"])
	}
	if fields["Postcode"] == "" {
		t.Fatal("expected a postcode message")
	}
}
