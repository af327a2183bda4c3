package validator

import "testing"

func TestCustomRules(t *testing.T) {
	v := Get()

	cases := []struct {
		tag   string
		value string
		valid bool
	}{
		{"loan_purpose", "capital_giro", true},
		{"loan_purpose", "equipamentos", true},
		{"loan_purpose", "viagem", false},
		{"risk_tier", "very_poor", true},
		{"risk_tier", "stellar", false},
		{"payment_status", "partially_paid", true},
		{"payment_status", "settled", false},
		{"pix_key_type", "cnpj", true},
		{"pix_key_type", "iban", false},
	}
	for _, tc := range cases {
		err := v.Var(tc.value, tc.tag)
		if tc.valid && err != nil {
			t.Errorf("%s=%q: expected valid, got %v", tc.tag, tc.value, err)
		}
		if !tc.valid && err == nil {
			t.Errorf("%s=%q: expected invalid", tc.tag, tc.value)
		}
	}
}

func TestValidPixKey(t *testing.T) {
	cases := []struct {
		key     string
		keyType string
		valid   bool
	}{
		{"123.456.789-01", "cpf", true},
		{"12345678901", "cpf", true},
		{"1234567890", "cpf", false},
		{"12.345.678/0001-95", "cnpj", true},
		{"1234567890001", "cnpj", false},
		{"dev@shiftbox.com.br", "email", true},
		{"not-an-email", "email", false},
		{"(11) 98765-4321", "phone", true},
		{"11987654321", "phone", true},
		{"123", "phone", false},
		{"a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6", "random", true},
		{"short-key", "random", false},
		{"12345678901", "iban", false},
	}
	for _, tc := range cases {
		if got := ValidPixKey(tc.key, tc.keyType); got != tc.valid {
			t.Errorf("ValidPixKey(%q, %q): expected %v, got %v", tc.key, tc.keyType, tc.valid, got)
		}
	}
}
