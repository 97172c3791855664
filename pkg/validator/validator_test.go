package validator

import "testing"

func TestOnlyDigits(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"076.954.805-92", "07695480592"},
		{"27/09/1997", "27091997"},
		{"abc", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := OnlyDigits(c.in); got != c.want {
			t.Errorf("OnlyDigits(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValidateCPF(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"076.954.805-92", true},
		{"07695480592", true},
		{"076 954 805 92", true},
		{"11111111111", false},
		{"00000000000", false},
		{"123456789", false},
		{"123456789012", false},
		{"", false},
		{"abc", false},
	}

	for _, c := range cases {
		if got := ValidateCPF(c.in); got != c.want {
			t.Errorf("ValidateCPF(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestValidateDate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"27/09/1997", true},
		{"27091997", true},
		{"1/2/1990", true},
		{"31/02/2023", false},
		{"270997", false},
		{"00/00/0000", false},
		{"32/01/2000", false},
		{"27/13/1997", false},
		{"31/12/2999", false},
		{"", false},
		{"amanhã", false},
	}

	for _, c := range cases {
		if got := ValidateDate(c.in); got != c.want {
			t.Errorf("ValidateDate(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseDateCompactAndSlashAgree(t *testing.T) {
	d1, m1, y1, ok1 := ParseDate("27/09/1997")
	d2, m2, y2, ok2 := ParseDate("27091997")

	if !ok1 || !ok2 {
		t.Fatalf("expected both formats to parse, got %v and %v", ok1, ok2)
	}
	if d1 != d2 || m1 != m2 || y1 != y2 {
		t.Errorf("expected same date, got %d/%d/%d and %d/%d/%d", d1, m1, y1, d2, m2, y2)
	}
	if d1 != 27 || m1 != 9 || y1 != 1997 {
		t.Errorf("expected 27/9/1997, got %d/%d/%d", d1, m1, y1)
	}
}

func TestValidateText(t *testing.T) {
	if !ValidateText("Dipirona 500mg", 2, MaxTextLength) {
		t.Error("expected valid text to pass")
	}
	if ValidateText("a", 2, MaxTextLength) {
		t.Error("expected text below minimum length to fail")
	}
	if ValidateText("   ", 1, MaxTextLength) {
		t.Error("expected blank text to fail")
	}
	if ValidateText("ok", 1, 1) {
		t.Error("expected text above maximum length to fail")
	}
	// O limite é contado em runas, não em bytes
	if !ValidateText("çã", 2, 2) {
		t.Error("expected rune counting for limits")
	}
}

func TestValidateOption(t *testing.T) {
	options := []string{"1", "2", "3", "4"}

	if !ValidateOption(" 2 ", options) {
		t.Error("expected option with surrounding spaces to pass")
	}
	if ValidateOption("5", options) {
		t.Error("expected unknown option to fail")
	}
	if ValidateOption("quero falar com atendente", options) {
		t.Error("expected free text to fail")
	}
	if ValidateOption("", options) {
		t.Error("expected empty message to fail")
	}
}
