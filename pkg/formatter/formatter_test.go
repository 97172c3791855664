package formatter

import (
	"testing"
	"time"
)

func TestFormatCPF(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"07695480592", "076.954.805-92"},
		{"076.954.805-92", "076.954.805-92"},
		{"076 954 805 92", "076.954.805-92"},
		{"123456789", "123456789"},
		{"abc", ""},
	}

	for _, c := range cases {
		if got := FormatCPF(c.in); got != c.want {
			t.Errorf("FormatCPF(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatCPFIdempotent(t *testing.T) {
	once := FormatCPF("07695480592")
	twice := FormatCPF(once)
	if once != twice {
		t.Errorf("expected idempotent formatting, got %q then %q", once, twice)
	}
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"27/09/1997", "27/09/1997"},
		{"27091997", "27/09/1997"},
		{"1/2/1990", "01/02/1990"},
		{"270997", "Invalid Date"},
		{"amanhã", "Invalid Date"},
		{"", "Invalid Date"},
	}

	for _, c := range cases {
		if got := FormatDate(c.in); got != c.want {
			t.Errorf("FormatDate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{26*time.Hour + 5*time.Minute, "1d 2h 5m"},
		{3*time.Hour + 15*time.Minute + 30*time.Second, "3h 15m 30s"},
		{5*time.Minute + 10*time.Second, "5m 10s"},
		{42 * time.Second, "42s"},
		{0, "0s"},
	}

	for _, c := range cases {
		if got := FormatDuration(c.in); got != c.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"5577988887777", "(77) 98888-7777"},
		{"7788887777", "(77) 8888-7777"},
		{"77988887777", "(77) 98888-7777"},
		{"123", "123"},
	}

	for _, c := range cases {
		if got := FormatPhone(c.in); got != c.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExtractPhoneFromWhatsAppID(t *testing.T) {
	if got := ExtractPhoneFromWhatsAppID("5577988887777@c.us"); got != "5577988887777" {
		t.Errorf("expected phone without suffix, got %q", got)
	}
	if got := ExtractPhoneFromWhatsAppID("5577988887777"); got != "5577988887777" {
		t.Errorf("expected raw value without @, got %q", got)
	}
}
