package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-01-01", "2024-02-29", "1999-12-31"}
	invalid := []string{"2025-13-01", "2025-02-30", "01-01-2025", "2025/01/01", "", "today"}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"abc", true},
		{"alice", true},
		{"ab", false},
		{"  ab  ", false},
		{"   ", false},
		{"", false},
	}
	for _, c := range cases {
		got := IsValidUsername(c.input)
		if got != c.want {
			t.Errorf("IsValidUsername(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"secret", true},
		{"123456", true},
		{"12345", false},
		{"", false},
	}
	for _, c := range cases {
		got := IsValidPassword(c.input)
		if got != c.want {
			t.Errorf("IsValidPassword(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestValidationErrorsError(t *testing.T) {
	errs := ValidationErrors{
		{Field: "username", Message: "username is required"},
		{Field: "password", Message: "password is too short"},
	}
	want := "username: username is required; password: password is too short"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	m := errs.ToMap()
	if m["username"] != "username is required" || m["password"] != "password is too short" {
		t.Errorf("ToMap() = %v", m)
	}
}
