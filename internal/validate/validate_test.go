package validate_test

import (
	"testing"

	"innovtech/internal/validate"
)

func TestEmail(t *testing.T) {
	good := []string{"a@b.com", "user.name+tag@mail.example.org"}
	for _, s := range good {
		if _, ok := validate.Email(s); !ok {
			t.Errorf("Email(%q) rejected", s)
		}
	}
	bad := []string{"", "  ", "no-at-sign", "a@b", "@b.com"}
	for _, s := range bad {
		if _, ok := validate.Email(s); ok {
			t.Errorf("Email(%q) accepted", s)
		}
	}
	if got, _ := validate.Email("  a@b.com  "); got != "a@b.com" {
		t.Errorf("Email did not trim: %q", got)
	}
}

func TestPassword(t *testing.T) {
	if validate.Password("short") {
		t.Error("7-char password accepted")
	}
	if !validate.Password("12345678") {
		t.Error("8-char password rejected")
	}
	long := make([]byte, 73)
	for i := range long {
		long[i] = 'x'
	}
	if validate.Password(string(long)) {
		t.Error("73-byte password accepted (bcrypt truncates)")
	}
}

func TestID(t *testing.T) {
	if id, ok := validate.ID(" 42 "); !ok || id != 42 {
		t.Errorf("ID(\" 42 \") = %d, %v", id, ok)
	}
	for _, s := range []string{"", "0", "-3", "abc", "1.5"} {
		if _, ok := validate.ID(s); ok {
			t.Errorf("ID(%q) accepted", s)
		}
	}
}

func TestQty(t *testing.T) {
	if _, ok := validate.Qty(0); ok {
		t.Error("Qty(0) accepted")
	}
	if _, ok := validate.Qty(1001); ok {
		t.Error("Qty(1001) accepted")
	}
	if q, ok := validate.Qty(3); !ok || q != 3 {
		t.Errorf("Qty(3) = %d, %v", q, ok)
	}
}
