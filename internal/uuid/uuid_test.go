package uuid

import (
	"strings"
	"testing"
)

func TestNewIsValidV7(t *testing.T) {
	id := New()
	if !IsValid(id) {
		t.Fatalf("expected valid uuid, got %q", id)
	}
	if id[14] != '7' {
		t.Errorf("expected version 7, got %q", id)
	}
}

func TestNewIsTimeOrdered(t *testing.T) {
	a := New()
	b := New()
	if strings.Compare(a[:13], b[:13]) > 0 {
		t.Errorf("expected %q to sort before %q", a, b)
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("0190A5B2-7C3D-7E4F-8A9B-0C1D2E3F4A5B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0190a5b2-7c3d-7e4f-8a9b-0c1d2e3f4a5b" {
		t.Errorf("expected canonical lower-case form, got %q", got)
	}

	if _, err := Parse("not-a-uuid"); err == nil {
		t.Error("expected error for invalid uuid")
	}
	if IsValid("") {
		t.Error("empty string must not be valid")
	}
}
