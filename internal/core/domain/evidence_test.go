package domain

import "testing"

func TestFormatFromMIME(t *testing.T) {
	cases := []struct {
		mime   string
		format Format
		ok     bool
	}{
		{"image/png", FormatPNG, true},
		{"image/jpg", FormatJPG, true},
		{"image/jpeg", FormatJPG, true},
		{"application/pdf", FormatPDF, true},
		{"IMAGE/PNG", FormatPNG, true},
		{"image/gif", "", false},
		{"text/plain", "", false},
		{"png", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		format, ok := FormatFromMIME(tc.mime)
		if ok != tc.ok {
			t.Fatalf("%q: expected ok=%v, got %v", tc.mime, tc.ok, ok)
		}
		if ok && format != tc.format {
			t.Fatalf("%q: expected %s, got %s", tc.mime, tc.format, format)
		}
	}
}

func TestFormatValid(t *testing.T) {
	for _, f := range []Format{FormatPNG, FormatJPG, FormatPDF} {
		if !f.Valid() {
			t.Fatalf("%s must be valid", f)
		}
	}
	if Format("gif").Valid() {
		t.Fatalf("gif must not be valid")
	}
}

func TestIsValidRole(t *testing.T) {
	if !IsValidRole(RoleStudent) || !IsValidRole(RoleAdmin) {
		t.Fatalf("known roles must validate")
	}
	if IsValidRole("superuser") || IsValidRole("") {
		t.Fatalf("unknown roles must not validate")
	}
}
