package api

import "testing"

func TestTaxCodeFormats(t *testing.T) {
	valid := []string{
		"DE012345678",
		"IT01234567890",
		"GR012345678",
		"FRXY0123456789",
	}
	for _, code := range valid {
		if !validTaxCode(code) {
			t.Errorf("expected %q to be valid", code)
		}
	}

	invalid := []string{
		"",
		"DE12",
		"DE0123456789",    // one digit too many
		"FR010123456789",  // digits where letters are required
		"ES012345678",     // unknown country
		"de012345678",     // lowercase prefix
		"IT01234567890 ",  // trailing space
		"XDE012345678",    // leading garbage
	}
	for _, code := range invalid {
		if validTaxCode(code) {
			t.Errorf("expected %q to be invalid", code)
		}
	}
}

func TestBuildTaxCodeRegex(t *testing.T) {
	got := buildTaxCodeRegex()
	want := `^(DE\d{9}|FR[A-Z]{2}\d{10}|GR\d{9}|IT\d{11})$`
	if got != want {
		t.Errorf("regex mismatch:\n got %s\nwant %s", got, want)
	}
}
