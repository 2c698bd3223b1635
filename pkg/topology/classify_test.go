package topology

import "testing"

// TestClassifyContact_Unconformity checks the documented example: codes
// "001a" and "003a" (trailing qualifier excluded) differ first at position 2,
// digit 3, an unconformity.
func TestClassifyContact_Unconformity(t *testing.T) {
	digit, typ := ClassifyContact("001a", "003a")
	if digit != 3 {
		t.Errorf("digit = %d, want 3", digit)
	}
	if typ != Unconformity {
		t.Errorf("type = %v, want unconformity", typ)
	}
}

// TestClassifyContact_FirstDifferenceWins verifies the scan stops at the
// first differing position even when later positions differ too.
func TestClassifyContact_FirstDifferenceWins(t *testing.T) {
	// positions: 0 same, 1 differs (3 vs 0 -> 3), 2 differs (0 vs 5, ignored)
	digit, typ := ClassifyContact("030a", "005a")
	if digit != 3 {
		t.Errorf("digit = %d, want 3 (first difference)", digit)
	}
	if typ != Unconformity {
		t.Errorf("type = %v, want unconformity", typ)
	}
}

// TestClassifyContact_LargerDigitTaken checks the larger of the two digits is
// taken regardless of which code carries it.
func TestClassifyContact_LargerDigitTaken(t *testing.T) {
	digit, _ := ClassifyContact("050a", "020a")
	if digit != 5 {
		t.Errorf("digit = %d, want 5", digit)
	}
	digit, _ = ClassifyContact("020a", "050a")
	if digit != 5 {
		t.Errorf("digit = %d, want 5 (swapped)", digit)
	}
}

// TestClassifyContact_IdenticalCodes checks identical compared codes keep the
// stratigraphic default.
func TestClassifyContact_IdenticalCodes(t *testing.T) {
	digit, typ := ClassifyContact("001a", "001b")
	if digit != 0 {
		t.Errorf("digit = %d, want 0", digit)
	}
	if typ != Stratigraphic {
		t.Errorf("type = %v, want stratigraphic", typ)
	}
}

func TestClassifyContact_DigitMapping(t *testing.T) {
	tests := []struct {
		a, b  string
		digit int
		typ   ContactType
	}{
		{"000a", "000b", 0, Stratigraphic},
		{"020a", "000a", 2, Fault},
		{"070a", "000a", 7, Fault},
		{"080a", "000a", 8, Fault},
		{"030a", "000a", 3, Unconformity},
		{"050a", "000a", 5, Intrusive},
		{"010a", "000a", 1, Unknown},
		{"040a", "000a", 4, Unknown},
		{"090a", "000a", 9, Unknown},
	}
	for _, tt := range tests {
		digit, typ := ClassifyContact(tt.a, tt.b)
		if digit != tt.digit || typ != tt.typ {
			t.Errorf("ClassifyContact(%q, %q) = (%d, %v), want (%d, %v)",
				tt.a, tt.b, digit, typ, tt.digit, tt.typ)
		}
	}
}

func TestContactType_Colour(t *testing.T) {
	tests := []struct {
		typ    ContactType
		colour string
	}{
		{Stratigraphic, "black"},
		{Fault, "red"},
		{Unconformity, "blue"},
		{Intrusive, "yellow"},
		{Unknown, "green"},
	}
	for _, tt := range tests {
		if got := tt.typ.Colour(); got != tt.colour {
			t.Errorf("%v.Colour() = %q, want %q", tt.typ, got, tt.colour)
		}
	}
}
