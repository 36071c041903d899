package txledger

import "testing"

func TestAmount_String(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "integer", input: "1", want: "1.0000"},
		{name: "one decimal", input: "1.5", want: "1.5000"},
		{name: "four decimals", input: "0.0001", want: "0.0001"},
		{name: "zero", input: "0", want: "0.0000"},
		{name: "negative", input: "-0.5", want: "-0.5000"},
		{name: "rounded half up", input: "2.00005", want: "2.0001"},
		{name: "rounded down", input: "2.00004", want: "2.0000"},
		{name: "tiny negative", input: "-0.00001", want: "0.0000"},
		{name: "large", input: "1234567.1234", want: "1234567.1234"},
		{name: "beyond int64", input: "1000000000000000000", want: "1000000000000000000.0000"},
		{name: "spaces", input: "  3.25 ", want: "3.2500"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := ParseAmount(tc.input)
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.input, err)
			}
			if got := a.String(); got != tc.want {
				t.Errorf("ParseAmount(%q).String() = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestAmount_ZeroValue(t *testing.T) {
	var a Amount
	if got, want := a.String(), "0.0000"; got != want {
		t.Errorf("Amount{}.String() = %q, want %q", got, want)
	}
	if !a.Add(A(1.5)).Equal(A(1.5)) {
		t.Errorf("Amount{}.Add(1.5) != 1.5")
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, s := range []string{"", "abc", "1,5", "1.2.3"} {
		if _, err := ParseAmount(s); err == nil {
			t.Errorf("ParseAmount(%q) expected an error", s)
		}
	}
}

func TestAmount_ExactArithmetic(t *testing.T) {
	// 0.1 + 0.2 drifts with floats.
	sum := A(0.1).Add(A(0.2))
	if !sum.Equal(A(0.3)) {
		t.Errorf("0.1 + 0.2 = %s, want 0.3", sum.Decimal())
	}

	var a Amount
	for range 10_000 {
		a = a.Add(A(0.0001))
	}
	for range 9_999 {
		a = a.Sub(A(0.0001))
	}
	if got, want := a.String(), "0.0001"; got != want {
		t.Errorf("after long chain got %q, want %q", got, want)
	}
}

func TestAmount_MarshalJSON(t *testing.T) {
	got, err := A(2).MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "2.0000"; string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}

	var a Amount
	if err := a.UnmarshalJSON([]byte(`"1.25"`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.Equal(A(1.25)) {
		t.Errorf("UnmarshalJSON() = %s, want 1.25", a)
	}
}
