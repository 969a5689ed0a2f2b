package listing

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		max     int
		wantLen int
	}{
		{name: "shorter than cap", in: "short bio", max: MaxLongDescription, wantLen: 9},
		{name: "exactly at cap", in: strings.Repeat("a", 500), max: MaxLongDescription, wantLen: 500},
		{name: "over the cap", in: strings.Repeat("a", 600), max: MaxLongDescription, wantLen: 500},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := Truncate(tc.in, tc.max)
			if len([]rune(got)) != tc.wantLen {
				t.Fatalf("Truncate length = %d, want %d", len([]rune(got)), tc.wantLen)
			}
			if !strings.HasPrefix(tc.in, got) {
				t.Fatalf("Truncate must be a prefix of its input")
			}
		})
	}
}

func TestTruncateMultibyte(t *testing.T) {
	in := strings.Repeat("ä", 600)
	got := Truncate(in, MaxLongDescription)
	if n := len([]rune(got)); n != 500 {
		t.Fatalf("rune length = %d, want 500", n)
	}
	if strings.ContainsRune(got, '�') {
		t.Fatal("truncation split a rune")
	}
}

func TestHashIDDeterministic(t *testing.T) {
	a := HashID("techno")
	b := HashID("techno")
	if a != b {
		t.Fatalf("same text produced different ids: %d vs %d", a, b)
	}
	if HashID("techno") == HashID("ambient") {
		t.Fatal("different tags produced the same id")
	}
}

func TestParseReleaseDate(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{name: "full month format", raw: "June 5, 2021", want: "2021-06-05", wantOK: true},
		{name: "surrounding whitespace", raw: "  January 31, 1999 ", want: "1999-01-31", wantOK: true},
		{name: "abbreviated month", raw: "Jun 5 2021"},
		{name: "garbage", raw: "coming soon"},
		{name: "empty", raw: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseReleaseDate(tc.raw)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if got != tc.want {
				t.Fatalf("date = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNormSpace(t *testing.T) {
	got := NormSpace("  electronic \n producer\tbased in   Amsterdam ")
	want := "electronic producer based in Amsterdam"
	if got != want {
		t.Fatalf("NormSpace = %q, want %q", got, want)
	}
}

func TestStringPtr(t *testing.T) {
	if StringPtr("") != nil {
		t.Fatal("empty string must map to nil")
	}
	if got := StringPtr("x"); got == nil || *got != "x" {
		t.Fatalf("StringPtr(\"x\") = %v", got)
	}
}
