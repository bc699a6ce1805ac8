package language

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Code
	}{
		{"EN", "en"},
		{"fr-CA", "fr"},
		{"en_US", "en"},
		{" de ", "de"},
		{"es", "es"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatchAlias(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text    string
		want    Code
		matched bool
	}{
		{"switch to german", "de", true},
		{"cambiar a español", "es", true},
		{"please speak FRENCH now", "fr", true},
		{"हिंदी", "hi", true},
		{"let's talk", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := MatchAlias(tt.text)
		if ok != tt.matched || got != tt.want {
			t.Errorf("MatchAlias(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.matched)
		}
	}
}

func TestMatchAliasLongestKeywordFirst(t *testing.T) {
	t.Parallel()

	// "bahasa melayu" contains no shorter alias that should shadow it.
	got, ok := MatchAlias("saya mahu bahasa melayu")
	if !ok || got != "ms" {
		t.Fatalf("MatchAlias = (%q, %v), want (ms, true)", got, ok)
	}
}

func TestName(t *testing.T) {
	t.Parallel()

	if got := Name("de"); got != "German" {
		t.Errorf("Name(de) = %q, want German", got)
	}
	if got := Name("xx"); got != "xx" {
		t.Errorf("Name(xx) = %q, want xx", got)
	}
}

func TestKnown(t *testing.T) {
	t.Parallel()

	if !Known("de") {
		t.Error("Known(de) = false, want true")
	}
	if Known("az") {
		t.Error("Known(az) = true, want false for codes outside the registry")
	}
	if Known(Unknown) {
		t.Error("Known(Unknown) = true, want false")
	}
}

func TestFormatListDeterministic(t *testing.T) {
	t.Parallel()

	first := FormatList()
	for i := 0; i < 5; i++ {
		if got := FormatList(); got != first {
			t.Fatal("FormatList output is not stable across calls")
		}
	}

	if !strings.HasPrefix(first, "Available Languages:") {
		t.Errorf("missing heading: %q", first[:40])
	}

	// Groups appear in alphabetical order of the code's first letter.
	idxA := strings.Index(first, "\nA: ")
	idxE := strings.Index(first, "\nE: ")
	idxZ := strings.Index(first, "\nZ: ")
	if idxA < 0 || idxE < 0 || idxZ < 0 {
		t.Fatalf("expected A, E and Z groups in %q", first)
	}
	if !(idxA < idxE && idxE < idxZ) {
		t.Error("groups are not sorted alphabetically")
	}

	// Entries are sorted by display name within a group.
	for line := range strings.SplitSeq(first, "\n") {
		if !strings.HasPrefix(line, "E: ") {
			continue
		}
		entries := strings.Split(strings.TrimPrefix(line, "E: "), ", ")
		for i := 1; i < len(entries); i++ {
			if entries[i-1] > entries[i] {
				t.Errorf("group E not sorted: %q before %q", entries[i-1], entries[i])
			}
		}
	}
}
