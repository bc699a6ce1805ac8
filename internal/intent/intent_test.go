package intent

import (
	"testing"

	"github.com/polyglotbot/polyglot/internal/catalog"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want catalog.Category
	}{
		{"Hello", catalog.Greeting},
		{"hola amigo", catalog.Greeting},
		{"hey you", catalog.Greeting},
		{"what is your name?", catalog.Name},
		{"who are you", catalog.Name},
		{"I said goodbye yesterday", catalog.Farewell},
		{"can you help me with this", catalog.Help},
		{"the weather is nice today", catalog.Fallback},
		{"", catalog.Fallback},
	}
	for _, tt := range tests {
		if got := Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	t.Parallel()

	// Farewell wins over greeting when both keyword sets match.
	if got := Classify("hello and goodbye"); got != catalog.Farewell {
		t.Errorf("Classify = %q, want farewell to win the tie", got)
	}
	// Greeting wins over name-query by declaration order.
	if got := Classify("hello, what are you"); got != catalog.Greeting {
		t.Errorf("Classify = %q, want greeting to win the tie", got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	t.Parallel()

	if got := Classify("HELLO THERE"); got != catalog.Greeting {
		t.Errorf("Classify = %q, want greeting", got)
	}
}
