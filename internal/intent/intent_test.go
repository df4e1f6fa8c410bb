package intent

import "testing"

func TestDetectMood(t *testing.T) {
	tests := []struct {
		name string
		text string
		mode MatchMode
		want string
		ok   bool
	}{
		{"simple match", "I'm feeling adventurous today", MatchSubstring, "adventurous", true},
		{"uppercase input", "SO EXCITED!!", MatchSubstring, "excited", true},
		{"pumped maps to excited", "feeling pumped", MatchSubstring, "excited", true},
		{"table order wins", "I'm so unhappy right now", MatchSubstring, "happy", true},
		{"word mode respects boundaries", "I'm so unhappy right now", MatchWord, "sad", true},
		{"no match", "qwert", MatchSubstring, "", false},
		{"empty input", "", MatchSubstring, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectMood(tt.text, tt.mode)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("DetectMood(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"music", "I love live music", "music", true},
		{"comedy", "something funny please", "comedy", true},
		// "painting" contains "ai", and technology is first in the table.
		{"substring collision", "a painting fair", "technology", true},
		{"no match", "hmm", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectCategory(tt.text, MatchSubstring)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("DetectCategory(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestExtractNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
		ok   bool
	}{
		{"bare digits", "3", 3, true},
		{"digits in sentence", "give me 4 tickets", 4, true},
		{"digits beat words", "two, no wait, 5", 5, true},
		{"number word", "three tickets please", 3, true},
		{"ordinal", "my second pick", 2, true},
		{"couple", "just the couple of us", 2, true},
		{"article means one", "grab me a ticket", 1, true},
		{"multi digit", "42", 42, true},
		{"no number", "hmm", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractNumber(tt.text)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("ExtractNumber(%q) = (%d, %v), want (%d, %v)", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestExtractEmail(t *testing.T) {
	got, ok := ExtractEmail("reach me at john.doe+test@mail.example.org thanks")
	if !ok || got != "john.doe+test@mail.example.org" {
		t.Fatalf("ExtractEmail = (%q, %v)", got, ok)
	}

	if _, ok := ExtractEmail("not an address"); ok {
		t.Fatalf("expected no email match")
	}

	if _, ok := ExtractEmail("missing@tld"); ok {
		t.Fatalf("expected no email match without a dot domain")
	}
}

func TestParseMatchMode(t *testing.T) {
	if ParseMatchMode("word") != MatchWord {
		t.Fatalf("expected word mode")
	}
	if ParseMatchMode("substring") != MatchSubstring {
		t.Fatalf("expected substring mode")
	}
	if ParseMatchMode("") != MatchSubstring {
		t.Fatalf("expected substring default")
	}
}
