package text

import (
	"slices"
	"strings"
	"testing"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"single word", "hello", []string{"hello"}},
		{"two words", "Hello world.", []string{"Hello", "world."}},
		{"empty line", "", []string{""}},
		{"double space keeps empty token", "a  b", []string{"a", "", "b"}},
		{"tabs are not separators", "a\tb c", []string{"a\tb", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tokens(tt.line); !slices.Equal(got, tt.want) {
				t.Errorf("Tokens(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"The", "the"},
		{"ran.", "ran"},
		{"don't", "dont"},
		{"state-of-the-art", "stateoftheart"},
		{"ABC123def", "abcdef"},
		{"...", ""},
		{"", ""},
		{"café", "caf"},
		{"\"Quoted,\"", "quoted"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContainsFold(t *testing.T) {
	tests := []struct {
		s, word string
		want    bool
	}{
		{"The cat ran.", "the", true},
		{"The cat ran.", "CAT", true},
		{"Another one.", "the", true}, // substring match, not whole word
		{"Hello world", "cat", false},
		{"anything", "", true},
	}
	for _, tt := range tests {
		if got := ContainsFold(tt.s, tt.word); got != tt.want {
			t.Errorf("ContainsFold(%q, %q) = %v, want %v", tt.s, tt.word, got, tt.want)
		}
	}
}

func segment(lines ...string) []Sentence {
	var sg Segmenter
	for _, line := range lines {
		for _, tok := range Tokens(line) {
			sg.Add(tok)
		}
	}
	sg.Flush()
	return sg.Sentences()
}

func sentenceTexts(sentences []Sentence) []string {
	out := make([]string, len(sentences))
	for i, s := range sentences {
		out[i] = s.String()
	}
	return out
}

// verifyPartition checks that the sentences' tokens, concatenated in order,
// are exactly the tokens of the input lines.
func verifyPartition(t *testing.T, lines []string, sentences []Sentence) {
	t.Helper()
	var want, got []string
	for _, line := range lines {
		want = append(want, Tokens(line)...)
	}
	for _, s := range sentences {
		got = append(got, s.Tokens...)
	}
	if !slices.Equal(got, want) {
		t.Errorf("partition invariant broken:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestSegmenter(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{"two sentences", []string{"The cat sat. The cat ran."}, []string{"The cat sat.", "The cat ran."}},
		{"trailing fragment", []string{"Hello world"}, []string{"Hello world"}},
		{"sentence across lines", []string{"It was a", "dark night.", "Then"}, []string{"It was a dark night.", "Then"}},
		{"period inside token does not split", []string{"e.g. this", "v1.2 works."}, []string{"e.g.", "this v1.2 works."}},
		{"question mark is not a boundary", []string{"Why? Because."}, []string{"Why? Because."}},
		{"blank line contributes an empty token", []string{"One", "", "two."}, []string{"One  two."}},
		{"no lines", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segment(tt.lines...)
			verifyPartition(t, tt.lines, got)
			if texts := sentenceTexts(got); !slices.Equal(texts, tt.want) {
				t.Errorf("sentences = %q, want %q", texts, tt.want)
			}
		})
	}
}

func TestSegmenterFlushOnlyOnce(t *testing.T) {
	var sg Segmenter
	sg.Add("done.")
	sg.Flush()
	sg.Flush()
	if n := len(sg.Sentences()); n != 1 {
		t.Fatalf("got %d sentences, want 1", n)
	}
}

func FuzzNormalize(f *testing.F) {
	f.Add("Hello,")
	f.Add("")
	f.Add("ÀÉÎ")
	f.Add("\xff\xfe")
	f.Add("İstanbul")

	f.Fuzz(func(t *testing.T, s string) {
		n := Normalize(s)
		if Normalize(n) != n {
			t.Errorf("not idempotent: %q -> %q -> %q", s, n, Normalize(n))
		}
		if strings.IndexFunc(n, func(r rune) bool { return r < 'a' || r > 'z' }) >= 0 {
			t.Errorf("Normalize(%q) = %q contains runes outside a-z", s, n)
		}
	})
}

func FuzzSegmenter(f *testing.F) {
	f.Add("The cat sat. The cat ran.")
	f.Add("")
	f.Add("no period")
	f.Add(". . .")
	f.Add("a  b.")

	f.Fuzz(func(t *testing.T, s string) {
		lines := strings.Split(s, "\n")
		sentences := segment(lines...)
		verifyPartition(t, lines, sentences)
		for i, sen := range sentences {
			if len(sen.Tokens) == 0 {
				t.Fatalf("sentence %d is empty", i)
			}
			last := sen.Tokens[len(sen.Tokens)-1]
			if i < len(sentences)-1 && !strings.HasSuffix(last, ".") {
				t.Errorf("sentence %d (%q) is not period-terminated", i, sen.String())
			}
		}
	})
}
