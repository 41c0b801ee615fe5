package text

import "strings"

// Sentence is a run of raw tokens in their original case and punctuation.
type Sentence struct {
	Tokens []string
}

// String joins the tokens with single spaces.
func (s Sentence) String() string {
	return strings.Join(s.Tokens, " ")
}

// Segmenter groups raw tokens into sentences. A token ending with '.'
// closes the current sentence; Flush closes a trailing fragment.
type Segmenter struct {
	current   []string
	sentences []Sentence
}

func (sg *Segmenter) Add(token string) {
	sg.current = append(sg.current, token)
	if strings.HasSuffix(token, ".") {
		sg.seal()
	}
}

// Flush seals the in-progress sentence if it holds any tokens.
func (sg *Segmenter) Flush() {
	if len(sg.current) > 0 {
		sg.seal()
	}
}

func (sg *Segmenter) seal() {
	sg.sentences = append(sg.sentences, Sentence{Tokens: sg.current})
	sg.current = nil
}

// Sentences returns the sealed sentences in document order.
func (sg *Segmenter) Sentences() []Sentence {
	return sg.sentences
}
