// Package analysis runs the word statistics pipeline over one passage.
package analysis

import (
	"iter"

	"wordcount/internal/model"
	"wordcount/internal/passage"
	"wordcount/internal/text"
	"wordcount/internal/text/stats"
)

// Result holds everything computed for one passage.
type Result struct {
	Total     int
	Distinct  int
	Top       []stats.WordCount
	Sentences []text.Sentence

	// LastSentence is the last sentence containing the top word and
	// LastIndex its position. Both are only meaningful when Found is true.
	LastSentence text.Sentence
	LastIndex    int
	Found        bool
}

// TopWord returns the highest ranked word, if any word was counted.
func (r Result) TopWord() (string, bool) {
	if len(r.Top) == 0 {
		return "", false
	}
	return r.Top[0].Word, true
}

// Report converts the result into its serializable form.
func (r Result) Report(fileName string) model.Report {
	rep := model.Report{
		FileName:   fileName,
		TotalWords: r.Total,
		TopWords:   r.Top,
	}
	if rep.TopWords == nil {
		rep.TopWords = []stats.WordCount{}
	}
	if r.Found {
		s := r.LastSentence.String()
		rep.LastSentence = &s
	}
	return rep
}

// Analyze consumes lines and computes the statistics.
func Analyze(lines iter.Seq[string]) Result {
	counter := stats.NewCounter(stats.DefaultTopK)
	var seg text.Segmenter

	for line := range lines {
		for _, token := range text.Tokens(line) {
			seg.Add(token)
			counter.Add(text.Normalize(token))
		}
	}
	seg.Flush()

	res := Result{
		Total:     counter.Total(),
		Distinct:  counter.Len(),
		Top:       counter.Top(),
		Sentences: seg.Sentences(),
		LastIndex: -1,
	}
	if word, ok := res.TopWord(); ok {
		res.LastSentence, res.LastIndex, res.Found = stats.LastSentenceWith(res.Sentences, word)
	}
	return res
}

// File analyzes the named passage. Open failures wrap
// passage.ErrUnreadable.
func File(name string) (Result, error) {
	var res Result
	err := passage.Read(name, func(lines iter.Seq[string]) {
		res = Analyze(lines)
	})
	return res, err
}
