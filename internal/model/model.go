package model

import "wordcount/internal/text/stats"

type Report struct {
	FileName     string            `json:"file_name" yaml:"file_name"`
	TotalWords   int               `json:"total_words" yaml:"total_words"`
	TopWords     []stats.WordCount `json:"top_words" yaml:"top_words"`
	LastSentence *string           `json:"last_sentence" yaml:"last_sentence"`
}
