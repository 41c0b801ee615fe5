package stats

import (
	"container/heap"
	"slices"
	"sort"

	"wordcount/internal/text"
)

// DefaultTopK is the number of words reported by the summary.
const DefaultTopK = 10

type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// entry is a table row. order is the position of the word's first
// occurrence and breaks ties between equal counts (earlier wins).
type entry struct {
	word  string
	count int
	order int
	slot  int // index in topHeap, -1 when not admitted
}

// topHeap is a min-heap ordered by rank, so the weakest admitted entry
// sits at index 0.
type topHeap []*entry

func (h topHeap) Len() int { return len(h) }

func (h topHeap) Less(i, j int) bool { return outranks(h[j], h[i]) }

func (h topHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].slot = i
	h[j].slot = j
}

func (h *topHeap) Push(x any) {
	e := x.(*entry)
	e.slot = len(*h)
	*h = append(*h, e)
}

func (h *topHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.slot = -1
	*h = old[:n-1]
	return e
}

func outranks(a, b *entry) bool {
	if a.count != b.count {
		return a.count > b.count
	}
	return a.order < b.order
}

// Counter accumulates word frequencies and keeps the k highest ranked
// words up to date as words arrive.
type Counter struct {
	k     int
	total int
	table map[string]*entry
	top   topHeap
}

func NewCounter(k int) *Counter {
	if k < 0 {
		k = 0
	}
	return &Counter{
		k:     k,
		table: make(map[string]*entry),
		top:   make(topHeap, 0, k),
	}
}

// Add records one occurrence of an already normalized word.
func (c *Counter) Add(word string) {
	c.total++
	e, ok := c.table[word]
	if !ok {
		e = &entry{word: word, order: len(c.table), slot: -1}
		c.table[word] = e
	}
	e.count++
	c.admit(e)
}

// admit keeps the heap equal to the k best entries. Only e changed, and
// only upwards, so e either moves within the heap or displaces the minimum.
func (c *Counter) admit(e *entry) {
	switch {
	case e.slot >= 0:
		heap.Fix(&c.top, e.slot)
	case len(c.top) < c.k:
		heap.Push(&c.top, e)
	case len(c.top) > 0 && outranks(e, c.top[0]):
		c.top[0].slot = -1
		c.top[0] = e
		e.slot = 0
		heap.Fix(&c.top, 0)
	}
}

// Total is the number of words added, counting repeats.
func (c *Counter) Total() int {
	return c.total
}

// Len is the number of distinct words.
func (c *Counter) Len() int {
	return len(c.table)
}

func (c *Counter) Count(word string) int {
	if e, ok := c.table[word]; ok {
		return e.count
	}
	return 0
}

// Table returns a copy of the frequency table.
func (c *Counter) Table() map[string]int {
	out := make(map[string]int, len(c.table))
	for w, e := range c.table {
		out[w] = e.count
	}
	return out
}

// Top returns the admitted words sorted by count descending, ties by
// first occurrence.
func (c *Counter) Top() []WordCount {
	entries := slices.Clone([]*entry(c.top))
	sort.Slice(entries, func(i, j int) bool {
		return outranks(entries[i], entries[j])
	})
	pairs := make([]WordCount, 0, len(entries))
	for _, e := range entries {
		pairs = append(pairs, WordCount{Word: e.word, Count: e.count})
	}
	return pairs
}

// LastSentenceWith returns the last sentence whose text contains word,
// ignoring case, and its position.
func LastSentenceWith(sentences []text.Sentence, word string) (text.Sentence, int, bool) {
	for i, s := range slices.Backward(sentences) {
		if text.ContainsFold(s.String(), word) {
			return s, i, true
		}
	}
	return text.Sentence{}, -1, false
}
