package corpus

import "sort"

// Vocabulary is the set of distinct tokens seen on one side of a corpus.
type Vocabulary struct {
	words map[Token]struct{}
}

// NewVocabulary creates an empty vocabulary.
func NewVocabulary() Vocabulary {
	return Vocabulary{words: make(map[Token]struct{})}
}

// Add inserts a token.
func (v Vocabulary) Add(t Token) { v.words[t] = struct{}{} }

// AddSentence inserts every token of s.
func (v Vocabulary) AddSentence(s Sentence) {
	for _, t := range s {
		v.words[t] = struct{}{}
	}
}

// Contains reports whether t was seen.
func (v Vocabulary) Contains(t Token) bool {
	_, ok := v.words[t]
	return ok
}

// Len returns the number of distinct tokens.
func (v Vocabulary) Len() int { return len(v.words) }

// Tokens returns the tokens in lexicographic order.
func (v Vocabulary) Tokens() []Token {
	out := make([]Token, 0, len(v.words))
	for t := range v.words {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
