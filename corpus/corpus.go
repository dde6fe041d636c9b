// Package corpus holds parallel sentence pairs in normalized token form.
package corpus

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Token is a normalized (lower-cased, whitespace-split) word.
type Token string

// NullToken is prepended to every source sentence. It stands for target
// words generated with no lexical source.
const NullToken Token = "NULL"

// Sentence is an ordered token sequence.
type Sentence []Token

// Strings returns the tokens as plain strings.
func (s Sentence) Strings() []string {
	out := make([]string, len(s))
	for i, t := range s {
		out[i] = string(t)
	}
	return out
}

// String joins the tokens with single spaces.
func (s Sentence) String() string {
	return strings.Join(s.Strings(), " ")
}

// SentencePair is one aligned source/target sentence. Source[0] is always
// NullToken.
type SentencePair struct {
	Source Sentence
	Target Sentence
}

// Corpus is a parallel corpus of sentence pairs.
type Corpus struct {
	Pairs []SentencePair
}

// Normalize lower-cases a raw line and splits it on whitespace runs. A blank
// line yields an empty sentence.
func Normalize(line string) Sentence {
	// A Caser keeps state between calls, so each call gets its own.
	fields := strings.Fields(cases.Lower(language.Und).String(line))
	s := make(Sentence, len(fields))
	for i, f := range fields {
		s[i] = Token(f)
	}
	return s
}

// NormalizeSource is Normalize with NullToken inserted at position 0.
func NormalizeSource(line string) Sentence {
	words := Normalize(line)
	s := make(Sentence, 0, len(words)+1)
	s = append(s, NullToken)
	return append(s, words...)
}

// New builds a corpus from raw source and target lines. Line i of the
// source is paired with line i of the target.
func New(sourceLines, targetLines []string) (*Corpus, error) {
	if len(sourceLines) == 0 || len(targetLines) == 0 {
		return nil, configErrorf(ErrEmptyCorpus, "%d source lines, %d target lines", len(sourceLines), len(targetLines))
	}
	if len(sourceLines) != len(targetLines) {
		return nil, configErrorf(ErrLengthMismatch, "%d source lines, %d target lines", len(sourceLines), len(targetLines))
	}
	c := &Corpus{Pairs: make([]SentencePair, len(sourceLines))}
	for i := range sourceLines {
		c.Pairs[i] = SentencePair{
			Source: NormalizeSource(sourceLines[i]),
			Target: Normalize(targetLines[i]),
		}
	}
	return c, nil
}

// Len returns the number of sentence pairs.
func (c *Corpus) Len() int { return len(c.Pairs) }

// SourceVocabulary returns the distinct source tokens, NullToken included.
func (c *Corpus) SourceVocabulary() Vocabulary {
	v := NewVocabulary()
	for _, p := range c.Pairs {
		v.AddSentence(p.Source)
	}
	return v
}

// TargetVocabulary returns the distinct target tokens.
func (c *Corpus) TargetVocabulary() Vocabulary {
	v := NewVocabulary()
	for _, p := range c.Pairs {
		v.AddSentence(p.Target)
	}
	return v
}

// Validate reports a configuration error when the corpus cannot be trained
// on: no pairs, or an empty vocabulary on either side.
func (c *Corpus) Validate() error {
	if c == nil || len(c.Pairs) == 0 {
		return configErrorf(ErrEmptyCorpus, "no sentence pairs")
	}
	if c.SourceVocabulary().Len() == 0 {
		return configErrorf(ErrEmptyVocabulary, "source side")
	}
	if c.TargetVocabulary().Len() == 0 {
		return configErrorf(ErrEmptyVocabulary, "target side")
	}
	return nil
}
