package decoder

import (
	"fmt"
	"strings"

	"github.com/ieee0824/wordalign-go/corpus"
)

// Alignment is the decoded best alignment of one sentence pair.
type Alignment struct {
	Links     []Link // source order; starts with the NULL row when NullShown
	NullShown bool
}

// Link aligns one source position to its best target word.
type Link struct {
	SourceIndex int // position in the source sentence, NULL is 0
	Source      corpus.Token
	Target      corpus.Token
	Prob        float64
	Aligned     bool // false when the target sentence is empty
}

// Label renders the link as [target-->sourceIndex].
func (l Link) Label() string {
	return fmt.Sprintf("[%s-->%d]", l.Target, l.SourceIndex)
}

// SourceTokens returns the source words of the aligned rows.
func (a Alignment) SourceTokens() corpus.Sentence {
	out := make(corpus.Sentence, 0, len(a.Links))
	for _, l := range a.Links {
		if l.Aligned {
			out = append(out, l.Source)
		}
	}
	return out
}

// TargetTokens returns the target word of each aligned row, parallel to
// SourceTokens.
func (a Alignment) TargetTokens() corpus.Sentence {
	out := make(corpus.Sentence, 0, len(a.Links))
	for _, l := range a.Links {
		if l.Aligned {
			out = append(out, l.Target)
		}
	}
	return out
}

// Annotation joins the labels of the aligned rows with spaces, e.g.
// "[the-->1] [house-->2]".
func (a Alignment) Annotation() string {
	labels := make([]string, 0, len(a.Links))
	for _, l := range a.Links {
		if l.Aligned {
			labels = append(labels, l.Label())
		}
	}
	return strings.Join(labels, " ")
}
