package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want Sentence
	}{
		{"La Maison", Sentence{"la", "maison"}},
		{"  the   HOUSE\n", Sentence{"the", "house"}},
		{"\tÉcole  Été", Sentence{"école", "été"}},
		{"", Sentence{}},
		{"   \n", Sentence{}},
	}
	for _, tt := range tests {
		got := Normalize(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeSource(t *testing.T) {
	got := NormalizeSource("La Fleur")
	want := Sentence{NullToken, "la", "fleur"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeSource = %q, want %q", got, want)
	}
	if got := NormalizeSource(""); !reflect.DeepEqual(got, Sentence{NullToken}) {
		t.Errorf("NormalizeSource(\"\") = %q, want [NULL]", got)
	}
	// A literal "null" in the text is a normal word, not the reserved token.
	if got := NormalizeSource("NULL"); got[1] != "null" {
		t.Errorf("NormalizeSource(\"NULL\")[1] = %q, want \"null\"", got[1])
	}
}

func TestNew(t *testing.T) {
	c, err := New([]string{"la maison", "la fleur"}, []string{"the house", "the flower"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if got := c.Pairs[0].Source.String(); got != "NULL la maison" {
		t.Errorf("source[0] = %q", got)
	}
	if got := c.Pairs[1].Target.String(); got != "the flower" {
		t.Errorf("target[1] = %q", got)
	}
}

func TestNewBlankLine(t *testing.T) {
	c, err := New([]string{"a", ""}, []string{"b", ""})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(c.Pairs[1].Source) != 1 || c.Pairs[1].Source[0] != NullToken {
		t.Errorf("blank source = %q, want [NULL]", c.Pairs[1].Source)
	}
	if len(c.Pairs[1].Target) != 0 {
		t.Errorf("blank target = %q, want empty", c.Pairs[1].Target)
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name     string
		src, tgt []string
		want     error
	}{
		{"empty", nil, nil, ErrEmptyCorpus},
		{"empty target", []string{"a"}, nil, ErrEmptyCorpus},
		{"mismatch", []string{"a", "b"}, []string{"c"}, ErrLengthMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.src, tt.tgt)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Errorf("err %T is not *ConfigError", err)
			}
		})
	}
}

func TestVocabulary(t *testing.T) {
	c, err := New([]string{"la maison", "la fleur"}, []string{"the house", "the flower"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	src := c.SourceVocabulary()
	if src.Len() != 4 {
		t.Errorf("source vocab size = %d, want 4", src.Len())
	}
	want := []Token{"NULL", "fleur", "la", "maison"}
	if got := src.Tokens(); !reflect.DeepEqual(got, want) {
		t.Errorf("source tokens = %q, want %q", got, want)
	}
	tgt := c.TargetVocabulary()
	if !tgt.Contains("flower") || tgt.Contains("NULL") {
		t.Errorf("target vocab = %q", tgt.Tokens())
	}
}

func TestValidate(t *testing.T) {
	c, _ := New([]string{""}, []string{""})
	if err := c.Validate(); !errors.Is(err, ErrEmptyVocabulary) {
		t.Errorf("Validate() = %v, want ErrEmptyVocabulary", err)
	}
	var nilCorpus *Corpus
	if err := nilCorpus.Validate(); !errors.Is(err, ErrEmptyCorpus) {
		t.Errorf("nil Validate() = %v, want ErrEmptyCorpus", err)
	}
	c, _ = New([]string{"a"}, []string{"b"})
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("la maison\r\n\nla fleur\n"))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []string{"la maison", "", "la fleur"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %q, want %q", lines, want)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	tgt := filepath.Join(dir, "tgt.txt")
	if err := os.WriteFile(src, []byte("la maison\nla fleur\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(tgt, []byte("the house\nthe flower\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(src, tgt)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
	if _, err := Load(filepath.Join(dir, "missing"), tgt); err == nil {
		t.Error("expected error for missing file")
	}
}
