package corpus

import (
	"bufio"
	"io"
	"os"
	"strings"
)

const maxLineBytes = 1 << 20

// ReadLines reads r line by line. Blank lines are kept so that line i of a
// source file still pairs with line i of its target file.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ReadFile is a convenience wrapper that opens a file path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// Load reads a source and a target file and builds the corpus.
func Load(sourcePath, targetPath string) (*Corpus, error) {
	src, err := ReadFile(sourcePath)
	if err != nil {
		return nil, err
	}
	tgt, err := ReadFile(targetPath)
	if err != nil {
		return nil, err
	}
	return New(src, tgt)
}
