package corpus

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCorpus     = errors.New("empty corpus")
	ErrLengthMismatch  = errors.New("source and target corpora differ in length")
	ErrEmptyVocabulary = errors.New("empty vocabulary")
)

// ConfigError is a fatal problem with the training input, detected before
// any EM iteration runs.
type ConfigError struct {
	Err    error // one of the Err* sentinels
	Detail string
}

func (e *ConfigError) Error() string {
	if e.Detail == "" {
		return "configuration error: " + e.Err.Error()
	}
	return fmt.Sprintf("configuration error: %v (%s)", e.Err, e.Detail)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErrorf(err error, format string, args ...any) error {
	return &ConfigError{Err: err, Detail: fmt.Sprintf(format, args...)}
}

// NewConfigError wraps one of the Err* sentinels for callers outside this
// package that detect the same class of problem.
func NewConfigError(err error, detail string) error {
	return &ConfigError{Err: err, Detail: detail}
}
