package integral

import (
	"bufio"
	"fmt"
	"io"
)

// Scan implements fmt.Scanner. It reads exactly one whitespace-delimited
// token from the scan state and applies the absorbing parse, so
// fmt.Fscan fills values from a stream the way FromString fills them
// from a string: garbage tokens become zero, never an error. The verb is
// ignored; %v, %d and friends all behave the same.
func (v *Value[T]) Scan(state fmt.ScanState, verb rune) error {
	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	if len(tok) == 0 {
		return io.ErrUnexpectedEOF
	}
	*v = FromString[T](string(tok))
	return nil
}

// Scanner reads a stream of whitespace-separated values from an
// io.Reader. By default it is as forgiving as FromString: tokens that
// parse to nothing yield zero and the stream continues. A logger option
// records those absorptions at debug level; the strict option turns them
// into errors that stop the scan.
//
//	sc := integral.NewScanner[int32](r)
//	for sc.Scan() {
//	    use(sc.Value())
//	}
//	if err := sc.Err(); err != nil { ... }
type Scanner[T Integer] struct {
	s       *bufio.Scanner
	logger  *Logger
	metrics MetricsCollector
	strict  bool
	cur     Value[T]
	err     error
}

// NewScanner returns a Scanner reading whitespace-separated tokens
// from r.
func NewScanner[T Integer](r io.Reader, optFns ...Option) *Scanner[T] {
	o := applyOptions(optFns)

	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)

	return &Scanner[T]{
		s:       s,
		logger:  o.logger,
		metrics: o.metrics,
		strict:  o.strict,
	}
}

// Scan advances to the next token and parses it. It returns false when
// the stream ends, when reading fails, or in strict mode when a token is
// absorbed; Err tells those cases apart.
func (s *Scanner[T]) Scan() bool {
	if s.err != nil {
		return false
	}
	if !s.s.Scan() {
		s.err = s.s.Err()
		return false
	}

	tok := s.s.Text()
	v, err := Parse[T](tok)
	s.metrics.RecordToken(err)
	if err != nil {
		if s.strict {
			s.metrics.RecordRejected(err)
			s.err = err
			return false
		}
		s.metrics.RecordAbsorbed(err)
		s.logger.LogAbsorbed(tok, err)
	}
	s.cur = v
	return true
}

// Value returns the value produced by the most recent successful Scan.
func (s *Scanner[T]) Value() Value[T] {
	return s.cur
}

// Err returns the first error encountered. It is nil after a clean end
// of stream.
func (s *Scanner[T]) Err() error {
	return s.err
}

// Values drains the scanner and returns all remaining values together
// with the first error.
func (s *Scanner[T]) Values() ([]Value[T], error) {
	var out []Value[T]
	for s.Scan() {
		out = append(out, s.Value())
	}
	return out, s.Err()
}
