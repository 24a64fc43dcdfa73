package bignum

import (
	"bufio"
	"io"
)

// MaxTokenSize bounds a single whitespace-delimited token read by Reader.
const MaxTokenSize = 16 << 20

// Reader extracts whitespace-delimited BigInt tokens from a text stream.
//
// A malformed token does not produce an error. Instead the destination is
// left untouched and a sticky failure flag is raised; while it is raised
// Read returns false without consuming input. Clear lowers the flag so the
// caller can inspect the offending token and resume reading.
type Reader struct {
	sc     *bufio.Scanner
	tok    string
	failed bool
	eof    bool
}

// NewReader returns a Reader consuming r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), MaxTokenSize)
	sc.Split(bufio.ScanWords)
	return &Reader{sc: sc}
}

// Read consumes the next token and stores it in dst.
// It returns false if the reader is failed, exhausted, or the token is malformed.
func (r *Reader) Read(dst *BigInt) bool {
	if r.failed || r.eof {
		return false
	}
	if !r.sc.Scan() {
		r.eof = true
		r.tok = ""
		return false
	}
	r.tok = r.sc.Text()
	v, err := Parse(r.tok)
	if err != nil {
		r.failed = true
		return false
	}
	*dst = v
	return true
}

// Token returns the most recently consumed token, including a malformed one.
func (r *Reader) Token() string { return r.tok }

// Fail reports whether the last read hit a malformed token.
func (r *Reader) Fail() bool { return r.failed }

// EOF reports whether the underlying stream is exhausted.
func (r *Reader) EOF() bool { return r.eof }

// Clear lowers the failure flag.
func (r *Reader) Clear() { r.failed = false }

// Err returns the first non-EOF I/O error of the underlying stream.
func (r *Reader) Err() error { return r.sc.Err() }
