// brokenio is a wrapper around an io.ReadCloser which makes reads
// fail. We use it to check that a gfa reader gives up properly when
// the file system or the decompressor lets it down half way through.
// Typical use: You get a file pointer or a reader from a compressed
// source. You write
// reader = brokenio.NewReader(reader) to wrap the old reader.
// Everything then functions as before, but with artificial errors.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is what we return when we decide a read should fail.
var ErrBroken = errors.New("brokenio: artificial read failure")

// A BrknRdrClsr is modelled on the various Readers in the standard library,
// but with variables controlling when errors happen.
// probZeroFile and probFail are the fraction of time an error will take place,
// so a value of 0.05 means failure in 5% of the cases.
// failAfter, if not negative, is the number of bytes we hand out
// before every read fails.
type BrknRdrClsr struct {
	rdrOrig      io.ReadCloser // Wrapped reader
	probZeroFile float32       // Probability of returning a zero length file
	probFail     float32
	failAfter    int
	nCalled      int
	nByte        int
}

// NewReader returns a new Reader - a wrapper around the old one.
// It does not fail until one of the setters is called.
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{rdrOrig: rIn, failAfter: -1}
}

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check if the
// argument is valid.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail set the probability of a read failing.
// It must be between zero and 1.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter makes every read fail once n bytes have been read.
func (r *BrknRdrClsr) SetFailAfter(n int) { r.failAfter = n }

// NByte is the number of bytes handed out so far.
func (r *BrknRdrClsr) NByte() int { return r.nByte }

// Read wraps the original reader and counts the data that
// has gone through.
// On the first call, we might return zero data to simulate a zero length file
// which is a rather common occurrence.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 {
		if rand.Float32() < r.probZeroFile {
			r.nCalled++
			return 0, io.EOF
		}
	}
	r.nCalled++
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, fmt.Errorf("after %d bytes: %w", r.nByte, ErrBroken)
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	if r.probFail > 0 && rand.Float32() < r.probFail {
		return 0, fmt.Errorf("read %d: %w", r.nCalled, ErrBroken)
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error { return r.rdrOrig.Close() }
