// brokenio is a wrapper around an io.ReadCloser that fails on purpose.
// Typical use: You get a file pointer or a reader from a compressed
// source. You write
//     reader = brokenio.NewReader(reader)
// and everything functions as before, but with artificial errors.
// There are two kinds of damage.
//  1. after a given number of bytes, every read returns ErrInjected.
//     This is a disk or network dying half way through a file.
//  2. with some probability, the second part of a buffer is zeroed.
//     This is a bad sector. The read returns an error so tests can
//     check that it was seen.
// When we introduce a failure on the first read, we return io.EOF and
// no data. This is what one often sees on a zero length file.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrInjected is returned by reads after the failure point.
var ErrInjected = errors.New("brokenio: injected read failure")

// BrknRdrClsr is modelled on the readers in the standard library, but
// with knobs controlling how it breaks.
type BrknRdrClsr struct {
	rdrOrig      io.ReadCloser // Wrapped reader
	rnd          *rand.Rand
	failAfter    int64   // fail once this many bytes have gone through. < 0 means never
	probZeroFile float32 // probability of pretending the file is empty
	probTrash    float32 // probability of zeroing part of a buffer
	fracTrash    float32 // how much of the buffer to zero
	nCalled      int
	nByte        int64
}

// NewReader returns a new Reader which does not break until told to.
// seed makes the random failures reproducible.
func NewReader(rIn io.ReadCloser, seed int64) *BrknRdrClsr {
	return &BrknRdrClsr{
		rdrOrig:   rIn,
		rnd:       rand.New(rand.NewSource(seed)),
		failAfter: -1,
		fracTrash: 0.5,
	}
}

// SetFailAfter makes every read fail once n bytes have been delivered.
func (r *BrknRdrClsr) SetFailAfter(n int64) { r.failAfter = n }

// SetProbZeroFile sets the rate at which we return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbTrash sets the probability of damaging a buffer and the
// fraction of the buffer, from the end, to wipe out.
func (r *BrknRdrClsr) SetProbTrash(prob, frac float32) {
	r.probTrash = prob
	r.fracTrash = frac
}

// NByte is the amount of data delivered so far.
func (r *BrknRdrClsr) NByte() int64 { return r.nByte }

// trashSlice wipes out the second part of a slice.
// The amount to wipe out is given by a fraction, so 0.3
// will zero the last 30 % of a slice
func trashSlice(p []byte, frac float32) (int, error) {
	nkeep := int(float32(len(p)) * (1. - frac))
	if nkeep == len(p) {
		return nkeep, nil
	}
	clear(p[nkeep:])
	return nkeep, fmt.Errorf("brokenio: wiped out last %d of %d bytes", len(p)-nkeep, len(p))
}

// Read passes through to the original reader, counting bytes, until
// it is time to break.
func (r *BrknRdrClsr) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		r.nCalled++
		return 0, io.EOF
	}
	r.nCalled++
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrInjected
		}
		if int64(len(p)) > left {
			p = p[:left]
		}
	}
	n, err := r.rdrOrig.Read(p)
	r.nByte += int64(n)
	if n > 0 && r.probTrash > 0 && r.rnd.Float32() < r.probTrash {
		return trashSlice(p[:n], r.fracTrash)
	}
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error { return r.rdrOrig.Close() }
