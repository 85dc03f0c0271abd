// Open reading frames.
// We only look at the strand we were given, in frames 0, 1 and 2.
// A start codon opens an ORF. The first stop codon in the same frame
// closes every ORF that is open in that frame. If the span, from the
// first base of the start codon to the last base of the stop codon,
// is at least MinLen, it counts. Starts with no stop after them do
// not count.

package seqcalc

const (
	DefaultMinORFLen = 50
	codonLen         = 3
)

// ORF is one hit. Start and End are 0-based, End is exclusive, so
// End - Start is the length including the stop codon.
type ORF struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Frame int `json:"frame"`
}

// Len includes both codons.
func (o ORF) Len() int { return o.End - o.Start }

// Finder holds the codons and the length cut off. Codons must be three
// upper case bases.
type Finder struct {
	Start  [][]byte
	Stop   [][]byte
	MinLen int
}

// NewFinder gives the usual DNA codons, ATG to start, TGA TAG TAA to stop.
// minLen <= 0 gives DefaultMinORFLen.
func NewFinder(minLen int) *Finder {
	if minLen <= 0 {
		minLen = DefaultMinORFLen
	}
	return &Finder{
		Start:  [][]byte{[]byte("ATG")},
		Stop:   [][]byte{[]byte("TGA"), []byte("TAG"), []byte("TAA")},
		MinLen: minLen,
	}
}

// upper is only for the four bases. Anything else is left alone.
func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// isCodon compares s[i:i+3] to each codon, ignoring case.
func isCodon(s []byte, i int, codons [][]byte) bool {
	for _, cdn := range codons {
		if upper(s[i]) == cdn[0] && upper(s[i+1]) == cdn[1] && upper(s[i+2]) == cdn[2] {
			return true
		}
	}
	return false
}

// FindAll returns every ORF, frame by frame, in order of stop codon
// and then start.
func (f *Finder) FindAll(s []byte) []ORF {
	var orfs []ORF
	var open []int // start positions waiting for a stop
	for frame := 0; frame < codonLen; frame++ {
		open = open[:0]
		for i := frame; i+codonLen <= len(s); i += codonLen {
			if len(open) > 0 && isCodon(s, i, f.Stop) {
				end := i + codonLen
				for _, st := range open {
					if end-st >= f.MinLen {
						orfs = append(orfs, ORF{Start: st, End: end, Frame: frame})
					}
				}
				open = open[:0]
				continue
			}
			if isCodon(s, i, f.Start) {
				open = append(open, i)
			}
		}
	}
	return orfs
}

// Count is the number of ORFs.
func (f *Finder) Count(s []byte) int { return len(f.FindAll(s)) }
