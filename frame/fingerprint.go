package frame

import (
	"encoding/binary"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/crypto/blake2b"
)

// canonical renders cell values with their dynamic types so that 1, 1.0 and
// "1" encode differently.
var canonical = spew.ConfigState{
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Fingerprint returns a BLAKE2b-256 digest of the frame's column set and
// row contents. The digest ignores row order, column order and index labels:
// two frames holding the same multiset of rows over the same columns have
// the same fingerprint.
func (f *Frame) Fingerprint() [32]byte {
	names := slices.Clone(f.columns)
	slices.Sort(names)

	// Row digests are summed modulo 2^256, which is commutative.
	var acc [blake2b.Size256]byte
	var sb strings.Builder
	for _, values := range f.rows {
		sb.Reset()
		for _, col := range names {
			sb.WriteString(col)
			sb.WriteByte('=')
			sb.WriteString(canonical.Sprintf("%#v", values[f.lookup[col]]))
			sb.WriteByte(0)
		}
		addDigest(&acc, blake2b.Sum256([]byte(sb.String())))
	}

	h, _ := blake2b.New256(nil)
	for _, col := range names {
		h.Write([]byte(col))
		h.Write([]byte{0})
	}
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(f.rows)))
	h.Write(n[:])
	h.Write(acc[:])

	var out [blake2b.Size256]byte
	copy(out[:], h.Sum(nil))
	return out
}

func addDigest(acc *[blake2b.Size256]byte, d [blake2b.Size256]byte) {
	var carry uint16
	for i := len(acc) - 1; i >= 0; i-- {
		sum := uint16(acc[i]) + uint16(d[i]) + carry
		acc[i] = byte(sum)
		carry = sum >> 8
	}
}
