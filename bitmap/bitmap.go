// Package bitmap provides a growable set of non-negative integer
// positions, such as CPU or NUMA node indices. It wraps a roaring bitmap.
package bitmap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

type Bitmap struct {
	rb *roaring.Bitmap
}

// New creates a new empty bitmap.
func New() *Bitmap {
	return &Bitmap{rb: roaring.New()}
}

// Set adds the given position to the bitmap, growing backing storage as
// needed. Negative positions are ignored.
func (b *Bitmap) Set(i int) {
	if i < 0 {
		return
	}
	b.rb.Add(uint32(i))
}

// Unset removes the given position from the bitmap.
func (b *Bitmap) Unset(i int) {
	if i < 0 {
		return
	}
	b.rb.Remove(uint32(i))
}

// Contains checks if the given position is in the bitmap.
func (b *Bitmap) Contains(i int) bool {
	if i < 0 {
		return false
	}
	return b.rb.Contains(uint32(i))
}

// IsEmpty returns true if the bitmap has no members.
func (b *Bitmap) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// Cardinality returns the number of members in the bitmap.
func (b *Bitmap) Cardinality() int {
	return int(b.rb.GetCardinality())
}

// Equals reports whether two bitmaps have identical membership. A nil
// bitmap only equals another nil bitmap.
func (b *Bitmap) Equals(other *Bitmap) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.rb.Equals(other.rb)
}

// Slice returns the members of the bitmap in ascending order.
func (b *Bitmap) Slice() []int {
	members := make([]int, 0, b.rb.GetCardinality())
	it := b.rb.Iterator()
	for it.HasNext() {
		members = append(members, int(it.Next()))
	}

	return members
}

// String renders the bitmap in kernel cpulist syntax, e.g. "0-2,5".
func (b *Bitmap) String() string {
	members := b.Slice()

	var sb strings.Builder
	for i := 0; i < len(members); {
		j := i
		for j+1 < len(members) && members[j+1] == members[j]+1 {
			j++
		}

		if sb.Len() > 0 {
			sb.WriteByte(',')
		}

		if j == i {
			fmt.Fprintf(&sb, "%d", members[i])
		} else {
			fmt.Fprintf(&sb, "%d-%d", members[i], members[j])
		}

		i = j + 1
	}

	return sb.String()
}

// ParseList parses kernel cpulist syntax: comma-separated values and
// inclusive "a-b" ranges, e.g. "0-2,5". An empty or malformed list is an
// error, never a partially populated bitmap.
func ParseList(s string) (*Bitmap, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty list")
	}

	b := New()
	for _, tok := range strings.Split(s, ",") {
		lo, hi, isRange := strings.Cut(tok, "-")

		first, err := strconv.Atoi(lo)
		if err != nil || first < 0 {
			return nil, fmt.Errorf("malformed list token '%s'", tok)
		}

		last := first
		if isRange {
			last, err = strconv.Atoi(hi)
			if err != nil || last < first {
				return nil, fmt.Errorf("malformed list token '%s'", tok)
			}
		}

		b.rb.AddRange(uint64(first), uint64(last)+1)
	}

	return b, nil
}
