/* Copyright (C) 2024 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */


package gocrispr

/* -------------------------------------------------------------------------- */

import "errors"
import "fmt"
import "strings"

/* -------------------------------------------------------------------------- */

var ErrInvalidMotifSymbol = errors.New("invalid motif symbol")

/* -------------------------------------------------------------------------- */

// Position of a PAM relative to the protospacer. A head PAM lies upstream of
// the target region (e.g. Cas12a), a tail PAM downstream (e.g. Cas9).
type Position int

const (
  Head Position = iota
  Tail
)

func (p Position) String() string {
  switch p {
  case Head: return "head"
  case Tail: return "tail"
  default:   return fmt.Sprintf("Position(%d)", int(p))
  }
}

func ParsePosition(str string) (Position, error) {
  switch strings.ToLower(str) {
  case "head": return Head, nil
  case "tail": return Tail, nil
  default:     return Head, fmt.Errorf("ParsePosition(): invalid position `%s'", str)
  }
}

/* -------------------------------------------------------------------------- */

// PAM is an immutable protospacer adjacent motif given as a sequence of
// IUPAC symbols together with its position relative to the target region.
// A PAM value may be shared by any number of goroutines.
type PAM struct {
  pattern  []byte
  position Position
}

/* constructors
 * -------------------------------------------------------------------------- */

// Create a new PAM from a sequence of IUPAC symbols. The pattern is copied.
// An empty pattern is valid and matches every window.
func NewPAM(position Position, pattern []byte) (PAM, error) {
  if position != Head && position != Tail {
    return PAM{}, fmt.Errorf("NewPAM(): invalid position `%d'", int(position))
  }
  for i, c := range pattern {
    if !IsIupacSymbol(c) {
      return PAM{}, fmt.Errorf("NewPAM(): `%c' at position %d: %w", c, i, ErrInvalidMotifSymbol)
    }
  }
  p := make([]byte, len(pattern))
  copy(p, pattern)
  return PAM{pattern: p, position: position}, nil
}

func HeadPAM(pattern []byte) (PAM, error) {
  return NewPAM(Head, pattern)
}

func TailPAM(pattern []byte) (PAM, error) {
  return NewPAM(Tail, pattern)
}

/* -------------------------------------------------------------------------- */

func (obj PAM) Len() int {
  return len(obj.pattern)
}

func (obj PAM) Position() Position {
  return obj.position
}

// Returns a copy of the pattern as given to the constructor.
func (obj PAM) Bytes() []byte {
  r := make([]byte, len(obj.pattern))
  copy(r, obj.pattern)
  return r
}

func (obj PAM) String() string {
  return string(obj.pattern)
}

// Motif as it appears on the opposite strand. The position is swapped, i.e.
// the reverse complement of a tail PAM is a head PAM. Letter case is kept.
func (obj PAM) RevComp() PAM {
  al := AmbiguousNucleotideAlphabet{}
  n  := len(obj.pattern)
  r  := make([]byte, n)
  for i, c := range obj.pattern {
    b, _ := al.Complement(c)
    if c&0x20 == 0 {
      b &^= 0x20
    }
    r[n-1-i] = b
  }
  if obj.position == Head {
    return PAM{pattern: r, position: Tail}
  } else {
    return PAM{pattern: r, position: Head}
  }
}

/* -------------------------------------------------------------------------- */

// anchor must have the same length as the pattern
func (obj PAM) matchesAnchor(anchor []byte) bool {
  for i := 0; i < len(obj.pattern); i++ {
    if !SymbolMatches(obj.pattern[i], anchor[i]) {
      return false
    }
  }
  return true
}

// Test if the window starts (head PAM) or ends (tail PAM) with the motif.
// Windows longer than the motif are allowed.
func (obj PAM) Matches(window []byte) bool {
  p := len(obj.pattern)
  n := len(window)
  if n < p {
    return false
  }
  if obj.position == Head {
    return obj.matchesAnchor(window[0:p])
  } else {
    return obj.matchesAnchor(window[n-p:n])
  }
}

/* anchored extraction
 * -------------------------------------------------------------------------- */

// Check the motif at the absolute start (head) or end (tail) of the window
// and encode the k bases next to it. The window must contain at least
// Len()+k bases, no scanning is performed. The returned offset is the
// position of the motif within the window. If the motif does not match,
// the target region contains a base other than a, c, g, t or k exceeds
// MaxKmerLength the result is not ok.
func (obj PAM) Kmer(window []byte, k int) (int, Kmer, bool) {
  p := len(obj.pattern)
  n := len(window)
  if k < 0 || k > MaxKmerLength || n < p+k {
    return 0, 0, false
  }
  var offset int
  var target []byte
  if obj.position == Head {
    if !obj.matchesAnchor(window[0:p]) {
      return 0, 0, false
    }
    offset, target = 0, window[p:p+k]
  } else {
    if !obj.matchesAnchor(window[n-p:n]) {
      return 0, 0, false
    }
    offset, target = n-p, window[n-p-k:n-p]
  }
  if kmer, i := encodeDna(target); i >= 0 {
    return 0, 0, false
  } else {
    return offset, kmer, true
  }
}

/* scanning extraction
 * -------------------------------------------------------------------------- */

func (obj PAM) kmerSliceRange(context []byte, k int) (int, int, bool) {
  p := len(obj.pattern)
  n := len(context)
  if k < 0 {
    k = 0
  }
  if obj.position == Head {
    // first motif occurrence, region starts at the motif
    for i := 0; i+p <= n; i++ {
      if obj.matchesAnchor(context[i:i+p]) {
        return i, i+iMin(k, n-i), true
      }
    }
  } else {
    // last motif occurrence, region ends right before the motif
    for j := n-p; j >= 0; j-- {
      if obj.matchesAnchor(context[j:j+p]) {
        return j-iMin(k, j), j, true
      }
    }
  }
  return 0, 0, false
}

// Search the context for the motif and return at most k bases of the
// adjacent region. A head PAM selects the first occurrence and the region
// starting at it, a tail PAM the last occurrence and the region preceding
// it. The result is truncated at the boundaries of the context and is nil
// if the motif does not occur. Bases are neither validated nor converted.
// The capacity of the result is clipped, so appending to it never writes
// into context.
func (obj PAM) KmerSlice(context []byte, k int) []byte {
  if from, to, ok := obj.kmerSliceRange(context, k); ok {
    return context[from:to:to]
  }
  return nil
}

// Same as KmerSlice, but the result aliases buffer such that modifications
// of the region are visible in buffer.
func (obj PAM) KmerSliceMut(buffer []byte, k int) []byte {
  if from, to, ok := obj.kmerSliceRange(buffer, k); ok {
    return buffer[from:to]
  }
  return nil
}
