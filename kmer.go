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

/* -------------------------------------------------------------------------- */

// Maximal number of bases that fit into a Kmer.
const MaxKmerLength = 32

var ErrInvalidBase = errors.New("invalid base")
var ErrKmerTooLong = errors.New("k-mer too long")

/* -------------------------------------------------------------------------- */

// Kmer is a sequence of at most MaxKmerLength concrete bases packed into
// two bits per base. The first base occupies the most significant used bits,
// so that for k-mers of equal length the integer order equals the
// lexicographic order of the sequences.
type Kmer uint64

/* -------------------------------------------------------------------------- */

// Encode a sequence of concrete bases. Letter case is ignored. Any byte other
// than a, c, g, t results in an error wrapping ErrInvalidBase.
func EncodeDna(sequence []byte) (Kmer, error) {
  if len(sequence) > MaxKmerLength {
    return 0, fmt.Errorf("EncodeDna(): sequence of length %d exceeds maximum of %d bases: %w", len(sequence), MaxKmerLength, ErrKmerTooLong)
  }
  kmer, i := encodeDna(sequence)
  if i >= 0 {
    return 0, fmt.Errorf("EncodeDna(): `%c' at position %d: %w", sequence[i], i, ErrInvalidBase)
  }
  return kmer, nil
}

// Returns the position of the first invalid base or -1. The length of the
// sequence is not checked.
func encodeDna(sequence []byte) (Kmer, int) {
  al := NucleotideAlphabet{}
  r  := Kmer(0)
  for i := 0; i < len(sequence); i++ {
    // check first, Code() allocates an error
    if !IsConcreteBase(sequence[i]) {
      return 0, i
    }
    c, _ := al.Code(sequence[i])
    r = r<<2 | Kmer(c)
  }
  return r, -1
}

// Decode the k bases stored in kmer as upper case letters.
func DecodeDna(kmer Kmer, k int) []byte {
  al := NucleotideAlphabet{}
  r  := make([]byte, k)
  for i := k-1; i >= 0; i-- {
    r[i], _ = al.Decode(byte(kmer & 3))
    kmer >>= 2
  }
  return r
}

/* -------------------------------------------------------------------------- */

// Reverse complement of a k-mer of length k.
func (obj Kmer) RevComp(k int) Kmer {
  al := NucleotideAlphabet{}
  r  := Kmer(0)
  for i := 0; i < k; i++ {
    c, _ := al.ComplementCoded(byte(obj & 3))
    r   = r<<2 | Kmer(c)
    obj >>= 2
  }
  return r
}

func (obj Kmer) Decode(k int) []byte {
  return DecodeDna(obj, k)
}
