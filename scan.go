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

//import "fmt"

/* -------------------------------------------------------------------------- */

// Guide is a candidate target region found next to a PAM. Coordinates
// always refer to the forward strand. The k-mer is the protospacer read
// 5' to 3' on the strand given by Strand.
type Guide struct {
  Seqname  string
  Range    Range
  PamRange Range
  Strand   byte
  Kmer     Kmer
}

/* -------------------------------------------------------------------------- */

// Reverse complement of a sequence. Bases other than a, c, g, t are
// replaced by `N'.
func ReverseComplement(sequence []byte) []byte {
  al := NucleotideAlphabet{}
  n  := len(sequence)
  r  := make([]byte, n)
  for i := 0; i < n; i++ {
    if c, err := al.Complement(sequence[n-i-1]); err != nil {
      r[i] = 'N'
    } else {
      r[i] = c
    }
  }
  return r
}

/* -------------------------------------------------------------------------- */

// Slide a window of length pam.Len()+k over the sequence and collect all
// guides. If revcomp is true the reverse complement is scanned as well.
func ScanSequence(pam PAM, k int, seqname string, sequence []byte, revcomp bool) []Guide {
  guides := scanStrand(nil, pam, k, seqname, sequence, '+')
  if revcomp {
    guides = scanStrand(guides, pam, k, seqname, ReverseComplement(sequence), '-')
  }
  return guides
}

func scanStrand(guides []Guide, pam PAM, k int, seqname string, sequence []byte, strand byte) []Guide {
  p := pam.Len()
  n := len(sequence)
  w := p+k
  for i := 0; i+w <= n; i++ {
    offset, kmer, ok := pam.Kmer(sequence[i:i+w], k)
    if !ok {
      continue
    }
    r1 := NewRange(i+offset, i+offset+p)
    r2 := Range{}
    if pam.Position() == Head {
      r2 = NewRange(r1.To, r1.To+k)
    } else {
      r2 = NewRange(r1.From-k, r1.From)
    }
    if strand == '-' {
      r1 = r1.Flip(n)
      r2 = r2.Flip(n)
    }
    guides = append(guides, Guide{Seqname: seqname, Range: r2, PamRange: r1, Strand: strand, Kmer: kmer})
  }
  return guides
}
