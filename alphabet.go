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

import "fmt"
import "strings"

/* -------------------------------------------------------------------------- */

const (
  maskA uint8 = 1 << iota
  maskC
  maskG
  maskT
)

// Membership mask over {A,C,G,T} for every IUPAC nucleotide symbol. Bytes
// outside the alphabet have mask zero. Must be set up before Enzymes.
var iupacMask = newIupacMask()

func newIupacMask() [256]uint8 {
  r   := [256]uint8{}
  set := func(c byte, m uint8) {
    r[c     ] = m
    r[c|0x20] = m
  }
  set('A', maskA)
  set('C', maskC)
  set('G', maskG)
  set('T', maskT)
  set('R', maskA|maskG)
  set('Y', maskC|maskT)
  set('S', maskC|maskG)
  set('W', maskA|maskT)
  set('K', maskG|maskT)
  set('M', maskA|maskC)
  set('B', maskC|maskG|maskT)
  set('D', maskA|maskG|maskT)
  set('H', maskA|maskC|maskT)
  set('V', maskA|maskC|maskG)
  set('N', maskA|maskC|maskG|maskT)
  return r
}

/* -------------------------------------------------------------------------- */

// Returns true if c is one of the 15 IUPAC nucleotide symbols (any case).
func IsIupacSymbol(c byte) bool {
  return iupacMask[c] != 0
}

// Returns true if c is one of a, c, g, t (any case).
func IsConcreteBase(c byte) bool {
  switch iupacMask[c] {
  case maskA, maskC, maskG, maskT:
    return true
  default:
    return false
  }
}

// Test if a sequence base satisfies a pattern symbol. A concrete base matches
// if it is a member of the symbol's set. Any other sequence byte only matches
// the identical symbol, i.e. an `n' in the sequence matches `N' but not `A'.
func SymbolMatches(symbol, base byte) bool {
  if symbol|0x20 == base|0x20 && iupacMask[symbol] != 0 {
    return true
  }
  return IsConcreteBase(base) && iupacMask[symbol]&iupacMask[base] != 0
}

/* -------------------------------------------------------------------------- */

type NucleotideAlphabet struct {
}

func (NucleotideAlphabet) Code(i byte) (byte, error) {
  switch iupacMask[i] {
  case maskA: return 0, nil
  case maskC: return 1, nil
  case maskG: return 2, nil
  case maskT: return 3, nil
  default:    return 0xFF, fmt.Errorf("Code(): `%c' is not part of the alphabet", i)
  }
}

func (NucleotideAlphabet) Decode(i byte) (byte, error) {
  switch i {
  case 0:  return 'A', nil
  case 1:  return 'C', nil
  case 2:  return 'G', nil
  case 3:  return 'T', nil
  default: return 0xFF, fmt.Errorf("Decode(): `%d' is not a code of the alphabet", int(i))
  }
}

func (NucleotideAlphabet) IsAmbiguous(i byte) (bool, error) {
  if !IsConcreteBase(i) {
    return false, fmt.Errorf("IsAmbiguous(): `%c' is not part of the alphabet", i)
  }
  return false, nil
}

func (NucleotideAlphabet) Length() int {
  return 4
}

func (NucleotideAlphabet) ComplementCoded(i byte) (byte, error) {
  if i > 3 {
    return 0xFF, fmt.Errorf("ComplementCoded(): `%d' is not a code of the alphabet", int(i))
  }
  return 3-i, nil
}

// Complement of a concrete base, the case of the input is preserved.
func (NucleotideAlphabet) Complement(i byte) (byte, error) {
  switch i {
  case 'A': return 'T', nil
  case 'a': return 't', nil
  case 'C': return 'G', nil
  case 'c': return 'g', nil
  case 'G': return 'C', nil
  case 'g': return 'c', nil
  case 'T': return 'A', nil
  case 't': return 'a', nil
  default:  return 0xFF, fmt.Errorf("Complement(): `%c' is not part of the alphabet", i)
  }
}

func (NucleotideAlphabet) String() string {
  return "nucleotide alphabet"
}

/* -------------------------------------------------------------------------- */

// IUPAC symbols in the order of their codes.
const ambiguousSymbols = "acgtwsmkrybdhvn"

// Symbol for each membership mask (zero for the empty set).
var ambiguousMaskSymbol = newAmbiguousMaskSymbol()

func newAmbiguousMaskSymbol() [16]byte {
  r := [16]byte{}
  for i := 0; i < len(ambiguousSymbols); i++ {
    r[iupacMask[ambiguousSymbols[i]]] = ambiguousSymbols[i]
  }
  return r
}

// AmbiguousNucleotideAlphabet covers all 15 IUPAC nucleotide symbols. Symbols
// are accepted in any case and returned in lower case.
type AmbiguousNucleotideAlphabet struct {
}

// Concrete bases represented by symbol i.
func (AmbiguousNucleotideAlphabet) Bases(i byte) ([]byte, error) {
  m := iupacMask[i]
  if m == 0 {
    return nil, fmt.Errorf("Bases(): `%c' is not part of the alphabet", i)
  }
  r := []byte{}
  for j, c := range []byte("acgt") {
    if m & (1 << uint(j)) != 0 {
      r = append(r, c)
    }
  }
  return r, nil
}

func (AmbiguousNucleotideAlphabet) Code(i byte) (byte, error) {
  if iupacMask[i] == 0 {
    return 0xFF, fmt.Errorf("Code(): `%c' is not part of the alphabet", i)
  }
  return byte(strings.IndexByte(ambiguousSymbols, i|0x20)), nil
}

func (AmbiguousNucleotideAlphabet) Decode(i byte) (byte, error) {
  if int(i) >= len(ambiguousSymbols) {
    return 0xFF, fmt.Errorf("Decode(): `%d' is not a code of the alphabet", int(i))
  }
  return ambiguousSymbols[i], nil
}

func (AmbiguousNucleotideAlphabet) Complement(i byte) (byte, error) {
  m := iupacMask[i]
  if m == 0 {
    return 0xFF, fmt.Errorf("Complement(): `%c' is not part of the alphabet", i)
  }
  // swap a <-> t and c <-> g
  c := (m&maskA)<<3 | (m&maskC)<<1 | (m&maskG)>>1 | (m&maskT)>>3
  return ambiguousMaskSymbol[c], nil
}

func (AmbiguousNucleotideAlphabet) IsAmbiguous(i byte) (bool, error) {
  m := iupacMask[i]
  if m == 0 {
    return false, fmt.Errorf("IsAmbiguous(): `%c' is not part of the alphabet", i)
  }
  return m & (m-1) != 0, nil
}

func (AmbiguousNucleotideAlphabet) IsWildcard(i byte) (bool, error) {
  m := iupacMask[i]
  if m == 0 {
    return false, fmt.Errorf("IsWildcard(): `%c' is not part of the alphabet", i)
  }
  return m == maskA|maskC|maskG|maskT, nil
}

func (AmbiguousNucleotideAlphabet) Length() int {
  return 15
}

func (AmbiguousNucleotideAlphabet) String() string {
  return "ambiguous nucleotide alphabet"
}
