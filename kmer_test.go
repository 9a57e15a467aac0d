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
import "bytes"
import "errors"
import "testing"

/* -------------------------------------------------------------------------- */

func TestEncodeDna1(test *testing.T) {
  if r, err := EncodeDna([]byte("ACGT")); err != nil || r != 27 {
    test.Error("test failed")
  }
  if r, err := EncodeDna([]byte("")); err != nil || r != 0 {
    test.Error("test failed")
  }
  a := encodeTestKmer(test, "ACTGAGTCAGATA")
  b := encodeTestKmer(test, "actgagtcagata")
  c := encodeTestKmer(test, "AcTgAgTcAgAtA")
  if a != b || a != c {
    test.Error("encoding must be case insensitive")
  }
  if encodeTestKmer(test, "AAAC") >= encodeTestKmer(test, "AAAG") {
    test.Error("test failed")
  }
}

func TestEncodeDna2(test *testing.T) {
  for _, seq := range []string{"ACNT", "N", "acgu", "ACG T", "ACGTR", "-"} {
    if _, err := EncodeDna([]byte(seq)); !errors.Is(err, ErrInvalidBase) {
      test.Errorf("expected ErrInvalidBase for `%s' but got %v", seq, err)
    }
  }
  seq := bytes.Repeat([]byte("A"), MaxKmerLength+1)
  if _, err := EncodeDna(seq); !errors.Is(err, ErrKmerTooLong) {
    test.Errorf("expected ErrKmerTooLong but got %v", err)
  }
  if _, err := EncodeDna(seq[1:]); err != nil {
    test.Error(err)
  }
}

func TestDecodeDna(test *testing.T) {
  for _, seq := range []string{"ACTGAGTCAGATA", "T", "", "TTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTT", "gattaca"} {
    kmer := encodeTestKmer(test, seq)
    if r := DecodeDna(kmer, len(seq)); string(r) != string(bytes.ToUpper([]byte(seq))) {
      test.Errorf("expected `%s' but got `%s'", seq, r)
    }
  }
  if string(encodeTestKmer(test, "GATTACA").Decode(7)) != "GATTACA" {
    test.Error("test failed")
  }
}

func TestKmerRevComp(test *testing.T) {
  for seq, rc := range map[string]string{
    "AACG"         : "CGTT",
    "A"            : "T",
    "ACTGAGTCAGATA": "TATCTGACTCAGT" } {
    if encodeTestKmer(test, seq).RevComp(len(seq)) != encodeTestKmer(test, rc) {
      test.Errorf("invalid reverse complement of `%s'", seq)
    }
  }
}
