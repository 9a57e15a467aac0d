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
import "testing"

/* -------------------------------------------------------------------------- */

func TestReverseComplement(test *testing.T) {
  if r := ReverseComplement([]byte("acgTNR")); string(r) != "NNAcgt" {
    test.Errorf("test failed: %s", r)
  }
  if r := ReverseComplement(nil); len(r) != 0 {
    test.Error("test failed")
  }
}

func TestScanSequence1(test *testing.T) {
  pam    := newTestPAM(test, Tail, "NGG")
  guides := ScanSequence(pam, 4, "chr1", []byte("ACGTAGGTTTT"), true)
  if len(guides) != 1 {
    test.Fatalf("expected one guide but got %d", len(guides))
  }
  g := guides[0]
  if g.Seqname != "chr1" || g.Strand != '+' || g.Range != NewRange(0, 4) || g.PamRange != NewRange(4, 7) {
    test.Errorf("invalid guide: %+v", g)
  }
  if g.Kmer != encodeTestKmer(test, "ACGT") {
    test.Error("test failed")
  }
}

func TestScanSequence2(test *testing.T) {
  pam := newTestPAM(test, Tail, "NGG")
  seq := []byte("CCAACGTA")
  if guides := ScanSequence(pam, 4, "chr1", seq, false); len(guides) != 0 {
    test.Error("test failed")
  }
  guides := ScanSequence(pam, 4, "chr1", seq, true)
  if len(guides) != 1 {
    test.Fatalf("expected one guide but got %d", len(guides))
  }
  g := guides[0]
  if g.Strand != '-' || g.Range != NewRange(3, 7) || g.PamRange != NewRange(0, 3) {
    test.Errorf("invalid guide: %+v", g)
  }
  if g.Kmer != encodeTestKmer(test, "ACGT") {
    test.Error("test failed")
  }
}

func TestScanSequence3(test *testing.T) {
  pam    := newTestPAM(test, Head, "YTTN")
  guides := ScanSequence(pam, 3, "chr2", []byte("GCTTAGCA"), false)
  if len(guides) != 1 {
    test.Fatalf("expected one guide but got %d", len(guides))
  }
  if g := guides[0]; g.Range != NewRange(5, 8) || g.PamRange != NewRange(1, 5) || g.Kmer != encodeTestKmer(test, "GCA") {
    test.Errorf("invalid guide: %+v", g)
  }
  // target regions with ambiguous bases are skipped
  if guides := ScanSequence(newTestPAM(test, Tail, "NGG"), 4, "chr1", []byte("ACNTAGG"), true); len(guides) != 0 {
    test.Error("test failed")
  }
  if guides := ScanSequence(pam, 3, "chr2", []byte("CTT"), true); len(guides) != 0 {
    test.Error("test failed")
  }
}
