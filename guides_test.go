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
import "sync"
import "testing"

/* -------------------------------------------------------------------------- */

func TestGuideSet(test *testing.T) {
  a := encodeTestKmer(test, "ACGT")
  b := encodeTestKmer(test, "TTTT")
  c := encodeTestKmer(test, "AAAA")

  guides := []Guide{{Seqname: "chr1", Kmer: a}, {Seqname: "chr2", Kmer: b}, {Seqname: "chr3", Kmer: c}}

  set := NewGuideSet()
  wg  := sync.WaitGroup{}
  for i := 0; i < 10; i++ {
    wg.Add(1)
    go func(i int) {
      defer wg.Done()
      if i == 0 {
        set.Add(guides[1])
      } else {
        set.Add(guides[0], guides[2])
      }
    }(i)
  }
  wg.Wait()

  if set.Len() != 3 {
    test.Error("test failed")
  }
  if set.Count(a) != 9 || set.Count(b) != 1 || set.Count(c) != 9 {
    test.Error("test failed")
  }
  if set.Count(encodeTestKmer(test, "GGGG")) != 0 {
    test.Error("test failed")
  }
  if r := set.Unique(guides); len(r) != 1 || r[0].Seqname != "chr2" {
    test.Error("test failed")
  }
  if r := set.Kmers(); len(r) != 3 || r[0] != c || r[1] != a || r[2] != b {
    test.Error("test failed")
  }
}
