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

import "sort"
import "sync"

/* -------------------------------------------------------------------------- */

// GuideSet counts how often each encoded protospacer occurs. Guides may be
// added concurrently.
type GuideSet struct {
  mutex  sync.Mutex
  counts map[Kmer]int
}

/* -------------------------------------------------------------------------- */

func NewGuideSet() *GuideSet {
  return &GuideSet{counts: make(map[Kmer]int)}
}

/* -------------------------------------------------------------------------- */

func (obj *GuideSet) Add(guides ...Guide) {
  obj.mutex.Lock()
  defer obj.mutex.Unlock()
  for _, guide := range guides {
    obj.counts[guide.Kmer] += 1
  }
}

func (obj *GuideSet) Count(kmer Kmer) int {
  obj.mutex.Lock()
  defer obj.mutex.Unlock()
  return obj.counts[kmer]
}

// Number of distinct k-mers.
func (obj *GuideSet) Len() int {
  obj.mutex.Lock()
  defer obj.mutex.Unlock()
  return len(obj.counts)
}

// Returns all distinct k-mers in increasing order.
func (obj *GuideSet) Kmers() []Kmer {
  obj.mutex.Lock()
  defer obj.mutex.Unlock()
  r := make([]Kmer, 0, len(obj.counts))
  for kmer := range obj.counts {
    r = append(r, kmer)
  }
  sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })
  return r
}

// Select guides whose k-mer occurs exactly once in the set.
func (obj *GuideSet) Unique(guides []Guide) []Guide {
  obj.mutex.Lock()
  defer obj.mutex.Unlock()
  r := []Guide{}
  for _, guide := range guides {
    if obj.counts[guide.Kmer] == 1 {
      r = append(r, guide)
    }
  }
  return r
}
