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

/* -------------------------------------------------------------------------- */

// Structure containing genomic sequences.
type StringSet map[string][]byte

/* -------------------------------------------------------------------------- */

func EmptyStringSet() StringSet {
  return make(StringSet)
}

/* -------------------------------------------------------------------------- */

// Returns the subsequence [r.From, r.To) of sequence name. The result
// aliases the stored sequence.
func (s StringSet) GetSlice(name string, r Range) ([]byte, error) {
  result, ok := s[name]
  if !ok {
    return nil, fmt.Errorf("GetSlice(): invalid sequence name `%s'", name)
  }
  if r.From < 0 || r.To > len(result) || r.From > r.To {
    return nil, fmt.Errorf("GetSlice(): range %v out of bounds for sequence `%s' of length %d", r, name, len(result))
  }
  return result[r.From:r.To], nil
}
