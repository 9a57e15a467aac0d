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

import "bufio"
import "errors"
import "fmt"
import "io"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

var ErrUnknownEnzyme = errors.New("unknown enzyme")

/* -------------------------------------------------------------------------- */

// Enzyme profile: the PAM of a genome-editing nuclease and the default
// length of its target region.
type Enzyme struct {
  Name string
  PAM  PAM
  K    int
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewEnzyme(name string, position Position, pattern string, k int) (Enzyme, error) {
  if k < 1 || k > MaxKmerLength {
    return Enzyme{}, fmt.Errorf("NewEnzyme(): invalid target length %d for enzyme `%s'", k, name)
  }
  pam, err := NewPAM(position, []byte(pattern))
  if err != nil {
    return Enzyme{}, fmt.Errorf("NewEnzyme(): enzyme `%s': %w", name, err)
  }
  return Enzyme{Name: name, PAM: pam, K: k}, nil
}

func mustEnzyme(name string, position Position, pattern string, k int) Enzyme {
  if r, err := NewEnzyme(name, position, pattern, k); err != nil {
    panic(err)
  } else {
    return r
  }
}

/* -------------------------------------------------------------------------- */

// Built-in enzyme profiles.
var Enzymes = []Enzyme{
  mustEnzyme("cas9",   Tail, "NGG",    20),
  mustEnzyme("sacas9", Tail, "NNGRRT", 21),
  mustEnzyme("cas12a", Head, "TTTV",   20),
  mustEnzyme("cas12b", Head, "TTN",    20),
  mustEnzyme("mad7",   Head, "YTTN",   20),
}

// Find an enzyme by name, letter case is ignored.
func FindEnzyme(enzymes []Enzyme, name string) (Enzyme, error) {
  for _, enzyme := range enzymes {
    if strings.EqualFold(enzyme.Name, name) {
      return enzyme, nil
    }
  }
  return Enzyme{}, fmt.Errorf("FindEnzyme(): `%s': %w", name, ErrUnknownEnzyme)
}

func GetEnzyme(name string) (Enzyme, error) {
  return FindEnzyme(Enzymes, name)
}

/* -------------------------------------------------------------------------- */

func (obj Enzyme) String() string {
  return fmt.Sprintf("%s (%s PAM %s, k=%d)", obj.Name, obj.PAM.Position(), obj.PAM, obj.K)
}

/* i/o
 * -------------------------------------------------------------------------- */

// Read enzyme profiles from a whitespace separated table with columns name,
// position (head or tail), PAM and target length. Empty lines and lines
// starting with `#' are ignored.
func ReadEnzymes(reader io.Reader) ([]Enzyme, error) {
  enzymes := []Enzyme{}
  scanner := bufio.NewScanner(reader)
  for i := 1; scanner.Scan(); i++ {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
      continue
    }
    if len(fields) != 4 {
      return nil, fmt.Errorf("ReadEnzymes(): invalid number of columns on line %d", i)
    }
    position, err := ParsePosition(fields[1])
    if err != nil {
      return nil, fmt.Errorf("ReadEnzymes(): line %d: %w", i, err)
    }
    k, err := strconv.Atoi(fields[3])
    if err != nil {
      return nil, fmt.Errorf("ReadEnzymes(): line %d: %w", i, err)
    }
    enzyme, err := NewEnzyme(fields[0], position, fields[2], k)
    if err != nil {
      return nil, fmt.Errorf("ReadEnzymes(): line %d: %w", i, err)
    }
    enzymes = append(enzymes, enzyme)
  }
  if err := scanner.Err(); err != nil {
    return nil, err
  }
  return enzymes, nil
}

func ImportEnzymes(filename string) ([]Enzyme, error) {
  var enzymes []Enzyme
  err := withFileReader(filename, func(reader io.Reader) error {
    r, err := ReadEnzymes(reader)
    enzymes = r
    return err
  })
  return enzymes, err
}
