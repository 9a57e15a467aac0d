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
import "bufio"
import "io"
import "strings"
import "unicode"

/* -------------------------------------------------------------------------- */

// Structure containing genomic sequences in the order of the input file.
type OrderedStringSet struct {
  Sequences   StringSet
  Seqnames  []string
}

/* -------------------------------------------------------------------------- */

func NewOrderedStringSet(seqnames []string, sequences [][]byte) OrderedStringSet {
  if len(seqnames) != len(sequences) {
    panic("NewOrderedStringSet(): invalid parameters")
  }
  n := len(sequences)
  s := make(StringSet)
  t := make([]string, n)

  for i := 0; i < n; i++ {
    if _, ok := s[seqnames[i]]; ok {
      panic(fmt.Sprintf("duplicate sequence name `%s'", seqnames[i]))
    } else {
      s[seqnames[i]] = sequences[i]
    }
    t[i] = seqnames[i]
  }
  return OrderedStringSet{s, t}
}

func EmptyOrderedStringSet() OrderedStringSet {
  return OrderedStringSet{EmptyStringSet(), []string{}}
}

/* -------------------------------------------------------------------------- */

func (obj OrderedStringSet) Length() int {
  return len(obj.Seqnames)
}

func (obj OrderedStringSet) GetSlice(name string, r Range) ([]byte, error) {
  return obj.Sequences.GetSlice(name, r)
}

/* -------------------------------------------------------------------------- */

func (obj *OrderedStringSet) add(name string, seq []byte) error {
  if obj.Sequences == nil {
    obj.Sequences = EmptyStringSet()
  }
  if _, ok := obj.Sequences[name]; ok {
    return fmt.Errorf("ReadFasta(): sequence name `%s' occurred multiple times", name)
  }
  obj.Sequences[name] = seq
  obj.Seqnames        = append(obj.Seqnames, name)
  return nil
}

func (obj *OrderedStringSet) ReadFasta(reader io.Reader) error {
  scanner := bufio.NewScanner(reader)
  scanner.Buffer(make([]byte, 64*1024), 1024*1024*1024)

  // current sequence
  name := ""
  seq  := []byte{}

  for scanner.Scan() {
    line := scanner.Bytes()
    if len(line) == 0 {
      continue
    }
    if line[0] == '>' {
      // save data from previous entry
      if name != "" {
        if err := obj.add(name, seq); err != nil {
          return err
        }
      }
      // header
      fields := strings.FieldsFunc(string(line), func(c rune) bool {
        return unicode.IsSpace(c) || c == '>' || c == '|'
      })
      if len(fields) == 0 {
        return fmt.Errorf("ReadFasta(): invalid fasta file")
      }
      name = fields[0]
      seq  = []byte{}
    } else {
      // data
      if name == "" {
        return fmt.Errorf("ReadFasta(): invalid fasta file")
      }
      seq = append(seq, line...)
    }
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  if name != "" {
    return obj.add(name, seq)
  }
  return nil
}

func (obj *OrderedStringSet) ImportFasta(filename string) error {
  return withFileReader(filename, obj.ReadFasta)
}

/* -------------------------------------------------------------------------- */

func (obj OrderedStringSet) WriteFasta(writer io.Writer) error {
  for _, name := range obj.Seqnames {
    seq := obj.Sequences[name]
    if _, err := fmt.Fprintf(writer,  ">%s\n", name); err != nil {
      return err
    }
    for i := 0; i < len(seq); i += 80 {
      from := i
      to   := iMin(i+80, len(seq))
      if _, err := fmt.Fprintf(writer, "%s\n", seq[from:to]); err != nil {
        return err
      }
    }
  }
  return nil
}
