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

package main

/* -------------------------------------------------------------------------- */

import   "os"
import   "path/filepath"
import   "testing"

import . "github.com/pbenner/gocrispr"

/* -------------------------------------------------------------------------- */

func newTestConfig(test *testing.T, upper bool) Config {
  enzyme, err := NewEnzyme("test", Head, "YTTN", 13)
  if err != nil {
    test.Fatal(err)
  }
  return Config{Enzyme: enzyme, K: 13, Upper: upper, Threads: 2}
}

/* -------------------------------------------------------------------------- */

func TestExtractRegion(test *testing.T) {
  sequence := []byte("TatAcTTactaTccaCaTaCaGg")

  r := extractRegion(newTestConfig(test, false), sequence)
  if string(r) != "cTTactaTccaCa" {
    test.Errorf("unexpected region `%s'", r)
  }
  if string(sequence) != "TatAcTTactaTccaCaTaCaGg" {
    test.Error("sequence must not be modified")
  }
  r = extractRegion(newTestConfig(test, true), sequence)
  if string(r) != "CTTACTATCCACA" {
    test.Errorf("unexpected region `%s'", r)
  }
  // only the region is converted, in place
  if string(sequence) != "TatACTTACTATCCACATaCaGg" {
    test.Errorf("unexpected sequence `%s'", sequence)
  }
  if r := extractRegion(newTestConfig(test, true), []byte("acgtacgt")); len(r) != 0 {
    test.Error("test failed")
  }
}

func TestPamExtract(test *testing.T) {
  dir         := test.TempDir()
  filenameIn  := filepath.Join(dir, "contexts.fa")
  filenameOut := filepath.Join(dir, "regions.fa")

  if err := os.WriteFile(filenameIn, []byte(">r1\nTatAcTTactaTccaCaTaCaGg\n>r2\nacgtacgt\n>r3\nggTTTaa\n"), 0644); err != nil {
    test.Fatal(err)
  }
  pamExtract(newTestConfig(test, true), filenameIn, filenameOut)

  ss := EmptyOrderedStringSet()
  if err := ss.ImportFasta(filenameOut); err != nil {
    test.Fatal(err)
  }
  if len(ss.Seqnames) != 2 || ss.Seqnames[0] != "r1" || ss.Seqnames[1] != "r3" {
    test.Fatalf("unexpected records: %v", ss.Seqnames)
  }
  if r := string(ss.Sequences["r1"]); r != "CTTACTATCCACA" {
    test.Errorf("unexpected region `%s'", r)
  }
  if r := string(ss.Sequences["r3"]); r != "TTTAA" {
    test.Errorf("unexpected region `%s'", r)
  }
}
