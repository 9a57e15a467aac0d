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


package progress

/* -------------------------------------------------------------------------- */

import "fmt"
import "io"
import "os"
import "strings"

/* -------------------------------------------------------------------------- */

// Progress bar for n steps that is redrawn every k-th step.
type Progress struct {
  N, K, LineWidth int
}

/* -------------------------------------------------------------------------- */

func New(n, k int) Progress {
  progress := Progress{n, n/k, 40}
  if progress.K < 1 {
    progress.K = 1
  }
  return progress
}

/* -------------------------------------------------------------------------- */

const lineDel = "\033[2K\r"

func (progress Progress) Exec(i int) string {
  p := 1.0
  if progress.N > 0 {
    p = float64(i)/float64(progress.N)
  }
  w := progress.LineWidth-2
  m := int(p*float64(w))
  if m > w {
    m = w
  }
  s := fmt.Sprintf("%s|%s%s| %6.2f%%", lineDel, strings.Repeat(">", m), strings.Repeat(" ", w-m), p*100)
  // add newline if finished
  if i >= progress.N {
    s += "\n"
  }
  return s
}

func (progress Progress) Print(writer io.Writer, i int) {
  if i == 0 || i >= progress.N || i % progress.K == 0 {
    fmt.Fprint(writer, progress.Exec(i))
  }
}

func (progress Progress) PrintStderr(i int) {
  progress.Print(os.Stderr, i)
}
