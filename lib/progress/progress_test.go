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

import "bytes"
import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestProgress(test *testing.T) {
  p := New(10, 5)
  if p.K != 2 {
    test.Error("test failed")
  }
  if s := p.Exec(5); !strings.Contains(s, " 50.00%") || strings.HasSuffix(s, "\n") {
    test.Errorf("test failed: %q", s)
  }
  if s := p.Exec(10); !strings.Contains(s, "100.00%") || !strings.HasSuffix(s, "\n") {
    test.Errorf("test failed: %q", s)
  }
  var buffer bytes.Buffer
  p.Print(&buffer, 3)
  if buffer.Len() != 0 {
    test.Error("test failed")
  }
  p.Print(&buffer, 4)
  if buffer.Len() == 0 {
    test.Error("test failed")
  }
  if New(10, 100).K != 1 {
    test.Error("test failed")
  }
}
