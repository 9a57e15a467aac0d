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

import   "fmt"
import   "bufio"
import   "bytes"
import   "io"
import   "log"
import   "os"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/gocrispr"
import   "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

type Config struct {
  Enzyme   Enzyme
  K        int
  Upper    bool
  Threads  int
  Verbose  int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func ImportFasta(config Config, filename string) OrderedStringSet {
  s := EmptyOrderedStringSet()
  if filename == "" {
    if err := s.ReadFasta(os.Stdin); err != nil {
      log.Fatal(err)
    }
  } else {
    PrintStderr(config, 1, "Reading fasta file `%s'... ", filename)
    if err := s.ImportFasta(filename); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
  return s
}

func ImportEnzyme(config Config, filename, name string) Enzyme {
  var enzymes []Enzyme
  if filename == "" {
    enzymes = Enzymes
  } else if r, err := ImportEnzymes(filename); err != nil {
    log.Fatal(err)
  } else {
    enzymes = r
  }
  enzyme, err := FindEnzyme(enzymes, name)
  if err != nil {
    log.Fatal(err)
  }
  return enzyme
}

func WriteResult(config Config, ss OrderedStringSet, filenameOut string) {
  var writer io.Writer

  if filenameOut == "" {
    writer = os.Stdout
  } else {
    f, err := os.Create(filenameOut)
    if err != nil {
      log.Fatal(err)
    }
    buffer := bufio.NewWriter(f)
    writer  = buffer
    defer f.Close()
    defer buffer.Flush()
  }
  if err := ss.WriteFasta(writer); err != nil {
    log.Fatal(err)
  }
}

/* -------------------------------------------------------------------------- */

func extractRegion(config Config, sequence []byte) []byte {
  if config.Upper {
    // modify the region within the sequence buffer
    r := config.Enzyme.PAM.KmerSliceMut(sequence, config.K)
    copy(r, bytes.ToUpper(r))
    return r
  } else {
    return config.Enzyme.PAM.KmerSlice(sequence, config.K)
  }
}

func pamExtract(config Config, filenameFasta, filenameOut string) {
  ss := ImportFasta(config, filenameFasta)

  pool    := threadpool.New(config.Threads, 100*config.Threads)
  jg      := pool.NewJobGroup()
  regions := make([][]byte, ss.Length())

  if err := pool.AddRangeJob(0, ss.Length(), jg, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    regions[i] = extractRegion(config, ss.Sequences[ss.Seqnames[i]])
    return nil
  }); err != nil {
    log.Fatal(err)
  }
  if err := pool.Wait(jg); err != nil {
    log.Fatal(err)
  }
  seqnames  := []string{}
  sequences := [][]byte{}
  for i, name := range ss.Seqnames {
    if len(regions[i]) == 0 {
      PrintStderr(config, 1, "No %s target region found in `%s'\n", config.Enzyme.Name, name)
      continue
    }
    seqnames  = append(seqnames,  name)
    sequences = append(sequences, regions[i])
  }
  WriteResult(config, NewOrderedStringSet(seqnames, sequences), filenameOut)
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optEnzymes := options. StringLong("enzymes",  0 , "", "read enzyme profiles from file (columns: name position pam k)")
  optK       := options.    IntLong("k",        0 ,  0, "maximal length of the target region [default: enzyme profile]")
  optUpper   := options.   BoolLong("upper",    0 ,     "convert target regions to upper case")
  optThreads := options.    IntLong("threads",  0 ,  1, "number of threads [default: 1]")
  optVerbose := options.CounterLong("verbose", 'v',     "verbose level [-v or -vv]")
  optHelp    := options.   BoolLong("help",    'h',     "print help")

  options.SetParameters("<ENZYME> [<INPUT.fasta> [OUTPUT.fasta]]")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) < 1 || len(options.Args()) > 3 || *optThreads < 1 || *optK < 0 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Upper   = *optUpper
  config.Threads = *optThreads
  config.Verbose = *optVerbose
  config.Enzyme  = ImportEnzyme(config, *optEnzymes, options.Args()[0])
  config.K       = config.Enzyme.K
  if *optK != 0 {
    config.K = *optK
  }
  filenameFasta := ""
  filenameOut   := ""
  if len(options.Args()) >= 2 {
    filenameFasta = options.Args()[1]
  }
  if len(options.Args()) == 3 {
    filenameOut   = options.Args()[2]
  }
  pamExtract(config, filenameFasta, filenameOut)
}
