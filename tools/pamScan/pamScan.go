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
import   "database/sql"
import   "io"
import   "log"
import   "os"
import   "regexp"
import   "strings"

import   "github.com/pborman/getopt"
import _ "github.com/go-sql-driver/mysql"
import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/plotutil"
import   "gonum.org/v1/plot/vg"

import . "github.com/pbenner/gocrispr"
import   "github.com/pbenner/gocrispr/lib/progress"
import   "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

type Config struct {
  Enzyme   Enzyme
  K        int
  Revcomp  bool
  Unique   bool
  Header   bool
  Status   bool
  BinSize  int
  Threads  int
  Verbose  int
}

type GuideRow struct {
  Seqname string
  From    int
  To      int
  Strand  byte
  Pam     string
  Guide   string
  Count   int
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
  if filename == "" {
    if enzyme, err := GetEnzyme(name); err != nil {
      log.Fatal(err)
    } else {
      return enzyme
    }
  }
  PrintStderr(config, 1, "Reading enzyme profiles from `%s'... ", filename)
  enzymes, err := ImportEnzymes(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  enzyme, err := FindEnzyme(enzymes, name)
  if err != nil {
    log.Fatal(err)
  }
  return enzyme
}

/* -------------------------------------------------------------------------- */

func WriteResult(config Config, rows []GuideRow, filenameOut string) {
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
  if config.Header {
    fmt.Fprintf(writer, "# %s\n", config.Enzyme)
  }
  fmt.Fprintf(writer, "%10s %10s %10s %6s %8s %*s %6s\n", "seqnames", "from", "to", "strand", "pam", config.K, "guide", "count")
  for _, r := range rows {
    if _, err := fmt.Fprintf(writer, "%10s %10d %10d %6c %8s %*s %6d\n", r.Seqname, r.From, r.To, r.Strand, r.Pam, config.K, r.Guide, r.Count); err != nil {
      log.Fatal(err)
    }
  }
}

/* -------------------------------------------------------------------------- */

var mysqlTableRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func ExportMySQL(config Config, rows []GuideRow, dsn, table string) {
  if !mysqlTableRegexp.MatchString(table) {
    log.Fatalf("invalid table name `%s'", table)
  }
  PrintStderr(config, 1, "Exporting %d guides to MySQL table `%s'... ", len(rows), table)
  if err := exportMySQL(rows, dsn, table); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

func exportMySQL(rows []GuideRow, dsn, table string) error {
  db, err := sql.Open("mysql", dsn)
  if err != nil {
    return err
  }
  defer db.Close()

  if _, err := db.Exec(fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` (" +
    "seqname VARCHAR(255) NOT NULL, " +
    "start INT NOT NULL, " +
    "end INT NOT NULL, " +
    "strand CHAR(1) NOT NULL, " +
    "pam VARCHAR(64) NOT NULL, " +
    "guide VARCHAR(64) NOT NULL, " +
    "count INT NOT NULL)", table)); err != nil {
    return err
  }
  tx, err := db.Begin()
  if err != nil {
    return err
  }
  stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO `%s` (seqname, start, end, strand, pam, guide, count) VALUES (?, ?, ?, ?, ?, ?, ?)", table))
  if err != nil {
    tx.Rollback()
    return err
  }
  defer stmt.Close()
  for _, r := range rows {
    if _, err := stmt.Exec(r.Seqname, r.From, r.To, string(r.Strand), r.Pam, r.Guide, r.Count); err != nil {
      tx.Rollback()
      return err
    }
  }
  return tx.Commit()
}

/* -------------------------------------------------------------------------- */

// Number of PAM sites per bin along each sequence.
func SavePlot(config Config, filename string, ss OrderedStringSet, guides [][]Guide) {
  lines := []interface{}{}
  for i, name := range ss.Seqnames {
    n  := (len(ss.Sequences[name]) + config.BinSize - 1) / config.BinSize
    xy := make(plotter.XYs, n)
    for j := 0; j < n; j++ {
      xy[j].X = float64(j*config.BinSize)
    }
    for _, g := range guides[i] {
      // an empty PAM may start at the very end of the sequence
      if k := g.PamRange.From/config.BinSize; k < n {
        xy[k].Y += 1
      } else {
        xy[n-1].Y += 1
      }
    }
    if n > 0 {
      lines = append(lines, name, xy)
    }
  }
  p := plot.New()
  p.Title.Text   = fmt.Sprintf("%s PAM sites", config.Enzyme.Name)
  p.X.Label.Text = "position"
  p.Y.Label.Text = fmt.Sprintf("sites per %d bp", config.BinSize)

  if err := plotutil.AddLines(p, lines...); err != nil {
    log.Fatal(err)
  }
  if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Wrote PAM site density plot to `%s'\n", filename)
}

/* -------------------------------------------------------------------------- */

func scanSequences(config Config, ss OrderedStringSet) ([][]Guide, *GuideSet) {
  pool   := threadpool.New(config.Threads, 100*config.Threads)
  jg     := pool.NewJobGroup()
  n      := ss.Length()
  guides := make([][]Guide, n)
  set    := NewGuideSet()

  if !config.Status {
    PrintStderr(config, 1, "Scanning %d sequences for %s... ", n, config.Enzyme.Name)
  }
  for i := 0; i < n; i++ {
    // make a thread safe copy of i
    j := i
    pool.AddJob(jg, func(pool threadpool.ThreadPool, erf func() error) error {
      name := ss.Seqnames[j]
      guides[j] = ScanSequence(config.Enzyme.PAM, config.K, name, ss.Sequences[name], config.Revcomp)
      set.Add(guides[j]...)
      return nil
    })
    if config.Status {
      progress.New(n, 1000).PrintStderr(i+1)
    }
  }
  if err := pool.Wait(jg); err != nil {
    log.Fatal(err)
  }
  if !config.Status {
    PrintStderr(config, 1, "done\n")
  }
  PrintStderr(config, 1, "Found %d distinct guides\n", set.Len())
  return guides, set
}

func collectRows(config Config, ss OrderedStringSet, guides [][]Guide, set *GuideSet) []GuideRow {
  rows := []GuideRow{}
  for i := range guides {
    g := guides[i]
    if config.Unique {
      g = set.Unique(g)
    }
    for _, guide := range g {
      pam, err := ss.GetSlice(guide.Seqname, guide.PamRange)
      if err != nil {
        log.Fatal(err)
      }
      if guide.Strand == '-' {
        pam = ReverseComplement(pam)
      }
      rows = append(rows, GuideRow{
        Seqname: guide.Seqname,
        From   : guide.Range.From,
        To     : guide.Range.To,
        Strand : guide.Strand,
        Pam    : string(pam),
        Guide  : string(guide.Kmer.Decode(config.K)),
        Count  : set.Count(guide.Kmer) })
    }
  }
  return rows
}

/* -------------------------------------------------------------------------- */

func pamScan(config Config, filenameFasta, filenameOut, filenamePlot, dsn, table string) {
  ss := ImportFasta(config, filenameFasta)

  guides, set := scanSequences(config, ss)
  rows        := collectRows(config, ss, guides, set)

  WriteResult(config, rows, filenameOut)

  if filenamePlot != "" {
    SavePlot(config, filenamePlot, ss, guides)
  }
  if dsn != "" {
    ExportMySQL(config, rows, dsn, table)
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optEnzymes  := options. StringLong("enzymes",     0 , "",       "read enzyme profiles from file (columns: name position pam k)")
  optPam      := options. StringLong("pam",         0 , "",       "override the PAM of the enzyme")
  optPosition := options. StringLong("position",    0 , "",       "override the PAM position (head or tail)")
  optK        := options.    IntLong("k",           0 ,  0,       "length of the target region [default: enzyme profile]")
  optRevcomp  := options.   BoolLong("revcomp",     0 ,           "scan reverse complement strand")
  optUnique   := options.   BoolLong("unique",      0 ,           "report only guides that occur once")
  optHeader   := options.   BoolLong("header",      0 ,           "print enzyme header")
  optPlot     := options. StringLong("plot",        0 , "",       "save PAM site density plot to file")
  optBinSize  := options.    IntLong("bin-size",    0 ,  10000,   "bin size of the density plot [default: 10000]")
  optMySQL    := options. StringLong("mysql",       0 , "",       "export guides to MySQL database (DSN: user:password@tcp(host:port)/dbname)")
  optTable    := options. StringLong("mysql-table", 0 , "guides", "MySQL table name [default: guides]")
  optThreads  := options.    IntLong("threads",     0 ,  1,       "number of threads [default: 1]")
  optStatus   := options.   BoolLong("status",      0 ,           "show progress")
  optVerbose  := options.CounterLong("verbose",    'v',           "verbose level [-v or -vv]")
  optHelp     := options.   BoolLong("help",       'h',           "print help")

  options.SetParameters("<ENZYME> [<INPUT.fasta> [OUTPUT.table]]")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) < 1 || len(options.Args()) > 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if *optThreads < 1 || *optBinSize < 1 || *optK < 0 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Revcomp = *optRevcomp
  config.Unique  = *optUnique
  config.Header  = *optHeader
  config.BinSize = *optBinSize
  config.Threads = *optThreads
  config.Status  = *optStatus
  config.Verbose = *optVerbose
  config.Enzyme  = ImportEnzyme(config, *optEnzymes, options.Args()[0])
  // override enzyme profile
  if *optPam != "" || *optPosition != "" || *optK != 0 {
    position := config.Enzyme.PAM.Position()
    pattern  := config.Enzyme.PAM.String()
    k        := config.Enzyme.K
    if *optPosition != "" {
      if p, err := ParsePosition(*optPosition); err != nil {
        log.Fatal(err)
      } else {
        position = p
      }
    }
    if *optPam != "" {
      pattern = strings.ToUpper(*optPam)
    }
    if *optK != 0 {
      k = *optK
    }
    if enzyme, err := NewEnzyme(config.Enzyme.Name, position, pattern, k); err != nil {
      log.Fatal(err)
    } else {
      config.Enzyme = enzyme
    }
  }
  config.K = config.Enzyme.K
  PrintStderr(config, 2, "Using enzyme %s\n", config.Enzyme)
  if config.Revcomp {
    rc := config.Enzyme.PAM.RevComp()
    PrintStderr(config, 2, "Reverse strand motif is %s PAM %s\n", rc.Position(), rc)
  }

  filenameFasta := ""
  filenameOut   := ""
  if len(options.Args()) >= 2 {
    filenameFasta = options.Args()[1]
  }
  if len(options.Args()) == 3 {
    filenameOut   = options.Args()[2]
  }
  pamScan(config, filenameFasta, filenameOut, *optPlot, *optMySQL, *optTable)
}
