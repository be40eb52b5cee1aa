// Copyright 2026 The wrkstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Wrkstat summarizes a directory of wrk benchmark reports.
//
// Usage:
//
//	wrkstat [-labels file.yaml] [-o dir] bench_dir
//
// Each *.txt file directly in bench_dir is one wrk run, typically
// saved as
//
//	wrk -t4 -c100 -d30s --latency http://host/api/users > api_users_t4_c100.txt
//
// The endpoint of a run is the path of the URL wrk reports. If the
// report does not name its URL, the endpoint and run configuration are
// decoded from the file name <endpoint>_t<threads>_c<conns>.txt, with
// "_" standing for "/".
//
// Wrkstat writes into bench_dir, or the directory given by -o:
//
//	report.csv             one row per report, fixed columns
//	report.json            every field of every report, including its text
//	plots/reqsec_<ep>.png  requests/sec per configuration, per endpoint
//	plots/latp50_<ep>.png  median latency per configuration, per endpoint
//	report.html            summary and detail tables with the charts
//
// Latencies are reported in seconds and transfer rates in bytes per
// second. Runs that failed to connect are kept in the tables with the
// error "connection_error" and left out of the summaries and charts.
//
// The -labels option reads report captions from a YAML file with the
// keys title, headings and columns, for example to produce a localized
// report.
//
// Wrkstat exits with status 2 on a usage error and 1 if bench_dir does
// not exist or holds no reports.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"

	"github.com/DreamTraveler233/wrkstat/wrkfmt"
	"github.com/DreamTraveler233/wrkstat/wrkseries"
	"github.com/DreamTraveler233/wrkstat/wrkstat"
)

var exit = os.Exit // replaced during testing

var errUsage = errors.New("usage error")

const plotDir = "plots"

func main() {
	log.SetPrefix("wrkstat: ")
	log.SetFlags(0)
	err := run(os.Stdout, os.Stderr, os.Args[1:])
	if err != nil && !errors.Is(err, errUsage) {
		log.Print(err)
	}
	exit(exitCode(err))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	}
	return 1
}

func run(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("wrkstat", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "usage: wrkstat [options] bench_dir\n")
		fmt.Fprintf(wErr, "options:\n")
		flags.PrintDefaults()
	}
	flagLabels := flags.String("labels", "", "read report captions from YAML `file`")
	flagOut := flags.String("o", "", "write reports to `dir` (default bench_dir)")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return errUsage
	}
	benchDir := flags.Arg(0)

	var labels *wrkstat.Labels
	if *flagLabels != "" {
		var err error
		if labels, err = wrkstat.LoadLabels(*flagLabels); err != nil {
			return err
		}
	}

	results, err := wrkfmt.Load(benchDir)
	if err != nil {
		return err
	}

	outDir := *flagOut
	if outDir == "" {
		outDir = benchDir
	}
	if err := os.MkdirAll(outDir, 0777); err != nil {
		return err
	}

	csvPath := filepath.Join(outDir, "report.csv")
	if err := writeFile(csvPath, func(w io.Writer) error { return wrkstat.WriteCSV(w, results) }); err != nil {
		return err
	}
	jsonPath := filepath.Join(outDir, "report.json")
	if err := writeFile(jsonPath, func(w io.Writer) error { return wrkstat.WriteJSON(w, results) }); err != nil {
		return err
	}

	series := wrkseries.Group(results)
	warn := func(err error) {
		fmt.Fprintf(wErr, "wrkstat: chart: %v\n", err)
	}
	chartPaths, err := wrkseries.ChartAll(series, filepath.Join(outDir, plotDir), warn)
	if err != nil {
		return err
	}
	charts := make([]string, len(chartPaths))
	for i, p := range chartPaths {
		charts[i] = path.Join(plotDir, filepath.Base(p))
	}

	htmlPath := filepath.Join(outDir, "report.html")
	rep := &wrkstat.Report{
		Source:  benchDir,
		Results: results,
		Series:  series,
		Charts:  charts,
		Labels:  labels,
	}
	if err := writeFile(htmlPath, func(w io.Writer) error { return wrkstat.WriteHTML(w, rep) }); err != nil {
		return err
	}

	fmt.Fprintf(w, "read %d reports, %d endpoints\n", len(results), len(series))
	fmt.Fprintf(w, " - CSV: %s\n", csvPath)
	fmt.Fprintf(w, " - JSON: %s\n", jsonPath)
	fmt.Fprintf(w, " - charts: %s (%d)\n", filepath.Join(outDir, plotDir), len(charts))
	fmt.Fprintf(w, " - HTML: %s\n", htmlPath)
	return nil
}

// writeFile creates path and writes it with write.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
