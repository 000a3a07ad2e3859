package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/claude/sprintlab/internal/models"
	"github.com/claude/sprintlab/internal/sprint"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	timesFlag := flag.String("times", "", "sprint times in seconds in set order (e.g. \"10.8,11.2,11.9\")")
	asJSON := flag.Bool("json", false, "print the full analysis as JSON")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("sprintlab-calc", Version)
		return
	}

	if *timesFlag == "" {
		fmt.Fprintf(os.Stderr, "Usage: sprintlab-calc -times <t1,t2,...> [-json]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(os.Stdout, *timesFlag, *asJSON); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, rawTimes string, asJSON bool) error {
	times, err := models.ParseTimes(rawTimes)
	if err != nil {
		return err
	}
	session, err := models.NewSession(times, models.DefaultLimits)
	if err != nil {
		return err
	}
	analysis, err := sprint.Analyze(session)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}
	return printReport(w, analysis)
}

func printReport(w io.Writer, a *sprint.Analysis) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "Set\tTime (s)\tSpeed (m/s)\tSpeed (km/h)")
	for _, r := range a.Table {
		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\n", r.Set, r.Time, r.SpeedMS, r.SpeedKMH)
	}
	fmt.Fprintln(tw)

	for _, o := range a.Observations {
		fmt.Fprintf(tw, "%s\t%s %s\n", o.Label, formatValue(o.Value), o.Unit)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Metric\tYour Value\tOlympian Benchmark")
	for _, c := range a.Comparison {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Metric, c.FormatValue(), c.Benchmark)
	}
	for _, warn := range a.Metrics.Warnings {
		fmt.Fprintf(tw, "\nwarning: %s\n", warn)
	}
	return tw.Flush()
}

func formatValue(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}
