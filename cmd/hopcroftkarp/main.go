// Command hopcroftkarp assigns exam dates to people.
//
// It reads availability instances (see package schedule) from stdin or
// -input until the input ends, solves each with Hopcroft–Karp and prints the
// configured report. Settings come from flags, HK_* environment variables
// and an optional .env file (see package internal/config).
package main

import (
	"flag"
	"io"
	"os"

	"github.com/plan-systems/klog"

	"github.com/vegri/HopcroftKarpAlgorithm/internal/config"
	"github.com/vegri/HopcroftKarpAlgorithm/matching"
	"github.com/vegri/HopcroftKarpAlgorithm/schedule"
)

func main() {
	code := 0
	if err := execute(os.Args[1:]); err != nil {
		klog.Errorf("hopcroftkarp: %v", err)
		code = 1
	}
	klog.Flush()
	os.Exit(code)
}

// execute resolves the configuration and input, then runs.
func execute(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}
	initLogging(cfg.Verbose)

	in := io.Reader(os.Stdin)
	if cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	return run(cfg, in, os.Stdout)
}

func initLogging(verbose bool) {
	fset := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	if verbose {
		fset.Set("v", "2")
	}
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          false,
	})
}

// run solves every instance of in and writes the report to out. Instances
// before a malformed one are still reported.
func run(cfg *config.Config, in io.Reader, out io.Writer) error {
	write := schedule.WriteMatching
	if cfg.Report == config.ReportEndpoints {
		write = schedule.WriteEndpoints
	}

	r := schedule.NewReader(in)
	for n := 1; ; n++ {
		p, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		g, err := p.Graph()
		if err != nil {
			return err
		}
		res, err := matching.HopcroftKarp(g, matching.WithVerbose(cfg.Verbose))
		if err != nil {
			return err
		}
		if cfg.Verbose {
			klog.V(2).Infof("instance %d: %d of %d people matched in %d phases", n, res.Size(), len(p.Records), res.Phases)
		}
		if err := write(out, res); err != nil {
			return err
		}
	}
}
