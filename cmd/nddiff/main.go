// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Corvess
//
// SPDX-License-Identifier: GPL-2.0-only

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/corvess/ndlab/fixtures"
	"github.com/corvess/ndlab/labeled"
	"github.com/corvess/ndlab/ndarray"
	"github.com/corvess/ndlab/utils/check"
	"github.com/corvess/ndlab/utils/exit"
)

type Config struct {
	rtol      *float64
	atol      *float64
	identical *bool
	quiet     *bool

	*flag.FlagSet
}

func GetFlags() *Config {
	f := flag.NewFlagSet("", flag.ContinueOnError)
	ret := &Config{
		FlagSet:   f,
		rtol:      f.Float64("rtol", ndarray.DefaultRTol, "relative tolerance for numeric values"),
		atol:      f.Float64("atol", ndarray.DefaultATol, "absolute tolerance for numeric values"),
		identical: f.Bool("identical", false, "also require attributes to match, ignoring tolerances"),
		quiet:     f.Bool("q", false, "suppress output, only set the exit code"),
	}

	f.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage of %s: compares two YAML dataset files, exiting 0 when they hold\n"+
			"equivalent data and 1 when they differ\n"+
			"\t nddiff [-rtol R][-atol A][-identical][-q] FILE FILE\n\n"+
			"e.g. %s expected.yaml actual.yaml\n", os.Args[0], os.Args[0])
		f.PrintDefaults()
	}
	return ret
}

func main() {
	c := GetFlags()
	err := c.Parse(os.Args[1:])
	if err == flag.ErrHelp {
		exit.Success()
	}
	exit.OnError(err)
	RunDiff(c)
}

func RunDiff(c *Config) {
	check.Check(c.Parsed(), "flags not parsed")
	args := c.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Expected exactly two files to compare, got %d. Use -h/--help to print usage instructions.\n", len(args))
		exit.Silent()
	}
	d1, err := fixtures.Load(args[0])
	exit.OnErrorMsgf(err, "Failed to read %q", args[0])
	d2, err := fixtures.Load(args[1])
	exit.OnErrorMsgf(err, "Failed to read %q", args[1])

	same := compare(c, d1, d2)
	if !*c.quiet {
		report(c, same)
	}
	if !same {
		exit.Silent()
	}
	exit.Success()
}

func compare(c *Config, d1, d2 *labeled.Dataset) bool {
	if *c.identical {
		return d1.Identical(d2)
	}
	return d1.AllClose(d2, *c.rtol, *c.atol)
}

func report(c *Config, same bool) {
	if same {
		fmt.Println("datasets match")
		return
	}
	if *c.identical {
		fmt.Println("datasets are not identical")
	} else {
		fmt.Printf("datasets differ beyond tolerance (rtol=%v atol=%v)\n", *c.rtol, *c.atol)
	}
}
