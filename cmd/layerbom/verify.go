package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/quay/layerbom/log"
	"github.com/quay/layerbom/sbom/spdx"
)

// Verify is the subcommand for checking SPDX documents.
func Verify(cmd context.Context, cfg *commonConfig, args []string) error {
	fs := flag.NewFlagSet("layerbom verify", flag.ExitOnError)
	format := fs.String("format", "", "input format: \"json\" or \"tagvalue\"; guessed from the file name if empty")
	fs.Parse(args)

	var f spdx.Format
	if *format != "" {
		var err error
		if f, err = spdx.ParseFormat(*format); err != nil {
			return err
		}
	}
	inputs := fs.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	return runVerify(cmd, f, inputs, os.Stdout)
}

// RunVerify checks each input and writes one "name ok" or "name error"
// line per input. It reports an error if any input failed.
func runVerify(ctx context.Context, f spdx.Format, inputs []string, out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	var failed int
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		ctx := log.With(ctx, "input", in)
		err := verifyOne(ctx, f, in)
		if err != nil {
			failed++
			fmt.Fprintf(w, "%s\terror\t%v\n", in, err)
			continue
		}
		fmt.Fprintf(w, "%s\tok\n", in)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if failed != 0 {
		return fmt.Errorf("%d of %d documents failed verification", failed, len(inputs))
	}
	return nil
}

func verifyOne(ctx context.Context, f spdx.Format, in string) error {
	if f == "" {
		f = guessFormat(in)
	}
	rc, err := openInput(in)
	if err != nil {
		return err
	}
	return errors.Join(spdx.Verify(ctx, rc, f), rc.Close())
}

// GuessFormat picks the document format from a file name, ignoring any
// compression extension. Anything not named ".json" is read as tag-value.
func guessFormat(name string) spdx.Format {
	name = strings.ToLower(name)
	switch filepath.Ext(name) {
	case extGzip, extZstd, extXz:
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	if filepath.Ext(name) == ".json" {
		return spdx.FormatJSON
	}
	return spdx.FormatTagValue
}
