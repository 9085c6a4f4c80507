package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"text/template"

	"golang.org/x/sync/errgroup"

	"github.com/quay/layerbom"
	"github.com/quay/layerbom/ecosystem"
	"github.com/quay/layerbom/log"
	"github.com/quay/layerbom/sbom"
	"github.com/quay/layerbom/sbom/spdx"
)

type generateConfig struct {
	format   spdx.Format
	version  spdx.Version
	layer    int
	outTmpl  *template.Template
	parallel int
}

// Generate is the subcommand for generating SPDX documents.
func Generate(cmd context.Context, cfg *commonConfig, args []string) error {
	var cmdcfg generateConfig
	var opts []spdx.Option
	fs := flag.NewFlagSet("layerbom generate", flag.ExitOnError)
	format := fs.String("format", "json", "output format: \"json\" or \"tagvalue\"")
	version := fs.String("spdx", "2.2", "SPDX version to claim: \"2.2\" or \"2.3\"")
	fs.IntVar(&cmdcfg.layer, "layer", 0, "describe only the layer with this index, as a snapshot")
	outTmplString := fs.String("o", "", "template for output file names, given the input name without extensions; empty writes to stdout")
	fs.IntVar(&cmdcfg.parallel, "j", runtime.GOMAXPROCS(0), "number of models to process at once")
	comment := fs.String("comment", "", "document comment")
	licenseList := fs.String("license-list", spdx.DefaultLicenseListVersion, "SPDX license list version to claim")
	noPURL := fs.Bool("no-purl", false, "do not add package URL references")
	fs.Func("creator", "additional document creator as \"Type: Name\" (may be repeated)", func(s string) error {
		t, n, ok := strings.Cut(s, ":")
		if !ok {
			return fmt.Errorf("creator %q: want \"Type: Name\"", s)
		}
		opts = append(opts, spdx.WithCreator(spdx.Creator{
			CreatorType: strings.TrimSpace(t),
			Creator:     strings.TrimSpace(n),
		}))
		return nil
	})
	fs.Parse(args)

	var err error
	if cmdcfg.format, err = spdx.ParseFormat(*format); err != nil {
		return err
	}
	if cmdcfg.version, err = spdx.ParseVersion(*version); err != nil {
		return err
	}
	if *outTmplString != "" {
		cmdcfg.outTmpl, err = template.New("out").Parse(*outTmplString)
		if err != nil {
			return err
		}
	}
	opts = append(opts,
		spdx.WithFormat(cmdcfg.format),
		spdx.WithVersion(cmdcfg.version),
		spdx.WithLicenseListVersion(*licenseList),
	)
	if *comment != "" {
		opts = append(opts, spdx.WithDocumentComment(*comment))
	}
	if !*noPURL {
		opts = append(opts, spdx.WithPURLConverter(ecosystem.NewRegistry()))
	}
	g := spdx.NewDefaultEncoder(opts...)

	inputs := fs.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	return runGenerate(cmd, g, &cmdcfg, inputs, os.Stdout)
}

// RunGenerate renders every input with g. Documents bound for stdout are
// written in input order once all of them have been generated.
func runGenerate(ctx context.Context, g sbom.Generator, cfg *generateConfig, inputs []string, stdout io.Writer) error {
	docs := make([][]byte, len(inputs))
	eg, ctx := errgroup.WithContext(ctx)
	if cfg.parallel > 0 {
		eg.SetLimit(cfg.parallel)
	}
	for i, in := range inputs {
		eg.Go(func() error {
			ctx := log.With(ctx, "input", in)
			b, err := generateOne(ctx, g, cfg.layer, in)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			if cfg.outTmpl == nil {
				docs[i] = b
				return nil
			}
			var name strings.Builder
			if err := cfg.outTmpl.Execute(&name, stripExt(in)); err != nil {
				return err
			}
			if err := writeFile(name.String(), b); err != nil {
				return err
			}
			slog.InfoContext(ctx, "wrote document", "output", name.String(), "bytes", len(b))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	w := bufio.NewWriter(stdout)
	for _, b := range docs {
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return w.Flush()
}

func generateOne(ctx context.Context, g sbom.Generator, layer int, in string) ([]byte, error) {
	img, err := readImage(in)
	if err != nil {
		return nil, err
	}
	if layer == 0 {
		return g.Generate(ctx, []*layerbom.Image{img})
	}
	for _, l := range img.Layers {
		if l.LayerIndex == layer {
			return g.GenerateLayer(ctx, l)
		}
	}
	return nil, &layerbom.Error{
		Op:      "generate",
		Kind:    layerbom.ErrInvalid,
		Message: fmt.Sprintf("no layer with index %d", layer),
	}
}

func readImage(name string) (*layerbom.Image, error) {
	rc, err := openInput(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	var img layerbom.Image
	dec := json.NewDecoder(rc)
	if err := dec.Decode(&img); err != nil {
		return nil, &layerbom.Error{
			Op:      "readImage",
			Kind:    layerbom.ErrInvalid,
			Message: "unable to decode image model",
			Inner:   err,
		}
	}
	return &img, nil
}

func writeFile(name string, b []byte) (err error) {
	w, err := createOutput(name)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, w.Close())
	}()
	_, err = io.Copy(w, bytes.NewReader(b))
	return err
}
