package main

import (
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/chipmux/mux"
	"github.com/katalvlaran/chipmux/textcodec"
)

const (
	modeMultiplex = "multiplex"
	modeRender    = "render"

	formatDecimal = "decimal"
	formatJSON    = "json"

	// defaultInputPath is used when -file is given an empty name.
	defaultInputPath = "tmpInput.bin"
)

// result is one rendered output line.
type result struct {
	name string
	text string
}

// run processes every input and writes one line per input to w, in the
// order the inputs were given. Files are processed concurrently, each with
// its own mux.Context.
func run(cfg config, w io.Writer) error {
	if cfg.noColor {
		color.NoColor = true
	}

	if len(cfg.files) == 0 {
		text, err := process(cfg, "-in", cfg.in)
		if err != nil {
			return err
		}
		return emit(w, []result{{name: "-in", text: text}})
	}

	// Missing files are created before fan-out so repeated paths never race.
	for _, path := range cfg.files {
		if err := ensureInput(path, cfg.in); err != nil {
			return err
		}
	}

	results := make([]result, len(cfg.files))
	var g errgroup.Group
	for i, path := range cfg.files {
		i, path := i, path
		g.Go(func() error {
			input, err := loadInput(path, cfg.in)
			if err != nil {
				return err
			}
			text, err := process(cfg, path, input)
			if err != nil {
				return errors.Wrap(err, path)
			}
			results[i] = result{name: path, text: text}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return emit(w, results)
}

// process turns one input into its output text according to cfg.
func process(cfg config, name, input string) (string, error) {
	if cfg.mode == modeRender {
		m, err := textcodec.ParseMode(cfg.render)
		if err != nil {
			return "", err
		}
		return textcodec.Render(input, m)
	}

	ctx, err := mux.NewContext(mux.WithOnTruncate(func(length, dropped int) {
		log.Printf("%s: length %d is not a multiple of the code count, %d trailing symbol(s) dropped", name, length, dropped)
	}))
	if err != nil {
		return "", err
	}
	src := mux.Fixed()
	if cfg.random {
		src = mux.Random(cfg.seed)
	}
	sig, err := mux.Multiplex(ctx, input, src)
	if err != nil {
		return "", err
	}

	if cfg.format == formatJSON {
		b, err := textcodec.EncodeJSON(name, sig)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	return textcodec.ConcatDecimal(sig), nil
}

// emit writes results to w. JSON and single results are written bare;
// several decimal results are prefixed with their coloured source name.
func emit(w io.Writer, results []result) error {
	label := color.New(color.FgCyan, color.Bold)
	for _, r := range results {
		if len(results) > 1 {
			if _, err := label.Fprintf(w, "%s: ", r.name); err != nil {
				return errors.Wrap(err, "write output")
			}
		}
		if _, err := io.WriteString(w, r.text+"\n"); err != nil {
			return errors.Wrap(err, "write output")
		}
	}

	return nil
}

// inputPath maps an empty path to defaultInputPath.
func inputPath(path string) string {
	if path == "" {
		return defaultInputPath
	}

	return path
}

// ensureInput creates path from fallback if it does not exist.
func ensureInput(path, fallback string) error {
	path = inputPath(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte(fallback), 0o644); err != nil {
			return errors.Wrapf(err, "create input %s", path)
		}
	} else if err != nil {
		return errors.Wrapf(err, "stat input %s", path)
	}

	return nil
}

// loadInput reads path, first creating it from fallback if it does not exist.
// An empty path means defaultInputPath.
func loadInput(path, fallback string) (string, error) {
	if err := ensureInput(path, fallback); err != nil {
		return "", err
	}

	path = inputPath(path)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read input %s", path)
	}

	return string(b), nil
}
