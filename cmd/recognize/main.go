// Command recognize prints the formations and strategies found in SFEN
// positions, given as arguments or one per line on stdin.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"shogi_insight/internal/bootstrap"
	"shogi_insight/internal/domain/analysis"
	"shogi_insight/internal/domain/pattern"
	"shogi_insight/internal/domain/shogi"
	"shogi_insight/internal/registry"
	"shogi_insight/internal/usecase/features"
	"shogi_insight/internal/usecase/recognition"
)

type options struct {
	patternsFile string
	explain      string
	side         string
	family       string
	logLevel     string
	indent       bool
}

type positionResult struct {
	SFEN string `json:"sfen"`
	recognition.Result
	KingSafety []analysis.KingSafety `json:"king_safety"`
	Material   analysis.Material     `json:"material"`
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "recognize [sfen...]",
		Short: "Recognize castles and strategies in shogi positions",
		Long: `Recognize scores each position against the pattern registry and prints
one JSON document per position. Without arguments, positions are read from
stdin, one SFEN per line. With --explain, the named pattern is broken down
condition by condition instead.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := newRecognizer(opts)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(out)
			if opts.indent {
				enc.SetIndent("", "  ")
			}

			return eachPosition(in, args, func(sfen string) error {
				pos, err := shogi.ParseSFEN(sfen)
				if err != nil {
					return err
				}
				if opts.explain != "" {
					return explain(enc, rec, pos, opts)
				}
				return enc.Encode(positionResult{
					SFEN:       sfen,
					Result:     rec.Recognize(pos.Snapshot),
					KingSafety: features.KingSafeties(pos.Snapshot),
					Material:   features.Material(pos.Snapshot),
				})
			})
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.patternsFile, "patterns", "", "YAML/JSON file merged over the builtin registry")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level")
	flags.BoolVar(&opts.indent, "indent", false, "indent JSON output")
	root.Flags().StringVar(&opts.explain, "explain", "", "pattern to explain instead of recognizing")
	root.Flags().StringVar(&opts.side, "side", "", "side to explain (sente or gote); defaults to the side to move")
	root.Flags().StringVar(&opts.family, "family", "formation", "family of the explained pattern")

	root.AddCommand(newPatternsCmd(out, opts))
	return root
}

func newPatternsCmd(out io.Writer, opts *options) *cobra.Command {
	var family, category string
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry.FromFile(opts.patternsFile)
			if err != nil {
				return err
			}
			families := pattern.Families[:]
			if family != "" {
				f, err := pattern.ParseFamily(family)
				if err != nil {
					return err
				}
				families = []pattern.Family{f}
			}

			enc := json.NewEncoder(out)
			if opts.indent {
				enc.SetIndent("", "  ")
			}
			summaries := []pattern.Summary{}
			for _, f := range families {
				for _, d := range reg.ByCategory(f, category) {
					summaries = append(summaries, d.Summary())
				}
			}
			return enc.Encode(summaries)
		},
	}
	cmd.Flags().StringVar(&family, "family", "", "only this family")
	cmd.Flags().StringVar(&category, "category", "", "only categories containing this text")
	return cmd
}

func newRecognizer(opts *options) (*recognition.Recognizer, error) {
	log, err := bootstrap.NewLogger(opts.logLevel)
	if err != nil {
		return nil, err
	}
	reg, err := registry.FromFile(opts.patternsFile)
	if err != nil {
		return nil, err
	}
	return recognition.NewRecognizer(reg, log, 0), nil
}

func explain(enc *json.Encoder, rec *recognition.Recognizer, pos shogi.Position, opts *options) error {
	side := pos.Turn
	if opts.side != "" {
		var err error
		if side, err = shogi.ParseSide(opts.side); err != nil {
			return err
		}
	}
	family, err := pattern.ParseFamily(opts.family)
	if err != nil {
		return err
	}
	ev, err := rec.Explain(pos.Snapshot, side, family, opts.explain)
	if err != nil {
		return err
	}
	return enc.Encode(ev)
}

func eachPosition(in io.Reader, args []string, fn func(string) error) error {
	if len(args) > 0 {
		for _, a := range args {
			if err := fn(a); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := fn(text); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return scanner.Err()
}
