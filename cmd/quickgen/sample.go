package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nomagicln/quickgen/pkg/gen"
	"github.com/nomagicln/quickgen/pkg/genspec"
	"github.com/nomagicln/quickgen/pkg/rand"
)

// sampleOptions are shared by the sample and histogram subcommands.
type sampleOptions struct {
	specPath string
	count    int
	seed     int64
	size     int
}

func (o *sampleOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.specPath, "file", "f", "", "YAML generator description (required)")
	cmd.Flags().IntVarP(&o.count, "count", "n", 10, "Number of values to draw")
	cmd.Flags().Int64Var(&o.seed, "seed", 0, "Root seed; runs with equal seeds are identical")
	cmd.Flags().IntVar(&o.size, "size", 30, "Ambient size passed to the generator")
	_ = cmd.MarkFlagRequired("file")
}

// draw samples opts.count values. Sample i draws through Variant(i, g), so
// every sample uses its own sub-stream of the seeded root state and the run
// is reproducible from the seed alone.
func (o *sampleOptions) draw() ([]any, error) {
	if o.count < 0 {
		return nil, fmt.Errorf("count must be non-negative, got %d", o.count)
	}
	if o.size < 0 {
		return nil, fmt.Errorf("size must be non-negative, got %d", o.size)
	}
	data, err := os.ReadFile(o.specPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read generator description: %w", err)
	}
	g, err := genspec.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", o.specPath, err)
	}

	root := rand.New(o.seed)
	out := make([]any, o.count)
	for i := range out {
		out[i] = gen.Variant(int64(i), g)(root, o.size)
	}
	return out, nil
}

// newSampleCmd creates the sample subcommand
func newSampleCmd() *cobra.Command {
	var opts sampleOptions

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw values from a generator and print them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := opts.draw()
			if err != nil {
				return err
			}
			for _, v := range values {
				fmt.Fprintln(cmd.OutOrStdout(), render(v))
			}
			return nil
		},
	}
	opts.bind(cmd)
	return cmd
}

// newHistogramCmd creates the histogram subcommand
func newHistogramCmd() *cobra.Command {
	var opts sampleOptions

	cmd := &cobra.Command{
		Use:   "histogram",
		Short: "Draw values and print a value-frequency table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := opts.draw()
			if err != nil {
				return err
			}

			counts := make(map[string]int)
			for _, v := range values {
				counts[render(v)]++
			}
			keys := make([]string, 0, len(counts))
			maxCount := 0
			for k, c := range counts {
				keys = append(keys, k)
				if c > maxCount {
					maxCount = c
				}
			}
			sort.Slice(keys, func(i, j int) bool {
				if counts[keys[i]] != counts[keys[j]] {
					return counts[keys[i]] > counts[keys[j]]
				}
				return keys[i] < keys[j]
			})

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			barWidth := histogramBarWidth(cmd.OutOrStdout())
			for _, k := range keys {
				c := counts[k]
				bar := strings.Repeat("#", c*barWidth/maxCount)
				fmt.Fprintf(w, "%s\t%d\t%s\n", k, c, bar)
			}
			return w.Flush()
		},
	}
	opts.bind(cmd)
	return cmd
}

// histogramBarWidth leaves room for the value and count columns when the
// command writes to a terminal, and falls back to a fixed width when the
// output is redirected.
func histogramBarWidth(out io.Writer) int {
	if f, ok := out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 40 {
			return w - 40
		}
	}
	return 40
}

// render formats a sampled value; slices print in YAML flow style so nested
// draws stay on one line.
func render(v any) string {
	if vs, ok := v.([]any); ok {
		parts := make([]string, len(vs))
		for i, e := range vs {
			parts[i] = render(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprintf("%v", v)
}
