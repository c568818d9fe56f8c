package main

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/watset/abc"
	"github.com/katalvlaran/watset/builder"
)

type generateFlags struct {
	n       int
	count   int
	size    int
	p       float64
	pIn     float64
	pOut    float64
	bridge  float64
	seed    int64
	ids     string
	weights string
}

// generators maps a topology name to its constructor.
var generators = map[string]func(f generateFlags) builder.Constructor{
	"complete": func(f generateFlags) builder.Constructor { return builder.Complete(f.n) },
	"path":     func(f generateFlags) builder.Constructor { return builder.Path(f.n) },
	"star":     func(f generateFlags) builder.Constructor { return builder.Star(f.n) },
	"cycle":    func(f generateFlags) builder.Constructor { return builder.Cycle(f.n) },
	"random":   func(f generateFlags) builder.Constructor { return builder.RandomSparse(f.n, f.p) },
	"cliques": func(f generateFlags) builder.Constructor {
		return builder.Cliques(f.count, f.size, f.bridge)
	},
	"planted": func(f generateFlags) builder.Constructor {
		return builder.PlantedPartition(f.count, f.size, f.pIn, f.pOut)
	},
}

func generatorNames() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate TOPOLOGY",
		Short: "Write a synthetic graph as a tab-separated edge list",
		Long: `Generate a graph and print it in the format read by 'watset cluster'.

Topologies: ` + strings.Join(generatorNames(), ", ") + `

Examples:
  watset generate cliques --count 3 --size 5 --bridge 0.1
  watset generate planted --count 4 --size 10 --p-in 0.8 --p-out 0.05 --seed 7
  watset generate random -n 50 --p 0.1 --ids excel --weights uniform:0.5,2`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: generatorNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			mk, ok := generators[strings.ToLower(args[0])]
			if !ok {
				return fmt.Errorf("unknown topology %q (want one of %s)", args[0], strings.Join(generatorNames(), ", "))
			}
			idOpt, err := parseIDScheme(f.ids)
			if err != nil {
				return err
			}
			weightOpt, err := parseWeights(f.weights)
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph(nil,
				[]builder.BuilderOption{builder.WithSeed(f.seed), idOpt, weightOpt},
				mk(f))
			if err != nil {
				return err
			}
			zap.L().Debug("graph generated",
				zap.String("topology", args[0]),
				zap.Int("vertices", g.VertexCount()),
				zap.Int("edges", g.EdgeCount()))

			return abc.WriteGraph(cmd.OutOrStdout(), g)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&f.n, "vertices", "n", 10, "vertex count for complete, path, star, cycle and random")
	flags.IntVar(&f.count, "count", 2, "number of planted groups")
	flags.IntVar(&f.size, "size", 5, "vertices per planted group")
	flags.Float64Var(&f.p, "p", 0.2, "edge probability for random")
	flags.Float64Var(&f.pIn, "p-in", 0.9, "intra-group edge probability for planted")
	flags.Float64Var(&f.pOut, "p-out", 0.05, "inter-group edge probability for planted")
	flags.Float64Var(&f.bridge, "bridge", 0.1, "weight of the edge linking consecutive cliques")
	flags.Int64Var(&f.seed, "seed", 1, "random seed")
	flags.StringVar(&f.ids, "ids", "decimal", "vertex IDs: decimal, excel or prefix:<text>")
	flags.StringVar(&f.weights, "weights", "constant:1", "edge weights: constant:<w> or uniform:<min>,<max>")

	return cmd
}

// parseIDScheme maps decimal, excel and prefix:<text> to an ID option.
func parseIDScheme(spec string) (builder.BuilderOption, error) {
	kind, arg, _ := strings.Cut(spec, ":")
	switch strings.ToLower(kind) {
	case "decimal":
		return builder.WithIDScheme(builder.DefaultIDFn), nil
	case "excel":
		return builder.WithIDScheme(builder.ExcelColumnIDFn), nil
	case "prefix":
		if arg == "" {
			return nil, fmt.Errorf("--ids %q: prefix must not be empty", spec)
		}
		return builder.WithIDScheme(builder.PrefixIDFn(arg)), nil
	default:
		return nil, fmt.Errorf("--ids %q: want decimal, excel or prefix:<text>", spec)
	}
}

// parseWeights maps constant:<w> and uniform:<min>,<max> to a weight option.
func parseWeights(spec string) (builder.BuilderOption, error) {
	kind, arg, _ := strings.Cut(spec, ":")
	switch strings.ToLower(kind) {
	case "constant":
		w, err := parseWeight(arg)
		if err != nil {
			return nil, fmt.Errorf("--weights %q: %w", spec, err)
		}
		return builder.WithConstantWeight(w), nil
	case "uniform":
		lo, hi, ok := strings.Cut(arg, ",")
		if !ok {
			return nil, fmt.Errorf("--weights %q: want uniform:<min>,<max>", spec)
		}
		minW, err := parseWeight(lo)
		if err != nil {
			return nil, fmt.Errorf("--weights %q: %w", spec, err)
		}
		maxW, err := parseWeight(hi)
		if err != nil {
			return nil, fmt.Errorf("--weights %q: %w", spec, err)
		}
		if maxW < minW {
			return nil, fmt.Errorf("--weights %q: min exceeds max", spec)
		}
		return builder.WithUniformWeight(minW, maxW), nil
	default:
		return nil, fmt.Errorf("--weights %q: want constant:<w> or uniform:<min>,<max>", spec)
	}
}

func parseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if w < 0 || math.IsInf(w, 0) || math.IsNaN(w) {
		return 0, fmt.Errorf("weight %v must be finite and non-negative", w)
	}

	return w, nil
}
