package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/warp/cluster"
	"github.com/katalvlaran/warp/dtw"
	"github.com/katalvlaran/warp/matrix"
	"github.com/katalvlaran/warp/pairwise"
	"github.com/katalvlaran/warp/render"
	"github.com/katalvlaran/warp/series"
)

// dtwFlags are shared by every command that runs DTW.
type dtwFlags struct {
	Window  int
	Band    string
	Penalty float64
	Binary  bool
}

func (f *dtwFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.Window, "window", "w", dtw.NoWindow, "Sakoe-Chiba radius [-1=unconstrained]")
	cmd.Flags().StringVar(&f.Band, "band", "scaled", "Band policy [scaled,raw]")
	cmd.Flags().Float64VarP(&f.Penalty, "penalty", "p", 0, "Slope penalty added to vertical and horizontal steps")
	cmd.Flags().BoolVar(&f.Binary, "binary", false, "Read inputs as little-endian float64 files")
}

func (f *dtwFlags) options() (dtw.Options, error) {
	opts := dtw.DefaultOptions()
	opts.Window = f.Window
	opts.SlopePenalty = f.Penalty
	switch strings.ToLower(f.Band) {
	case "scaled":
		opts.Band = dtw.ScaledBand
	case "raw":
		opts.Band = dtw.RawBand
	default:
		return opts, fmt.Errorf("unknown band %q (want scaled or raw)", f.Band)
	}
	return opts, nil
}

func (f *dtwFlags) load(path string) ([]float64, error) {
	if f.Binary {
		return series.LoadBinary(path)
	}
	return series.LoadText(path)
}

func (f *dtwFlags) loadAll(paths []string) ([][]float64, error) {
	out := make([][]float64, len(paths))
	for i, p := range paths {
		s, err := f.load(p)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func newAlignCommand() *cobra.Command {
	var (
		f          dtwFlags
		showPath   bool
		showMatrix bool
		normalized bool
	)
	command := cobra.Command{
		Use:   "align A B",
		Short: "Print the DTW distance between two series",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options()
			if err != nil {
				return err
			}
			s, err := f.loadAll(args)
			if err != nil {
				return err
			}

			now := time.Now()
			res, err := dtw.Between(s[0], s[1], &opts)
			if err != nil {
				return err
			}
			slog.Debug("Aligned",
				slog.Int("n", len(s[0])),
				slog.Int("m", len(s[1])),
				slog.Duration("took", time.Since(now)))

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "distance: %s\n", matrix.FormatValue(res.Distance()))
			if normalized {
				_, _ = fmt.Fprintf(out, "normalized: %s\n", matrix.FormatValue(res.Normalized()))
			}
			if showPath {
				writePath(out, res.Path())
			}
			if showMatrix {
				_, _ = fmt.Fprint(out, res.Matrix().String())
			}
			return nil
		},
	}
	f.register(&command)
	command.Flags().BoolVar(&showPath, "path", false, "Print the warping path")
	command.Flags().BoolVar(&showMatrix, "matrix", false, "Print the accumulated cost matrix")
	command.Flags().BoolVar(&normalized, "normalized", false, "Also print distance divided by path length")
	command.Flags().SortFlags = false
	return &command
}

func writePath(w io.Writer, path []dtw.Coord) {
	parts := make([]string, len(path))
	for k, c := range path {
		parts[k] = fmt.Sprintf("(%d,%d)", c.I, c.J)
	}
	_, _ = fmt.Fprintf(w, "path: %s\n", strings.Join(parts, " "))
}

func newPairwiseCommand() *cobra.Command {
	var (
		f       dtwFlags
		workers int
		addr    string
		ttl     time.Duration
	)
	command := cobra.Command{
		Use:   "pairwise [files...]",
		Short: "Print the matrix of DTW distances between every pair of series",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options()
			if err != nil {
				return err
			}
			s, err := f.loadAll(args)
			if err != nil {
				return err
			}

			popts := []pairwise.Option{
				pairwise.WithOptions(opts),
				pairwise.WithLogger(slog.Default()),
			}
			if workers > 0 {
				popts = append(popts, pairwise.WithConcurrency(workers))
			}
			if addr != "" {
				client := redis.NewClient(&redis.Options{
					Addr:     addr,
					Password: os.Getenv("REDIS_PASSWORD"),
					DB:       getEnvInt("REDIS_DB", 0),
				})
				defer client.Close()
				popts = append(popts, pairwise.WithCache(pairwise.NewRedisCache(client, "warp:dtw:", ttl)))
			}

			m, err := pairwise.Compute(cmd.Context(), s, popts...)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), m.String())
			return nil
		},
	}
	f.register(&command)
	command.Flags().IntVarP(&workers, "workers", "t", 0, "Maximum pairs computed at a time [0=auto]")
	command.Flags().StringVar(&addr, "redis", os.Getenv("REDIS_ADDR"), "Redis address for the distance cache [empty=no cache]")
	command.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Expiry of cached distances [0=never]")
	command.Flags().SortFlags = false
	return &command
}

func newClusterCommand() *cobra.Command {
	var (
		f dtwFlags
		k int
	)
	command := cobra.Command{
		Use:   "cluster [files...]",
		Short: "Group equal-length series by DTW k-means",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options()
			if err != nil {
				return err
			}
			s, err := f.loadAll(args)
			if err != nil {
				return err
			}
			groups, err := cluster.Partition(s, k,
				cluster.WithOptions(opts), cluster.WithLogger(slog.Default()))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for g, group := range groups {
				names := make([]string, len(group.Members))
				for i, m := range group.Members {
					names[i] = args[m]
				}
				_, _ = fmt.Fprintf(out, "group %d: %s\n", g+1, strings.Join(names, " "))
			}
			return nil
		},
	}
	f.register(&command)
	command.Flags().IntVarP(&k, "groups", "k", 2, "Number of groups")
	command.Flags().SortFlags = false
	return &command
}

func newPlotCommand() *cobra.Command {
	var (
		f      dtwFlags
		output string
		kind   string
		title  string
	)
	command := cobra.Command{
		Use:   "plot A B",
		Short: "Draw the alignment of two series to a PNG or SVG file",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			opts, err := f.options()
			if err != nil {
				return err
			}
			s, err := f.loadAll(args)
			if err != nil {
				return err
			}
			res, err := dtw.Between(s[0], s[1], &opts)
			if err != nil {
				return err
			}

			format := strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
			ropts := []render.Option{render.WithFormat(format), render.WithTitle(title)}

			file, err := os.Create(output)
			if err != nil {
				return err
			}
			switch kind {
			case "alignment":
				err = render.Alignment(file, s[0], s[1], res.Path(), ropts...)
			case "path":
				err = render.WarpPath(file, res.Path(), len(s[0]), len(s[1]), ropts...)
			default:
				err = fmt.Errorf("unknown kind %q (want alignment or path)", kind)
			}
			if cerr := file.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				_ = os.Remove(output)
				return err
			}
			slog.Info("Plot written", slog.String("file", output), slog.String("kind", kind))
			return nil
		},
	}
	f.register(&command)
	command.Flags().StringVarP(&output, "out", "o", "alignment.png", "Output file (.png or .svg)")
	command.Flags().StringVar(&kind, "kind", "alignment", "Plot kind [alignment,path]")
	command.Flags().StringVar(&title, "title", "", "Plot title")
	command.Flags().SortFlags = false
	return &command
}

func newGenerateCommand() *cobra.Command {
	var (
		n         int
		amplitude float64
		frequency float64
		trend     float64
		noise     float64
		seed      int64
		stretch   float64
		output    string
	)
	command := cobra.Command{
		Use:       "generate pulse|chirp|sine|prices",
		Short:     "Print a generated series, one sample per line",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"pulse", "chirp", "sine", "prices"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 1 {
				return fmt.Errorf("-n must be positive, got %d", n)
			}
			if amplitude <= 0 || noise < 0 || stretch <= 0 {
				return fmt.Errorf("amplitude and stretch must be positive, noise non-negative")
			}
			gopts := []series.Option{
				series.WithAmplitude(amplitude),
				series.WithTrend(trend),
				series.WithNoise(noise),
				series.WithSeed(seed),
			}
			if cmd.Flags().Changed("frequency") {
				if frequency <= 0 {
					return fmt.Errorf("frequency must be positive, got %g", frequency)
				}
				gopts = append(gopts, series.WithFrequency(frequency))
			}

			var s []float64
			switch args[0] {
			case "pulse":
				s = series.Pulse(n, gopts...)
			case "chirp":
				s = series.Chirp(n, gopts...)
			case "sine":
				s = series.Sine(n, gopts...)
			case "prices":
				s = series.Closes(n, series.WithSeed(seed))
			}
			if stretch != 1 {
				s = series.Stretch(s, stretch)
			}

			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return err
				}
				if err := series.WriteBinary(file, s); err != nil {
					_ = file.Close()
					return err
				}
				return file.Close()
			}

			out := cmd.OutOrStdout()
			for _, v := range s {
				_, _ = fmt.Fprintln(out, strconv.FormatFloat(v, 'g', -1, 64))
			}
			return nil
		},
	}
	command.Flags().IntVarP(&n, "samples", "n", 64, "Number of samples")
	command.Flags().Float64VarP(&amplitude, "amplitude", "a", 1, "Amplitude")
	command.Flags().Float64VarP(&frequency, "frequency", "f", 0.125, "Frequency in cycles per sample (chirp: sweep start)")
	command.Flags().Float64Var(&trend, "trend", 0, "Linear trend added per sample")
	command.Flags().Float64Var(&noise, "noise", 0, "Gaussian noise sigma")
	command.Flags().Int64Var(&seed, "seed", 1, "Noise seed")
	command.Flags().Float64Var(&stretch, "stretch", 1, "Resample to this many times the length")
	command.Flags().StringVarP(&output, "out", "o", "", "Write little-endian float64 samples to this file instead of stdout")
	command.Flags().SortFlags = false
	return &command
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
