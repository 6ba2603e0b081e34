package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/stationmap/internal/geo"
)

var (
	pathFrom        string
	pathTo          string
	pathUnit        string
	pathTargetsFile string
	pathGeoJSON     bool
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Distance, headings and grid squares between stations",
	Long: `Summarizes the great-circle path from the origin (default: station) to one
destination (--to) or to every destination listed one per line in --targets-file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var targets []string
		switch {
		case pathTargetsFile != "":
			data, err := readInput(cmd.InOrStdin(), []string{pathTargetsFile})
			if err != nil {
				return err
			}
			targets = parseTargets(data)
		case pathTo != "":
			targets = []string{pathTo}
		default:
			return eris.New("path: --to or --targets-file is required")
		}

		paths, err := resolvePaths(cmd.Context(), pathFrom, targets, pathUnit)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if pathGeoJSON {
			for _, p := range paths {
				data, err := geo.PathFeature(p)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, string(data))
			}
			return nil
		}
		return render(w, outputFormat, paths, func(w io.Writer) {
			formatPaths(w, paths)
		})
	},
}

// parseTargets splits a targets file into non-empty lines, skipping # comments.
func parseTargets(data []byte) []string {
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// resolvePaths computes a path per target concurrently, keeping input order.
func resolvePaths(ctx context.Context, from string, targets []string, unit string) ([]geo.PathInfo, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	paths := make([]geo.PathInfo, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, target := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := resolvePath(from, target, unit)
			if err != nil {
				return eris.Wrapf(err, "target %d", i+1)
			}
			paths[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	zap.L().Info("paths resolved", zap.Int("targets", len(targets)))
	return paths, nil
}

func formatPaths(w io.Writer, paths []geo.PathInfo) {
	fmt.Fprintf(w, "%-8s %-8s %12s %8s %8s\n", "FROM", "TO", "DISTANCE", "BEARING", "REVERSE")
	for _, p := range paths {
		fmt.Fprintf(w, "%-8s %-8s %9.1f %-2s %7.1f° %7.1f°\n",
			p.FromGrid, p.ToGrid, p.Distance, p.Unit, p.Bearing, p.ReverseBearing)
	}
}

func init() {
	pathCmd.Flags().StringVar(&pathFrom, "from", "", "origin as lat,lon or grid (default: station)")
	pathCmd.Flags().StringVar(&pathTo, "to", "", "destination as lat,lon or grid")
	pathCmd.Flags().StringVar(&pathUnit, "unit", "", "km or mi (default: distance.unit)")
	pathCmd.Flags().StringVar(&pathTargetsFile, "targets-file", "", "file with one destination per line")
	pathCmd.Flags().BoolVar(&pathGeoJSON, "geojson", false, "print one GeoJSON LineString feature per path")
	rootCmd.AddCommand(pathCmd)
}
