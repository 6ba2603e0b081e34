package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/stationmap/internal/geo"
)

var gridLocation string

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Print the Maidenhead locator for a position",
	Long:  "Encodes a lat,lon position (default: the configured station) as a 6-character Maidenhead grid square.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := locationOrStation(gridLocation)
		if err != nil {
			return err
		}
		result := gridResult{Position: c, Grid: geo.Maidenhead(c)}
		return render(cmd.OutOrStdout(), outputFormat, result, func(w io.Writer) {
			fmt.Fprintln(w, result.Grid)
		})
	},
}

type gridResult struct {
	Position geo.Coordinate `json:"position" yaml:"position"`
	Grid     geo.GridSquare `json:"grid" yaml:"grid"`
}

var (
	distanceFrom string
	distanceTo   string
	distanceUnit string
)

var distanceCmd = &cobra.Command{
	Use:   "distance",
	Short: "Great-circle distance between two positions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := resolvePath(distanceFrom, distanceTo, distanceUnit)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), outputFormat, p, func(w io.Writer) {
			fmt.Fprintf(w, "%.1f %s\n", p.Distance, p.Unit)
		})
	},
}

var (
	bearingFrom string
	bearingTo   string
)

var bearingCmd = &cobra.Command{
	Use:   "bearing",
	Short: "Initial great-circle heading between two positions",
	Long:  "Prints the initial heading in degrees clockwise from true north. Identical positions report 0.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := resolvePath(bearingFrom, bearingTo, "")
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), outputFormat, p, func(w io.Writer) {
			fmt.Fprintf(w, "%.1f°\n", p.Bearing)
		})
	},
}

var locateGeoJSON bool

var locateCmd = &cobra.Command{
	Use:   "locate GRID",
	Short: "Print the centre of a Maidenhead grid square",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := geo.GridCenter(args[0])
		if err != nil {
			return err
		}
		result := gridResult{Position: c, Grid: geo.GridSquare(args[0])}

		if locateGeoJSON {
			data, err := geo.PointFeature(c, map[string]any{"grid": args[0]})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		}
		return render(cmd.OutOrStdout(), outputFormat, result, func(w io.Writer) {
			fmt.Fprintf(w, "%.5f,%.5f\n", c.Lat, c.Lon)
		})
	},
}

// resolvePath parses both endpoints and the unit, defaulting the origin to the
// configured station and the unit to the configured one.
func resolvePath(from, to, unit string) (geo.PathInfo, error) {
	origin, err := locationOrStation(from)
	if err != nil {
		return geo.PathInfo{}, err
	}
	dest, err := parseLocation(to)
	if err != nil {
		return geo.PathInfo{}, err
	}
	if unit == "" {
		unit = cfg.Distance.Unit
	}
	u, err := geo.ParseUnit(unit)
	if err != nil {
		return geo.PathInfo{}, err
	}

	p := geo.Path(origin, dest, u)
	zap.L().Debug("path computed",
		zap.String("from_grid", string(p.FromGrid)),
		zap.String("to_grid", string(p.ToGrid)),
		zap.Float64("distance", p.Distance),
		zap.Float64("bearing", p.Bearing),
	)
	return p, nil
}

func init() {
	gridCmd.Flags().StringVarP(&gridLocation, "location", "l", "", "position as lat,lon (default: station)")

	distanceCmd.Flags().StringVar(&distanceFrom, "from", "", "origin as lat,lon or grid (default: station)")
	distanceCmd.Flags().StringVar(&distanceTo, "to", "", "destination as lat,lon or grid (required)")
	distanceCmd.Flags().StringVar(&distanceUnit, "unit", "", "km or mi (default: distance.unit)")
	_ = distanceCmd.MarkFlagRequired("to")

	bearingCmd.Flags().StringVar(&bearingFrom, "from", "", "origin as lat,lon or grid (default: station)")
	bearingCmd.Flags().StringVar(&bearingTo, "to", "", "destination as lat,lon or grid (required)")
	_ = bearingCmd.MarkFlagRequired("to")

	locateCmd.Flags().BoolVar(&locateGeoJSON, "geojson", false, "print a GeoJSON Point feature")

	rootCmd.AddCommand(gridCmd, distanceCmd, bearingCmd, locateCmd)
}
