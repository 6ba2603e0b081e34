package main

import (
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/stationmap/internal/geo"
)

var positionCmd = &cobra.Command{
	Use:   "position [FILE|-]",
	Short: "Validate a geolocation payload",
	Long: `Checks a geolocation service response of the form {"position":{"lat":..,"lon":..}}
read from FILE or stdin and prints the position and its grid square. Unusable payloads
exit non-zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		c, ok := geo.ParsePosition(data)
		if !ok {
			zap.L().Warn("position payload rejected", zap.Int("bytes", len(data)))
			return eris.New("position: payload has no usable lat/lon")
		}

		result := gridResult{Position: c, Grid: geo.Maidenhead(c)}
		return render(cmd.OutOrStdout(), outputFormat, result, func(w io.Writer) {
			fmt.Fprintf(w, "%.5f,%.5f %s\n", c.Lat, c.Lon, result.Grid)
		})
	},
}

func init() {
	rootCmd.AddCommand(positionCmd)
}
