package commands

import (
	"time"

	"github.com/spf13/cobra"
	"go.stellium.dev/stellium/internal/app"
	"go.stellium.dev/stellium/internal/core/domain"
	"go.trai.ch/zerr"
)

// ErrWatchSingleMoment is returned when watch mode is combined with more
// than one chart moment.
var ErrWatchSingleMoment = zerr.New("watch mode takes exactly one time")

func (c *CLI) newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Calculate a chart for a moment and place",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lat, _ := cmd.Flags().GetFloat64("lat")
			lon, _ := cmd.Flags().GetFloat64("lon")
			loc, err := domain.NewLocation(lat, lon)
			if err != nil {
				return err
			}

			times, _ := cmd.Flags().GetStringArray("time")
			moments, err := parseMoments(times)
			if err != nil {
				return err
			}

			configDir, _ := cmd.Flags().GetString("config")
			jsonOut, _ := cmd.Flags().GetBool("json")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			watch, _ := cmd.Flags().GetBool("watch")

			out := cmd.OutOrStdout()
			reqs := make([]app.ChartRequest, 0, len(moments))
			for _, m := range moments {
				reqs = append(reqs, app.ChartRequest{
					Moment:    m,
					Location:  loc,
					ConfigDir: configDir,
					JSON:      jsonOut,
					NoCache:   noCache,
					Out:       out,
				})
			}

			switch {
			case watch:
				if len(reqs) != 1 {
					return ErrWatchSingleMoment
				}
				return c.app.Watch(cmd.Context(), reqs[0])
			case len(reqs) == 1:
				return c.app.Chart(cmd.Context(), reqs[0])
			default:
				return c.app.ChartBatch(cmd.Context(), reqs)
			}
		},
	}

	cmd.Flags().StringArrayP("time", "t", nil, "Chart moment, RFC 3339 (repeatable; default now)")
	cmd.Flags().Float64("lat", 0, "Geographic latitude in degrees")
	cmd.Flags().Float64("lon", 0, "Geographic longitude in degrees")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	cmd.Flags().StringP("config", "c", "", "Directory where the configuration search starts")
	cmd.Flags().BoolP("json", "j", false, "Emit machine-readable JSON")
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the calculation cache")
	cmd.Flags().BoolP("watch", "w", false, "Re-render whenever the configuration file changes")
	return cmd
}

// parseMoments converts the --time values; none means now.
func parseMoments(values []string) ([]domain.Moment, error) {
	if len(values) == 0 {
		return []domain.Moment{domain.NewMoment(time.Now())}, nil
	}

	moments := make([]domain.Moment, 0, len(values))
	for _, v := range values {
		m, err := parseMoment(v)
		if err != nil {
			return nil, err
		}
		moments = append(moments, m)
	}
	return moments, nil
}

func parseMoment(value string) (domain.Moment, error) {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return domain.Moment{}, zerr.With(zerr.Wrap(err, "failed to parse time"), "value", value)
	}
	return domain.NewMoment(ts), nil
}
