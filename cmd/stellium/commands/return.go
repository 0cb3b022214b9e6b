package commands

import (
	"time"

	"github.com/spf13/cobra"
	"go.stellium.dev/stellium/internal/app"
	"go.stellium.dev/stellium/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	// ErrNatalRequired is returned when a solar or lunar search lacks the
	// natal moment.
	ErrNatalRequired = zerr.New("solar and lunar returns require --natal")

	// ErrSignRequired is returned when an ingress search lacks the target
	// sign.
	ErrSignRequired = zerr.New("ingress searches require --sign")
)

func (c *CLI) newReturnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "return",
		Short: "Find the next return or ingress and chart it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := c.buildReturnRequest(cmd)
			if err != nil {
				return err
			}
			return c.app.Return(cmd.Context(), req)
		},
	}

	cmd.Flags().StringP("kind", "k", "", "Search kind: solar, lunar, or ingress")
	_ = cmd.MarkFlagRequired("kind")
	cmd.Flags().String("natal", "", "Natal moment, RFC 3339 (solar and lunar kinds)")
	cmd.Flags().Float64("lat", 0, "Geographic latitude in degrees")
	cmd.Flags().Float64("lon", 0, "Geographic longitude in degrees")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	cmd.Flags().String("around", "", "Moment the search starts from, RFC 3339 (default now)")
	cmd.Flags().StringP("body", "b", "sun", "Body for ingress searches")
	cmd.Flags().StringP("sign", "s", "", "Target sign for ingress searches")
	cmd.Flags().StringP("direction", "d", "direct", "Crossing direction: direct or retrograde")
	cmd.Flags().StringP("config", "c", "", "Directory where the configuration search starts")
	cmd.Flags().BoolP("json", "j", false, "Emit machine-readable JSON")
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the calculation cache")
	return cmd
}

func (c *CLI) buildReturnRequest(cmd *cobra.Command) (app.ReturnRequest, error) {
	kindStr, _ := cmd.Flags().GetString("kind")
	kind, err := app.ParseReturnKind(kindStr)
	if err != nil {
		return app.ReturnRequest{}, err
	}

	lat, _ := cmd.Flags().GetFloat64("lat")
	lon, _ := cmd.Flags().GetFloat64("lon")
	loc, err := domain.NewLocation(lat, lon)
	if err != nil {
		return app.ReturnRequest{}, err
	}

	req := app.ReturnRequest{
		Kind:     kind,
		Location: loc,
	}

	aroundStr, _ := cmd.Flags().GetString("around")
	if aroundStr == "" {
		req.Start = domain.NewMoment(time.Now())
	} else {
		req.Start, err = parseMoment(aroundStr)
		if err != nil {
			return app.ReturnRequest{}, err
		}
	}

	switch kind {
	case app.ReturnSolar, app.ReturnLunar:
		natalStr, _ := cmd.Flags().GetString("natal")
		if natalStr == "" {
			return app.ReturnRequest{}, ErrNatalRequired
		}
		req.Natal, err = parseMoment(natalStr)
		if err != nil {
			return app.ReturnRequest{}, err
		}
	case app.ReturnIngress:
		bodyStr, _ := cmd.Flags().GetString("body")
		req.Body, err = domain.ParseBody(bodyStr)
		if err != nil {
			return app.ReturnRequest{}, err
		}

		signStr, _ := cmd.Flags().GetString("sign")
		if signStr == "" {
			return app.ReturnRequest{}, ErrSignRequired
		}
		req.Sign, err = domain.ParseSign(signStr)
		if err != nil {
			return app.ReturnRequest{}, err
		}
	}

	directionStr, _ := cmd.Flags().GetString("direction")
	req.Direction, err = domain.ParseCrossingDirection(directionStr)
	if err != nil {
		return app.ReturnRequest{}, err
	}

	req.ConfigDir, _ = cmd.Flags().GetString("config")
	req.JSON, _ = cmd.Flags().GetBool("json")
	req.NoCache, _ = cmd.Flags().GetBool("no-cache")
	req.Out = cmd.OutOrStdout()
	return req, nil
}
