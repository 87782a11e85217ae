package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/encounter-budget/cmd/server/client"
	"github.com/KirkDiggler/encounter-budget/internal/config"
	"github.com/KirkDiggler/encounter-budget/internal/handlers/encounter/v1alpha1"
	"github.com/KirkDiggler/encounter-budget/internal/pkg/clock"
	encounterplan "github.com/KirkDiggler/encounter-budget/internal/repositories/encounter_plan"
)

var (
	chartPlayers       string
	chartMonsters      string
	chartMaxPerRow     int
	chartWidthExponent float64
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Pack a monster chart without a server",
	Long: `Compute party budgets and the packed monster chart locally. Rosters use
QUANTITYxVALUE entries: --players 4x1,1x3 --monsters 2x1,1x1/2`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runChart(context.Background(), os.Stdout)
	},
}

func init() {
	chartCmd.Flags().StringVar(&chartPlayers, "players", "4x1", "Players as QUANTITYxLEVEL list")
	chartCmd.Flags().StringVar(&chartMonsters, "monsters", "2x1", "Monsters as QUANTITYxCR list")
	chartCmd.Flags().IntVar(&chartMaxPerRow, "max-per-row", 4, "Monsters of the lowest rating per row")
	chartCmd.Flags().Float64Var(&chartWidthExponent, "width-exponent", 3, "Power of the cell width curve")
}

func runChart(ctx context.Context, out io.Writer) error {
	players, err := client.ParsePlayers(chartPlayers)
	if err != nil {
		return err
	}
	monsters, err := client.ParseMonsters(chartMonsters)
	if err != nil {
		return err
	}

	cfg := config.Default()
	cfg.Chart.MaxPerRow = chartMaxPerRow
	cfg.Chart.WidthExponent = chartWidthExponent
	if err := cfg.Validate(); err != nil {
		return err
	}

	svc, err := newEncounterService(cfg, encounterplan.NewInMemory(clock.New()))
	if err != nil {
		return err
	}
	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{EncounterService: svc})
	if err != nil {
		return err
	}

	resp, err := handler.CalculateChart(ctx, &v1alpha1.CalculateChartRequest{
		Players:  players,
		Monsters: monsters,
	})
	if err != nil {
		return fmt.Errorf("failed to calculate chart: %w", err)
	}

	client.PrintChart(out, resp)
	return nil
}
