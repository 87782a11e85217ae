package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/encounter-budget/internal/handlers/encounter/v1alpha1"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show a plan's XP budgets and difficulty",
	RunE:  runBudget,
}

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show a plan's packed monster chart",
	RunE:  runChart,
}

func init() {
	addPlanIDFlag(budgetCmd)
	addPlanIDFlag(chartCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
		resp, err := client.GetBudget(ctx, &v1alpha1.PlanRequest{PlanID: planID})
		if err != nil {
			return fmt.Errorf("failed to get budget: %w", err)
		}

		printBudgets(os.Stdout, resp.Budgets, resp.SpentXP, resp.Difficulty)
		return nil
	})
}

func runChart(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
		resp, err := client.GetChart(ctx, &v1alpha1.PlanRequest{PlanID: planID})
		if err != nil {
			return fmt.Errorf("failed to get chart: %w", err)
		}

		PrintChart(os.Stdout, resp)
		return nil
	})
}
