package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/encounter-budget/internal/handlers/encounter/v1alpha1"
)

var (
	planID       string
	planName     string
	planPlayers  string
	planMonsters string
	listLimit    int
	listOffset   int
)

var createPlanCmd = &cobra.Command{
	Use:   "create-plan",
	Short: "Create an encounter plan",
	Long: `Create an encounter plan. Rosters use QUANTITYxVALUE entries, for example
--players 4x1,1x3 --monsters 2x1,1x1/2. A plan with no rosters starts with four
level 1 characters against two CR 1 monsters.`,
	RunE: runCreatePlan,
}

var getPlanCmd = &cobra.Command{
	Use:   "get-plan",
	Short: "Show an encounter plan",
	RunE:  runGetPlan,
}

var listPlansCmd = &cobra.Command{
	Use:   "list-plans",
	Short: "List encounter plans, most recently edited first",
	RunE:  runListPlans,
}

var deletePlanCmd = &cobra.Command{
	Use:   "delete-plan",
	Short: "Delete an encounter plan",
	RunE:  runDeletePlan,
}

func init() {
	createPlanCmd.Flags().StringVar(&planName, "name", "", "Plan name")
	createPlanCmd.Flags().StringVar(&planPlayers, "players", "", "Players as QUANTITYxLEVEL list")
	createPlanCmd.Flags().StringVar(&planMonsters, "monsters", "", "Monsters as QUANTITYxCR list")

	listPlansCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum plans to return")
	listPlansCmd.Flags().IntVar(&listOffset, "offset", 0, "Plans to skip")

	for _, cmd := range []*cobra.Command{getPlanCmd, deletePlanCmd} {
		addPlanIDFlag(cmd)
	}
}

func addPlanIDFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&planID, "plan-id", "", "Plan ID (required)")
	_ = cmd.MarkFlagRequired("plan-id") // nolint:errcheck // safe to ignore in init
}

func runCreatePlan(_ *cobra.Command, _ []string) error {
	players, err := ParsePlayers(planPlayers)
	if err != nil {
		return err
	}
	monsters, err := ParseMonsters(planMonsters)
	if err != nil {
		return err
	}

	return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
		resp, err := client.CreatePlan(ctx, &v1alpha1.CreatePlanRequest{
			Name:     planName,
			Players:  players,
			Monsters: monsters,
		})
		if err != nil {
			return fmt.Errorf("failed to create plan: %w", err)
		}

		fmt.Printf("✅ Plan created\n\n")
		PrintPlan(os.Stdout, resp.Plan)
		return nil
	})
}

func runGetPlan(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
		resp, err := client.GetPlan(ctx, &v1alpha1.PlanRequest{PlanID: planID})
		if err != nil {
			return fmt.Errorf("failed to get plan: %w", err)
		}

		PrintPlan(os.Stdout, resp.Plan)
		return nil
	})
}

func runListPlans(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
		resp, err := client.ListPlans(ctx, &v1alpha1.ListPlansRequest{Limit: listLimit, Offset: listOffset})
		if err != nil {
			return fmt.Errorf("failed to list plans: %w", err)
		}

		fmt.Printf("Found %d plans:\n\n", resp.Total)
		for _, plan := range resp.Plans {
			fmt.Printf("  %s  %-24s  %5d XP  %s\n", plan.ID, plan.Name, plan.SpentXP, plan.Difficulty)
		}
		return nil
	})
}

func runDeletePlan(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
		if _, err := client.DeletePlan(ctx, &v1alpha1.PlanRequest{PlanID: planID}); err != nil {
			return fmt.Errorf("failed to delete plan: %w", err)
		}

		fmt.Printf("✅ Plan %s deleted\n", planID)
		return nil
	})
}

// printEdit reports the result of a roster edit
func printEdit(resp *v1alpha1.PlanResponse) {
	if !resp.Changed {
		fmt.Printf("No change: the row index is out of range or the value is already set\n\n")
	}
	PrintPlan(os.Stdout, resp.Plan)
}
