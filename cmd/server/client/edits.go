package client

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/encounter-budget/internal/clients/external"
	"github.com/KirkDiggler/encounter-budget/internal/errors"
	"github.com/KirkDiggler/encounter-budget/internal/handlers/encounter/v1alpha1"
)

var (
	rowIndex        int
	rowQuantity     int
	rowLevel        int
	challengeRating string
	monsterID       string
	difficulty      string
)

var addPlayerCmd = &cobra.Command{
	Use:   "add-player",
	Short: "Append a copy of the last player row",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runEdit("add player row", func(ctx context.Context, c *v1alpha1.Client) (*v1alpha1.PlanResponse, error) {
			return c.AddPlayerRow(ctx, &v1alpha1.PlanRequest{PlanID: planID})
		})
	},
}

var removePlayerCmd = &cobra.Command{
	Use:   "remove-player",
	Short: "Remove a player row",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runEdit("remove player row", func(ctx context.Context, c *v1alpha1.Client) (*v1alpha1.PlanResponse, error) {
			return c.RemovePlayerRow(ctx, &v1alpha1.RowRequest{PlanID: planID, Index: rowIndex})
		})
	},
}

var setPlayerQuantityCmd = &cobra.Command{
	Use:   "set-player-quantity",
	Short: "Change how many characters a player row holds",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runEdit("set player quantity", func(ctx context.Context, c *v1alpha1.Client) (*v1alpha1.PlanResponse, error) {
			return c.SetPlayerQuantity(ctx, &v1alpha1.SetQuantityRequest{
				PlanID:   planID,
				Index:    rowIndex,
				Quantity: rowQuantity,
			})
		})
	},
}

var setPlayerLevelCmd = &cobra.Command{
	Use:   "set-player-level",
	Short: "Change a player row's level",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runEdit("set player level", func(ctx context.Context, c *v1alpha1.Client) (*v1alpha1.PlanResponse, error) {
			return c.SetPlayerLevel(ctx, &v1alpha1.SetPlayerLevelRequest{
				PlanID: planID,
				Index:  rowIndex,
				Level:  rowLevel,
			})
		})
	},
}

var addMonsterCmd = &cobra.Command{
	Use:   "add-monster",
	Short: "Append a copy of the last monster row",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runEdit("add monster row", func(ctx context.Context, c *v1alpha1.Client) (*v1alpha1.PlanResponse, error) {
			return c.AddMonsterRow(ctx, &v1alpha1.PlanRequest{PlanID: planID})
		})
	},
}

var removeMonsterCmd = &cobra.Command{
	Use:   "remove-monster",
	Short: "Remove a monster row",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runEdit("remove monster row", func(ctx context.Context, c *v1alpha1.Client) (*v1alpha1.PlanResponse, error) {
			return c.RemoveMonsterRow(ctx, &v1alpha1.RowRequest{PlanID: planID, Index: rowIndex})
		})
	},
}

var setMonsterQuantityCmd = &cobra.Command{
	Use:   "set-monster-quantity",
	Short: "Change how many monsters a row holds",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runEdit("set monster quantity", func(ctx context.Context, c *v1alpha1.Client) (*v1alpha1.PlanResponse, error) {
			return c.SetMonsterQuantity(ctx, &v1alpha1.SetQuantityRequest{
				PlanID:   planID,
				Index:    rowIndex,
				Quantity: rowQuantity,
			})
		})
	},
}

var setMonsterCRCmd = &cobra.Command{
	Use:   "set-monster-cr",
	Short: "Change a monster row's challenge rating",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runEdit("set monster challenge rating", func(ctx context.Context, c *v1alpha1.Client) (*v1alpha1.PlanResponse, error) {
			return c.SetMonsterChallengeRating(ctx, &v1alpha1.SetMonsterChallengeRatingRequest{
				PlanID:          planID,
				Index:           rowIndex,
				ChallengeRating: challengeRating,
			})
		})
	},
}

var addMonsterByIDCmd = &cobra.Command{
	Use:   "add-monster-by-id",
	Short: "Add a monster from the D&D 5e API catalog",
	Long:  `Add a monster by its D&D 5e API index, for example "goblin" or "adult-red-dragon".`,
	RunE:  runAddMonsterByID,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Replace a plan's monsters with a random set spending one budget",
	RunE:  runSuggest,
}

func init() {
	for _, cmd := range []*cobra.Command{
		addPlayerCmd, removePlayerCmd, setPlayerQuantityCmd, setPlayerLevelCmd,
		addMonsterCmd, removeMonsterCmd, setMonsterQuantityCmd, setMonsterCRCmd,
		addMonsterByIDCmd, suggestCmd,
	} {
		addPlanIDFlag(cmd)
	}

	for _, cmd := range []*cobra.Command{
		removePlayerCmd, setPlayerQuantityCmd, setPlayerLevelCmd,
		removeMonsterCmd, setMonsterQuantityCmd, setMonsterCRCmd,
	} {
		cmd.Flags().IntVar(&rowIndex, "index", 0, "Row index")
	}

	for _, cmd := range []*cobra.Command{setPlayerQuantityCmd, setMonsterQuantityCmd} {
		cmd.Flags().IntVar(&rowQuantity, "quantity", 1, "New quantity")
	}

	setPlayerLevelCmd.Flags().IntVar(&rowLevel, "level", 1, "New level (1-20)")

	setMonsterCRCmd.Flags().StringVar(&challengeRating, "cr", "", "New challenge rating, e.g. 1/4 or 5 (required)")
	_ = setMonsterCRCmd.MarkFlagRequired("cr") // nolint:errcheck // safe to ignore in init

	addMonsterByIDCmd.Flags().StringVar(&monsterID, "monster-id", "", "D&D 5e API monster index (required)")
	addMonsterByIDCmd.Flags().IntVar(&rowQuantity, "quantity", 1, "How many to add")
	_ = addMonsterByIDCmd.MarkFlagRequired("monster-id") // nolint:errcheck // safe to ignore in init

	suggestCmd.Flags().StringVar(&difficulty, "difficulty", "moderate", "Budget to spend: low, moderate or high")
}

func runEdit(action string, call func(context.Context, *v1alpha1.Client) (*v1alpha1.PlanResponse, error)) error {
	return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
		resp, err := call(ctx, client)
		if err != nil {
			return fmt.Errorf("failed to %s: %w", action, err)
		}

		printEdit(resp)
		return nil
	})
}

func runAddMonsterByID(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
		resp, err := client.AddMonsterByID(ctx, &v1alpha1.AddMonsterByIDRequest{
			PlanID:    planID,
			MonsterID: monsterID,
			Quantity:  rowQuantity,
		})
		if err != nil {
			if suggestions := suggestionsFrom(err); len(suggestions) > 0 {
				return fmt.Errorf("failed to add monster: %w (did you mean %s?)", err, strings.Join(suggestions, ", "))
			}
			return fmt.Errorf("failed to add monster: %w", err)
		}

		monster := resp.Monster
		fmt.Printf("✅ Added %d x %s (CR %s, %d XP each)\n\n", rowQuantity, monster.Name, monster.ChallengeRating, monster.XP)
		PrintPlan(os.Stdout, resp.Plan)
		return nil
	})
}

func runSuggest(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
		resp, err := client.SuggestMonsters(ctx, &v1alpha1.SuggestMonstersRequest{
			PlanID:     planID,
			Difficulty: difficulty,
		})
		if err != nil {
			return fmt.Errorf("failed to suggest monsters: %w", err)
		}

		fmt.Printf("✅ Spent %d of %d XP\n\n", resp.SpentXP, resp.TargetXP)
		PrintPlan(os.Stdout, resp.Plan)
		return nil
	})
}

func suggestionsFrom(err error) []string {
	raw, ok := errors.GetMeta(err)[external.MetaSuggestions].([]any)
	if !ok {
		return nil
	}

	suggestions := make([]string, 0, len(raw))
	for _, value := range raw {
		if s, ok := value.(string); ok {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions
}
