package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/encounter-budget/internal/entities/dnd5e"
	encounterplan "github.com/KirkDiggler/encounter-budget/internal/repositories/encounter_plan"
)

// scanReport lists the problems found in stored plans
type scanReport struct {
	Checked int
	// Corrupt are plan keys whose value no longer decodes or breaks the roster rules
	Corrupt []string
	// Dangling are plan IDs in the index with no plan key behind them
	Dangling []string
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted encounter plans...")

	report, err := scanPlans(ctx, client)
	if err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d plans, found %d corrupted and %d dangling index entries\n",
		report.Checked, len(report.Corrupt), len(report.Dangling))

	if len(report.Corrupt) == 0 && len(report.Dangling) == 0 {
		fmt.Println("No corrupted plans found!")
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range report.Corrupt {
		fmt.Printf("  - %s\n", key)
	}
	fmt.Println("Dangling index entries:")
	for _, id := range report.Dangling {
		fmt.Printf("  - %s\n", id)
	}

	// Ask for confirmation before deletion
	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	if err := removeEntries(ctx, client, report); err != nil {
		log.Fatal("Cleanup failed:", err)
	}
	fmt.Println("\nCleanup complete!")
}

// scanPlans checks every stored plan and every index entry
func scanPlans(ctx context.Context, client redis.Cmdable) (*scanReport, error) {
	report := &scanReport{}

	iter := client.Scan(ctx, 0, encounterplan.PlanKey("*"), 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if key == encounterplan.IndexKey() {
			continue
		}
		report.Checked++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		if reason := checkPlan(key, data); reason != "" {
			fmt.Printf("✗ %s: %s\n", key, reason)
			report.Corrupt = append(report.Corrupt, key)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	ids, err := client.ZRange(ctx, encounterplan.IndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		exists, err := client.Exists(ctx, encounterplan.PlanKey(id)).Result()
		if err != nil {
			return nil, err
		}
		if exists == 0 {
			fmt.Printf("✗ index entry %s has no plan\n", id)
			report.Dangling = append(report.Dangling, id)
		}
	}

	return report, nil
}

// checkPlan returns why a stored plan is unusable, or "" when it is fine
func checkPlan(key, data string) string {
	var plan dnd5e.EncounterPlan
	if err := json.Unmarshal([]byte(data), &plan); err != nil {
		return fmt.Sprintf("does not decode: %v", err)
	}

	if want := strings.TrimPrefix(key, encounterplan.PlanKey("")); plan.ID != want {
		return fmt.Sprintf("stored ID %q does not match key", plan.ID)
	}
	for i, row := range plan.Party.Rows {
		if !dnd5e.ValidQuantity(row.Quantity) || row.Level < dnd5e.MinLevel || row.Level > dnd5e.MaxLevel {
			return fmt.Sprintf("player row %d is out of range", i)
		}
	}
	for i, row := range plan.Monsters.Rows {
		if !dnd5e.ValidQuantity(row.Quantity) || !row.ChallengeRating.IsValid() {
			return fmt.Sprintf("monster row %d is out of range", i)
		}
	}
	return ""
}

// removeEntries deletes corrupt plans and drops their index entries
func removeEntries(ctx context.Context, client redis.Cmdable, report *scanReport) error {
	for _, key := range report.Corrupt {
		id := strings.TrimPrefix(key, encounterplan.PlanKey(""))
		if err := client.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
		if err := client.ZRem(ctx, encounterplan.IndexKey(), id).Err(); err != nil {
			return fmt.Errorf("failed to unindex %s: %w", id, err)
		}
		fmt.Printf("Deleted %s\n", key)
	}

	for _, id := range report.Dangling {
		if err := client.ZRem(ctx, encounterplan.IndexKey(), id).Err(); err != nil {
			return fmt.Errorf("failed to unindex %s: %w", id, err)
		}
		fmt.Printf("Unindexed %s\n", id)
	}
	return nil
}
