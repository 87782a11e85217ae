// Package client provides commands that call the encounter budget gRPC service
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/encounter-budget/internal/handlers/encounter/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the encounter budget service",
	Long:  `Client commands edit and inspect encounter plans by making real gRPC requests.`,
}

func init() {
	// Add persistent flags for all client commands
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Plan commands
	ClientCmd.AddCommand(createPlanCmd)
	ClientCmd.AddCommand(getPlanCmd)
	ClientCmd.AddCommand(listPlansCmd)
	ClientCmd.AddCommand(deletePlanCmd)

	// Roster commands
	ClientCmd.AddCommand(addPlayerCmd)
	ClientCmd.AddCommand(removePlayerCmd)
	ClientCmd.AddCommand(setPlayerQuantityCmd)
	ClientCmd.AddCommand(setPlayerLevelCmd)
	ClientCmd.AddCommand(addMonsterCmd)
	ClientCmd.AddCommand(removeMonsterCmd)
	ClientCmd.AddCommand(setMonsterQuantityCmd)
	ClientCmd.AddCommand(setMonsterCRCmd)
	ClientCmd.AddCommand(addMonsterByIDCmd)
	ClientCmd.AddCommand(suggestCmd)

	// Budget commands
	ClientCmd.AddCommand(budgetCmd)
	ClientCmd.AddCommand(chartCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createEncounterClient creates an encounter budget service client
func createEncounterClient() (*v1alpha1.Client, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}

// withClient runs call with a connected client and a request timeout
func withClient(call func(ctx context.Context, client *v1alpha1.Client) error) error {
	client, cleanup, err := createEncounterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return call(ctx, client)
}
