package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"powerplant-dispatch/internal/api/models"
	"powerplant-dispatch/internal/config"
	"powerplant-dispatch/internal/dispatch"
	"powerplant-dispatch/internal/history"
	"powerplant-dispatch/internal/server"
)

func main() {
	root := &cobra.Command{
		Use:   "dispatchctl",
		Short: "Command-line client for the powerplant-dispatch planner",
	}
	root.AddCommand(newPlanCmd(), newServeCmd(), newHistoryCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newPlanCmd() *cobra.Command {
	var requestPath string
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute a production plan for a request JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(requestPath)
			if err != nil {
				return err
			}

			var req models.ProductionPlanRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return fmt.Errorf("parse request: %w", err)
			}

			var defaults config.FuelDefaults
			if cfgPath != "" {
				cfg, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				defaults = cfg.Fuels
			}

			grid, err := req.ToGrid(defaults)
			if err != nil {
				return err
			}

			alloc, err := dispatch.Plan(grid)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(alloc, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&requestPath, "request", "request.json", "path to a productionplan request JSON file")
	cmd.Flags().StringVar(&cfgPath, "config", "", "optional path to a YAML config file supplying fallback fuel prices")
	return cmd
}

func newServeCmd() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP planning service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			return server.Run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "config.yaml", "path to the YAML config file")
	return cmd
}

func newHistoryCmd() *cobra.Command {
	var cfgPath string
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent stored production plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			store, err := history.Open(cfg.History.DSN)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.Recent(context.Background(), limit)
			if err != nil {
				return err
			}

			for _, r := range records {
				fmt.Printf("#%d\t%s\tload=%.1fMW\tfeasible=%v\t%s\n",
					r.ID, r.RequestedAt.Format("2006-01-02T15:04:05"), r.LoadMW, r.Feasible, r.Detail)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "config.yaml", "path to the YAML config file")
	cmd.Flags().IntVar(&limit, "limit", 20, "number of records to show")
	return cmd
}
