package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"whit-sponsors/internal/adapter/scheduler"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Complete expired campaigns once",
	RunE:  runSweep,
}

func runSweep(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadApp()
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	n, err := scheduler.NewSweeper(store, logger, nil).Sweep(cmd.Context(), time.Now())
	fmt.Fprintf(cmd.OutOrStdout(), "completed %d campaign(s)\n", n)
	return err
}
