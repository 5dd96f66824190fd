package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/report"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/service"
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/storage"
)

var (
	cycleID      string
	exportFormat string
	exportOut    string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		logger.Info("Database migrated", "database", cfg.Database.Path)
		return store.Close()
	},
}

var recomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Rebuild a pay cycle's allocation totals from its seeds",
	Long: `Recompute re-reads every seed of the cycle and rewrites all alloc_* and rem_*
totals. Use it to repair totals that drifted after a failed write.`,
	RunE: runRecompute,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a pay cycle, its totals and seeds",
	RunE:  runExport,
}

func init() {
	recomputeCmd.Flags().StringVar(&cycleID, "cycle", "", "Pay cycle ID")
	recomputeCmd.MarkFlagRequired("cycle")

	exportCmd.Flags().StringVar(&cycleID, "cycle", "", "Pay cycle ID")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "yaml", "Output format: yaml or xlsx")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: stdout)")
	exportCmd.MarkFlagRequired("cycle")
}

func runRecompute(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	var (
		cycle     *models.PayCycle
		household *models.Household
	)
	err = store.InTx(cmd.Context(), func(q storage.Queries) error {
		var err error
		if _, err = service.RecomputeAllocations(cmd.Context(), q, cycleID); err != nil {
			return err
		}
		if cycle, err = q.GetPayCycle(cmd.Context(), cycleID); err != nil {
			return err
		}
		household, err = q.GetHousehold(cmd.Context(), cycle.HouseholdID)
		return err
	})
	if err != nil {
		return fmt.Errorf("recompute %s: %w", cycleID, err)
	}

	logger.Info("Allocations recomputed", "paycycle_id", cycleID)
	return report.Summarize(cycle, household).WriteText(cmd.OutOrStdout())
}

func runExport(cmd *cobra.Command, args []string) error {
	write, ok := map[string]func(io.Writer, *report.CycleExport) error{
		"yaml": report.WriteYAML,
		"xlsx": report.WriteXLSX,
	}[exportFormat]
	if !ok {
		return fmt.Errorf("unknown format %q (want yaml or xlsx)", exportFormat)
	}
	if exportFormat == "xlsx" && exportOut == "" {
		return errors.New("xlsx export needs --out")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	cycle, err := store.GetPayCycle(ctx, cycleID)
	if err != nil {
		return err
	}
	household, err := store.GetHousehold(ctx, cycle.HouseholdID)
	if err != nil {
		return err
	}
	seeds, err := store.ListSeedsByPaycycle(ctx, cycleID)
	if err != nil {
		return err
	}
	export := report.NewCycleExport(household, cycle, seeds)

	if exportOut == "" {
		return write(cmd.OutOrStdout(), export)
	}
	f, err := os.Create(exportOut)
	if err != nil {
		return err
	}
	if err := write(f, export); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("Pay cycle exported", "paycycle_id", cycleID, "format", exportFormat, "path", exportOut)
	return nil
}
