package main

import (
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.lepak.sg/algotrainer/trainer"
	"go.lepak.sg/algotrainer/worksheet"
)

func newWorksheetCmd(o *options) *cobra.Command {
	var count int
	var out string
	var key bool

	cmd := &cobra.Command{
		Use:     "worksheet",
		Short:   "Write a batch of exercises to a JSON worksheet",
		Example: `trainer worksheet --count 20 --out week1.json --key`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return errors.Errorf("count must be at least 1, got %d", count)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			pterm.Debug.Printfln("generating %d exercises with %d workers", count, o.cfg.Workers)
			exercises, err := trainer.NewSheet(ctx, o.cfg, trainer.Seeds(o.seed, count))
			if err != nil {
				return err
			}

			sheet := worksheet.New(o.cfg, exercises)
			if err := worksheet.Save(afero.NewOsFs(), out, sheet); err != nil {
				return err
			}
			pterm.Success.Printfln("wrote %d exercises to %s (seed %d)", count, out, o.seed)

			if key {
				return worksheet.AnswerKey(cmd.OutOrStdout(), sheet)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of exercises")
	cmd.Flags().StringVarP(&out, "out", "o", "worksheet.json", "file to write")
	cmd.Flags().BoolVar(&key, "key", false, "also print the answer key")
	return cmd
}

func newKeyCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "key WORKSHEET",
		Short: "Check a saved worksheet and print its answer key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, err := worksheet.Load(afero.NewOsFs(), args[0])
			if err != nil {
				return err
			}

			if _, err := sheet.Rebuild(o.cfg); err != nil {
				return errors.Wrap(err, "worksheet is inconsistent")
			}
			pterm.Debug.Printfln("%d exercises verified", len(sheet.Exercises))

			return worksheet.AnswerKey(cmd.OutOrStdout(), sheet)
		},
	}
}
