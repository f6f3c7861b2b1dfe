package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.lepak.sg/algotrainer/config"
)

// options is shared by every subcommand. cfg is resolved in
// PersistentPreRunE, before any subcommand runs.
type options struct {
	cfg      config.Config
	envFiles []string
	debug    bool
	seed     int64

	// flag values, only applied when the flag was set
	maxDepth, maxNodes    int
	nodeSize, levelHeight float64
	workers               int
}

func newRootCmd() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:           "trainer",
		Short:         "Practice binary tree traversals",
		Long:          `Generate random binary trees and practice writing their pre-, in- and post-order traversals.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.resolve(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringSliceVar(&o.envFiles, "env-file", nil, "extra .env files to read settings from")
	flags.BoolVar(&o.debug, "debug", false, "print debug messages")
	flags.Int64VarP(&o.seed, "seed", "s", 0, "seed (default current unix time in ns)")
	flags.IntVar(&o.maxDepth, "max-depth", 0, "number of tree levels allowed")
	flags.IntVar(&o.maxNodes, "max-nodes", 0, "maximum number of nodes (at most 26)")
	flags.Float64Var(&o.nodeSize, "node-size", 0, "node diameter used for the layout")
	flags.Float64Var(&o.levelHeight, "level-height", 0, "distance between tree levels in the layout")
	flags.IntVar(&o.workers, "workers", 0, "exercises generated at once")

	cmd.AddCommand(
		newGenerateCmd(o),
		newLayoutCmd(o),
		newQuizCmd(o),
		newRebuildCmd(o),
		newWorksheetCmd(o),
		newKeyCmd(o),
	)

	return cmd
}

func (o *options) resolve(cmd *cobra.Command) error {
	if o.debug {
		pterm.EnableDebugMessages()
	}

	cfg, err := config.Read(o.envFiles...)
	if err != nil {
		return errors.Wrap(err, "loading settings")
	}

	flags := cmd.Flags()
	if flags.Changed("max-depth") {
		cfg.MaxDepth = o.maxDepth
	}
	if flags.Changed("max-nodes") {
		cfg.MaxNodes = o.maxNodes
	}
	if flags.Changed("node-size") {
		cfg.NodeSize = o.nodeSize
	}
	if flags.Changed("level-height") {
		cfg.LevelHeight = o.levelHeight
	}
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid settings")
	}
	o.cfg = cfg

	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}

	pterm.Debug.Printfln("settings: %v seed=%d", o.cfg, o.seed)
	return nil
}
