package main

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.lepak.sg/algotrainer/must"
	"go.lepak.sg/algotrainer/trainer"
	"go.lepak.sg/algotrainer/tree/binary"
)

func newRebuildCmd(o *options) *cobra.Command {
	var pre, in string

	cmd := &cobra.Command{
		Use:     "rebuild",
		Short:   "Rebuild a tree from its pre- and in-order traversals",
		Example: `trainer rebuild --pre "A B D C" --in "D B A C"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := binary.Rebuild(strings.Fields(pre), strings.Fields(in))
			if err != nil {
				return err
			}

			pterm.DefaultSection.Println("Tree")
			pterm.Println(root.String())
			pterm.Info.Printfln("Post-order: %s", trainer.Display(binary.PostOrder(root)))
			return nil
		},
	}

	cmd.Flags().StringVar(&pre, "pre", "", "pre-order traversal, space separated")
	cmd.Flags().StringVar(&in, "in", "", "in-order traversal, space separated")
	must.Do(cmd.MarkFlagRequired("pre"))
	must.Do(cmd.MarkFlagRequired("in"))
	return cmd
}
