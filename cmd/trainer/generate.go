package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.lepak.sg/algotrainer/trainer"
	"go.lepak.sg/algotrainer/tree"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func newGenerateCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "generate",
		Short:   "Generate a tree and print it with its traversals",
		Example: `trainer generate --seed 42 --max-nodes 12`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := trainer.NewExercise(o.cfg, o.seed)
			if err != nil {
				return err
			}

			printTree(e)

			data := pterm.TableData{{"Order", "Traversal"}}
			for _, ord := range trainer.Orders {
				data = append(data, []string{ord.Title(), e.Answers[ord]})
			}
			if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
				return err
			}

			pterm.Info.Printfln("%d nodes, %d levels, bounding box %dx%d",
				tree.Count(e.Root), tree.Height(e.Root), e.Box.Width, e.Box.Height)
			return nil
		},
	}
}

func newLayoutCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the drawing coordinates of every node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := trainer.NewExercise(o.cfg, o.seed)
			if err != nil {
				return err
			}

			printTree(e)

			nodes := maps.Keys(e.Positions)
			slices.SortFunc(nodes, func(a, b *tree.Node) bool {
				return e.Positions[a].X < e.Positions[b].X
			})

			data := pterm.TableData{{"Node", "ID", "X", "Y"}}
			for _, n := range nodes {
				p := e.Positions[n]
				data = append(data, []string{
					n.Label,
					strconv.Itoa(n.ID),
					strconv.FormatFloat(p.X, 'f', -1, 64),
					strconv.FormatFloat(p.Y, 'f', -1, 64),
				})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		},
	}
}

func printTree(e *trainer.Exercise) {
	pterm.DefaultSection.Println(fmt.Sprintf("Tree (seed %d)", e.Seed))
	pterm.Println(e.Root.String())
}
