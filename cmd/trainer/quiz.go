package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.lepak.sg/algotrainer/trainer"
)

func newQuizCmd(o *options) *cobra.Command {
	var orders []string

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Show a tree and check your traversals",
		Long: `Show a tree and ask for its traversals one at a time.
Separate labels with spaces; case and extra spaces don't matter.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asked := make([]trainer.Order, 0, len(orders))
			for _, s := range orders {
				ord, err := trainer.ParseOrder(s)
				if err != nil {
					return err
				}
				asked = append(asked, ord)
			}

			e, err := trainer.NewExercise(o.cfg, o.seed)
			if err != nil {
				return err
			}

			printTree(e)
			results, err := quiz(e, asked, cmd.InOrStdin())
			if err != nil {
				return err
			}

			score := trainer.Score(results)
			if score == len(results) {
				pterm.Success.Printfln("all %d correct", score)
			} else {
				pterm.Warning.Printfln("%d of %d correct", score, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&orders, "orders", []string{"pre", "in", "post"}, "traversals to ask for")
	return cmd
}

// quiz asks for each order in turn, reading one answer per line from in.
func quiz(e *trainer.Exercise, orders []trainer.Order, in io.Reader) ([]trainer.Result, error) {
	rd := bufio.NewReader(in)
	results := make([]trainer.Result, 0, len(orders))

	for _, ord := range orders {
		pterm.Print(ord.Title() + " traversal: ")
		line, err := rd.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return nil, errors.Wrap(err, "reading answer")
		}

		r := e.Check(ord, strings.TrimRight(line, "\r\n"))
		if r.Correct {
			pterm.Success.Println("Correct!")
		} else {
			pterm.Error.Printfln("Incorrect. Correct answer: %s", r.Expected)
		}
		results = append(results, r)
	}

	return results, nil
}
