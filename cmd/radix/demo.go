package main

import (
	"context"
	"fmt"
	"io"

	"github.com/e11jah/radix"
	"github.com/urfave/cli/v3"
)

func demoCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "walks through inserting, merging, removing and clearing words",
		Flags: []cli.Flag{verboseFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return runDemo(stdout, radix.WithLogger(newLogger(cmd, stderr)))
		},
	}
}

func runDemo(w io.Writer, opts ...radix.Option) error {
	r := radix.New(opts...)
	for _, word := range []string{"toast", "toaster", "cat", "car"} {
		if err := r.Insert(word); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "Radix tree after inserts:\n%s\n\n", r)

	if !r.Search("toasting") {
		fmt.Fprintln(w, "Word currently isn't in the radix tree.")
	}
	if err := r.Insert("toasting"); err != nil {
		return err
	}
	if r.Search("toasting") {
		fmt.Fprintln(w, "The word is in the radix tree.")
	}

	t := radix.New(opts...)
	for _, word := range []string{"bar", "bark", "bank"} {
		if err := t.Insert(word); err != nil {
			return err
		}
	}
	if r.Greater(t) {
		fmt.Fprintln(w, `Tree "r" has more words than tree "t".`)
	}

	r.Merge(t)
	fmt.Fprintf(w, "Radix tree \"r\" after merging:\n%s\n\n", r)

	t = r.Clone()
	if t.Equal(r) {
		fmt.Fprintln(w, "Now the trees are equal.")
	}

	if err := r.Remove("bar"); err != nil {
		return err
	}
	fmt.Fprintf(w, "Radix tree \"r\" after the removal of word \"bar\":\n%s\n\n", r)

	if err := r.Insert("toast"); err != nil {
		fmt.Fprintf(w, "Inserting \"toast\" again fails: %v\n", err)
	}
	if err := r.Remove("bar"); err != nil {
		fmt.Fprintf(w, "Removing \"bar\" again fails: %v\n", err)
	}

	t.Clear()
	r.Clear()
	fmt.Fprintf(w, "Radix tree \"r\" after clearing:\n%s\n", r)
	return nil
}
