// Command radix exercises the radix tree from the command line: it loads
// word lists, combines them and answers membership queries.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/e11jah/radix"
	"github.com/urfave/cli/v3"
)

type commandBuilder = func(stdout, stderr io.Writer) *cli.Command

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	builders := []commandBuilder{
		demoCommand,
		wordsCommand,
		unionCommand,
		subtractCommand,
		searchCommand,
	}

	cmds := make([]*cli.Command, 0, len(builders))
	for _, build := range builders {
		cmds = append(cmds, build(stdout, stderr))
	}

	app := &cli.Command{
		Name:      "radix",
		Usage:     "builds radix trees from word lists and queries them",
		Writer:    stdout,
		ErrWriter: stderr,
		Commands:  cmds,
	}
	// keep errors flowing back to us instead of exiting inside the library
	app.ExitErrHandler = func(_ context.Context, _ *cli.Command, _ error) {}

	if err := app.Run(context.Background(), args); err != nil {
		fmt.Fprintf(stderr, "radix: %v\n", err)
		return 1
	}
	return 0
}

func verboseFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "log edge splits and pruning to stderr",
	}
}

func newLogger(cmd *cli.Command, stderr io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

// loadWords reads one word per line from path. Blank lines are skipped and
// repeated words are stored once.
func loadWords(path string, logger *slog.Logger) (*radix.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tree := radix.New(radix.WithLogger(logger))
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		added, err := tree.Add(word)
		if err != nil {
			return nil, err
		}
		if !added {
			logger.Debug("skipping repeated word", "path", path, "word", word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return tree, nil
}

func printWords(w io.Writer, tree *radix.Tree) {
	for it := tree.Iterator(); it.HasNext(); {
		word, _ := it.Next()
		fmt.Fprintln(w, word)
	}
}

func wordsCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "words",
		Usage:     "prints the distinct words of a word list",
		ArgsUsage: "FILE",
		Flags:     []cli.Flag{verboseFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("words expects 1 file, got %d", cmd.Args().Len())
			}
			tree, err := loadWords(cmd.Args().First(), newLogger(cmd, stderr))
			if err != nil {
				return err
			}
			printWords(stdout, tree)
			return nil
		},
	}
}

func setOpCommand(name, usage string, op func(dst, src *radix.Tree), stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "A B",
		Flags:     []cli.Flag{verboseFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("%s expects 2 files, got %d", name, cmd.Args().Len())
			}
			logger := newLogger(cmd, stderr)
			a, err := loadWords(cmd.Args().Get(0), logger)
			if err != nil {
				return err
			}
			b, err := loadWords(cmd.Args().Get(1), logger)
			if err != nil {
				return err
			}
			op(a, b)
			printWords(stdout, a)
			return nil
		},
	}
}

func unionCommand(stdout, stderr io.Writer) *cli.Command {
	return setOpCommand("union", "prints the words found in A or B", (*radix.Tree).Merge, stdout, stderr)
}

func subtractCommand(stdout, stderr io.Writer) *cli.Command {
	return setOpCommand("subtract", "prints the words found in A but not in B", (*radix.Tree).Subtract, stdout, stderr)
}

func searchCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "reports whether each WORD is in the word list",
		ArgsUsage: "FILE WORD...",
		Flags:     []cli.Flag{verboseFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 2 {
				return fmt.Errorf("search expects a file and at least 1 word")
			}
			tree, err := loadWords(cmd.Args().First(), newLogger(cmd, stderr))
			if err != nil {
				return err
			}
			for _, word := range cmd.Args().Tail() {
				fmt.Fprintf(stdout, "%s: %t\n", word, tree.Search(word))
			}
			return nil
		},
	}
}
