package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/greek-text/grac"
	"github.com/greek-text/grac/internal/logging"
)

type rootOptions struct {
	logFile   string
	synizesis string
	closer    io.Closer
	s         *grac.Syllabifier
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "grac",
		Short:        "Greek syllabification, accentuation and monotonic conversion",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, closer, err := logging.Setup(cmd.ErrOrStderr(), logging.Options{File: opts.logFile, Level: slog.LevelWarn})
			if err != nil {
				return err
			}
			opts.closer = closer
			table := grac.DefaultSynizesisTable()
			if opts.synizesis != "" {
				extra, err := grac.LoadSynizesisFile(opts.synizesis)
				if err != nil {
					return err
				}
				table = table.With(extra)
			}
			opts.s = grac.New(table)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.closer != nil {
				return opts.closer.Close()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "mirror log records to a rotating file")
	root.PersistentFlags().StringVar(&opts.synizesis, "synizesis", "", "extra synizesis YAML merged over the built-in list")

	root.AddCommand(
		newSyllabifyCmd(opts),
		newMonoCmd(opts),
		newAccentCmd(opts),
		newBenchCmd(opts),
	)
	return root
}

func newSyllabifyCmd(opts *rootOptions) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "syllabify WORD...",
		Short: "Print the syllables of each word, separated by hyphens",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			merge, ok := grac.ParseMerge(mode)
			if !ok {
				return fmt.Errorf("unknown mode %q (want lookup, never or every)", mode)
			}
			out := cmd.OutOrStdout()
			for _, word := range args {
				fmt.Fprintln(out, strings.Join(opts.s.SyllabifyWithMerge(word, merge), "-"))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "lookup", "synizesis handling: lookup, never or every")
	return cmd
}

func newMonoCmd(opts *rootOptions) *cobra.Command {
	var diaeresis string
	cmd := &cobra.Command{
		Use:   "mono [TEXT | -]",
		Short: "Convert polytonic text to monotonic",
		Long:  "Convert polytonic text to monotonic. With no argument or \"-\" the text is read line by line from standard input.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, ok := grac.ParseDiaeresisPolicy(diaeresis)
			if !ok {
				return fmt.Errorf("unknown diaeresis policy %q", diaeresis)
			}
			out := cmd.OutOrStdout()
			if len(args) == 1 && args[0] != "-" {
				fmt.Fprintln(out, opts.s.ToMonotonicWith(args[0], policy))
				return nil
			}
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				fmt.Fprintln(out, opts.s.ToMonotonicWith(sc.Text(), policy))
			}
			return sc.Err()
		},
	}
	cmd.Flags().StringVar(&diaeresis, "diaeresis", "load-bearing", "diaeresis policy: load-bearing, preserve or strip")
	return cmd
}

func newAccentCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "accent WORD POSITION",
		Short: "Put the acute on syllable POSITION, counted from the end",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("position: %w", err)
			}
			res, err := opts.s.AddAcute(args[0], pos)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func newBenchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bench FILE",
		Short: "Time the syllabification of every word of FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			words := strings.Fields(string(data))
			start := time.Now()
			syllables := 0
			for _, w := range words {
				syllables += len(opts.s.Syllabify(w))
			}
			elapsed := time.Since(start)
			fmt.Fprintf(cmd.OutOrStdout(), "%d words, %d syllables in %s\n", len(words), syllables, elapsed.Round(time.Microsecond))
			return nil
		},
	}
}
