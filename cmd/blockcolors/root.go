package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/blockstyle/colors"
	"github.com/npillmayer/blockstyle/colors/colordbg"
	"github.com/npillmayer/blockstyle/markup"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var traceKeys = []string{"blockstyle.colors", "blockstyle.style", "blockstyle.markup"}

type resolveOptions struct {
	block    string
	attrs    string
	markup   string
	selector string
	debug    bool
}

// newRootCmd creates the command tree. A fresh tree per call keeps flag
// state out of package variables.
func newRootCmd() *cobra.Command {
	var verbosity int
	rootCmd := &cobra.Command{
		Use:   "blockcolors",
		Short: "Resolve color classes and styles for block markup",
		Long: `blockcolors derives CSS classes and inline styles for the color
attributes of a block, given the block type's color support (block.json)
and the attributes of a block instance.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupTracing(verbosity)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG)")
	rootCmd.AddCommand(newResolveCmd())
	return rootCmd
}

func newResolveCmd() *cobra.Command {
	opts := &resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the class and style attributes for a block",
		Example: `  blockcolors resolve --block block.json --attrs attrs.json
  blockcolors resolve --block block.json --attrs attrs.json --markup block.html --selector .wp-block-group`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.block, "block", "", "block type definition (block.json)")
	cmd.Flags().StringVar(&opts.attrs, "attrs", "", "block attributes (JSON)")
	cmd.Flags().StringVar(&opts.markup, "markup", "", "block markup to apply the result to (HTML)")
	cmd.Flags().StringVar(&opts.selector, "selector", "*", "CSS selector of the block wrapper element")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "print a diagram of the resolution")
	_ = cmd.MarkFlagRequired("block")
	return cmd
}

func runResolve(cmd *cobra.Command, opts *resolveOptions) error {
	blockJSON, err := os.ReadFile(opts.block)
	if err != nil {
		return errors.Wrap(err, "cannot read block type")
	}
	support, err := colors.ParseSupports(blockJSON)
	if err != nil {
		return errors.Wrap(err, opts.block)
	}
	attrs := colors.Attributes{}
	if opts.attrs != "" {
		attrJSON, err := os.ReadFile(opts.attrs)
		if err != nil {
			return errors.Wrap(err, "cannot read block attributes")
		}
		if attrs, err = colors.ParseAttributes(attrJSON); err != nil {
			return errors.Wrap(err, opts.attrs)
		}
	}
	p := colors.ResolvePresentation(support, attrs)
	out := cmd.OutOrStdout()
	if opts.debug {
		fmt.Fprintln(out, colordbg.Tree(support, attrs, p))
	}
	if opts.markup != "" {
		fragment, err := os.ReadFile(opts.markup)
		if err != nil {
			return errors.Wrap(err, "cannot read block markup")
		}
		rendered, err := markup.Render(string(fragment), opts.selector, p)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, rendered)
		return nil
	}
	if class, ok := p.ClassName(); ok {
		fmt.Fprintf(out, "class=%q\n", class)
	}
	if style, ok := p.StyleAttr(); ok {
		fmt.Fprintf(out, "style=%q\n", style)
	}
	return nil
}

func setupTracing(verbosity int) {
	level := tracing.LevelError
	switch {
	case verbosity >= 2:
		level = tracing.LevelDebug
	case verbosity == 1:
		level = tracing.LevelInfo
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}
