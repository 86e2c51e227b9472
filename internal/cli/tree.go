package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webcc-dev/webcc/pkg/compile"
	"github.com/webcc-dev/webcc/pkg/fsutil"
	"github.com/webcc-dev/webcc/pkg/htmlast"
)

type treeFlags struct {
	attrs bool
}

func newTreeCommand() *cobra.Command {
	flags := &treeFlags{}

	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Dump the parse tree of a template file",
		Long: `Parse a template file and print its element tree, indented by nesting
depth. With --attrs each element's attributes are listed as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.attrs, "attrs", false, "include attributes")

	return cmd
}

func runTree(cmd *cobra.Command, path string, flags *treeFlags) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	input, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	compiler := compile.New(cfg.Limits.Limits())
	tree, err := compiler.Parse(path, input)
	if err != nil {
		return reportFailure(cmd, cfg, err, true)
	}

	out := cmd.OutOrStdout()
	return tree.Walk(func(_ int, n htmlast.TagNode, depth int) error {
		indent := strings.Repeat("  ", depth)
		if _, err := fmt.Fprintf(out, "%s<%s>", indent, tree.NodeName(n)); err != nil {
			return err
		}
		if flags.attrs {
			for _, a := range tree.AttrsOf(n.TagName) {
				if value, ok := tree.AttrValue(a); ok {
					fmt.Fprintf(out, " %s=%q", tree.AttrName(a), value)
				} else {
					fmt.Fprintf(out, " %s", tree.AttrName(a))
				}
			}
		}
		_, err := fmt.Fprintln(out)
		return err
	})
}
