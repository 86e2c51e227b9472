package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/webcc-dev/webcc/pkg/compile"
	"github.com/webcc-dev/webcc/pkg/fsutil"
)

func newTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the token stream of a template file",
		Long: `Tokenize a template file and print one token per line with its kind,
rune span, and text. Intended for debugging the lexer's view of an input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0])
		},
	}

	return cmd
}

func runTokens(cmd *cobra.Command, path string) error {
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
	tokens, src, err := compiler.Tokenize(path, input)
	if err != nil {
		return reportFailure(cmd, cfg, err, true)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tKIND\tSPAN\tTEXT")
	for i, tok := range tokens {
		fmt.Fprintf(w, "%d\t%s\t[%d,%d)\t%q\n",
			i, tok.Kind, tok.StartOffset, tok.EndOffset, string(tok.Text(src)))
	}
	return w.Flush()
}
