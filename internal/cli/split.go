package cli

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tilt-dev/strtok/internal/sliceutils"
	"github.com/tilt-dev/strtok/pkg/logger"
	"github.com/tilt-dev/strtok/pkg/strtok"
)

type splitCmd struct {
	streams streams
	trim    bool
	quote   bool
	output  outputFormat
}

func newSplitCmd(s streams) *splitCmd {
	return &splitCmd{
		streams: s,
		output:  outputText,
	}
}

func (c *splitCmd) register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split <source> <delimiter>",
		Short: "Split a string on a literal delimiter",
		Long: `Split a string on a literal delimiter and print the tokens.

The delimiter is matched byte for byte. Leading and repeated delimiters
produce empty tokens; a trailing delimiter does not.

# one token per line
strtok split "a,b,,c" ","

# make empty tokens visible
strtok split --quote ",a,,b" ","

# trim white space and print a JSON array
strtok split --trim -o json " a , b " ","
`,
		Args: cobra.ExactArgs(2),
	}

	cmd.Flags().BoolVar(&c.trim, "trim", false, "Trim leading and trailing white space from each token")
	cmd.Flags().BoolVar(&c.quote, "quote", false, "Print each token as a quoted Go string (text output only)")
	cmd.Flags().VarP(&c.output, "output", "o", "Output format. One of: text, json, yaml")

	return cmd
}

func (c *splitCmd) run(ctx context.Context, args []string) error {
	l := logger.Get(ctx)
	source, delimiter := args[0], args[1]

	if c.quote && !c.output.streaming() {
		return errors.Errorf("--quote only applies to text output, not %s", c.output)
	}
	if delimiter == "" {
		l.Warnf("empty delimiter: the whole source is a single token")
	}

	t := strtok.New(source, delimiter)
	tokens := []string{}
	for t.HasNext() {
		start := t.Position()
		var token string
		if c.trim {
			token = t.NextTrimmed()
		} else {
			token = t.Next()
		}
		l.Debugf("token %d: %q (bytes %d-%d)", len(tokens), token, start, t.Position())
		tokens = append(tokens, token)

		if c.output.streaming() {
			if err := writeToken(c.streams.Out, token, c.quote); err != nil {
				return errors.Wrap(err, "writing token")
			}
		}
	}

	l.Verbosef("%s from %d bytes",
		logger.Green(l).Sprintf("%d tokens", len(tokens)), len(source))
	l.Debugf("tokens: [%s]", sliceutils.QuotedStringList(tokens))

	if c.output.streaming() {
		return nil
	}
	return writeTokens(c.streams.Out, c.output, tokens)
}
