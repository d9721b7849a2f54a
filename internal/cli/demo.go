package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tilt-dev/strtok/pkg/logger"
	"github.com/tilt-dev/strtok/pkg/strtok"
)

const (
	demoSource    = "Hello,_,world,_,from,_,rust!,_,"
	demoDelimiter = ",_,"
)

type demoCmd struct {
	streams streams
}

func newDemoCmd(s streams) *demoCmd {
	return &demoCmd{streams: s}
}

func (c *demoCmd) register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Split a built-in example string and print one token per line",
		Long: fmt.Sprintf(`Split a built-in example string and print one token per line.

The example source is %q and the delimiter is %q.`, demoSource, demoDelimiter),
		Args: cobra.NoArgs,
	}
	return cmd
}

func (c *demoCmd) run(ctx context.Context, args []string) error {
	logger.Get(ctx).Debugf("demo: splitting %q on %q", demoSource, demoDelimiter)

	t := strtok.New(demoSource, demoDelimiter)
	for t.HasNext() {
		_, _ = fmt.Fprintln(c.streams.Out, t.Next())
	}
	return nil
}
