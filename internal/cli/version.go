package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type versionCmd struct {
	streams streams
}

func newVersionCmd(s streams) *versionCmd {
	return &versionCmd{streams: s}
}

func (c *versionCmd) register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Current strtok version",
		Args:  cobra.NoArgs,
	}
	return cmd
}

func (c *versionCmd) run(ctx context.Context, args []string) error {
	_, err := fmt.Fprintln(c.streams.Out, buildStamp(buildInfo()))
	return err
}
