package cli

import (
	"fmt"

	"github.com/nixpig/hostos/procpath"
	"github.com/spf13/cobra"
)

func execPathCmd() *cobra.Command {
	execPath := &cobra.Command{
		Use:     "exec-path",
		Short:   "Show the path of the running executable",
		Args:    cobra.NoArgs,
		Example: "  hostos exec-path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, ok := procpath.ExecPath()
			if !ok {
				return fmt.Errorf("exec path: not available")
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)

			return nil
		},
	}

	return execPath
}
