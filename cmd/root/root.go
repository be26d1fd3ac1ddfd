package root

import (
	"github.com/spf13/cobra"

	"github.com/depsolve/depsolve/cmd/expand"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "depsolve",
		Short: "Depsolve models the requirements of a constraint-based dependency resolver",
		Long: `The requirement and condition model at the core of a constraint-based
dependency resolver, written in Go.
For more information visit https://github.com/depsolve/depsolve`,
	}

	// add sub-commands
	rootCmd.AddCommand(expand.NewExpandCommand())

	return rootCmd
}
