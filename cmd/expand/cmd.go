package expand

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/depsolve/depsolve/internal/util"
	"github.com/depsolve/depsolve/pkg/depsolve"
	"github.com/depsolve/depsolve/pkg/depsolve/interner"
)

func NewExpandCommand() *cobra.Command {
	output := "text"
	cmd := &cobra.Command{
		Use:   "expand <path>",
		Short: "Expands a dependency manifest into conditional requirements",
		Long: `Expands a YAML dependency manifest into conditional requirements and
prints each one's rendering, candidate version sets and gating conditions.
For instance:

package: app
dependencies:
  - requires: "numpy >=1.20"
    alternatives: ["numpy-lite >=1.0"]
    when:
      extras: ["gpu"]
      versionSets: ["cuda >=11.0"]
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return expand(args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format, text or json")
	return cmd
}

func expand(path string, output string) error {
	// open manifest file
	manifestFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening manifest file (%s): %w", path, err)
	}
	defer manifestFile.Close()

	manifest, err := NewManifest(manifestFile)
	if err != nil {
		return fmt.Errorf("error parsing manifest file (%s): %w", path, err)
	}

	// intern the manifest's declarations
	in := interner.NewMemoryInterner()
	requirements, err := manifest.Build(in)
	if err != nil {
		return fmt.Errorf("error building requirements from manifest (%s): %w", path, err)
	}

	switch output {
	case "json":
		data, err := util.JSONMarshal(requirements)
		if err != nil {
			return fmt.Errorf("error encoding requirements: %w", err)
		}
		fmt.Println(string(data))
	case "text":
		printRequirements(in, requirements)
	default:
		return fmt.Errorf("unknown output format (%s)", output)
	}
	return nil
}

func printRequirements(in depsolve.Interner, requirements []depsolve.ConditionalRequirement) {
	for _, requirement := range requirements {
		fmt.Println(requirement.Requirement.Display(in))
		for _, condition := range requirement.Conditions {
			fmt.Printf("  when %s\n", condition.Display(in))
		}
		for versionSet := range requirement.RequirementVersionSets(in) {
			fmt.Printf("  candidate %s %s\n", in.DisplayName(in.VersionSetName(versionSet)), in.DisplayVersionSet(versionSet))
		}
	}
}
