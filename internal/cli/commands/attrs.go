package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AttrsOptions holds command-line options for the attrs command.
type AttrsOptions struct {
	Names string
}

// NewAttrsCommand creates the attrs command.
func NewAttrsCommand() *cobra.Command {
	opts := &AttrsOptions{}

	cmd := &cobra.Command{
		Use:   "attrs <log-file...>",
		Short: "List attributes found in a SMART log",
		Long: `Parse one or more SMART log files (glob patterns allowed) and list the
discovered attribute keys in ascending numeric order, with their
human-readable names and sample counts.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAttrs(args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Names, "names", "", "YAML file with attribute name overrides")

	return cmd
}

func runAttrs(args []string, opts *AttrsOptions) error {
	names, err := loadNames(opts.Names)
	if err != nil {
		return err
	}

	result, _, err := loadLogs(args)
	if err != nil {
		return err
	}

	attrs := result.Attributes()
	if len(attrs) == 0 {
		fmt.Println("No attributes found.")
		ExitCode = 1
		return nil
	}

	for _, key := range attrs {
		s, ok := result.Series(key)
		if !ok {
			continue
		}
		fmt.Printf("%-4s %-32s %d raw, %d norm\n",
			key, names.Label(key), len(s.Raw), len(s.Norm))
	}

	return nil
}
