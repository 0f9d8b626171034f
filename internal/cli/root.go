package cli

import (
	"github.com/spf13/cobra"
)

type globalFlags struct {
	Format string
}

// NewRootCommand builds the complete command tree.
func NewRootCommand(deps Dependencies) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "latlngctl",
		Short:         "Normalize coordinates and convert them to and from SafeParcel payloads.",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := ParseFormat(flags.Format); err != nil {
				return usageErrorf("%v", err)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&flags.Format, "format", string(FormatText), "Output format: text, json, or yaml.")
	root.SetHelpCommand(&cobra.Command{Hidden: true})
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageErrorf("%v", err)
	})

	root.AddCommand(newNormalizeCommand(deps, flags))
	root.AddCommand(newEncodeCommand(deps, flags))
	root.AddCommand(newDecodeCommand(deps, flags))
	root.AddCommand(newVersionCommand(deps, flags))

	return root
}
