package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every group with its entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := openStore(opts)
			if err != nil {
				return err
			}

			doc := registry.Snapshot()
			out := cmd.OutOrStdout()
			for _, group := range doc.Groups {
				marker := " "
				if group.ID == doc.ActiveGroupID {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s (%d entries)\n", marker, group.Name, len(group.Entries))
				for _, entry := range group.Entries {
					state := "on "
					if !entry.Enabled {
						state = "off"
					}
					fmt.Fprintf(out, "    [%s] %-24s %s\n", state, doc.DisplayName(entry.Path), entry.Path)
				}
			}
			return nil
		},
	}
}
