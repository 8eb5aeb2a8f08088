package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newRemoveCommand(opts *options) *cobra.Command {
	var groupName string

	cmd := &cobra.Command{
		Use:   "remove <path>",
		Short: "Remove a file from a group",
		Long: "Remove the entry for the given path from a group. The app " +
			"stays in the global registry for other groups and future use.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := openStore(opts)
			if err != nil {
				return err
			}

			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}

			group, err := resolveGroup(registry, groupName)
			if err != nil {
				return err
			}

			for i, entry := range group.Entries {
				if entry.Path == path {
					if err := registry.RemoveEntry(group.ID, i); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Removed %q from %s.\n", registry.DisplayName(path), group.Name)
					return nil
				}
			}
			return fmt.Errorf("%q is not in group %s", path, group.Name)
		},
	}

	cmd.Flags().StringVarP(&groupName, "group", "g", "", "source group name (default: last-active group)")
	return cmd
}
