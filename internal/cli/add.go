package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"launchdeck/internal/store"
)

func newAddCommand(opts *options) *cobra.Command {
	var groupName string

	cmd := &cobra.Command{
		Use:   "add <path>",
		Short: "Register a file and add it to a group",
		Args:  cobra.ExactArgs(1),
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
			if err := registry.Register(path); err != nil {
				return err
			}
			if err := registry.AddEntry(group.ID, path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s.\n", registry.DisplayName(path), group.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&groupName, "group", "g", "", "target group name (default: last-active group)")
	return cmd
}

func resolveGroup(registry *store.Store, name string) (store.Group, error) {
	if name == "" {
		return registry.ActiveGroup(), nil
	}
	group, ok := registry.GroupByName(name)
	if !ok {
		return store.Group{}, fmt.Errorf("no group named %q", name)
	}
	return group, nil
}
