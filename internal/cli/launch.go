package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"launchdeck/internal/launcher"
	"launchdeck/internal/logger"
)

func newLaunchCommand(opts *options) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "launch [group]",
		Short: "Launch a group's enabled apps without opening the GUI",
		Long: "Launch the named group's enabled apps. With no argument the " +
			"last-active group is used; --all launches every group's enabled " +
			"apps, deduplicated across groups.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := openStore(opts)
			if err != nil {
				return err
			}

			var paths []string
			switch {
			case all:
				paths = registry.AllEnabledPaths()
			case len(args) == 1:
				group, ok := registry.GroupByName(args[0])
				if !ok {
					return fmt.Errorf("no group named %q", args[0])
				}
				paths = registry.EnabledPaths(group.ID)
			default:
				paths = registry.EnabledPaths(registry.ActiveGroup().ID)
			}

			if len(paths) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No enabled apps to launch.")
				return nil
			}

			dispatcher := launcher.NewDispatcher(launcher.OSRunner{}, registry.DisplayName, logger.Nop{})
			result := dispatcher.LaunchMany(paths)

			fmt.Fprintf(cmd.OutOrStdout(), "Launched %d apps.\n", result.Launched)
			for _, failure := range result.Failures {
				fmt.Fprintf(cmd.ErrOrStderr(), "failed: %s: %v\n", failure.Name, failure.Err)
			}
			if result.Launched == 0 && len(result.Failures) > 0 {
				return fmt.Errorf("all %d launches failed", len(result.Failures))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "launch the enabled apps of every group")
	return cmd
}
