package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/termyhq/termy/internal/updater"
)

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Check for a newer termy release",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := updater.Check(Version)
			if err != nil {
				return fmt.Errorf("checking for updates: %w", err)
			}

			return formatter().OutputData(info, func(w io.Writer) error {
				if !info.Available {
					fmt.Fprintf(w, "termy %s is up to date\n", info.CurrentVer)
					return nil
				}
				fmt.Fprintf(w, "%s %s -> %s\n", headerStyle.Render("Update available:"),
					info.CurrentVer, info.NewVersion)
				if info.ReleaseURL != "" {
					fmt.Fprintln(w, dimStyle.Render(info.ReleaseURL))
				}
				return nil
			})
		},
	}
}
