package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/subscope-dev/subscope/internal/audit"
)

func newAuditCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Show the history of corrections, overrides, and runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}

			entries, err := audit.Read(cfg.Data.Dir)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No audit entries.")
				return nil
			}

			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-18s %-28s %s\n",
					e.Timestamp.Format(time.RFC3339), e.Action, e.Subject, e.Details)
			}
			return nil
		},
	}
}
