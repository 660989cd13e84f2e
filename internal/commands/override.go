package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/subscope-dev/subscope/internal/audit"
	"github.com/subscope-dev/subscope/internal/logger"
	"github.com/subscope-dev/subscope/internal/model"
	"github.com/subscope-dev/subscope/internal/rank"
)

func newOverrideCommand(cfgPath *string, verbose *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "override",
		Short: "Manage importance overrides",
	}

	cmd.AddCommand(newOverrideSetCommand(cfgPath, verbose))
	cmd.AddCommand(newOverrideClearCommand(cfgPath, verbose))
	cmd.AddCommand(newOverrideListCommand(cfgPath))

	return cmd
}

func newOverrideSetCommand(cfgPath *string, verbose *bool) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "set <subscription-id> <importance>",
		Short: "Pin a subscription's importance (1-5)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			importance, err := strconv.Atoi(args[1])
			if err != nil || importance < 1 || importance > 5 {
				return fmt.Errorf("importance must be an integer in 1..5, got %q", args[1])
			}
			return runOverrideSet(cmd, *cfgPath, args[0], importance, note, *verbose)
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "why this importance")

	return cmd
}

func runOverrideSet(cmd *cobra.Command, cfgPath, id string, importance int, note string, verbose bool) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	log := logger.New(verbose)

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	ranker := rank.NewRanker(st, nil, log)
	err = ranker.SetOverride(model.RankingOverride{
		SubscriptionID: id,
		Importance:     importance,
		UserNote:       note,
		UpdatedAt:      time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("saving override: %w", err)
	}

	entry := audit.New(audit.ActionSetOverride, id, fmt.Sprintf("importance=%d", importance))
	if err := audit.Append(cfg.Data.Dir, []audit.Entry{entry}); err != nil {
		log.Warn().Err(err).Msg("audit append failed")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s pinned at importance %d\n", id, importance)
	return nil
}

func newOverrideClearCommand(cfgPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <subscription-id>",
		Short: "Remove an importance override",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			log := logger.New(*verbose)

			st, err := openStore(cfg)
			if err != nil {
				return fmt.Errorf("opening store: %w", err)
			}
			defer st.Close()

			ranker := rank.NewRanker(st, nil, log)
			if err := ranker.ClearOverride(args[0]); err != nil {
				return fmt.Errorf("clearing override: %w", err)
			}

			entry := audit.New(audit.ActionClearOverride, args[0], "")
			if err := audit.Append(cfg.Data.Dir, []audit.Entry{entry}); err != nil {
				log.Warn().Err(err).Msg("audit append failed")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Override for %s cleared\n", args[0])
			return nil
		},
	}
}

func newOverrideListCommand(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List importance overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}

			st, err := openStore(cfg)
			if err != nil {
				return fmt.Errorf("opening store: %w", err)
			}
			defer st.Close()

			overrides, err := st.Overrides()
			if err != nil {
				return fmt.Errorf("reading overrides: %w", err)
			}
			if len(overrides) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No overrides.")
				return nil
			}

			for _, o := range overrides {
				fmt.Fprintf(cmd.OutOrStdout(), "%-32s %d", o.SubscriptionID, o.Importance)
				if o.UserNote != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s", o.UserNote)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
