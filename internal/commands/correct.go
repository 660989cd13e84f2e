package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subscope-dev/subscope/internal/audit"
	"github.com/subscope-dev/subscope/internal/logger"
	"github.com/subscope-dev/subscope/internal/merchant"
)

func newCorrectCommand(cfgPath *string, verbose *bool) *cobra.Command {
	var category string
	var isSubscription bool

	cmd := &cobra.Command{
		Use:   "correct <original-description> <vendor>",
		Short: "Correct a merchant resolution; corrections are permanent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCorrect(cmd, *cfgPath, args[0], args[1], category, isSubscription, *verbose)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "merchant category")
	cmd.Flags().BoolVar(&isSubscription, "subscription", false, "mark as a known subscription service")

	return cmd
}

func runCorrect(cmd *cobra.Command, cfgPath, original, vendor, category string, isSubscription, verbose bool) error {
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

	resolver := merchant.NewResolver(st, nil, 0, log)
	if err := resolver.CorrectMerchantName(original, vendor, category, isSubscription); err != nil {
		return fmt.Errorf("saving correction: %w", err)
	}

	entry := audit.New(audit.ActionCorrectMerchant, original, "corrected to "+vendor)
	if err := audit.Append(cfg.Data.Dir, []audit.Entry{entry}); err != nil {
		log.Warn().Err(err).Msg("audit append failed")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%q will now resolve to %q\n", original, vendor)
	return nil
}
