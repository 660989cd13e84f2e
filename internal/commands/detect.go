package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/subscope-dev/subscope/internal/audit"
	"github.com/subscope-dev/subscope/internal/detect"
	"github.com/subscope-dev/subscope/internal/importer"
	"github.com/subscope-dev/subscope/internal/logger"
	"github.com/subscope-dev/subscope/internal/merchant"
	"github.com/subscope-dev/subscope/internal/rank"
	"github.com/subscope-dev/subscope/internal/report"
)

func newDetectCommand(cfgPath *string, verbose *bool) *cobra.Command {
	var format string
	var outPath string

	cmd := &cobra.Command{
		Use:   "detect <transactions.csv>",
		Short: "Detect and rank recurring charges in a transaction export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, *cfgPath, args[0], format, outPath, *verbose)
		},
	}

	cmd.Flags().StringVar(&format, "format", "generic", "input format (generic, chase)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write full report CSV to this path")

	return cmd
}

func runDetect(cmd *cobra.Command, cfgPath, inPath, format, outPath string, verbose bool) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	log := logger.New(verbose)

	txns, err := importer.ParseFile(importer.DefaultRegistry(), format, inPath)
	if err != nil {
		return err
	}
	if len(txns) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No transactions found.")
		return nil
	}

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	classifier := newClassifier(cfg)
	if classifier == nil {
		log.Warn().Str("env", cfg.Anthropic.APIKeyEnv).Msg("no API key, running with local resolution only")
	}

	resolver := merchant.NewResolver(st, classifier, cfg.Anthropic.BatchSize, log)
	detector := detect.NewDetector(resolver, log)
	detector.MinOccurrences = cfg.Detection.MinOccurrences
	detector.ConsistencyCutoff = cfg.Detection.ConsistencyCutoff
	ranker := rank.NewRanker(st, classifier, log)

	ctx := cmd.Context()
	subs, detectDegraded := detector.Detect(ctx, txns)
	ranked, rankDegraded := ranker.Rank(ctx, subs)

	if detectDegraded || rankDegraded {
		fmt.Fprintln(cmd.ErrOrStderr(), "Note: some merchants were resolved or ranked without AI; results may be less accurate.")
	}

	report.WriteTerminal(cmd.OutOrStdout(), ranked)

	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating report: %w", err)
		}
		defer f.Close()
		if err := report.WriteCSV(f, ranked); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nReport written to %s\n", outPath)
	}

	entry := audit.New(audit.ActionDetectRun, inPath,
		fmt.Sprintf("transactions=%d subscriptions=%d degraded=%t", len(txns), len(ranked), detectDegraded || rankDegraded))
	if err := audit.Append(cfg.Data.Dir, []audit.Entry{entry}); err != nil {
		log.Warn().Err(err).Msg("audit append failed")
	}
	return nil
}
