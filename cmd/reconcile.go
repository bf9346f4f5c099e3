package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"guild-manager/core/config"
	"guild-manager/core/discord"
	"guild-manager/core/logger"
	"guild-manager/core/reconcile"
	"guild-manager/core/settings"
	"guild-manager/feature/guild"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile  string
	fromArchive string
	dryRun      bool
	yesConfirm  bool
)

// reconcileCmd applies a configuration file to one guild.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile <guild-id>",
	Short: "Converge a guild to a YAML configuration",
	Long: `Reads the guild once, prints the planned actions and applies them after
confirmation. Actions run in order and the first failure stops the pass.

Examples:
  # Show the plan only
  reconcile 123456789012345678 -f server.yaml --dry-run

  # Apply without prompting
  reconcile 123456789012345678 -f server.yaml --yes

  # Replay an archived configuration
  reconcile 123456789012345678 --from-archive guilds/123456789012345678/1700000000000000000.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVarP(&configFile, "file", "f", "", "Path to the YAML configuration")
	reconcileCmd.Flags().StringVar(&fromArchive, "from-archive", "", "Object key of an archived configuration to apply")
	reconcileCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the plan without applying it")
	reconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Apply without interactive confirmation")
	reconcileCmd.MarkFlagsMutuallyExclusive("file", "from-archive")
	reconcileCmd.MarkFlagsOneRequired("file", "from-archive")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	guildID := args[0]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithGuild(l, guildID)

	session, err := discord.NewSession(cfg.Discord)
	if err != nil {
		return err
	}

	stores, err := openSideStores(ctx, cfg, l)
	if err != nil {
		l.Warn("Optional backend unavailable", zap.Error(err))
	}

	raw, err := readConfig(ctx, stores)
	if err != nil {
		return err
	}
	desired, err := settings.Parse(raw)
	if err != nil {
		return err
	}

	svc := guild.NewService(discord.NewClient(session, cfg.Discord), stores.recorder(), stores.archiver(), l)

	l.Info("Planning reconciliation...")
	plan, snap, err := svc.Plan(ctx, guildID, desired)
	if err != nil {
		return fmt.Errorf("failed to plan reconciliation: %w", err)
	}

	printPlan(l, plan)

	req := guild.Request{GuildID: guildID, Config: desired, Raw: raw, Source: guild.SourceCLI, DryRun: dryRun}
	return executePlan(ctx, l, svc, req, plan, snap, confirmApply)
}

// executor runs a computed plan and records the pass.
type executor interface {
	Execute(ctx context.Context, req guild.Request, plan *reconcile.ReconcilePlan, snap *reconcile.Snapshot) (*guild.Result, error)
}

// executePlan runs plan through svc. An empty plan is still executed so the
// pass and its warnings reach the history store, but needs no confirmation.
func executePlan(ctx context.Context, l *zap.Logger, svc executor, req guild.Request, plan *reconcile.ReconcilePlan, snap *reconcile.Snapshot, confirm func() bool) error {
	if req.DryRun {
		_, err := svc.Execute(ctx, req, plan, snap)
		l.Info("Dry-run mode: No changes were made.")
		return err
	}

	if len(plan.Actions) > 0 && !confirm() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	result, err := svc.Execute(ctx, req, plan, snap)
	if err != nil {
		return fmt.Errorf("stopped after %d of %d actions: %w", result.Executed, len(plan.Actions), err)
	}

	if len(plan.Actions) == 0 {
		l.Info("Guild already matches the configuration.")
		return nil
	}
	l.Info("Successfully executed actions",
		zap.Int("count", result.Executed),
		zap.String("archive_key", result.ArchiveKey),
	)
	return nil
}

// readConfig loads the YAML from --file or from the archive.
func readConfig(ctx context.Context, stores sideStores) ([]byte, error) {
	if fromArchive == "" {
		raw, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", configFile, err)
		}
		return raw, nil
	}

	if stores.archive == nil {
		return nil, errors.New("--from-archive needs the storage archive to be enabled")
	}
	return stores.archive.Load(ctx, fromArchive)
}

// printPlan prints the plan summary and each action using logger.
func printPlan(l *zap.Logger, plan *reconcile.ReconcilePlan) {
	s := plan.Summary

	l.Info("Reconciliation plan",
		zap.Int("categories", s.Categories),
		zap.Int("channels", s.Channels),
		zap.Int("creates", s.Creates),
		zap.Int("updates", s.Updates),
		zap.Int("unchanged", s.Unchanged),
		zap.Bool("guild_update", s.GuildUpdate),
	)

	for _, action := range plan.Actions {
		l.Info("Planned action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	for _, w := range plan.Warnings {
		l.Warn("Not applied", zap.String("detail", w))
	}
}

// confirmApply prompts the user for confirmation or uses --yes flag.
func confirmApply() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to apply these changes to the guild: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
