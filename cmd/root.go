package cmd

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f9n/alertmanager-silences-slack-reporter/pkg/alertmanager"
	"github.com/f9n/alertmanager-silences-slack-reporter/pkg/printer"
	"github.com/f9n/alertmanager-silences-slack-reporter/pkg/report"
	slackpub "github.com/f9n/alertmanager-silences-slack-reporter/pkg/slack"
)

// reportOptions holds everything one report run needs. Values come from flags
// with environment variable fallback.
type reportOptions struct {
	alertmanagerURL string
	slackToken      string
	slackChannel    string
	logLevel        string
	dryRun          bool
}

// NewCmdRoot represents the reporter when called without any subcommands:
// fetch the silences, build the report, post it.
func NewCmdRoot() *cobra.Command {
	opts := &reportOptions{}
	rootCmd := &cobra.Command{
		Use:               "alertmanager-silences-slack-reporter",
		Short:             "Fetch Alertmanager silences and report them to Slack",
		Long:              `Fetches the current set of silences from an Alertmanager instance and posts a formatted report to a Slack channel.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.complete()
			if err := opts.validate(); err != nil {
				return err
			}
			return opts.run(cmd.Context())
		},
	}

	rootCmd.Flags().StringVarP(&opts.alertmanagerURL, "alertmanager-url", "a", "", "Alertmanager base URL (env: ALERTMANAGER_URL)")
	rootCmd.Flags().StringVarP(&opts.slackToken, "slack-token", "t", "", "Slack bot token (env: SLACK_BOT_TOKEN)")
	rootCmd.Flags().StringVarP(&opts.slackChannel, "slack-channel", "c", "", "Slack channel ID (env: SLACK_CHANNEL_ID)")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level [trace, debug, info, warn, error]")
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the report instead of posting it to Slack")

	_ = viper.BindPFlag("alertmanager-url", rootCmd.Flags().Lookup("alertmanager-url"))
	_ = viper.BindPFlag("slack-token", rootCmd.Flags().Lookup("slack-token"))
	_ = viper.BindPFlag("slack-channel", rootCmd.Flags().Lookup("slack-channel"))
	_ = viper.BindEnv("alertmanager-url", "ALERTMANAGER_URL")
	_ = viper.BindEnv("slack-token", "SLACK_BOT_TOKEN")
	_ = viper.BindEnv("slack-channel", "SLACK_CHANNEL_ID")

	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// complete pulls the effective values back out of viper, so a flag wins over
// its environment variable.
func (o *reportOptions) complete() {
	o.alertmanagerURL = viper.GetString("alertmanager-url")
	o.slackToken = viper.GetString("slack-token")
	o.slackChannel = viper.GetString("slack-channel")
}

func (o *reportOptions) validate() error {
	if o.alertmanagerURL == "" {
		return fmt.Errorf("no Alertmanager URL provided, use --alertmanager-url or ALERTMANAGER_URL")
	}
	if !o.dryRun {
		if o.slackToken == "" {
			return fmt.Errorf("no Slack bot token provided, use --slack-token or SLACK_BOT_TOKEN")
		}
		if o.slackChannel == "" {
			return fmt.Errorf("no Slack channel provided, use --slack-channel or SLACK_CHANNEL_ID")
		}
	}
	return nil
}

func (o *reportOptions) run(ctx context.Context) error {
	if err := initLogging(o.logLevel); err != nil {
		return err
	}

	log.Infof("Fetching silences from Alertmanager: %s", o.alertmanagerURL)

	amClient := alertmanager.NewClient(o.alertmanagerURL)
	silences, err := amClient.ListSilences(ctx)
	if err != nil {
		return err
	}

	log.Infof("Found %d silence(s)", len(silences))

	batches := report.Build(silences)

	if o.dryRun {
		printSilenceTable(silences)
		summary := report.Summarize(silences)
		printer.PrintfGreen("Dry run: would post %d message(s) to Slack (total %d, active %d, pending %d, expired %d)\n",
			len(batches), summary.Total, summary.Active, summary.Pending, summary.Expired)
		return nil
	}

	publisher := slackpub.NewPublisher(o.slackToken)
	if err := publisher.PublishReport(ctx, o.slackChannel, batches); err != nil {
		return err
	}

	log.Infof("Report sent to Slack successfully (%d message(s))", len(batches))
	return nil
}

// printSilenceTable prints one row per silence, in report order.
func printSilenceTable(silences []alertmanager.Silence) {
	table := printer.NewTablePrinter(os.Stdout, 20, 1, 3, ' ')
	table.AddRow([]string{"ID", "STATE", "STARTS AT", "ENDS AT", "CREATED BY"})
	for _, silence := range silences {
		table.AddRow([]string{
			silence.ID,
			silence.Status.State,
			report.FormatTimestamp(silence.StartsAt),
			report.FormatTimestamp(silence.EndsAt),
			silence.CreatedBy,
		})
	}
	if err := table.Flush(); err != nil {
		log.Warnf("Failed to flush table output: %v", err)
	}
}

func initLogging(level string) error {
	parsedLevel, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(parsedLevel)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	return nil
}
