package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"

	accounts "go.miloapis.com/outreach-provider-heyreach/cmd/accounts"
	auth "go.miloapis.com/outreach-provider-heyreach/cmd/auth"
	campaigns "go.miloapis.com/outreach-provider-heyreach/cmd/campaigns"
	inbox "go.miloapis.com/outreach-provider-heyreach/cmd/inbox"
	leads "go.miloapis.com/outreach-provider-heyreach/cmd/leads"
	lists "go.miloapis.com/outreach-provider-heyreach/cmd/lists"
	version "go.miloapis.com/outreach-provider-heyreach/cmd/version"
	"go.miloapis.com/outreach-provider-heyreach/cmd/webhook"
	webhooks "go.miloapis.com/outreach-provider-heyreach/cmd/webhooks"
	"go.miloapis.com/outreach-provider-heyreach/internal/cli"
)

func main() {
	opts := &cli.Options{Out: os.Stdout, In: os.Stdin}
	zapOpts := zap.Options{}

	rootCmd := &cobra.Command{
		Use:           "heyreach",
		Short:         "HeyReach is the LinkedIn outreach provider for Milo",
		Long:          "A command line client and webhook receiver for the HeyReach outreach API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logf.SetLogger(zap.New(zap.UseFlagOptions(&zapOpts)))
		},
	}

	opts.AddFlags(rootCmd.PersistentFlags())
	goFlags := flag.NewFlagSet("zap", flag.ContinueOnError)
	zapOpts.BindFlags(goFlags)
	rootCmd.PersistentFlags().AddGoFlagSet(goFlags)

	rootCmd.AddCommand(auth.CreateAuthCommand(opts))
	rootCmd.AddCommand(campaigns.CreateCampaignsCommand(opts))
	rootCmd.AddCommand(lists.CreateListsCommand(opts))
	rootCmd.AddCommand(leads.CreateLeadsCommand(opts))
	rootCmd.AddCommand(inbox.CreateInboxCommand(opts))
	rootCmd.AddCommand(accounts.CreateAccountsCommand(opts))
	rootCmd.AddCommand(webhooks.CreateWebhooksCommand(opts))
	rootCmd.AddCommand(webhook.CreateWebhookCommand(opts, &zapOpts))
	rootCmd.AddCommand(version.NewVersionCommand())

	if err := rootCmd.ExecuteContext(signals.SetupSignalHandler()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
