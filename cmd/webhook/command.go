package webhook

import (
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"
	ctrlwebhook "sigs.k8s.io/controller-runtime/pkg/webhook"

	"go.miloapis.com/outreach-provider-heyreach/internal/cli"
	webhook "go.miloapis.com/outreach-provider-heyreach/internal/webhook"
)

// CreateWebhookCommand returns a cobra command that starts the receiver for
// HeyReach webhook deliveries together with its metrics server.
func CreateWebhookCommand(opts *cli.Options, zapOpts *zap.Options) *cobra.Command {
	var (
		webhookPort                                     int
		webhookPath                                     string
		webhookCertDir, webhookCertFile, webhookKeyFile string
		metricsBindAddress                              string
		secureMetrics                                   bool
		enableHTTP2                                     bool
	)

	cmd := &cobra.Command{
		Use:   "webhook-server",
		Short: "Runs the HeyReach webhook receiver",
		PersistentPreRun: func(*cobra.Command, []string) {
			logf.SetLogger(zap.New(zap.UseFlagOptions(zapOpts), zap.JSONEncoder()))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logf.Log.WithName("webhook-server")

			conf, err := opts.Config()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("webhook-port") {
				conf.Webhook.Port = webhookPort
			}
			if flags.Changed("webhook-path") {
				conf.Webhook.Path = webhookPath
			}
			if flags.Changed("cert-dir") {
				conf.Webhook.CertDir = webhookCertDir
			}
			if flags.Changed("metrics-bind-address") {
				conf.Webhook.MetricsBindAddress = metricsBindAddress
			}

			log.Info("Starting webhook server",
				"cert_dir", conf.Webhook.CertDir,
				"cert_file", webhookCertFile,
				"key_file", webhookKeyFile,
				"webhook_port", conf.Webhook.Port,
				"webhook_path", conf.Webhook.Path,
				"secret_configured", conf.Webhook.Secret != "",
			)

			var tlsOpts []func(*tls.Config)
			if !enableHTTP2 {
				tlsOpts = append(tlsOpts, func(c *tls.Config) {
					log.Info("disabling http/2")
					c.NextProtos = []string{"http/1.1"}
				})
			}

			hookServer := ctrlwebhook.NewServer(ctrlwebhook.Options{
				CertDir:  conf.Webhook.CertDir,
				CertName: webhookCertFile,
				KeyName:  webhookKeyFile,
				Port:     conf.Webhook.Port,
				TLSOpts:  tlsOpts,
			})

			log.Info("Setting up webhook")
			receiver := webhook.NewHeyReachEventWebhookV1(conf.Webhook.Path, conf.Webhook.Secret)
			receiver.SetupWithServer(hookServer)

			log.Info("Metrics bind address", "metrics-bind-address", conf.Webhook.MetricsBindAddress)
			metricsServer, err := metricsserver.NewServer(metricsserver.Options{
				BindAddress:   conf.Webhook.MetricsBindAddress,
				SecureServing: secureMetrics,
				TLSOpts:       tlsOpts,
				ExtraHandlers: map[string]http.Handler{
					"/healthz": &healthz.Handler{Checks: map[string]healthz.Checker{"ping": healthz.Ping}},
					"/readyz":  &healthz.Handler{Checks: map[string]healthz.Checker{"webhook": hookServer.StartedChecker()}},
				},
			}, nil, nil)
			if err != nil {
				return fmt.Errorf("failed to create metrics server: %w", err)
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				return hookServer.Start(ctx)
			})
			if metricsServer != nil {
				g.Go(func() error {
					return metricsServer.Start(ctx)
				})
			}

			log.Info("Serving")
			if err := g.Wait(); err != nil {
				log.Error(err, "problem running webhook server")
				return fmt.Errorf("problem running webhook server: %w", err)
			}
			return nil
		},
	}

	// Network flags. Unset flags fall back to the configuration file and environment.
	cmd.Flags().IntVar(&webhookPort, "webhook-port", 9443, "Port for the webhook server")
	cmd.Flags().StringVar(&webhookPath, "webhook-path", webhook.DefaultEndpoint, "Path HeyReach delivers events to")
	cmd.Flags().StringVar(&webhookCertDir,
		"cert-dir", "/etc/certs", "Directory that contains the TLS certs to use for serving the webhook")
	cmd.Flags().StringVar(&webhookCertFile, "cert-file", "tls.crt", "Filename in the directory that contains the TLS cert")
	cmd.Flags().StringVar(&webhookKeyFile, "key-file", "tls.key", "Filename in the directory that contains the TLS private key")
	cmd.Flags().BoolVar(&enableHTTP2, "enable-http2", false,
		"If set, HTTP/2 will be enabled for the metrics and webhook servers")

	// Metrics flags.
	cmd.Flags().StringVar(&metricsBindAddress, "metrics-bind-address", ":8080",
		"address the metrics endpoint binds to, 0 disables it")
	cmd.Flags().BoolVar(&secureMetrics, "metrics-secure", false,
		"If set, the metrics endpoint is served via HTTPS with a self-signed certificate")

	return cmd
}
