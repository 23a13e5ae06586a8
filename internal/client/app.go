package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-file-drop/internal/adapter"
	"github.com/MKhiriev/go-file-drop/internal/config"
	"github.com/MKhiriev/go-file-drop/internal/logger"
	"github.com/MKhiriev/go-file-drop/models"
)

// App is the command-line client.
type App struct {
	cfg        config.ClientConfig
	newAdapter AdapterFactory
	buildInfo  models.AppBuildInfo

	adapter adapter.ServerAdapter
	root    *cobra.Command

	logger *logger.Logger
}

// NewApp builds the command tree. cfg provides flag defaults; values given on
// the command line override them before newAdapter is called.
func NewApp(cfg *config.ClientConfig, newAdapter AdapterFactory, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	app := &App{
		cfg:        *cfg,
		newAdapter: newAdapter,
		buildInfo:  buildInfo,
		logger:     logger,
	}
	app.root = app.rootCommand()

	return app
}

// Run implements [Client]. It executes the command named by os.Args and
// cancels in-flight requests on SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx, os.Args[1:])
}

func (a *App) run(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "file-drop",
		Short:         "Upload files to and download files from a go-file-drop server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.connect()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfg.Adapter.HTTPAddress, "address", "a", a.cfg.Adapter.HTTPAddress, "server base URL")
	flags.StringVarP(&a.cfg.APIKey, "key", "k", a.cfg.APIKey, "API key sent as the Authorization header")
	flags.DurationVarP(&a.cfg.Adapter.RequestTimeout, "timeout", "t", a.cfg.Adapter.RequestTimeout, "request timeout")

	root.AddCommand(
		a.uploadCommand(),
		a.downloadCommand(),
		a.versionCommand(),
	)

	return root
}

func (a *App) connect() error {
	serverAdapter, err := a.newAdapter(a.cfg, a.logger)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	a.adapter = serverAdapter
	return nil
}
