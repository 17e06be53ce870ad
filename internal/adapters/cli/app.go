package cli

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"walletl10n/internal/config"
	"walletl10n/internal/infrastructure/i18n"
	"walletl10n/internal/infrastructure/tomlfile"
	"walletl10n/internal/ports/input"
	"walletl10n/internal/ports/output"
	"walletl10n/locales"
)

// skipLoad marks commands that must not load the locale files first.
const skipLoad = "skip-load"

// App is the command-line adapter.
type App struct {
	cfg        *config.Config
	catalogs   input.CatalogUseCase
	decoders   []output.ResourceDecoder
	encoder    *tomlfile.Codec
	log        *slog.Logger
	translator output.T

	// lang is the language of the tool's own messages.
	lang string
}

// NewApp wires the use case into commands. decoders are used by "check" to
// validate files without installing them.
func NewApp(cfg *config.Config, catalogs input.CatalogUseCase, decoders []output.ResourceDecoder, log *slog.Logger) *App {
	return &App{
		cfg:        cfg,
		catalogs:   catalogs,
		decoders:   decoders,
		encoder:    tomlfile.NewCodec(),
		log:        log,
		translator: i18n.NewTranslator(cfg.DefaultLocale, nil, log),
		lang:       cfg.DefaultLocale,
	}
}

// Run executes the command line and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	root := a.Command()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), a.errorMessage(err))
		return 1
	}
	return 0
}

// Command builds the root command.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Inspect and serve the wallet GUI translation catalogs",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, ok := cmd.Annotations[skipLoad]; ok {
				return nil
			}
			return a.loadLocales()
		},
	}
	root.PersistentFlags().StringVar(&a.lang, "lang", a.cfg.DefaultLocale, "language of the tool's own messages")

	root.AddCommand(
		a.lookupCommand(),
		a.translateCommand(),
		a.localesCommand(),
		a.contextsCommand(),
		a.exportCommand(),
		a.checkCommand(),
		a.importCommand(),
		a.restoreCommand(),
	)
	return root
}

func (a *App) localeSource() (fs.FS, string) {
	if a.cfg.LocalesDir == "" {
		return locales.FS, locales.Pattern
	}
	return os.DirFS(a.cfg.LocalesDir), a.cfg.LocaleFilePrefix + "*"
}

func (a *App) loadLocales() error {
	fsys, pattern := a.localeSource()
	loaded, err := a.catalogs.LoadFS(fsys, pattern)
	if err != nil {
		return err
	}
	a.log.Debug("locales loaded", "locales", strings.Join(loaded, ","))
	a.refreshTranslator()
	return nil
}

func (a *App) refreshTranslator() {
	a.translator = i18n.NewTranslator(a.cfg.DefaultLocale, a.catalogs.Catalogs(), a.log)
}
