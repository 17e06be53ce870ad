package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"walletl10n/internal/application"
	"walletl10n/internal/domain"
	"walletl10n/internal/infrastructure/i18n"
)

func (a *App) lookupCommand() *cobra.Command {
	var (
		comment string
		count   int
	)
	cmd := &cobra.Command{
		Use:   "lookup <locale> <context> <source>",
		Short: "Print the translation of a source string, or the source itself",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			locale, context, source := args[0], args[1], args[2]
			var text string
			switch {
			case cmd.Flags().Changed("count"):
				text = a.catalogs.LookupPlural(locale, context, source, count)
			case comment != "":
				text = a.catalogs.LookupDisambiguated(locale, context, source, comment)
			default:
				text = a.catalogs.Lookup(locale, context, source)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVar(&comment, "comment", "", "disambiguation comment")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "count for numerus messages")
	return cmd
}

func (a *App) translateCommand() *cobra.Command {
	var (
		comment string
		count   int
	)
	cmd := &cobra.Command{
		Use:   "translate <locale> <context> <source>",
		Short: "Translate with language negotiation (ru matches ru_RU)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data map[string]any
			if cmd.Flags().Changed("count") {
				data = map[string]any{"Count": count}
			}
			key := i18n.MessageID(args[1], args[2], comment)
			fmt.Fprintln(cmd.OutOrStdout(), a.translator.T(args[0], key, data))
			return nil
		},
	}
	cmd.Flags().StringVar(&comment, "comment", "", "disambiguation comment")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "count for numerus messages")
	return cmd
}

func (a *App) localesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List loaded locales with translation coverage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-10s %8s %8s %10s %6s %10s\n", "LOCALE", "CONTEXTS", "MESSAGES", "TRANSLATED", "EMPTY", "DUPLICATES")
			for _, c := range a.catalogs.Catalogs() {
				st := c.Stats()
				fmt.Fprintf(out, "%-10s %8d %8d %10d %6d %10d\n",
					c.Locale, st.Contexts, st.Messages, st.Translated, st.Empty, st.Duplicates)
			}
			return nil
		},
	}
}

func (a *App) contextsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contexts <locale>",
		Short: "List the contexts of a locale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := a.catalogs.Catalog(args[0])
			if !ok {
				return &localeError{locale: args[0], err: domain.ErrLocaleNotFound}
			}
			for _, name := range c.ContextNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func (a *App) exportCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export <locale>",
		Short: "Write a locale as TOML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := a.catalogs.Catalog(args[0])
			if !ok {
				return &localeError{locale: args[0], err: domain.ErrLocaleNotFound}
			}
			data, err := a.encoder.Encode(c.Document())
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write instead of stdout")
	return cmd
}

func (a *App) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "check <file>...",
		Short:       "Validate resource files without loading them",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{skipLoad: ""},
		RunE: func(cmd *cobra.Command, args []string) error {
			scratch := application.NewCatalogService(a.decoders, application.WithLogger(a.log))
			for _, file := range args {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read %s: %w", file, err)
				}
				format := strings.TrimPrefix(filepath.Ext(file), ".")
				locale := strings.TrimPrefix(strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)), a.cfg.LocaleFilePrefix)
				if _, err := scratch.LoadFormat(locale, format, data); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), a.translator.T(a.lang, "cli.valid", map[string]any{"File": file}))
			}
			return nil
		},
	}
}

func (a *App) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Store every loaded locale in PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.catalogs.PersistAll(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.translator.T(a.lang, "cli.persisted",
				map[string]any{"Locales": strings.Join(a.catalogs.Locales(), ", ")}))
			return nil
		},
	}
}

func (a *App) restoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "restore",
		Short:       "Load every locale stored in PostgreSQL",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipLoad: ""},
		RunE: func(cmd *cobra.Command, _ []string) error {
			restored, err := a.catalogs.Restore(cmd.Context())
			if err != nil {
				return err
			}
			a.refreshTranslator()
			fmt.Fprintln(cmd.OutOrStdout(), a.translator.T(a.lang, "cli.restored",
				map[string]any{"Locales": strings.Join(restored, ", ")}))
			return nil
		},
	}
}
