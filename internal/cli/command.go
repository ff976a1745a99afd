package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pricofy/text-translator/internal/catalog"
	"github.com/pricofy/text-translator/internal/chunker"
	"github.com/pricofy/text-translator/internal/config"
	"github.com/pricofy/text-translator/internal/logging"
	"github.com/pricofy/text-translator/internal/translator"
)

// Version is the CLI version reported by --version.
const Version = "0.1.0"

// CreateRootCommand creates and configures the root cobra command.
// v receives the flag bindings and is read when a command runs.
func CreateRootCommand(flags *Flags, v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "translate [text]",
		Short: "Translate English text into another language",
		Long: `translate splits English text into word-bounded chunks and sends each
chunk to a translation model, printing the joined result.

Text is taken from the arguments, from --file, or from standard input.

Examples:
  translate --to French "Hello world"
  translate --to German --file notes.txt
  echo "Good morning" | translate --to Japanese
  translate --to Spanish --interactive
  translate languages`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args, flags, v)
		},
	}

	setupFlags(rootCmd, flags)
	bindFlagsToViper(rootCmd, v)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "languages",
		Short: "List the available destination languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags, v)
			if err != nil {
				return err
			}
			langs, err := catalog.Open(cfg.Catalog)
			if err != nil {
				return err
			}
			ListLanguages(cmd.OutOrStdout(), langs)
			return nil
		},
	})

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags; config-backed ones are read through viper
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.text-translator.yaml)")
	cmd.PersistentFlags().StringVar(&flags.EnvFile, "env-file", flags.EnvFile, "dotenv file loaded before reading the environment")
	cmd.PersistentFlags().String("backend", translator.BackendLambda,
		"Translation backend: "+strings.Join(translator.Backends(), ", "))
	cmd.PersistentFlags().String("catalog", "", "Language table (JSON or YAML); the built-in FLORES-200 table when empty")
	cmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")

	// Local flags
	cmd.Flags().StringVarP(&flags.To, "to", "t", "", "Destination language, e.g. French")
	cmd.Flags().StringVarP(&flags.File, "file", "f", "", "Read the text to translate from a file")
	cmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Translate line by line until EOF or :q")
	cmd.Flags().Int("max-chunk-chars", chunker.DefaultMaxChunkChars, "Maximum characters per chunk sent to the model")
}

func bindFlagsToViper(cmd *cobra.Command, v *viper.Viper) {
	v.BindPFlag(config.KeyBackend, cmd.PersistentFlags().Lookup("backend"))
	v.BindPFlag(config.KeyCatalog, cmd.PersistentFlags().Lookup("catalog"))
	v.BindPFlag(config.KeyLogLevel, cmd.PersistentFlags().Lookup("log-level"))
	v.BindPFlag(config.KeyMaxChunkChars, cmd.Flags().Lookup("max-chunk-chars"))
}

// loadConfig reads .env, the config file and the environment.
func loadConfig(cmd *cobra.Command, flags *Flags, v *viper.Viper) (config.Config, error) {
	if err := config.LoadDotEnv(flags.EnvFile); err != nil {
		return config.Config{}, err
	}
	if err := config.ReadFile(v, flags.CfgFile); err != nil {
		return config.Config{}, err
	}
	if used := v.ConfigFileUsed(); used != "" {
		printInfo(cmd.ErrOrStderr(), "Using config file: "+used)
	}

	cfg := config.FromViper(v)
	return cfg, cfg.Validate()
}

// buildApp reads configuration and constructs the App.
func buildApp(cmd *cobra.Command, flags *Flags, v *viper.Viper) (*App, error) {
	cfg, err := loadConfig(cmd, flags, v)
	if err != nil {
		return nil, err
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	return NewApp(cmd.Context(), cfg, logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func runTranslate(cmd *cobra.Command, args []string, flags *Flags, v *viper.Viper) error {
	if flags.To == "" {
		return fmt.Errorf("destination language is required (--to), see 'translate languages'")
	}
	if flags.Interactive && (len(args) > 0 || flags.File != "") {
		return fmt.Errorf("--interactive reads from standard input and cannot be combined with text or --file")
	}

	app, err := buildApp(cmd, flags, v)
	if err != nil {
		return err
	}

	if flags.Interactive {
		return app.Interactive(cmd.Context(), cmd.InOrStdin(), flags.To)
	}

	text, err := readInput(args, flags.File, cmd.InOrStdin())
	if err != nil {
		return err
	}

	app.Translate(cmd.Context(), text, flags.To)
	return nil
}

// readInput returns the text from args, the named file, or stdin, in that order.
func readInput(args []string, file string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read standard input: %w", err)
	}
	return string(data), nil
}
