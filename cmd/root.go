package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mgmerino/journal/internal/config"
)

var cfgFile string
var verbose bool
var appConfig config.Config

var rootCmd = &cobra.Command{
	Use:   "journal",
	Short: "journal - a static site generator for a personal journal",
	Long: `journal takes Markdown posts with YAML front matter, renders them
through plain-text templates, and emits a complete static site:
post pages, listings, an Atom feed, and a JSON manifest.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./journal.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initializeConfig(_ *cobra.Command) error {
	v := viper.New()

	v.SetDefault("contentDir", config.DefaultContentDir)
	v.SetDefault("templatesDir", config.DefaultTemplatesDir)
	v.SetDefault("fontsDir", config.DefaultFontsDir)
	v.SetDefault("outputDir", config.DefaultOutputDir)
	v.SetDefault("siteTitle", config.DefaultSiteTitle)
	v.SetDefault("siteURL", config.DefaultSiteURL)
	v.SetDefault("author", "")
	v.SetDefault("palette", config.DefaultPalette)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("journal")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("JOURNAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if cfgFile != "" {
			return fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
		// No journal.yaml in the working directory: defaults and
		// environment overrides apply.
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return nil
}
