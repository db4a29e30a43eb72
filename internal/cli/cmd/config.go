package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/tvmenu/internal/cli/styles"
	"github.com/bnema/tvmenu/internal/config"
)

var (
	configShowFormat string
	configInitForce  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and create tvmenu.conf",
	Long:  `Find, print and create the configuration file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	Long:  `Print the first config candidate that exists and parses.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration with every default filled in.

Formats: conf (tvmenu.conf syntax, can be saved as a config file), toml, json.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print a JSON schema of the configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Long: `Write tvmenu.conf with every default value.

The file goes to the first config candidate, $XDG_CONFIG_HOME/tvmenu/tvmenu.conf
by default, unless a path is given.
An existing file is kept unless --force is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configInitCmd)

	configShowCmd.Flags().StringVarP(&configShowFormat, "format", "f", config.FormatConf, "output format (conf, toml, json)")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing file")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path, err := config.Resolve(app.Ctx(), app.Settings.ConfigPaths)
	if errors.Is(err, config.ErrNoConfigFound) {
		file, fileErr := initTarget(app.Settings, nil)
		if fileErr == nil {
			fmt.Fprint(cmd.ErrOrStderr(), styles.NewConfigRenderer(app.Theme).RenderNoConfigFile(file))
		}
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if err := app.LoadConfig(); err != nil {
		return err
	}
	return showConfig(cmd.OutOrStdout(), app.Config, configShowFormat)
}

func showConfig(w io.Writer, cfg *config.AppConfig, format string) error {
	data, err := config.Marshal(cfg, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path, err := initTarget(app.Settings, args)
	if err != nil {
		return err
	}
	if err := config.WriteDefault(path, configInitForce); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderWritten(path))
	return nil
}

// initTarget returns where config init writes: the path given on the command line,
// otherwise the first config candidate, so that Load finds the new file.
func initTarget(settings *config.Settings, args []string) (string, error) {
	if len(args) == 1 {
		return config.ExpandUser(args[0])
	}
	if len(settings.ConfigPaths) > 0 {
		return config.ExpandUser(settings.ConfigPaths[0])
	}
	return config.GetConfigFile()
}
