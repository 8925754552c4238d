package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sdejongh/dircmp/pkg/config"
)

// ConfigFlags selects a configuration action instead of a comparison
type ConfigFlags struct {
	Show  bool
	Init  bool
	Force bool
}

// AddConfigFlags adds the configuration management flags to cmd.
// Positional arguments are always directories, even one named "config".
func AddConfigFlags(cmd *cobra.Command, flags *ConfigFlags) {
	cmd.Flags().BoolVar(&flags.Show, "show-config", false, "print the effective configuration as YAML and exit")
	cmd.Flags().BoolVar(&flags.Init, "init-config", false, "write a default configuration file and exit")
	cmd.Flags().BoolVar(&flags.Force, "force", false, "with --init-config, overwrite an existing file")
}

// validate rejects combinations that name more than one action
func (f *ConfigFlags) validate() error {
	if f.Show && f.Init {
		return fmt.Errorf("--show-config and --init-config cannot be used together")
	}
	if f.Force && !f.Init {
		return fmt.Errorf("--force requires --init-config")
	}
	return nil
}

// active reports whether a configuration action was requested
func (f *ConfigFlags) active() bool {
	return f.Show || f.Init
}

// runConfig performs the requested configuration action
func runConfig(cmd *cobra.Command, globals *GlobalFlags, flags *ConfigFlags) error {
	if flags.Init {
		return initConfig(cmd, globals, flags.Force)
	}
	return showConfig(cmd, globals)
}

func showConfig(cmd *cobra.Command, globals *GlobalFlags) error {
	cfg, err := loadConfig(globals)
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return err
	}
	return encoder.Close()
}

func initConfig(cmd *cobra.Command, globals *GlobalFlags, force bool) error {
	path := globals.ConfigFile
	if path == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			return err
		}
	}

	if !force && fileExists(path) {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
	}

	if err := config.SaveToFile(config.Default(), path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created at: %s\n", path)
	return nil
}
