package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
)

// newConfigInitCmd creates the config init command. With --project, or when a
// project directory was resolved, it writes .footprint/config.yaml and a
// .gitignore there; otherwise it writes the global config.
func newConfigInitCmd(a *app) *cobra.Command {
	var (
		force   bool
		project bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

Inside a project (a directory tree holding .footprint/, or --project-dir),
creates $PROJECT/.footprint/config.yaml with a .gitignore that keeps exported
reports and logs out of version control. Use --project to create the project
directory in the working directory.`,
		Example: `  # Create global configuration (~/.footprint/config.yaml)
  footprint config init

  # Create project-local configuration in the working directory
  footprint config init --project

  # Overwrite an existing file
  footprint config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectDir := a.projectDir
			if project && projectDir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("resolving working directory: %w", err)
				}
				projectDir = config.ResolveProjectDir(cmd.Context(), wd, wd)
			}

			if projectDir != "" {
				return initProjectConfig(cmd, projectDir, force)
			}
			return initGlobalConfig(cmd, a.resolvedConfigPath, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&project, "project", false, "create .footprint/ in the working directory")

	return cmd
}

// checkWritable refuses to overwrite an existing file unless force is set.
func checkWritable(path string, force bool) error {
	if force {
		return nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return errors.New("configuration file already exists, use --force to overwrite")
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("cannot access config path %s: %w", path, err)
	}
	return nil
}

// initProjectConfig creates projectDir/config.yaml and projectDir/.gitignore.
func initProjectConfig(cmd *cobra.Command, projectDir string, force bool) error {
	configPath := filepath.Join(projectDir, "config.yaml")
	if err := checkWritable(configPath, force); err != nil {
		return err
	}

	if err := config.New().Save(configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	created, err := config.EnsureGitignore(projectDir)
	if err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", configPath)
	if created {
		cmd.Printf("Created .gitignore to keep reports and logs out of version control\n")
	}
	return nil
}

// initGlobalConfig creates the global config file.
func initGlobalConfig(cmd *cobra.Command, configPath string, force bool) error {
	if configPath == "" {
		path, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		configPath = path
	}
	if err := checkWritable(configPath, force); err != nil {
		return err
	}

	if err := config.New().Save(configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", configPath)
	return nil
}
