package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aidar/task-tracker/internal/client"
)

const (
	configFileName = "config.yaml"

	cfgKeyServer = "server"
	cfgKeyToken  = "token"

	defaultServer = "http://localhost:8080"
)

// cli holds state shared by all subcommands.
type cli struct {
	v         *viper.Viper
	out       io.Writer
	configDir string
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{v: viper.New(), out: out}

	root := &cobra.Command{
		Use:           "trackctl",
		Short:         "trackctl talks to the task tracker API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configDir, "config-dir", "", "configuration directory (default: $HOME/.trackctl)")
	flags.String(cfgKeyServer, defaultServer, "API base URL")
	flags.String(cfgKeyToken, "", "bearer token (default: the one saved by login)")

	// Flags win over TRACKCTL_* env, which wins over config.yaml.
	_ = c.v.BindPFlag(cfgKeyServer, flags.Lookup(cfgKeyServer))
	_ = c.v.BindPFlag(cfgKeyToken, flags.Lookup(cfgKeyToken))
	c.v.SetEnvPrefix("TRACKCTL")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	root.AddCommand(
		c.loginCmd(),
		c.userCmd(),
		c.projectCmd(),
		c.taskCmd(),
		c.commentCmd(),
		c.statsCmd(),
	)

	return root
}

func (c *cli) configPath() string {
	return filepath.Join(c.configDir, configFileName)
}

// loadConfig resolves the config directory and reads config.yaml if present.
func (c *cli) loadConfig() error {
	if c.configDir == "" {
		if dir := os.Getenv("TRACKCTL_CONFIG_DIR"); dir != "" {
			c.configDir = dir
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolve home dir: %w", err)
			}
			c.configDir = filepath.Join(home, ".trackctl")
		}
	}

	c.v.SetConfigFile(c.configPath())
	c.v.SetConfigType("yaml")

	if _, err := os.Stat(c.configPath()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat config: %w", err)
	}
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// saveToken persists the server and token to config.yaml.
func (c *cli) saveToken(token string) error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	file := viper.New()
	file.SetConfigType("yaml")
	file.Set(cfgKeyServer, c.v.GetString(cfgKeyServer))
	file.Set(cfgKeyToken, token)

	if err := file.WriteConfigAs(c.configPath()); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return os.Chmod(c.configPath(), 0o600)
}

func (c *cli) client() (*client.Client, error) {
	return client.New(c.v.GetString(cfgKeyServer), client.WithToken(c.v.GetString(cfgKeyToken)))
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <user_id>",
		Short: "Obtain a token and save it to the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := c.client()
			if err != nil {
				return err
			}
			token, err := cl.Login(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := c.saveToken(token); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Logged in, token saved to %s\n", c.configPath())
			return nil
		},
	}
}

func (c *cli) statsCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show overall or per-user statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := c.client()
			if err != nil {
				return err
			}
			if userID != "" {
				stats, err := cl.UserStats(cmd.Context(), userID)
				if err != nil {
					return err
				}
				return c.print(stats)
			}
			stats, err := cl.Stats(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(stats)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "show statistics for one user")
	return cmd
}
