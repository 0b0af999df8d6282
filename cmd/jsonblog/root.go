package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/jsonblog"
)

// config is the file/env configuration of the CLI.
type config struct {
	jsonblog.SiteConfig `mapstructure:",squash"`
	StaticDir           string `mapstructure:"staticDir"`
}

type cli struct {
	cfgFile string
	v       *viper.Viper
	cfg     config
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:   "jsonblog",
		Short: "jsonblog - a blog served from a single JSON document",
		Long: `jsonblog serves a paginated listing, one page per post and a search
endpoint, all driven by one JSON array of posts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig(cmd)
		},
	}
	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default is ./config.yaml)")
	root.PersistentFlags().String("source", "", "post collection: JSON file, http(s) URL or sqlite:<path>")
	_ = c.v.BindPFlag("source", root.PersistentFlags().Lookup("source"))

	root.AddCommand(
		c.newServeCmd(),
		c.newCheckCmd(),
		c.newExportCmd(),
		c.newNewCmd(),
		newVersionCmd(),
	)
	return root
}

func (c *cli) loadConfig(cmd *cobra.Command) error {
	v := c.v

	v.SetDefault("name", "My Laundry Blog")
	v.SetDefault("url", "http://localhost:3000")
	v.SetDefault("description", "")
	v.SetDefault("author", "")
	v.SetDefault("keyword", "laundry")
	v.SetDefault("addr", ":3000")
	v.SetDefault("source", "blog_data.json")
	v.SetDefault("dateLayout", jsonblog.DefaultDateLayout)
	v.SetDefault("cacheTTL", "0s")
	v.SetDefault("watch", false)
	v.SetDefault("sanitizeHTML", false)
	v.SetDefault("searchRate", 20)
	v.SetDefault("searchBurst", 40)
	v.SetDefault("staticDir", "public")

	if c.cfgFile != "" {
		v.SetConfigFile(c.cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("JSONBLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || c.cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&c.cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the jsonblog version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jsonblog %s\n", version)
		},
	}
}
