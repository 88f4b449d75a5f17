package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ffoerster/ee-ark/client"
	"github.com/ffoerster/ee-ark/internal/config"
)

var configPath string
var debug bool

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	var cfg *config.Config
	values := make(map[client.Field]*string)

	rootCmd := &cobra.Command{
		Use:   "arkcli <action>",
		Short: "ARK API command line suite",
		Long: "Mint, update and query ARK identifiers against the registry.\n\n" +
			"Actions: " + strings.Join(client.ActionNames(), ", ") + ".\n" +
			"The ARK_API_KEY environment variable must be set.",
		Args:          cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:     client.ActionNames(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.InitLogger()
			if debug {
				config.SetLogLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				config.SetLogLevel(config.LogLevelFromEnv())
			}

			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := client.ParseAction(args[0])
			if err != nil {
				return err
			}

			c, err := client.New(cfg.BaseURL, cfg.APIKey,
				client.WithHTTPTimeout(cfg.Timeout),
				client.WithDebugLogging(debug),
			)
			if err != nil {
				return err
			}

			req := client.ActionRequest{}
			for _, f := range client.AllFields() {
				if cmd.Flags().Changed(string(f)) {
					req[f] = *values[f]
				}
			}

			log.Debug().
				Str("action", action.String()).
				Str("base_url", cfg.BaseURL).
				Interface("fields", req.Set()).
				Msg("running action")

			resp, err := c.Do(cmd.Context(), action, req)
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("ARK_CONFIG"), "Optional YAML file with base_url and timeout")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output, including HTTP dumps")

	for _, f := range client.AllFields() {
		name := string(f)
		values[f] = rootCmd.Flags().String(name, "", name)
	}

	return rootCmd
}

// printJSON writes resp indented by four spaces, keeping the registry's key
// order.
func printJSON(cmd *cobra.Command, resp client.Response) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, resp, "", "    "); err != nil {
		return err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), buf.String())
	return err
}
