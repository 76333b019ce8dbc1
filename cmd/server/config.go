package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const version = "1.0.0"

type config struct {
	bind          string
	port          int
	roomMaxAge    time.Duration
	sweepInterval time.Duration
	verbose       bool
}

func (c *config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.sweepInterval <= 0 {
		return fmt.Errorf("invalid sweep interval: %s", c.sweepInterval)
	}
	return nil
}

func newCmd(cfg *config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("BREAKTHECODE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "breakthecode",
		Short:         "A real-time two-player code-breaking duel, served over websockets.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: BREAKTHECODE_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: BREAKTHECODE_PORT)")
	fs.DurationVar(&cfg.roomMaxAge, "room-max-age", 30*time.Minute, "idle age after which empty rooms are removed (env: BREAKTHECODE_ROOM_MAX_AGE)")
	fs.DurationVar(&cfg.sweepInterval, "sweep-interval", 30*time.Minute, "how often stale rooms are swept (env: BREAKTHECODE_SWEEP_INTERVAL)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "enable debug logging (env: BREAKTHECODE_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("breakthecode v{{.Version}}\n")

	return cmd
}
