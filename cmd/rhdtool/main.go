// Rhdtool exercises the driver core from the command line: it computes and
// validates modes, draws test pictures and decodes command stream dumps.
//
// Settings are read from RHD_ variables, see package config. An .env file
// in the working directory is loaded first.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/clktmr/radeonhd/config"
	"github.com/clktmr/radeonhd/tools/csdump"
	"github.com/clktmr/radeonhd/tools/cvt"
	"github.com/clktmr/radeonhd/tools/fill"
	"github.com/clktmr/radeonhd/tools/validate"
)

var (
	cfg     config.Config
	envFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "rhdtool",
	Short: "rhdtool is a tool for RadeonHD mode setting and acceleration.",
	Long: `rhdtool is a tool for RadeonHD mode setting and acceleration. Without
RHD_SLOT it works on a simulated card.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		cfg, err = config.Load(envFile)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "file with RHD_ variables")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log driver activity")

	rootCmd.AddCommand(cvt.Command())
	rootCmd.AddCommand(validate.Command(&cfg))
	rootCmd.AddCommand(fill.Command(&cfg))
	rootCmd.AddCommand(csdump.Command())
}

func main() {
	log.Default().SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
