package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jsvensson/h2si"
	"github.com/jsvensson/h2si/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("h2si.cli")

// app carries the configuration shared by every subcommand.
type app struct {
	v        *viper.Viper
	cfgFile  string
	settings config.Settings
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:          "h2si",
		Short:        "Convert and interpolate colours in the H2SI colour space",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		RunE: a.runDemo,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./h2si.yaml)")
	root.PersistentFlags().CountP("verbose", "v", "increase log verbosity (can be repeated)")
	root.PersistentFlags().Int("precision", 6, "decimals used for printed numbers")
	a.bind("verbose", root.PersistentFlags().Lookup("verbose"))
	a.bind("precision", root.PersistentFlags().Lookup("precision"))

	root.AddCommand(
		a.newEncodeCmd(),
		a.newDecodeCmd(),
		a.newRGBCmd(),
		a.newLerpCmd(),
		a.newDistanceCmd(),
		a.newGradientCmd(),
		a.newFmtCmd(),
		a.newCheckCmd(),
		newVersionCmd(),
	)

	return root
}

func (a *app) bind(key string, flag *pflag.Flag) {
	if err := a.v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("failed to bind flag %s: %v", key, err))
	}
}

// load layers the config file, environment and flags, then configures logging.
func (a *app) load() error {
	if err := config.ReadFile(a.v, a.cfgFile); err != nil {
		return err
	}

	s, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.settings = s

	commonlog.Configure(s.Verbose, nil)
	if used := a.v.ConfigFileUsed(); used != "" {
		log.Infof("using config file %s", used)
	}
	return nil
}

func (a *app) float(f float64) string {
	return strconv.FormatFloat(f+0, 'f', a.settings.Precision, 64)
}

func (a *app) runDemo(cmd *cobra.Command, args []string) error {
	in := h2si.HSI{H: 0, S: 0, I: 1}
	x, err := h2si.HSIToH2SI(in)
	if err != nil {
		return err
	}
	printDemo(cmd.OutOrStdout(), in, x)
	return nil
}

func printDemo(w io.Writer, in h2si.HSI, x h2si.H2SI) {
	fmt.Fprintf(w, "%s\n  -> %s\n  -> %s\n", in, x, x.HSI())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
