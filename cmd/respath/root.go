package respath

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/respath/internal/version"
	"github.com/arthur-debert/respath/pkg/cobrax/topics"
	"github.com/arthur-debert/respath/pkg/config"
	"github.com/arthur-debert/respath/pkg/logging"
	"github.com/arthur-debert/respath/pkg/output"
	"github.com/arthur-debert/respath/pkg/paths"
	"github.com/arthur-debert/respath/pkg/translation"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app carries what the commands share once the root command has loaded the
// configuration
type app struct {
	fs afero.Fs

	verbosity  int
	configFile string
	format     string

	cfg      *config.Config
	pathOpts []paths.Option
	reg      *translation.Registry
	closer   io.Closer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	initTemplateFormatting()

	a := &app{fs: fs}

	rootCmd := &cobra.Command{
		Use:     "respath",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, args)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newFormatCmd(a))
	rootCmd.AddCommand(newDetectCmd(a))
	rootCmd.AddCommand(newConfigsCmd(a))
	rootCmd.AddCommand(newRoundTripCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(os.Stdout),
	}
	if _, err := topics.InitializeWithOptions(rootCmd, topicFiles, "topics", opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// setup loads the configuration and starts logging. The translation registry
// is loaded on first use so that commands without paths do not need it.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	overrides := map[string]interface{}{}
	if a.format != "" {
		overrides["output.format"] = a.format
	}

	dirs := paths.NewDirs()
	cfg, err := config.Load(config.Options{File: a.configFile, Dirs: dirs, Overrides: overrides, Fs: a.fs})
	if err != nil {
		a.closer = logging.SetupLogger(a.verbosity)
		return fmt.Errorf(MsgErrLoadConfig, err)
	}

	a.closer = logging.Setup(a.verbosity, cfg.LogFile(dirs))
	logging.LogCommand(cmd.CommandPath(), args)
	log.Debug().Strs("sources", cfg.Sources).Msg("Configuration ready")

	if err := cfg.LoadEnvFiles(a.fs); err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}

	pathOpts, err := cfg.PathOptions()
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	a.cfg = cfg
	a.pathOpts = pathOpts
	return nil
}

func (a *app) teardown() {
	if a.closer != nil {
		_ = a.closer.Close()
		a.closer = nil
	}
}

// registry loads the translation configurations once per run
func (a *app) registry() (*translation.Registry, error) {
	if a.reg != nil {
		return a.reg, nil
	}
	reg, err := a.cfg.Registry(a.fs)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadRegistry, err)
	}
	a.reg = reg
	return reg, nil
}

// renderer writes to the command output in the configured format
func (a *app) renderer(cmd *cobra.Command) (*output.Renderer, error) {
	f, err := output.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return newRenderer(cmd.OutOrStdout(), f), nil
}

func newRenderer(w io.Writer, f output.Format) *output.Renderer {
	if file, ok := w.(*os.File); ok {
		f = f.Resolve(file)
	}
	return output.NewRenderer(w, f)
}

// ReportError prints err to the error output of cmd in the format selected
// with --format, listing the attempts of a failed format operation
func ReportError(cmd *cobra.Command, err error) {
	name, _ := cmd.PersistentFlags().GetString("format")
	f, perr := output.ParseFormat(name)
	if perr != nil {
		f = output.FormatAuto
	}
	if rerr := newRenderer(cmd.ErrOrStderr(), f).Error(err); rerr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
}
