package respath

import (
	"fmt"

	"github.com/arthur-debert/respath/internal/version"
	"github.com/arthur-debert/respath/pkg/errors"
	"github.com/arthur-debert/respath/pkg/output"
	"github.com/arthur-debert/respath/pkg/paths"
	"github.com/arthur-debert/respath/pkg/translation"
	"github.com/arthur-debert/respath/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// styleCompletion completes style names
func styleCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(types.AllStyles()))
	for _, s := range types.AllStyles() {
		names = append(names, s.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// targetStyle parses name, falling back to the configured default style
func (a *app) targetStyle(name string) (types.Style, error) {
	if name == "" {
		return a.cfg.DefaultStyle()
	}
	return types.ParseStyle(name)
}

type formatFlags struct {
	style string
	force bool
	only  string
	sep   string
	vars  map[string]string
}

func (f *formatFlags) options(a *app) []paths.FormatOption {
	opts := a.cfg.FormatOptions()
	if f.force {
		opts = append(opts, paths.ForceValidate())
	}
	if f.only != "" {
		opts = append(opts, paths.OnlyConfig(f.only))
	}
	if f.sep != "" {
		opts = append(opts, paths.WithSeparator(f.sep))
	}
	if len(f.vars) > 0 {
		opts = append(opts, paths.WithVars(f.vars))
	}
	return opts
}

func newFormatCmd(a *app) *cobra.Command {
	var flags formatFlags

	cmd := &cobra.Command{
		Use:     "format <path>",
		Short:   MsgFormatShort,
		Long:    MsgFormatLong,
		Example: MsgFormatExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			style, err := a.targetStyle(flags.style)
			if err != nil {
				return err
			}

			p := paths.New(args[0], reg, a.pathOpts...)
			result, err := p.Format(style, flags.options(a)...)
			if err != nil {
				return err
			}

			log.Info().
				Str("input", args[0]).
				Str("style", style.String()).
				Str("result", result).
				Msg("Formatted path")

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.Formatted(output.FormatView{Input: args[0], Style: style.String(), Result: result})
		},
	}

	cmd.Flags().StringVarP(&flags.style, "style", "s", "", MsgFlagStyle)
	cmd.Flags().BoolVar(&flags.force, "force", false, MsgFlagForce)
	cmd.Flags().StringVar(&flags.only, "only", "", MsgFlagOnly)
	cmd.Flags().StringVar(&flags.sep, "sep", "", MsgFlagSep)
	cmd.Flags().StringToStringVar(&flags.vars, "var", nil, MsgFlagVar)
	_ = cmd.RegisterFlagCompletionFunc("style", styleCompletion)

	return cmd
}

func newDetectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "detect <path>",
		Short:   MsgDetectShort,
		Long:    MsgDetectLong,
		Example: MsgDetectExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			p := paths.New(args[0], reg, a.pathOpts...)

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.Identity(output.NewIdentityView(p))
		},
	}
}

func newConfigsCmd(a *app) *cobra.Command {
	var export string

	cmd := &cobra.Command{
		Use:     "configs [name]",
		Short:   MsgConfigsShort,
		Long:    MsgConfigsLong,
		Example: MsgConfigsExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if a.cfg == nil {
				if err := a.setup(cmd, args); err != nil {
					return nil, cobra.ShellCompDirectiveError
				}
				defer a.teardown()
			}
			reg, err := a.registry()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return reg.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if reg, err = reg.Only(args[0]); err != nil {
					return err
				}
			}

			if export == "" {
				r, err := a.renderer(cmd)
				if err != nil {
					return err
				}
				return r.Configs(output.NewConfigViews(reg))
			}
			return exportConfigs(cmd, reg, export)
		},
	}

	cmd.Flags().StringVar(&export, "export", "", MsgFlagExport)
	_ = cmd.RegisterFlagCompletionFunc("export", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{translation.FormatTOML, translation.FormatYAML}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// exportConfigs writes the configurations of reg in the translation_map
// format. YAML output separates configurations as documents.
func exportConfigs(cmd *cobra.Command, reg *translation.Registry, format string) error {
	configs := reg.Configs()
	if format == translation.FormatTOML && len(configs) > 1 {
		return errors.Newf(errors.ErrInvalidInput, MsgErrExportMany, len(configs)).
			WithDetail("configs", reg.Names())
	}

	w := cmd.OutOrStdout()
	for i, c := range configs {
		if i > 0 {
			fmt.Fprintln(w, "---")
		}
		if err := translation.WriteTable(w, c, format); err != nil {
			return err
		}
	}
	return nil
}

func newRoundTripCmd(a *app) *cobra.Command {
	var (
		via   string
		flags formatFlags
	)

	cmd := &cobra.Command{
		Use:     "roundtrip <uri>",
		Short:   MsgRoundTripShort,
		Long:    MsgRoundTripLong,
		Example: MsgRoundTripExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			style, err := a.targetStyle(via)
			if err != nil {
				return err
			}

			input := args[0]
			p := paths.New(input, reg, a.pathOpts...)
			if id := p.Identity(); id == nil || id.Style() != types.StyleURI {
				detected := p.State().String()
				if id != nil {
					detected = id.Style().String()
				}
				return errors.Newf(errors.ErrInvalidInput, MsgErrRoundTripURI, input, detected)
			}

			opts := flags.options(a)
			intermediate, err := p.Format(style, opts...)
			if err != nil {
				return err
			}
			back, err := paths.New(intermediate, reg, a.pathOpts...).Format(types.StyleURI, opts...)
			if err != nil {
				return err
			}

			view := output.RoundTripView{
				Input:        input,
				Via:          style.String(),
				Intermediate: intermediate,
				Output:       back,
				OK:           back == input,
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			if err := r.RoundTrip(view); err != nil {
				return err
			}
			if !view.OK {
				return errors.Newf(errors.ErrValidationRejected, MsgErrRoundTripDiff, input, back)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&via, "via", "", MsgFlagVia)
	cmd.Flags().BoolVar(&flags.force, "force", false, MsgFlagForce)
	cmd.Flags().StringVar(&flags.only, "only", "", MsgFlagOnly)
	_ = cmd.RegisterFlagCompletionFunc("via", styleCompletion)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, MsgVersionFormat, version.Version)
			fmt.Fprintf(w, MsgCommitFormat, version.Commit)
			fmt.Fprintf(w, MsgBuiltFormat, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
		},
	}
}
