package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/arthur-debert/respath/pkg/errors"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Renderer writes result views in one concrete format
type Renderer struct {
	w      io.Writer
	format Format
	theme  *Theme
}

// NewRenderer creates a renderer. FormatAuto is treated as FormatText; call
// Format.Resolve first to pick between term and text.
func NewRenderer(w io.Writer, f Format) *Renderer {
	if f == FormatAuto {
		f = FormatText
	}
	return &Renderer{w: w, format: f, theme: DefaultTheme()}
}

// OutputFormat returns the concrete format in use
func (r *Renderer) OutputFormat() Format { return r.format }

// Formatted writes the result of a format operation. Plain formats print only
// the result so the output can be used in shell substitutions.
func (r *Renderer) Formatted(v FormatView) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		return r.machine(v)
	default:
		_, err := fmt.Fprintln(r.w, v.Result)
		return err
	}
}

// Identity writes the detection result for one input
func (r *Renderer) Identity(v IdentityView) error {
	if r.format == FormatJSON || r.format == FormatYAML {
		return r.machine(v)
	}

	rows := [][2]string{{"input", v.Input}, {"state", v.State}}
	if v.State == "Resolved" {
		rows = append(rows,
			[2]string{"style", v.Style},
			[2]string{"resource", v.Resource},
			[2]string{"config", v.Config},
			[2]string{"anchor", strings.Join(v.Anchor, " ")},
			[2]string{"segments", strings.Join(v.Segments, " ")},
		)
		if len(v.Metadata) > 0 {
			rows = append(rows, [2]string{"metadata", formatMetadata(v.Metadata)})
		}
	}

	var b strings.Builder
	for _, row := range rows {
		if r.format == FormatTerminal {
			b.WriteString(r.theme.Render("Label", row[0]))
			b.WriteString(r.theme.Render(valueStyle(row[0]), row[1]))
		} else {
			fmt.Fprintf(&b, "%-10s%s", row[0], row[1])
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

func valueStyle(label string) string {
	switch label {
	case "resource":
		return "Resource"
	case "style":
		return "Style"
	case "config":
		return "Config"
	default:
		return "Value"
	}
}

// Configs writes the registry listing
func (r *Renderer) Configs(views []ConfigView) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		return r.machine(views)
	case FormatTerminal:
		data := pterm.TableData{{"#", "Name", "Enabled", "Validator", "Resources", "Source"}}
		for _, v := range views {
			data = append(data, []string{
				fmt.Sprint(v.Priority), v.Name, fmt.Sprint(v.Enabled), v.Validator,
				strings.Join(v.Resources, ", "), v.Source,
			})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to render table")
		}
		_, err = fmt.Fprintln(r.w, table)
		return err
	default:
		tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tNAME\tENABLED\tVALIDATOR\tRESOURCES\tSOURCE")
		for _, v := range views {
			fmt.Fprintf(tw, "%d\t%s\t%t\t%s\t%s\t%s\n",
				v.Priority, v.Name, v.Enabled, v.Validator, strings.Join(v.Resources, ","), v.Source)
		}
		return tw.Flush()
	}
}

// RoundTrip writes a round trip report
func (r *Renderer) RoundTrip(v RoundTripView) error {
	if r.format == FormatJSON || r.format == FormatYAML {
		return r.machine(v)
	}

	status := "ok"
	if !v.OK {
		status = "MISMATCH"
	}
	if r.format == FormatTerminal {
		if v.OK {
			status = r.theme.Render("Success", status)
		} else {
			status = r.theme.Render("Error", status)
		}
	}
	_, err := fmt.Fprintf(r.w, "%s\n  -> %s (%s)\n  -> %s\n%s\n", v.Input, v.Intermediate, v.Via, v.Output, status)
	return err
}

// Error writes err, including the per configuration attempts of a failed
// format operation
func (r *Renderer) Error(err error) error {
	v := NewErrorView(err)
	if r.format == FormatJSON || r.format == FormatYAML {
		return r.machine(v)
	}

	msg := "error: " + v.Message
	if r.format == FormatTerminal {
		msg = r.theme.Render("Error", msg)
	}
	if _, werr := fmt.Fprintln(r.w, msg); werr != nil {
		return werr
	}
	for _, a := range v.Attempts {
		line := "  " + a.String()
		if r.format == FormatTerminal {
			line = r.theme.Render("Attempt", a.String())
		}
		if _, werr := fmt.Fprintln(r.w, line); werr != nil {
			return werr
		}
	}
	return nil
}

func (r *Renderer) machine(v interface{}) error {
	if r.format == FormatYAML {
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
		}
		return enc.Close()
	}

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode json")
	}
	return nil
}

func formatMetadata(md map[string]string) string {
	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+md[k])
	}
	return strings.Join(pairs, " ")
}
