package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joss/pdgid/internal/scan"
	"github.com/joss/pdgid/internal/selftest"
	"github.com/joss/pdgid/pkg/pdgid"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))
)

var numbers = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators.
func FormatCount[T ~int | ~int64](n T) string {
	return numbers.Sprintf("%d", n)
}

// Renderer formats decoder results for one output format.
type Renderer struct {
	*Writer
	format string
	pretty bool
}

// New creates a renderer. pretty enables colour and boxes for text output.
func New(w io.Writer, format string, pretty bool) *Renderer {
	if format == "" {
		format = FormatText
	}
	return &Renderer{Writer: NewWriter(w), format: format, pretty: pretty && format == FormatText}
}

// Structured reports whether output is JSON or YAML.
func (r *Renderer) Structured() bool {
	return r.format != FormatText
}

func (r *Renderer) value(v pdgid.Value) string {
	s := v.String()
	if !r.pretty {
		return s
	}
	switch {
	case !v.Defined:
		return color.YellowString(s)
	case v.Kind == pdgid.KindBool && v.Bool:
		return color.GreenString(s)
	case v.Kind == pdgid.KindBool:
		return color.HiBlackString(s)
	}
	return color.CyanString(s)
}

func (r *Renderer) title(s string) string {
	if !r.pretty {
		return s
	}
	return titleStyle.Render(s)
}

// InspectRecord is the structured form of one inspected code.
type InspectRecord struct {
	ID      int64          `json:"id" yaml:"id"`
	Repr    string         `json:"repr" yaml:"repr"`
	Queries map[string]any `json:"queries" yaml:"queries"`
}

// Inspect lists every query (or those matching patterns) for each code.
func (r *Renderer) Inspect(ids []pdgid.PDGID, patterns []string) error {
	if r.Structured() {
		records := make([]InspectRecord, 0, len(ids))
		for _, id := range ids {
			rec := InspectRecord{ID: id.Int(), Repr: id.String(), Queries: make(map[string]any)}
			for _, res := range Select(id.Describe(), patterns) {
				rec.Queries[res.Name] = res.Value.Interface()
			}
			records = append(records, rec)
		}
		return Encode(r.out, r.format, records)
	}

	for i, id := range ids {
		if i > 0 {
			r.Line()
		}
		results := Select(id.Describe(), patterns)
		width := 0
		for _, res := range results {
			width = max(width, len(res.Name))
		}

		var sb strings.Builder
		sb.WriteString(r.title(id.String()))
		for _, res := range results {
			name := fmt.Sprintf("%-*s", width, res.Name)
			if r.pretty {
				name = nameStyle.Render(name)
			}
			fmt.Fprintf(&sb, "\n%s  %s", name, r.value(res.Value))
		}
		if len(results) == 0 {
			sb.WriteString("\nno queries match")
		}

		if r.pretty {
			r.Println("%s", boxStyle.Render(sb.String()))
		} else {
			r.Println("%s", sb.String())
		}
	}
	return nil
}

// ClassifyRecord is the structured form of a classification.
type ClassifyRecord struct {
	ID         int64    `json:"id" yaml:"id"`
	Valid      bool     `json:"valid" yaml:"valid"`
	Categories []string `json:"categories" yaml:"categories"`
}

// Classify prints one line per code with its true categories.
func (r *Renderer) Classify(ids []pdgid.PDGID) error {
	if r.Structured() {
		records := make([]ClassifyRecord, 0, len(ids))
		for _, id := range ids {
			cats := id.Categories()
			if cats == nil {
				cats = []string{}
			}
			records = append(records, ClassifyRecord{ID: id.Int(), Valid: id.IsValid(), Categories: cats})
		}
		return Encode(r.out, r.format, records)
	}

	for _, id := range ids {
		cats := strings.Join(id.Categories(), " ")
		if cats == "" {
			cats = "-"
		}
		icon := ""
		if r.pretty {
			icon = color.GreenString(BoolIcon(true)) + " "
			if !id.IsValid() {
				icon = color.RedString(BoolIcon(false)) + " "
			}
		}
		r.Println("%s%s %s", icon, id, cats)
	}
	return nil
}

// ChargeRecord is the structured form of a charge lookup.
type ChargeRecord struct {
	ID          int64 `json:"id" yaml:"id"`
	ThreeCharge any   `json:"three_charge" yaml:"three_charge"`
	Charge      any   `json:"charge" yaml:"charge"`
}

func (r *Renderer) chargeValues(id pdgid.PDGID) (three, charge pdgid.Value) {
	tq, _ := pdgid.LookupQuery("three_charge")
	cq, _ := pdgid.LookupQuery("charge")
	return tq.Eval(id), cq.Eval(id)
}

// Charges prints three_charge and charge for each code.
func (r *Renderer) Charges(ids []pdgid.PDGID) error {
	if r.Structured() {
		records := make([]ChargeRecord, 0, len(ids))
		for _, id := range ids {
			three, charge := r.chargeValues(id)
			records = append(records, ChargeRecord{ID: id.Int(), ThreeCharge: three.Interface(), Charge: charge.Interface()})
		}
		return Encode(r.out, r.format, records)
	}

	for _, id := range ids {
		three, charge := r.chargeValues(id)
		r.Println("%d three_charge=%s charge=%s", id.Int(), r.value(three), r.value(charge))
	}
	return nil
}

// QueryRecord is the structured form of a query description.
type QueryRecord struct {
	Name string `json:"name" yaml:"name"`
	Kind string `json:"kind" yaml:"kind"`
	Doc  string `json:"doc" yaml:"doc"`
}

// Queries lists query names with their result kind and description.
func (r *Renderer) Queries(qs []pdgid.Query) error {
	if r.Structured() {
		records := make([]QueryRecord, 0, len(qs))
		for _, q := range qs {
			records = append(records, QueryRecord{Name: q.Name, Kind: q.Kind.String(), Doc: q.Doc})
		}
		return Encode(r.out, r.format, records)
	}

	if len(qs) == 0 {
		r.Empty("No queries match")
		return nil
	}
	width := 0
	for _, q := range qs {
		width = max(width, len(q.Name))
	}
	for _, q := range qs {
		kind := fmt.Sprintf("%-5s", q.Kind)
		if r.pretty {
			kind = color.HiBlackString(kind)
		}
		r.Println("%-*s  %s  %s", width, q.Name, kind, q.Doc)
	}
	return nil
}

// Scan prints a scan report.
func (r *Renderer) Scan(rep *scan.Report) error {
	if r.Structured() {
		return Encode(r.out, r.format, rep)
	}

	r.Header("scan %d..%d where %s", rep.From, rep.To, strings.Join(rep.Where, " && "))
	for _, m := range rep.Matches {
		r.Println("%d", m.Int())
	}
	if len(rep.Matches) == 0 {
		r.Empty("No codes match")
	}

	r.Section("counts")
	for _, q := range pdgid.QueryNames() {
		if n, ok := rep.Counts[q]; ok {
			r.Item("%-28s %s", q, FormatCount(n))
		}
	}
	r.Line()
	r.Println("%s codes scanned, %s matched in %s",
		FormatCount(rep.Scanned), FormatCount(len(rep.Matches)), FormatDuration(rep.Elapsed))
	return nil
}

// Selftest prints a selftest report.
func (r *Renderer) Selftest(rep *selftest.Report, verbose bool) error {
	if r.Structured() {
		return Encode(r.out, r.format, rep)
	}
	if !verbose {
		r.Println("%s", rep.QuickCheck())
		return nil
	}
	summary := rep.Summary()
	if r.pretty {
		summary = strings.ReplaceAll(summary, "✓", color.GreenString("✓"))
		summary = strings.ReplaceAll(summary, "✗", color.RedString("✗"))
	}
	r.Print("%s", summary)
	return nil
}

// FormatDuration formats a duration in human-readable form.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
}
