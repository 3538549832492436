package ledger

import (
	"fmt"
	"strings"

	"github.com/goodnatureofminers/btc-beancounter/internal/model"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// btcCommodity is dated at the bitcoin whitepaper release.
const btcCommodity = `2008-10-31 commodity BTC
  name: "Bitcoin"
  asset-class: "cryptocurrency"
`

type (
	// Validator checks a rendered document and reports its problems.
	Validator interface {
		Validate(document string) []Diagnostic
	}
	// DiagnosticsMetrics counts validation findings.
	DiagnosticsMetrics interface {
		ObserveDiagnostics(count int)
	}
)

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	if d.Line == 0 {
		return d.Message
	}
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

// Assembler renders a ledger and runs it past a validator.
type Assembler struct {
	validator Validator
	metrics   DiagnosticsMetrics
	logger    *zap.Logger
}

// NewAssembler constructs an Assembler. A nil validator skips validation.
func NewAssembler(validator Validator, metrics DiagnosticsMetrics, logger *zap.Logger) *Assembler {
	return &Assembler{validator: validator, metrics: metrics, logger: logger}
}

// Assemble renders the document. Validation problems are logged, never fatal.
func (a *Assembler) Assemble(ledger *model.Ledger) string {
	document := Render(ledger)
	if a.validator == nil {
		return document
	}

	diagnostics := a.validator.Validate(document)
	if a.metrics != nil {
		a.metrics.ObserveDiagnostics(len(diagnostics))
	}
	if len(diagnostics) > 0 {
		a.logger.Error("generated ledger has errors", zap.Int("count", len(diagnostics)))
		for _, d := range diagnostics {
			a.logger.Error("ledger diagnostic", zap.Int("line", d.Line), zap.String("message", d.Message))
		}
	}
	return document
}

// Render concatenates the commodity directive, the open directives, a blank
// line and the entries in ledger order.
func Render(ledger *model.Ledger) string {
	var sb strings.Builder
	sb.WriteString(btcCommodity)
	sb.WriteString("\n")
	for _, open := range ledger.Accounts {
		fmt.Fprintf(&sb, "%s open %s  %s\n", open.Date.Format(dateLayout), open.Account, open.Currency)
	}
	for _, entry := range ledger.Entries {
		sb.WriteString("\n")
		sb.WriteString(FormatEntry(entry))
	}
	return sb.String()
}

// FormatEntry renders a single transaction directive.
func FormatEntry(entry model.LedgerEntry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s * %q %q\n", entry.Date.Format(dateLayout), string(entry.Payee), entry.Narration)
	for _, p := range entry.Postings {
		sb.WriteString("  ")
		sb.WriteString(FormatPosting(p))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatPosting renders one posting; BTC amounts use 8 places, fiat amounts 2.
func FormatPosting(p model.Posting) string {
	s := fmt.Sprintf("%s  %s", p.Account, formatAmount(p.Amount))
	switch {
	case p.Cost != nil:
		s += fmt.Sprintf(" {%s}", formatAmount(*p.Cost))
	case p.Price != nil:
		s += fmt.Sprintf(" @ %s", formatAmount(*p.Price))
	}
	return s
}

func formatAmount(a model.Amount) string {
	places := int32(fiatPlaces)
	if a.Currency == model.BTC {
		places = btcPlaces
	}
	return a.Number.StringFixed(places) + " " + string(a.Currency)
}
