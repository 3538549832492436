package ledger

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	directiveLine = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\s+(\S+)(?:\s+(.*))?$`)
	metadataLine  = regexp.MustCompile(`^\s+[a-z][A-Za-z0-9_-]*:\s+"[^"]*"\s*$`)
	currencyName  = regexp.MustCompile(`^[A-Z][A-Z0-9'._-]*$`)
	openArgs      = regexp.MustCompile(`^(\S+)(?:\s+([A-Z][A-Z0-9'._-]*(?:\s*,\s*[A-Z][A-Z0-9'._-]*)*))?\s*$`)
	txnStrings    = regexp.MustCompile(`^(?:"(?:[^"\\]|\\.)*"\s*){0,2}$`)
	postingLine   = regexp.MustCompile(`^\s+(\S+)\s+(-?\d+(?:\.\d+)?)\s+([A-Z][A-Z0-9'._-]*)` +
		`(?:\s+\{\s*(-?\d+(?:\.\d+)?)\s+([A-Z][A-Z0-9'._-]*)\s*\}|\s+@\s+(-?\d+(?:\.\d+)?)\s+([A-Z][A-Z0-9'._-]*))?\s*$`)
)

// BeancountValidator checks the subset of beancount syntax this tool emits:
// commodity and open directives, and transactions with cost or price
// annotated postings.
type BeancountValidator struct {
	tolerance decimal.Decimal
}

// NewBeancountValidator returns a validator that tolerates residuals up to half a cent.
func NewBeancountValidator() *BeancountValidator {
	return &BeancountValidator{tolerance: decimal.New(5, -3)}
}

type (
	openedAccount struct {
		date       time.Time
		currencies map[string]struct{}
	}
	parsedPosting struct {
		line     int
		account  string
		number   decimal.Decimal
		currency string
		weight   *parsedAmount
	}
	parsedAmount struct {
		number   decimal.Decimal
		currency string
	}
	pendingTransaction struct {
		line     int
		date     time.Time
		postings []parsedPosting
	}
	validation struct {
		tolerance   decimal.Decimal
		opened      map[string]openedAccount
		txn         *pendingTransaction
		inCommodity bool
		diagnostics []Diagnostic
	}
)

// Validate returns every problem found in document, in line order.
func (v *BeancountValidator) Validate(document string) []Diagnostic {
	s := &validation{
		tolerance: v.tolerance,
		opened:    make(map[string]openedAccount),
	}
	for i, line := range strings.Split(document, "\n") {
		n := i + 1
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			s.closeTransaction()
			s.inCommodity = false
		case strings.HasPrefix(trimmed, ";"):
		case line[0] == ' ' || line[0] == '\t':
			s.indented(n, line)
		default:
			s.closeTransaction()
			s.inCommodity = false
			s.directive(n, line)
		}
	}
	s.closeTransaction()
	return s.diagnostics
}

func (s *validation) report(line int, format string, args ...any) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Line: line, Message: fmt.Sprintf(format, args...)})
}

func (s *validation) directive(n int, line string) {
	m := directiveLine.FindStringSubmatch(line)
	if m == nil {
		s.report(n, "unexpected line %q", line)
		return
	}
	date, err := time.Parse(dateLayout, m[1])
	if err != nil {
		s.report(n, "invalid date %q", m[1])
		return
	}
	args := strings.TrimSpace(m[3])

	switch m[2] {
	case "commodity":
		if !currencyName.MatchString(args) {
			s.report(n, "invalid commodity %q", args)
		}
		s.inCommodity = true
	case "open":
		s.open(n, date, args)
	case "*", "!", "txn":
		if !txnStrings.MatchString(args) {
			s.report(n, "invalid transaction header %q", args)
		}
		s.txn = &pendingTransaction{line: n, date: date}
	default:
		s.report(n, "unknown directive %q", m[2])
	}
}

func (s *validation) open(n int, date time.Time, args string) {
	m := openArgs.FindStringSubmatch(args)
	if m == nil {
		s.report(n, "invalid open directive %q", args)
		return
	}
	account := m[1]
	if err := ValidateAccount(account); err != nil {
		s.report(n, "%v", err)
		return
	}
	if _, dup := s.opened[account]; dup {
		s.report(n, "account %s opened twice", account)
		return
	}
	currencies := make(map[string]struct{})
	if m[2] != "" {
		for _, c := range strings.Split(m[2], ",") {
			currencies[strings.TrimSpace(c)] = struct{}{}
		}
	}
	s.opened[account] = openedAccount{date: date, currencies: currencies}
}

func (s *validation) indented(n int, line string) {
	switch {
	case s.txn != nil:
		p, ok := parsePosting(n, line)
		if !ok {
			s.report(n, "malformed posting %q", strings.TrimSpace(line))
			return
		}
		s.txn.postings = append(s.txn.postings, p)
	case s.inCommodity:
		if !metadataLine.MatchString(line) {
			s.report(n, "malformed metadata %q", strings.TrimSpace(line))
		}
	default:
		s.report(n, "indented line outside of a directive")
	}
}

func parsePosting(n int, line string) (parsedPosting, bool) {
	m := postingLine.FindStringSubmatch(line)
	if m == nil {
		return parsedPosting{}, false
	}
	number, err := decimal.NewFromString(m[2])
	if err != nil {
		return parsedPosting{}, false
	}
	p := parsedPosting{line: n, account: m[1], number: number, currency: m[3]}

	unit, unitCurrency := m[4], m[5]
	if unit == "" {
		unit, unitCurrency = m[6], m[7]
	}
	if unit != "" {
		price, err := decimal.NewFromString(unit)
		if err != nil {
			return parsedPosting{}, false
		}
		p.weight = &parsedAmount{number: number.Mul(price), currency: unitCurrency}
	}
	return p, true
}

func (s *validation) closeTransaction() {
	t := s.txn
	if t == nil {
		return
	}
	s.txn = nil

	if len(t.postings) < 2 {
		s.report(t.line, "transaction needs at least two postings, got %d", len(t.postings))
	}

	sums := make(map[string]decimal.Decimal)
	for _, p := range t.postings {
		s.checkPostingAccount(t.date, p)
		if p.weight != nil {
			sums[p.weight.currency] = sums[p.weight.currency].Add(p.weight.number)
			continue
		}
		sums[p.currency] = sums[p.currency].Add(p.number)
	}

	currencies := make([]string, 0, len(sums))
	for c := range sums {
		currencies = append(currencies, c)
	}
	sort.Strings(currencies)
	for _, c := range currencies {
		if sums[c].Abs().GreaterThan(s.tolerance) {
			s.report(t.line, "transaction does not balance: %s %s", sums[c].String(), c)
		}
	}
}

func (s *validation) checkPostingAccount(date time.Time, p parsedPosting) {
	if err := ValidateAccount(p.account); err != nil {
		s.report(p.line, "%v", err)
		return
	}
	acc, ok := s.opened[p.account]
	if !ok {
		s.report(p.line, "posting to unopened account %s", p.account)
		return
	}
	if date.Before(acc.date) {
		s.report(p.line, "posting to %s before it was opened on %s", p.account, acc.date.Format(dateLayout))
	}
	if len(acc.currencies) > 0 {
		if _, allowed := acc.currencies[p.currency]; !allowed {
			s.report(p.line, "currency %s not allowed in %s", p.currency, p.account)
		}
	}
}
