package ledger

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goodnatureofminers/btc-beancounter/internal/model"
)

// ErrInvalidAccount is returned for account names beancount would reject.
var ErrInvalidAccount = errors.New("invalid account name")

var (
	accountRoots = map[string]struct{}{
		"Assets":      {},
		"Liabilities": {},
		"Equity":      {},
		"Income":      {},
		"Expenses":    {},
	}
	accountComponent = regexp.MustCompile(`^[\p{Lu}\p{Nd}][\p{L}\p{Nd}-]*$`)
)

// AccountName is the symbolic path of an account. Empty components are dropped.
type AccountName struct {
	Type         string
	Jurisdiction string
	Institution  string
	Asset        string
	Subaccount   string
}

// String joins the non-empty components with ':' and upper-cases their first letter.
func (n AccountName) String() string {
	parts := make([]string, 0, 5)
	for _, c := range []string{n.Type, n.Jurisdiction, n.Institution, n.Asset, n.Subaccount} {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		parts = append(parts, capitalize(c))
	}
	return strings.Join(parts, ":")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// DefaultBTCAccount is Assets:BTC.
func DefaultBTCAccount() AccountName {
	return AccountName{Type: "assets", Asset: string(model.BTC)}
}

// DefaultFiatAccount treats cash as a liability, e.g. Liabilities:Cash:USD.
func DefaultFiatAccount(currency model.Currency) AccountName {
	return AccountName{Type: "liabilities", Institution: "cash", Asset: string(currency)}
}

// ValidateAccount checks name against the beancount account grammar.
func ValidateAccount(name string) error {
	parts := strings.Split(name, ":")
	if len(parts) < 2 {
		return fmt.Errorf("%w: %q needs a root and at least one component", ErrInvalidAccount, name)
	}
	if _, ok := accountRoots[parts[0]]; !ok {
		return fmt.Errorf("%w: %q has unknown root %q", ErrInvalidAccount, name, parts[0])
	}
	for _, p := range parts[1:] {
		if !accountComponent.MatchString(p) {
			return fmt.Errorf("%w: %q has bad component %q", ErrInvalidAccount, name, p)
		}
	}
	return nil
}

// Accounts holds the two validated accounts every entry posts to.
type Accounts struct {
	BTC  string
	Fiat string
}

// NewAccounts renders and validates both account names.
func NewAccounts(btc, fiat AccountName) (Accounts, error) {
	a := Accounts{BTC: btc.String(), Fiat: fiat.String()}
	if err := ValidateAccount(a.BTC); err != nil {
		return Accounts{}, err
	}
	if err := ValidateAccount(a.Fiat); err != nil {
		return Accounts{}, err
	}
	if a.BTC == a.Fiat {
		return Accounts{}, fmt.Errorf("%w: btc and fiat accounts are both %q", ErrInvalidAccount, a.BTC)
	}
	return a, nil
}
