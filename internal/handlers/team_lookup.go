package handlers

import (
	"context"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
)

// teamLookup resolves account ids of the current team to names and
// currency symbols when rendering transactions.
type teamLookup struct {
	accountNames    map[string]string
	accountCurrency map[string]string
	currencies      domain.CurrencyTable
}

func loadTeamLookup(
	ctx context.Context,
	identity *domain.Identity,
	as portssvc.AccountReaderSvc,
	cs portssvc.CurrencySvcFacade,
) (*teamLookup, error) {
	summaries, err := as.ListAccounts(ctx, identity)
	if err != nil {
		return nil, err
	}
	currencies, err := cs.CurrencyTable(ctx)
	if err != nil {
		return nil, err
	}

	l := &teamLookup{
		accountNames:    make(map[string]string, len(summaries)),
		accountCurrency: make(map[string]string, len(summaries)),
		currencies:      currencies,
	}
	for _, s := range summaries {
		l.accountNames[s.AccountID] = s.Name
		l.accountCurrency[s.AccountID] = s.CurrencyCode
	}
	return l, nil
}

// symbolFor is the symbol of the transaction's account currency, or the
// default symbol for unattached transactions.
func (l *teamLookup) symbolFor(t *domain.Transaction) string {
	if t.AccountID == nil {
		return domain.DefaultCurrencySymbol
	}
	return l.currencies.SymbolFor(l.accountCurrency[*t.AccountID])
}
