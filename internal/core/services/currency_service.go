package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/family_finance_tracker/internal/apperrors"
	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/family_finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/family_finance_tracker/internal/core/ports/services"
)

// currencyService implements the CurrencySvcFacade interface
type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyReader
}

func NewCurrencyService(currencyRepo portsrepo.CurrencyReader) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, err
	}
	return currencies, nil
}

func (s *currencyService) CurrencyTable(ctx context.Context) (domain.CurrencyTable, error) {
	currencies, err := s.ListCurrencies(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewCurrencyTable(currencies), nil
}

func (s *currencyService) SymbolFor(ctx context.Context, currencyCode string) string {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, domain.NormalizeCurrencyCode(currencyCode))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up currency symbol", slog.String("currency_code", currencyCode))
		}
		return domain.DefaultCurrencySymbol
	}
	if currency.Symbol == "" {
		return domain.DefaultCurrencySymbol
	}
	return currency.Symbol
}

func (s *currencyService) Exists(ctx context.Context, currencyCode string) (bool, error) {
	_, err := s.currencyRepo.FindCurrencyByCode(ctx, domain.NormalizeCurrencyCode(currencyCode))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return false, nil
	}
	return false, err
}
