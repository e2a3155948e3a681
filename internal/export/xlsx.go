package export

import (
	"fmt"
	"io"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
	"github.com/SscSPs/family_finance_tracker/internal/utils/money"
	"github.com/xuri/excelize/v2"
)

const SheetName = "Transactions"

// ContentType is the MIME type of a written workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var header = []string{"Date", "Payee", "Account", "Category", "Note", "Amount", "Display"}

// Names resolves ids to display names for the export. Missing entries
// render as empty cells.
type Names struct {
	Accounts   map[string]string
	Categories map[string]string
	// SymbolFor picks the currency symbol of a row.
	SymbolFor func(*domain.Transaction) string
}

func (n Names) symbol(t *domain.Transaction) string {
	if n.SymbolFor == nil {
		return domain.DefaultCurrencySymbol
	}
	return n.SymbolFor(t)
}

func lookup(m map[string]string, id *string) string {
	if id == nil {
		return ""
	}
	return m[*id]
}

// WriteTransactions renders txns as a single sheet workbook into w.
func WriteTransactions(w io.Writer, txns []domain.Transaction, names Names) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i := range txns {
		t := &txns[i]
		note := ""
		if t.Note != nil {
			note = *t.Note
		}
		row := []any{
			t.Date.Format(domain.DateLayout),
			t.Payee,
			lookup(names.Accounts, t.AccountID),
			lookup(names.Categories, t.CategoryID),
			note,
			money.CentsToFloat(t.Amount),
			money.ToDisplayAmount(t.Amount, names.symbol(t)),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(SheetName, "A", "A", 12)
	_ = f.SetColWidth(SheetName, "B", "B", 28)
	_ = f.SetColWidth(SheetName, "C", "D", 18)
	_ = f.SetColWidth(SheetName, "E", "E", 30)
	_ = f.SetColWidth(SheetName, "F", "G", 14)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
