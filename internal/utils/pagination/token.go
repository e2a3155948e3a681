// Package pagination encodes keyset cursors as opaque continuation tokens.
package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/family_finance_tracker/internal/core/domain"
)

const dateFormat = domain.DateLayout

// EncodeTransactionCursor turns the last row of a page into a token.
func EncodeTransactionCursor(cursor domain.TransactionCursor) string {
	return EncodeMultiFieldToken(cursor.Date.Format(dateFormat), cursor.TransactionID)
}

// DecodeTransactionCursor parses a token produced by EncodeTransactionCursor.
// An empty token decodes to a nil cursor.
func DecodeTransactionCursor(token string) (*domain.TransactionCursor, error) {
	if token == "" {
		return nil, nil
	}
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return nil, err
	}
	if len(parts) != 2 || parts[1] == "" {
		return nil, fmt.Errorf("invalid pagination token format (split)")
	}
	date, err := time.Parse(dateFormat, parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	return &domain.TransactionCursor{Date: date, TransactionID: parts[1]}, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields.
func EncodeMultiFieldToken(fields ...string) string {
	return base64.URLEncoding.EncodeToString([]byte(strings.Join(fields, "|")))
}

// DecodeMultiFieldToken decodes a token into its component fields.
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}
