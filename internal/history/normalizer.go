// Package history converts the ledger's heterogeneous raw transaction
// records into one canonical, time-ordered sequence.
package history

import (
	"math"
	"sort"
	"time"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"
)

// Normalize maps raw records to canonical transactions, sorted descending
// by instant. The sort is stable: records sharing a timestamp keep their
// original fetch order. A record with no date resolves to the moment of
// normalization instead of failing.
func Normalize(raw []domain.RawTransaction) []domain.Transaction {
	now := time.Now()

	out := make([]domain.Transaction, 0, len(raw))
	for _, r := range raw {
		out = append(out, domain.Transaction{
			ID:          r.ID,
			Type:        r.Type,
			Amount:      math.Abs(r.Amount),
			Description: r.Description,
			OccurredAt:  r.Date.Time(now),
			Status:      r.Status,
			Incoming:    Incoming(r.Type),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})
	return out
}

// Incoming reports whether the type counts as money arriving, for display
// purposes. Everything outside the two incoming types renders as outgoing
// or neutral.
func Incoming(txType string) bool {
	return txType == domain.TxDeposit || txType == domain.TxIncomingTransfer
}
