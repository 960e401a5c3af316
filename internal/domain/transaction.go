package domain

import (
	"encoding/json"
	"time"
)

// Transaction types as the ledger reports them.
const (
	TxDeposit          = "DEPOSIT"
	TxWithdrawal       = "WITHDRAWAL"
	TxTransfer         = "TRANSFER"
	TxIncomingTransfer = "INCOMING_TRANSFER"
)

// TxDateKind discriminates the encodings the ledger uses for timestamps.
type TxDateKind int

const (
	// TxDateAbsent means the field was missing or null.
	TxDateAbsent TxDateKind = iota
	// TxDateArray is the ordered form [year, month(1-based), day, hour, minute, second].
	TxDateArray
	// TxDateText is an ISO-8601-like string.
	TxDateText
)

// TxDate is the tagged union for the ledger's heterogeneous date field.
// New encodings become new kinds with their own conversion, not edits to
// existing ones.
type TxDate struct {
	Kind  TxDateKind
	Parts []int
	Text  string
}

// UnmarshalJSON detects the encoding structurally: a JSON array is the
// ordered form, a JSON string the textual one, null/absent stays absent.
func (d *TxDate) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" || string(b) == `""` {
		d.Kind = TxDateAbsent
		return nil
	}
	if b[0] == '[' {
		var parts []int
		if err := json.Unmarshal(b, &parts); err != nil {
			return err
		}
		d.Kind = TxDateArray
		d.Parts = parts
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		d.Kind = TxDateAbsent
		return nil
	}
	d.Kind = TxDateText
	d.Text = s
	return nil
}

// Time converts the date to an instant. A missing or unreadable date
// resolves to fallback (normally "now") rather than failing.
func (d TxDate) Time(fallback time.Time) time.Time {
	switch d.Kind {
	case TxDateArray:
		return arrayTime(d.Parts, fallback)
	case TxDateText:
		return textTime(d.Text, fallback)
	default:
		return fallback
	}
}

// arrayTime converts [year, month(1-based), day, hour, minute, second].
// Trailing elements may be omitted; seconds frequently are.
func arrayTime(parts []int, fallback time.Time) time.Time {
	if len(parts) < 3 {
		return fallback
	}
	p := make([]int, 6)
	copy(p, parts)
	return time.Date(p[0], time.Month(p[1]), p[2], p[3], p[4], p[5], 0, time.Local)
}

// textTime parses the ISO-8601-like string form. The ledger sends local
// wall-clock times without an offset.
func textTime(s string, fallback time.Time) time.Time {
	for _, layout := range []string{
		"2006-01-02T15:04:05",
		time.RFC3339,
		"2006-01-02",
	} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return fallback
}

// RawTransaction is a transaction record exactly as the ledger returns it,
// before normalization.
type RawTransaction struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Type        string  `json:"transactionType"`
	Status      string  `json:"status"`
	Date        TxDate  `json:"transactionDate"`
}

// Transaction is the canonical, display-ready record. Immutable once built;
// Amount is always non-negative, direction lives in Incoming.
type Transaction struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurredAt"`
	Status      string    `json:"status"`
	Incoming    bool      `json:"incoming"`
}

// TransferRequest is the wire shape for POST /transactions/transfer.
type TransferRequest struct {
	FromAccountNumber string  `json:"fromAccountNumber"`
	ToAccountNumber   string  `json:"toAccountNumber"`
	Amount            float64 `json:"amount"`
	Description       string  `json:"description"`
}
