package domain

// Account is a read-through snapshot of the customer's primary account.
// The ledger owns it; the gateway never mutates it locally, only re-fetches
// after a successful operation.
type Account struct {
	ID            int64   `json:"id"`
	AccountNumber string  `json:"accountNumber"`
	Balance       float64 `json:"balance"`
	Currency      string  `json:"currency"`
}
