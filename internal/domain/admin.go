package domain

import "encoding/json"

// DatabaseSnapshot is the admin passthrough of the ledger's state.
// Rows stay raw JSON: the admin view renders whatever columns the ledger
// exposes, and this layer has no opinion on their shape.
type DatabaseSnapshot struct {
	Customers    []json.RawMessage `json:"customers"`
	Accounts     []json.RawMessage `json:"accounts"`
	Transactions []json.RawMessage `json:"transactions"`
}
