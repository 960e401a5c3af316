package domain

import "time"

// Credit application statuses. The ledger sets the status exactly once;
// it never changes here after receipt.
const (
	CreditPending  = "PENDING"
	CreditApproved = "APPROVED"
	CreditRejected = "REJECTED"
	CreditError    = "ERROR"
)

// CreditApplyRequest is the wire shape for POST /credits/apply.
type CreditApplyRequest struct {
	CustomerID       int64   `json:"customerId"`
	RequestedAmount  float64 `json:"requestedAmount"`
	InstallmentCount int     `json:"installmentCount"`
	Purpose          string  `json:"purpose"`
}

// CreditDecision is the underwriting outcome classified from the ledger's
// response: one of APPROVED, REJECTED, PENDING, or ERROR, with a
// human-readable message ready for display.
type CreditDecision struct {
	Status          string  `json:"status"`
	Message         string  `json:"message"`
	RequestedAmount float64 `json:"requestedAmount,omitempty"`
	RejectionReason string  `json:"rejectionReason,omitempty"`
}

// CreditApplyResponse is the ledger's raw underwriting reply to
// POST /credits/apply, before classification.
type CreditApplyResponse struct {
	Status          string  `json:"status"`
	RequestedAmount float64 `json:"requestedAmount"`
	RejectionReason string  `json:"rejectionReason"`
}

// RawCreditApplication is one history row as the ledger returns it.
// applicationDate uses the same heterogeneous encoding as transaction dates.
type RawCreditApplication struct {
	ID               int64   `json:"id"`
	CustomerID       int64   `json:"customerId"`
	RequestedAmount  float64 `json:"requestedAmount"`
	InstallmentCount int     `json:"installmentCount"`
	Purpose          string  `json:"purpose"`
	Status           string  `json:"status"`
	RejectionReason  string  `json:"rejectionReason"`
	AppliedAt        TxDate  `json:"applicationDate"`
}

// CreditApplication is the normalized history row.
type CreditApplication struct {
	ID               int64     `json:"id"`
	CustomerID       int64     `json:"customerId"`
	RequestedAmount  float64   `json:"requestedAmount"`
	InstallmentCount int       `json:"installmentCount"`
	Purpose          string    `json:"purpose"`
	Status           string    `json:"status"`
	RejectionReason  string    `json:"rejectionReason,omitempty"`
	AppliedAt        time.Time `json:"appliedAt"`
}
