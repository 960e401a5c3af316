// Package domain holds the core types shared across the DinoBank
// frontend gateway: session, account, transaction, and credit models,
// plus the error taxonomy used by every layer.
package domain

// Session is the authenticated identity. Exactly one is active at a time;
// it survives process restarts via the session store and is destroyed on
// logout or when any workflow finds it missing.
type Session struct {
	UserID      int64  `json:"userId"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

// LoginRequest is the wire shape for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is what the ledger returns on successful login.
// Extra fields the server may send are ignored.
type LoginResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// RegisterRequest is the wire shape for POST /auth/register.
type RegisterRequest struct {
	TCID     string `json:"tcId"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address,omitempty"`
}

// RegisterResponse is the ledger's registration confirmation.
type RegisterResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
