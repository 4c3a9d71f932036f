package models

// TxDetails is the raw calldata for one on-chain call. Nothing here is
// signed or submitted; the payload is handed to the caller as-is.
type TxDetails struct {
	To      string `json:"to"`
	Data    string `json:"data"`
	Value   string `json:"value,omitempty"`
	ChainID int    `json:"chainId,omitempty"`
}

// TransactionAction is one step of a multi-step transaction, such as an
// ERC-20 approval followed by the vault deposit.
type TransactionAction struct {
	Name string    `json:"name"`
	Tx   TxDetails `json:"tx"`
}

// TransactionPayload is a ready-to-sign transaction description returned
// by the transaction builder endpoint.
type TransactionPayload struct {
	CurrentApy  float64             `json:"currentApy,omitempty"`
	ExpectedApy float64             `json:"expectedApy,omitempty"`
	Simulated   bool                `json:"simulated,omitempty"`
	Actions     []TransactionAction `json:"actions"`
}
