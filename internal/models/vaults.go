package models

// Protocol names the protocol behind a vault (e.g. Aave, Morpho).
type Protocol struct {
	Name string `json:"name"`
}

// Apy carries the yield breakdown for a vault. Total is a fraction of 1
// (0.042 means 4.2%).
type Apy struct {
	Total float64 `json:"total"`
	Base  float64 `json:"base,omitempty"`
}

// DepositOption is a vault opportunity for an asset the user holds.
type DepositOption struct {
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Network  Network  `json:"network"`
	Protocol Protocol `json:"protocol"`
	Apy      *Apy     `json:"apy,omitempty"`
}

// UserBalance groups the deposit options available for one held asset.
type UserBalance struct {
	Asset          AssetInfo       `json:"asset"`
	DepositOptions []DepositOption `json:"depositOptions"`
}

// DepositOptionsResponse is the envelope for the deposit-options lookup.
type DepositOptionsResponse struct {
	UserBalances []UserBalance `json:"userBalances"`
}

// Position is a live vault deposit held by the user.
type Position struct {
	Name     string    `json:"name"`
	Network  Network   `json:"network"`
	Protocol Protocol  `json:"protocol"`
	Asset    AssetInfo `json:"asset"`
	Apy      *Apy      `json:"apy,omitempty"`
}

// PositionsResponse is the envelope for the positions lookup.
type PositionsResponse struct {
	Data []Position `json:"data"`
}
