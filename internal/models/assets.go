package models

import "github.com/shopspring/decimal"

// Network identifies the chain an asset or vault lives on.
type Network struct {
	Name    string `json:"name"`
	ChainID int    `json:"chainId,omitempty"`
}

// AssetInfo describes a token and the user's holding of it. Balances are
// reported by the API; nil means the field was absent from the response.
type AssetInfo struct {
	Symbol     string           `json:"symbol"`
	Address    string           `json:"address,omitempty"`
	BalanceUsd *decimal.Decimal `json:"balanceUsd,omitempty"`
}

// IdleAsset is a wallet balance not deposited in any vault.
type IdleAsset struct {
	Symbol        string           `json:"symbol"`
	Address       string           `json:"address,omitempty"`
	BalanceNative *decimal.Decimal `json:"balanceNative,omitempty"`
	BalanceUsd    *decimal.Decimal `json:"balanceUsd,omitempty"`
	Network       Network          `json:"network"`
}

// IdleAssetsResponse is the envelope for the idle-assets lookup.
type IdleAssetsResponse struct {
	Data []IdleAsset `json:"data"`
}
