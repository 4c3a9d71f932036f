package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wallfacerlabs/vaults-cli/internal/client"
	"github.com/wallfacerlabs/vaults-cli/internal/logger"
	"github.com/wallfacerlabs/vaults-cli/internal/models"
)

// VaultService handles vault discovery and transaction payload building.
type VaultService struct {
	client *client.APIClient
}

// NewVaultService creates a new vault service
func NewVaultService(client *client.APIClient) *VaultService {
	return &VaultService{
		client: client,
	}
}

// DepositOptions retrieves vault opportunities for the address, restricted
// to the given asset symbols. The allowlist is sent to the API and the
// response is filtered again locally, so every returned balance matches it
// even if the service includes extras. Ordering is service-defined
// (typically APY descending).
func (s *VaultService) DepositOptions(address string, allowedAssets []string) ([]models.UserBalance, error) {
	endpoint := fmt.Sprintf("/v2/portfolio/deposit-options/%s", address)
	if len(allowedAssets) > 0 {
		endpoint = client.BuildURLWithParams(endpoint, map[string]string{
			"allowedAssets": strings.Join(allowedAssets, ","),
		})
	}

	var response models.DepositOptionsResponse
	if err := s.client.Get(endpoint, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch deposit options: %w", err)
	}

	filtered := filterBalances(response.UserBalances, allowedAssets)
	logger.Debug("Fetched deposit options for %d assets (%d after filtering)", len(response.UserBalances), len(filtered))
	return filtered, nil
}

// filterBalances keeps only balances whose asset symbol is in the allowlist.
// Symbols are compared case-insensitively. An empty allowlist keeps everything.
func filterBalances(balances []models.UserBalance, allowedAssets []string) []models.UserBalance {
	if len(allowedAssets) == 0 {
		return balances
	}

	allowed := make(map[string]bool, len(allowedAssets))
	for _, symbol := range allowedAssets {
		allowed[strings.ToUpper(symbol)] = true
	}

	filtered := make([]models.UserBalance, 0, len(balances))
	for _, balance := range balances {
		if allowed[strings.ToUpper(balance.Asset.Symbol)] {
			filtered = append(filtered, balance)
		}
	}
	return filtered
}

// DepositRequest describes the deposit a transaction payload is built for.
type DepositRequest struct {
	UserAddress  string
	Network      string
	VaultAddress string
	Amount       string
	AssetAddress string
	Simulate     bool
}

// Validate checks the request has everything the builder endpoint needs.
func (r DepositRequest) Validate() error {
	if r.UserAddress == "" {
		return fmt.Errorf("user address cannot be empty")
	}
	if r.Network == "" {
		return fmt.Errorf("network cannot be empty")
	}
	if r.VaultAddress == "" {
		return fmt.Errorf("vault address cannot be empty")
	}
	if r.AssetAddress == "" {
		return fmt.Errorf("asset address cannot be empty")
	}
	if r.Amount == "" {
		return fmt.Errorf("amount cannot be empty")
	}
	return nil
}

// BuildDepositTransaction requests a ready-to-sign transaction payload for
// depositing into a vault. The payload may include an approval step before
// the deposit. Nothing is signed or submitted.
func (s *VaultService) BuildDepositTransaction(req DepositRequest) (*models.TransactionPayload, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deposit request: %w", err)
	}

	endpoint := client.BuildURLWithParams("/v2/transactions/vaults/deposit", map[string]string{
		"userAddress":  req.UserAddress,
		"network":      req.Network,
		"vaultAddress": req.VaultAddress,
		"amount":       req.Amount,
		"assetAddress": req.AssetAddress,
		"simulate":     strconv.FormatBool(req.Simulate),
	})

	var payload models.TransactionPayload
	if err := s.client.Get(endpoint, &payload); err != nil {
		return nil, fmt.Errorf("failed to build deposit transaction: %w", err)
	}

	logger.Debug("Built deposit transaction with %d actions for vault %s", len(payload.Actions), req.VaultAddress)
	return &payload, nil
}
