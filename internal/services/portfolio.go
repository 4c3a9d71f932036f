package services

import (
	"fmt"

	"github.com/wallfacerlabs/vaults-cli/internal/client"
	"github.com/wallfacerlabs/vaults-cli/internal/logger"
	"github.com/wallfacerlabs/vaults-cli/internal/models"
)

// PortfolioService handles wallet-level lookups: idle balances and
// current vault positions.
type PortfolioService struct {
	client *client.APIClient
}

// NewPortfolioService creates a new portfolio service
func NewPortfolioService(client *client.APIClient) *PortfolioService {
	return &PortfolioService{
		client: client,
	}
}

// IdleAssets retrieves wallet balances not deposited in any vault. A
// wallet with no balances yields an empty slice, not an error.
func (s *PortfolioService) IdleAssets(address string) ([]models.IdleAsset, error) {
	endpoint := fmt.Sprintf("/v2/portfolio/idle-assets/%s", address)

	var response models.IdleAssetsResponse
	if err := s.client.Get(endpoint, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch idle assets: %w", err)
	}

	logger.Debug("Fetched %d idle assets for %s", len(response.Data), address)
	return response.Data, nil
}

// Positions retrieves all vault positions held by the address.
func (s *PortfolioService) Positions(address string) ([]models.Position, error) {
	endpoint := fmt.Sprintf("/v2/portfolio/positions/%s", address)

	var response models.PositionsResponse
	if err := s.client.Get(endpoint, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch positions: %w", err)
	}

	logger.Debug("Fetched %d positions for %s", len(response.Data), address)
	return response.Data, nil
}
