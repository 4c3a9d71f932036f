package services

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wallfacerlabs/vaults-cli/internal/client"
	"github.com/wallfacerlabs/vaults-cli/internal/config"
	"github.com/wallfacerlabs/vaults-cli/internal/logger"
	"github.com/wallfacerlabs/vaults-cli/internal/models"
	"github.com/wallfacerlabs/vaults-cli/internal/render"
)

// ErrNotEnoughOptions is returned when the walkthrough cannot pick its
// sample vault because the filtered option list is too short.
var ErrNotEnoughOptions = errors.New("not enough deposit options")

// showcaseAssets restricts the walkthrough to stablecoin vaults.
var showcaseAssets = []string{"USDC", "USDS"}

const (
	// showcaseOptionRank picks the third-ranked option (index 2),
	// matching the reference walkthrough. Illustrative, not a policy.
	showcaseOptionRank = 2

	// showcaseDepositAmount is 1 USDC in raw 6-decimal units.
	showcaseDepositAmount = "1000000"

	defaultNetwork = "mainnet"
)

// ShowcaseService runs the fixed demonstration sequence: idle balances,
// filtered deposit options, a sample deposit transaction, and positions.
// Each call blocks until its response; any failure stops the run.
type ShowcaseService struct {
	config    *config.Config
	portfolio *PortfolioService
	vaults    *VaultService
	out       io.Writer
}

// NewShowcaseService creates a showcase service with all dependencies
func NewShowcaseService(cfg *config.Config, apiClient *client.APIClient) *ShowcaseService {
	return &ShowcaseService{
		config:    cfg,
		portfolio: NewPortfolioService(apiClient),
		vaults:    NewVaultService(apiClient),
		out:       os.Stdout,
	}
}

// SetOutput redirects the rendered tables, mainly for tests.
func (s *ShowcaseService) SetOutput(w io.Writer) {
	s.out = w
}

// Run executes the walkthrough for the configured wallet.
func (s *ShowcaseService) Run() error {
	address := s.config.UserAddress
	fmt.Fprintf(s.out, "===== vaults.fyi walkthrough for %s =====\n\n", address)

	logger.Info("Checking idle balances for %s", address)
	assets, err := s.portfolio.IdleAssets(address)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "💰 User balances:\n%s\n\n", render.IdleAssets(assets))

	logger.Info("Finding best deposit options (%v)", showcaseAssets)
	balances, err := s.vaults.DepositOptions(address, showcaseAssets)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "📊 Best deposit options (USDC/USDS only):\n%s\n\n", render.DepositOptions(balances))

	if err := s.buildSampleDeposit(address, balances); err != nil {
		return err
	}

	logger.Info("Checking vault positions for %s", address)
	positions, err := s.portfolio.Positions(address)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "💼 User positions:\n%s\n", render.Positions(positions))

	return nil
}

// buildSampleDeposit generates a deposit payload for the third-ranked
// option of the first asset with balances. It fails explicitly when fewer
// options exist rather than substituting a different vault.
func (s *ShowcaseService) buildSampleDeposit(address string, balances []models.UserBalance) error {
	if len(balances) == 0 {
		return fmt.Errorf("%w: no balances with deposit options", ErrNotEnoughOptions)
	}

	asset := balances[0].Asset
	options := balances[0].DepositOptions
	if len(options) <= showcaseOptionRank {
		return fmt.Errorf("%w: need at least %d for %s, got %d",
			ErrNotEnoughOptions, showcaseOptionRank+1, asset.Symbol, len(options))
	}

	option := options[showcaseOptionRank]
	if option.Address == "" || asset.Address == "" {
		return fmt.Errorf("deposit option %q is missing vault or asset address", option.Name)
	}

	network := option.Network.Name
	if network == "" {
		network = defaultNetwork
	}

	logger.Info("Generating deposit transaction into %s", option.Name)
	payload, err := s.vaults.BuildDepositTransaction(DepositRequest{
		UserAddress:  address,
		Network:      network,
		VaultAddress: option.Address,
		Amount:       showcaseDepositAmount,
		AssetAddress: asset.Address,
		Simulate:     false,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "🎯 Generated transaction payload:\n%s\n\n", render.TransactionPayload(payload))
	return nil
}
