package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wallfacerlabs/vaults-cli/internal/client"
	"github.com/wallfacerlabs/vaults-cli/internal/config"
	"github.com/wallfacerlabs/vaults-cli/internal/logger"
	"github.com/wallfacerlabs/vaults-cli/internal/render"
	"github.com/wallfacerlabs/vaults-cli/internal/services"
	"github.com/wallfacerlabs/vaults-cli/internal/tui"
	"github.com/wallfacerlabs/vaults-cli/internal/utils"
)

// setup builds a validated configuration and API client. The address flag,
// when set, overrides the environment.
func setup(address string) (*config.Config, *client.APIClient, error) {
	cfg := config.NewConfig()
	cfg.LoadFromEnvironment()
	if address != "" {
		cfg.UserAddress = address
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("configuration error: %w", err)
	}

	return cfg, client.NewAPIClient(cfg), nil
}

func main() {
	logger.Init()
	utils.LoadEnvironment()

	var address string

	rootCmd := &cobra.Command{
		Use:   "vaults-cli",
		Short: "A CLI for exploring vaults.fyi yield opportunities",
		Long: `vaults-cli talks to the vaults.fyi API. Run without a subcommand it walks
through the full flow: idle wallet balances, the best USDC/USDS deposit
options, a generated deposit transaction payload, and current vault positions.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, apiClient, err := setup(address)
			if err != nil {
				logger.Fatal("%v", err)
			}

			showcase := services.NewShowcaseService(cfg, apiClient)
			if err := showcase.Run(); err != nil {
				logger.Fatal("Walkthrough failed: %v", err)
			}
		},
	}
	rootCmd.PersistentFlags().StringVarP(&address, "address", "a", "", "Wallet address to query (default: showcase wallet)")

	balancesCmd := &cobra.Command{
		Use:   "balances",
		Short: "List idle wallet balances across networks",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, apiClient, err := setup(address)
			if err != nil {
				logger.Fatal("%v", err)
			}

			portfolio := services.NewPortfolioService(apiClient)
			assets, err := portfolio.IdleAssets(cfg.UserAddress)
			if err != nil {
				logger.Fatal("Failed to fetch idle assets: %v", err)
			}
			fmt.Println(render.IdleAssets(assets))
		},
	}

	var allowedAssets []string
	optionsCmd := &cobra.Command{
		Use:   "options",
		Short: "List vault deposit options for held assets",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, apiClient, err := setup(address)
			if err != nil {
				logger.Fatal("%v", err)
			}

			vaults := services.NewVaultService(apiClient)
			balances, err := vaults.DepositOptions(cfg.UserAddress, allowedAssets)
			if err != nil {
				logger.Fatal("Failed to fetch deposit options: %v", err)
			}
			fmt.Println(render.DepositOptions(balances))
		},
	}
	optionsCmd.Flags().StringSliceVarP(&allowedAssets, "assets", "s", []string{"USDC", "USDS"}, "Asset symbols to include")

	positionsCmd := &cobra.Command{
		Use:   "positions",
		Short: "List vault positions held by the wallet",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, apiClient, err := setup(address)
			if err != nil {
				logger.Fatal("%v", err)
			}

			portfolio := services.NewPortfolioService(apiClient)
			positions, err := portfolio.Positions(cfg.UserAddress)
			if err != nil {
				logger.Fatal("Failed to fetch positions: %v", err)
			}
			fmt.Println(render.Positions(positions))
		},
	}

	var (
		vaultAddress string
		assetAddress string
		network      string
		amount       string
		simulate     bool
	)
	depositCmd := &cobra.Command{
		Use:   "deposit",
		Short: "Build a deposit transaction payload (never signs or sends)",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, apiClient, err := setup(address)
			if err != nil {
				logger.Fatal("%v", err)
			}

			vaults := services.NewVaultService(apiClient)
			payload, err := vaults.BuildDepositTransaction(services.DepositRequest{
				UserAddress:  cfg.UserAddress,
				Network:      network,
				VaultAddress: vaultAddress,
				Amount:       amount,
				AssetAddress: assetAddress,
				Simulate:     simulate,
			})
			if err != nil {
				logger.Fatal("Failed to build deposit transaction: %v", err)
			}
			fmt.Println(render.TransactionPayload(payload))
		},
	}
	depositCmd.Flags().StringVarP(&vaultAddress, "vault", "v", "", "Vault contract address")
	depositCmd.Flags().StringVarP(&assetAddress, "asset", "t", "", "Asset contract address")
	depositCmd.Flags().StringVarP(&network, "network", "n", "mainnet", "Network the vault lives on")
	depositCmd.Flags().StringVarP(&amount, "amount", "m", "", "Deposit amount in raw token units")
	depositCmd.Flags().BoolVar(&simulate, "simulate", false, "Simulate the transaction instead of preparing it")
	_ = depositCmd.MarkFlagRequired("vault")
	_ = depositCmd.MarkFlagRequired("asset")
	_ = depositCmd.MarkFlagRequired("amount")

	var interval int
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Monitor vault positions in a TUI",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, apiClient, err := setup(address)
			if err != nil {
				logger.Fatal("%v", err)
			}

			if err := logger.InitFileOnly(); err != nil {
				logger.Fatal("Failed to initialize file logging: %v", err)
			}
			defer logger.Close()

			portfolio := services.NewPortfolioService(apiClient)
			if err := tui.Run(portfolio, cfg.UserAddress, time.Duration(interval)*time.Second); err != nil {
				logger.Fatal("Watch failed: %v", err)
			}
		},
	}
	watchCmd.Flags().IntVarP(&interval, "interval", "i", 30, "Refresh interval in seconds")

	rootCmd.AddCommand(balancesCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(positionsCmd)
	rootCmd.AddCommand(depositCmd)
	rootCmd.AddCommand(watchCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to execute command: %v", err)
	}
}
