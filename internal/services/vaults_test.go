package services

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepositOptionsFiltersToAllowlist(t *testing.T) {
	_, apiClient, _ := newFakeAPI(t)
	vaults := NewVaultService(apiClient)

	allowed := []string{"USDC", "USDS"}
	balances, err := vaults.DepositOptions(testAddress, allowed)
	require.NoError(t, err)

	// The fixture includes a DAI entry; every returned balance must be
	// in the allowlist regardless of what the server sends back.
	require.Len(t, balances, 1)
	for _, balance := range balances {
		assert.Contains(t, allowed, balance.Asset.Symbol)
	}
}

func TestDepositOptionsSendsAllowlistParam(t *testing.T) {
	_, apiClient, log := newFakeAPI(t)
	vaults := NewVaultService(apiClient)

	_, err := vaults.DepositOptions(testAddress, []string{"USDC", "USDS"})
	require.NoError(t, err)

	require.Len(t, log.optionsQueries, 1)
	values, err := url.ParseQuery(log.optionsQueries[0])
	require.NoError(t, err)
	assert.Equal(t, "USDC,USDS", values.Get("allowedAssets"))
}

func TestDepositOptionsEmptyAllowlistKeepsEverything(t *testing.T) {
	_, apiClient, _ := newFakeAPI(t)
	vaults := NewVaultService(apiClient)

	balances, err := vaults.DepositOptions(testAddress, nil)
	require.NoError(t, err)
	assert.Len(t, balances, 2)
}

func TestDepositOptionsThirdEntryIsTheAaveVault(t *testing.T) {
	_, apiClient, _ := newFakeAPI(t)
	vaults := NewVaultService(apiClient)

	balances, err := vaults.DepositOptions(testAddress, []string{"USDC", "USDS"})
	require.NoError(t, err)
	require.NotEmpty(t, balances)

	options := balances[0].DepositOptions
	require.GreaterOrEqual(t, len(options), 3)
	assert.Equal(t, "Aave", options[2].Protocol.Name)
	require.NotNil(t, options[2].Apy)
	assert.InDelta(t, 0.042, options[2].Apy.Total, 1e-9)
}

func TestBuildDepositTransaction(t *testing.T) {
	_, apiClient, log := newFakeAPI(t)
	vaults := NewVaultService(apiClient)

	payload, err := vaults.BuildDepositTransaction(DepositRequest{
		UserAddress:  testAddress,
		Network:      "mainnet",
		VaultAddress: "0x3333333333333333333333333333333333333333",
		Amount:       "1000000",
		AssetAddress: usdcAddress,
		Simulate:     false,
	})
	require.NoError(t, err)

	require.Len(t, log.depositQueries, 1)
	values, err := url.ParseQuery(log.depositQueries[0])
	require.NoError(t, err)
	assert.Equal(t, testAddress, values.Get("userAddress"))
	assert.Equal(t, "mainnet", values.Get("network"))
	assert.Equal(t, "1000000", values.Get("amount"))
	assert.Equal(t, "false", values.Get("simulate"))

	// Approve then deposit, each with a target and calldata.
	require.Len(t, payload.Actions, 2)
	assert.True(t, strings.HasPrefix(payload.Actions[0].Name, "Approve"))
	assert.True(t, strings.HasPrefix(payload.Actions[1].Name, "Deposit"))
	for _, action := range payload.Actions {
		assert.NotEmpty(t, action.Tx.To)
		assert.NotEmpty(t, action.Tx.Data)
	}
}

func TestBuildDepositTransactionIsIdempotentUnderSimulate(t *testing.T) {
	_, apiClient, log := newFakeAPI(t)
	vaults := NewVaultService(apiClient)

	req := DepositRequest{
		UserAddress:  testAddress,
		Network:      "mainnet",
		VaultAddress: "0x3333333333333333333333333333333333333333",
		Amount:       "1000000",
		AssetAddress: usdcAddress,
		Simulate:     true,
	}

	first, err := vaults.BuildDepositTransaction(req)
	require.NoError(t, err)
	second, err := vaults.BuildDepositTransaction(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, log.depositQueries, 2)
	assert.Equal(t, log.depositQueries[0], log.depositQueries[1])
}

func TestDepositRequestValidation(t *testing.T) {
	valid := DepositRequest{
		UserAddress:  testAddress,
		Network:      "mainnet",
		VaultAddress: "0x3333333333333333333333333333333333333333",
		Amount:       "1000000",
		AssetAddress: usdcAddress,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*DepositRequest)
	}{
		{"missing user address", func(r *DepositRequest) { r.UserAddress = "" }},
		{"missing network", func(r *DepositRequest) { r.Network = "" }},
		{"missing vault address", func(r *DepositRequest) { r.VaultAddress = "" }},
		{"missing asset address", func(r *DepositRequest) { r.AssetAddress = "" }},
		{"missing amount", func(r *DepositRequest) { r.Amount = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestBuildDepositTransactionRejectsInvalidRequestWithoutCalling(t *testing.T) {
	called := false
	_, apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	vaults := NewVaultService(apiClient)

	_, err := vaults.BuildDepositTransaction(DepositRequest{})
	require.Error(t, err)
	assert.False(t, called)
}
