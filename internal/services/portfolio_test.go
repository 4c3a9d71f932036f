package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallfacerlabs/vaults-cli/internal/client"
)

func TestIdleAssetsEmptyWalletIsNotAnError(t *testing.T) {
	_, apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))

	assets, err := NewPortfolioService(apiClient).IdleAssets(testAddress)
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestIdleAssetsDecodesBalances(t *testing.T) {
	_, apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(idleAssetsFixture))
	}))

	assets, err := NewPortfolioService(apiClient).IdleAssets(testAddress)
	require.NoError(t, err)
	require.Len(t, assets, 2)

	assert.Equal(t, "USDC", assets[0].Symbol)
	assert.Equal(t, "mainnet", assets[0].Network.Name)
	require.NotNil(t, assets[0].BalanceUsd)
	assert.Equal(t, "1250.50", assets[0].BalanceUsd.StringFixed(2))

	assert.Equal(t, "USDS", assets[1].Symbol)
	assert.Equal(t, "base", assets[1].Network.Name)
}

func TestPositionsDecodes(t *testing.T) {
	_, apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(positionsFixture))
	}))

	positions, err := NewPortfolioService(apiClient).Positions(testAddress)
	require.NoError(t, err)
	require.Len(t, positions, 1)

	assert.Equal(t, "Aave", positions[0].Protocol.Name)
	assert.Equal(t, "USDC", positions[0].Asset.Symbol)
	require.NotNil(t, positions[0].Apy)
	assert.InDelta(t, 0.042, positions[0].Apy.Total, 1e-9)
}

func TestPositionsPropagatesAuthErrors(t *testing.T) {
	_, apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))

	_, err := NewPortfolioService(apiClient).Positions(testAddress)
	assert.ErrorIs(t, err, client.ErrAuth)
}
