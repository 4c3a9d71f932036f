package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/wallfacerlabs/vaults-cli/internal/models"
)

const notAvailable = "N/A"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// IdleAssets renders wallet balances not deposited in any vault.
func IdleAssets(assets []models.IdleAsset) string {
	if len(assets) == 0 {
		return "No idle assets found"
	}

	t := newTable("Asset", "Balance", "Balance USD", "Network")
	for _, asset := range assets {
		t.Row(
			orNA(asset.Symbol),
			formatNative(asset.BalanceNative, asset.Symbol),
			formatUsd(asset.BalanceUsd),
			orNA(asset.Network.Name),
		)
	}
	return t.Render()
}

// DepositOptions renders vault opportunities grouped per held asset.
func DepositOptions(balances []models.UserBalance) string {
	t := newTable("Asset", "Balance USD", "Network", "Vault Name", "Protocol", "APY")

	rows := 0
	for _, balance := range balances {
		for _, option := range balance.DepositOptions {
			t.Row(
				orNA(balance.Asset.Symbol),
				formatUsd(balance.Asset.BalanceUsd),
				orNA(option.Network.Name),
				truncate(option.Name, 18),
				orNA(option.Protocol.Name),
				formatApy(option.Apy),
			)
			rows++
		}
	}

	if rows == 0 {
		return "No deposit options available"
	}
	return t.Render()
}

// Positions renders the user's live vault deposits.
func Positions(positions []models.Position) string {
	if len(positions) == 0 {
		return "No active positions found"
	}

	t := newTable("Network", "Protocol", "Vault Name", "Asset", "Balance USD", "APY")
	for _, position := range positions {
		t.Row(
			orNA(position.Network.Name),
			orNA(position.Protocol.Name),
			truncate(position.Name, 16),
			orNA(position.Asset.Symbol),
			formatUsd(position.Asset.BalanceUsd),
			formatApy(position.Apy),
		)
	}
	return t.Render()
}

// TransactionPayload renders a generated transaction as a property/value
// grid, one block per action. Calldata is shortened so the table stays
// readable.
func TransactionPayload(payload *models.TransactionPayload) string {
	if payload == nil {
		return "No transaction data available"
	}

	t := newTable("Property", "Value")

	if payload.CurrentApy != 0 {
		t.Row("currentApy", fmt.Sprintf("%.2f%%", payload.CurrentApy*100))
	}
	if payload.ExpectedApy != 0 {
		t.Row("expectedApy", fmt.Sprintf("%.2f%%", payload.ExpectedApy*100))
	}
	if payload.Simulated {
		t.Row("simulated", "true")
	}

	t.Row("Total Actions", strconv.Itoa(len(payload.Actions)))

	for i, action := range payload.Actions {
		name := action.Name
		if name == "" {
			name = fmt.Sprintf("Action %d", i+1)
		}
		t.Row(fmt.Sprintf("Action %d", i+1), truncate(name, 60))
		t.Row("  to", truncateValue("to", action.Tx.To))
		t.Row("  data", truncateValue("data", action.Tx.Data))
		if action.Tx.Value != "" {
			t.Row("  value", truncateValue("value", action.Tx.Value))
		}
		if action.Tx.ChainID != 0 {
			t.Row("  chainId", strconv.Itoa(action.Tx.ChainID))
		}
	}

	return t.Render()
}

// truncateValue shortens long values for table display. Calldata gets a
// much tighter limit than other fields.
func truncateValue(key, value string) string {
	if value == "" {
		return notAvailable
	}
	if key == "data" && len(value) > 20 {
		return value[:20] + "..."
	}
	return truncate(value, 50)
}

func truncate(s string, max int) string {
	if s == "" {
		return notAvailable
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

func formatUsd(d *decimal.Decimal) string {
	if d == nil || d.IsZero() {
		return notAvailable
	}
	return "$" + d.StringFixed(2)
}

func formatNative(d *decimal.Decimal, symbol string) string {
	if d == nil || d.IsZero() {
		return notAvailable
	}
	return fmt.Sprintf("%s %s", d.StringFixed(6), symbol)
}

func formatApy(apy *models.Apy) string {
	if apy == nil || apy.Total == 0 {
		return notAvailable
	}
	return fmt.Sprintf("%.2f%%", apy.Total*100)
}
