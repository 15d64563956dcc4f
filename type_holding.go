package financebrain

import "github.com/shopspring/decimal"

// Holding is an individual investment position (stock, ETF, mutual fund)
// held inside an investment account, referenced by name.
//
// CurrentValue and GainLoss are computed by the caller when the holding
// is recorded (shares × price, value − cost basis); the codec stores and
// returns them as-is, it never re-derives them.
type Holding struct {
	Account               string // investment account name, stored as a page reference
	Symbol                string
	Name                  string
	Shares                decimal.Decimal
	CurrentPrice          decimal.Decimal
	CurrentValue          decimal.Decimal
	CostBasis             decimal.Decimal
	GainLoss              decimal.Decimal
	GainLossPercent       Percent
	PercentageOfPortfolio Percent
}

// Equal reports whether two holdings carry the same values.
func (h Holding) Equal(g Holding) bool {
	return h.Account == g.Account &&
		h.Symbol == g.Symbol &&
		h.Name == g.Name &&
		h.Shares.Equal(g.Shares) &&
		h.CurrentPrice.Equal(g.CurrentPrice) &&
		h.CurrentValue.Equal(g.CurrentValue) &&
		h.CostBasis.Equal(g.CostBasis) &&
		h.GainLoss.Equal(g.GainLoss) &&
		h.GainLossPercent.Equal(g.GainLossPercent) &&
		h.PercentageOfPortfolio.Equal(g.PercentageOfPortfolio)
}
