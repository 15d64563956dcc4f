package financebrain

// Records written by older encoder versions use compact (camelCase) key
// forms. Decoding accepts both spellings through an explicit ordered
// synonym list per field: the hyphenated form first, the compact form
// second, first present wins. This is a compatibility shim and never
// warns.
var (
	keyAccountName     = []string{"account-name", "accountName"}
	keyAccountType     = []string{"account-type", "accountType"}
	keyCreditLimit     = []string{"credit-limit", "creditLimit"}
	keyLastUpdated     = []string{"last-updated", "lastUpdated"}
	keyTotalValue      = []string{"total-value", "totalValue"}
	keyCashBalance     = []string{"cash-balance", "cashBalance"}
	keyInvestedValue   = []string{"invested-value", "investedValue"}
	keyCurrentPrice    = []string{"current-price", "currentPrice"}
	keyCurrentValue    = []string{"current-value", "currentValue"}
	keyCostBasis       = []string{"cost-basis", "costBasis"}
	keyGainLoss        = []string{"gain-loss", "gainLoss"}
	keyGainLossPercent = []string{"gain-loss-percent", "gainLossPercent"}
	keyMerchant        = []string{"merchant", "source"}
)

// lookup returns the value of the first present key, or "".
func lookup(props map[string]string, keys []string) string {
	for _, k := range keys {
		if v, ok := props[k]; ok {
			return v
		}
	}
	return ""
}

// DecodeAccount maps record properties to an Account. It returns nil
// when the record's type tag is not `account`; this is the dispatch
// mechanism for a store holding mixed record types. Numeric and date
// fields decode leniently, defaulting to 0 and today.
func DecodeAccount(props map[string]string) *Account {
	if props[PropType] != TagAccount {
		return nil
	}
	return &Account{
		Name:        lookup(props, keyAccountName),
		Type:        AccountType(lookup(props, keyAccountType)),
		Balance:     ParseAmount(props["balance"]),
		Institution: props["institution"],
		CreditLimit: ParseAmount(lookup(props, keyCreditLimit)),
		LastUpdated: ParseDate(lookup(props, keyLastUpdated)),
	}
}

// DecodeInvestmentAccount maps record properties to an InvestmentAccount,
// or nil when the type tag does not match.
func DecodeInvestmentAccount(props map[string]string) *InvestmentAccount {
	if props[PropType] != TagInvestmentAccount {
		return nil
	}
	return &InvestmentAccount{
		Name:          lookup(props, keyAccountName),
		Type:          InvestmentAccountType(lookup(props, keyAccountType)),
		TotalValue:    ParseAmount(lookup(props, keyTotalValue)),
		CashBalance:   ParseAmount(lookup(props, keyCashBalance)),
		InvestedValue: ParseAmount(lookup(props, keyInvestedValue)),
		Institution:   props["institution"],
		LastUpdated:   ParseDate(lookup(props, keyLastUpdated)),
	}
}

// DecodeHolding maps record properties to a Holding, or nil when the
// type tag does not match. The account reference is unwrapped to the
// plain page name.
func DecodeHolding(props map[string]string) *Holding {
	if props[PropType] != TagHolding {
		return nil
	}
	return &Holding{
		Account:               CleanReference(props["account"]),
		Symbol:                props["symbol"],
		Name:                  props["name"],
		Shares:                ParseAmount(props["shares"]),
		CurrentPrice:          ParseAmount(lookup(props, keyCurrentPrice)),
		CurrentValue:          ParseAmount(lookup(props, keyCurrentValue)),
		CostBasis:             ParseAmount(lookup(props, keyCostBasis)),
		GainLoss:              ParseAmount(lookup(props, keyGainLoss)),
		GainLossPercent:       ParsePercent(lookup(props, keyGainLossPercent)),
		PercentageOfPortfolio: ParsePercent(props["percentage"]),
	}
}

// DecodeTransaction maps record properties to a Transaction, or nil
// when the type tag is not one of expense, income, investment. The
// counterparty is read from `merchant` or, failing that, `source`.
func DecodeTransaction(props map[string]string) *Transaction {
	typ, err := ParseTransactionType(props[PropType])
	if err != nil {
		return nil
	}
	return &Transaction{
		Date:        ParseDate(props["date"]),
		Amount:      ParseAmount(props["amount"]),
		Merchant:    lookup(props, keyMerchant),
		Category:    props["category"],
		Account:     CleanReference(props["account"]),
		Type:        typ,
		Description: props["description"],
	}
}
