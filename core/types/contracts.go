package types

// NativeTokenSymbol is the symbol of the platform's reward token, which lives
// in its own token contract.
const NativeTokenSymbol = "IQ"

// Contracts binds each logical contract role to an account name.
type Contracts struct {
	Market            string `validate:"required"`
	SecondaryMarket   string `validate:"required"`
	Token             string `validate:"required"`
	IQToken           string `validate:"required"`
	Bank              string `validate:"required"`
	Oracle            string `validate:"required"`
	Multisig          string `validate:"required"`
	DisputeResolution string `validate:"required"`
}

// DefaultContracts returns the mainnet account names.
func DefaultContracts() Contracts {
	return Contracts{
		Market:            "prediqtpedia",
		SecondaryMarket:   "prediqtmarkt",
		Token:             "eosio.token",
		IQToken:           "everipediaiq",
		Bank:              "prediqtbankk",
		Oracle:            "prediqtoracl",
		Multisig:          "eosio.msig",
		DisputeResolution: "prediqtdsput",
	}
}

// Merge returns c with every non-empty field of override applied.
func (c Contracts) Merge(override Contracts) Contracts {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.Market, override.Market)
	set(&c.SecondaryMarket, override.SecondaryMarket)
	set(&c.Token, override.Token)
	set(&c.IQToken, override.IQToken)
	set(&c.Bank, override.Bank)
	set(&c.Oracle, override.Oracle)
	set(&c.Multisig, override.Multisig)
	set(&c.DisputeResolution, override.DisputeResolution)
	return c
}
