package entities

type CardBrandID string

const (
	CardBrandVisa       CardBrandID = "visa"
	CardBrandMastercard CardBrandID = "mastercard"
	CardBrandAmex       CardBrandID = "amex"
	CardBrandElo        CardBrandID = "elo"
	CardBrandHipercard  CardBrandID = "hipercard"
	CardBrandDiners     CardBrandID = "diners"
)

// CardBrandDescriptor is static brand metadata shown by the card form.
type CardBrandDescriptor struct {
	ID                  CardBrandID `json:"id"`
	DisplayName         string      `json:"display_name"`
	Icon                string      `json:"icon"`
	NumberPrefixPattern string      `json:"number_prefix_pattern"`
}

var cardBrands = []CardBrandDescriptor{
	{ID: CardBrandVisa, DisplayName: "Visa", Icon: "visa.svg", NumberPrefixPattern: `^4`},
	{ID: CardBrandMastercard, DisplayName: "Mastercard", Icon: "mastercard.svg", NumberPrefixPattern: `^5[1-5]`},
	{ID: CardBrandAmex, DisplayName: "American Express", Icon: "amex.svg", NumberPrefixPattern: `^3[47]`},
	{ID: CardBrandElo, DisplayName: "Elo", Icon: "elo.svg", NumberPrefixPattern: `^(636368|438935|504175|451416|636297|5067|4576|4011)`},
	{ID: CardBrandHipercard, DisplayName: "Hipercard", Icon: "hipercard.svg", NumberPrefixPattern: `^(606282|3841)`},
	{ID: CardBrandDiners, DisplayName: "Diners Club", Icon: "diners.svg", NumberPrefixPattern: `^3[0689]`},
}

// CardBrands returns a copy of the supported brand table.
func CardBrands() []CardBrandDescriptor {
	out := make([]CardBrandDescriptor, len(cardBrands))
	copy(out, cardBrands)
	return out
}

// LookupCardBrand returns the descriptor for id, or nil when unsupported.
func LookupCardBrand(id CardBrandID) *CardBrandDescriptor {
	for i := range cardBrands {
		if cardBrands[i].ID == id {
			d := cardBrands[i]
			return &d
		}
	}
	return nil
}
