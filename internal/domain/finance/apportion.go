package finance

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Apportion divide o valor cobrado entre profissional e casa.
// A parte do profissional é arredondada para o centavo com arredondamento
// bancário (half-to-even); a casa fica com o restante, então a soma das
// duas partes é sempre exatamente o valor cobrado.
func Apportion(
	charged decimal.Decimal,
	commissionPercent int,
) (professionalShare, houseShare decimal.Decimal) {

	pct := decimal.NewFromInt(int64(commissionPercent))

	professionalShare = charged.Mul(pct).Div(hundred).RoundBank(2)
	houseShare = charged.Sub(professionalShare)

	return professionalShare, houseShare
}
