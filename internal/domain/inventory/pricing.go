package inventory

import "github.com/shopspring/decimal"

// Servicios de dominio para valores derivados de precio. Todas las funciones
// son puras: mismo snapshot, mismo resultado.

// PriceWithICMS devuelve el precio unitario con ICMS incluido:
// unitPrice * (1 + icmsRate).
func PriceWithICMS(unitPrice, icmsRate decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(1).Add(icmsRate))
}

// Profit calcula la ganancia de una salida:
// (salePrice - unitPrice) * quantity.
func Profit(salePrice, unitPrice decimal.Decimal, quantity int64) decimal.Decimal {
	return salePrice.Sub(unitPrice).Mul(decimal.NewFromInt(quantity))
}

// TotalSale devuelve el valor total de venta: salePrice * quantity.
func TotalSale(salePrice decimal.Decimal, quantity int64) decimal.Decimal {
	return salePrice.Mul(decimal.NewFromInt(quantity))
}

// Margin devuelve el margen de ganancia: (salePrice - unitPrice) / unitPrice.
// Con precio unitario cero no hay margen definible y devuelve cero.
func Margin(salePrice, unitPrice decimal.Decimal) decimal.Decimal {
	if unitPrice.IsZero() {
		return decimal.Zero
	}
	return salePrice.Sub(unitPrice).Div(unitPrice)
}
