// Package inventory contiene reglas de dominio del inventario (costo promedio ponderado).
package inventory

import "github.com/shopspring/decimal"

// costScale decimales con los que se guarda el costo promedio.
const costScale = 4

// CostCalculator implementa la lógica de costo promedio ponderado (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Un stock actual negativo o cero no pondera: el costo pasa a ser el de la entrada.
func CostCalculator(stockActual, costoActual, cantEntrada, costoEntrada decimal.Decimal) decimal.Decimal {
	if stockActual.LessThanOrEqual(decimal.Zero) {
		if cantEntrada.LessThanOrEqual(decimal.Zero) {
			return costoActual
		}
		return costoEntrada.Round(costScale)
	}
	sum := stockActual.Add(cantEntrada)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stockActual.Mul(costoActual).Add(cantEntrada.Mul(costoEntrada))
	return num.Div(sum).Round(costScale)
}
