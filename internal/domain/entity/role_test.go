package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	cases := []struct {
		name     string
		granted  []string
		required string
		want     bool
	}{
		{"comodín global", []string{"*"}, "ventas:crear", true},
		{"código exacto", []string{"ventas:leer", "ventas:crear"}, "ventas:crear", true},
		{"comodín de módulo", []string{"productos:*"}, "productos:eliminar", true},
		{"comodín de otro módulo", []string{"productos:*"}, "ventas:crear", false},
		{"acción distinta", []string{"ventas:leer"}, "ventas:crear", false},
		{"sin permisos", nil, "ventas:leer", false},
		{"prefijo no es módulo", []string{"venta:*"}, "ventas:leer", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, HasPermission(c.granted, c.required))
		})
	}
}

func TestValidTaxRate(t *testing.T) {
	assert.True(t, ValidTaxRate(decimal.Zero))
	assert.True(t, ValidTaxRate(decimal.NewFromInt(5)))
	assert.True(t, ValidTaxRate(decimal.RequireFromString("19.00")))
	assert.False(t, ValidTaxRate(decimal.NewFromInt(16)))
}

func TestStock_BelowMinimum(t *testing.T) {
	s := Stock{Quantity: decimal.NewFromInt(2), MinStock: decimal.NewFromInt(5)}
	assert.True(t, s.BelowMinimum())
	s.Quantity = decimal.NewFromInt(5)
	assert.False(t, s.BelowMinimum())
}
