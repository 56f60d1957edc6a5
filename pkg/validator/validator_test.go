package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ProductID string          `json:"id_producto" validate:"required,uuid"`
	Quantity  decimal.Decimal `json:"cantidad" validate:"gt=0"`
}

type request struct {
	Email  string          `json:"email" validate:"required,email"`
	Name   string          `json:"nombre" validate:"required,min=2"`
	Price  decimal.Decimal `json:"precio_venta" validate:"gte=0"`
	Method string          `json:"metodo_pago" validate:"oneof=efectivo tarjeta transferencia"`
	Code   string          `json:"codigo" validate:"omitempty,permcode"`
	Items  []item          `json:"items" validate:"required,min=1,dive"`
}

func valid() request {
	return request{
		Email:  "caja@tienda.co",
		Name:   "Caja 1",
		Price:  decimal.NewFromInt(1000),
		Method: "efectivo",
		Code:   "ventas:crear",
		Items:  []item{{ProductID: "6f1c1c1e-8c1a-4f55-9a57-1c9d5d0b7a11", Quantity: decimal.NewFromInt(1)}},
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, Validate(valid()))
}

func TestValidate_NombresJSONYMensajes(t *testing.T) {
	r := valid()
	r.Email = "no-es-email"
	r.Price = decimal.NewFromInt(-1)
	r.Method = "cheque"
	r.Items[0].Quantity = decimal.Zero

	err := Validate(r)
	require.Error(t, err)
	var errs Errors
	require.ErrorAs(t, err, &errs)

	byField := map[string]string{}
	for _, fe := range errs {
		byField[fe.Field] = fe.Message
	}
	assert.Equal(t, "debe ser un email válido", byField["email"])
	assert.Equal(t, "debe ser mayor o igual a 0", byField["precio_venta"])
	assert.Equal(t, "debe ser uno de: efectivo tarjeta transferencia", byField["metodo_pago"])
	assert.Equal(t, "debe ser mayor a 0", byField["items[0].cantidad"])
}

func TestValidate_ItemsVacios(t *testing.T) {
	r := valid()
	r.Items = nil
	err := Validate(r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "items")
}

func TestIsPermissionCode(t *testing.T) {
	cases := map[string]bool{
		"*":                 true,
		"ventas:crear":      true,
		"productos:*":       true,
		"stock_minimo:leer": true,
		"ventas":            false,
		"Ventas:crear":      false,
		"ventas:borrar":     false,
		"":                  false,
		"ventas:crear:x":    false,
	}
	for code, want := range cases {
		assert.Equal(t, want, IsPermissionCode(code), code)
	}
}
