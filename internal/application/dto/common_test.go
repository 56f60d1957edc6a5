package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	cases := []struct{ limit, offset, wantLimit, wantOffset int }{
		{0, 0, DefaultLimit, 0},
		{-5, -1, DefaultLimit, 0},
		{10, 20, 10, 20},
		{500, 0, MaxLimit, 0},
	}
	for _, c := range cases {
		l, o := ClampPage(c.limit, c.offset)
		assert.Equal(t, c.wantLimit, l)
		assert.Equal(t, c.wantOffset, o)
	}
}
