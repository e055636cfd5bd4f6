package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOrder_DerivesTotal(t *testing.T) {
	o := NewOrder("p1", 10.0, 2)

	assert.Equal(t, "p1", o.ProductID)
	assert.Equal(t, 10.0, o.Price)
	assert.Equal(t, FeeRate, o.Fee)
	assert.InDelta(t, 22.0, o.Total, 1e-9)
	assert.Equal(t, 2, o.Quantity)
	assert.Equal(t, StatusCompleted, o.Status)
}

func TestNewOrder_ZeroPrice(t *testing.T) {
	o := NewOrder("p1", 0, 5)

	assert.Zero(t, o.Total)
	assert.Equal(t, StatusCompleted, o.Status)
}
