package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderNumber(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		n := NewOrderNumber()
		assert.True(t, strings.HasPrefix(n, "ORD-"))
		assert.Len(t, n, len("ORD-")+8)
		assert.Equal(t, strings.ToUpper(n), n)
		seen[n] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestNewTransactionID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewTransactionID()
		assert.True(t, strings.HasPrefix(id, "TX-"))
		assert.Len(t, id, len("TX-")+10)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 100)
}
