package utils

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewOrderNumber mints a human-readable order number, e.g. ORD-3FA85F64.
func NewOrderNumber() string {
	return "ORD-" + randomHex(8)
}

// NewTransactionID mints a payment transaction id, e.g. TX-3FA85F641705.
func NewTransactionID() string {
	return "TX-" + randomHex(10)
}

func randomHex(n int) string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:])[:n])
}
