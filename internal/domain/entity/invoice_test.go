package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceStatus_Valid(t *testing.T) {
	assert.True(t, InvoiceStatusPaid.Valid())
	assert.True(t, InvoiceStatusPending.Valid())
	assert.True(t, InvoiceStatusOverdue.Valid())
	assert.True(t, InvoiceStatusCancelled.Valid())
	assert.False(t, InvoiceStatus("refunded").Valid())
	assert.False(t, InvoiceStatus("").Valid())
}

func TestInvoice_PaymentChannel(t *testing.T) {
	pix := Invoice{Description: "Assinatura mensal - PIX"}
	assert.Equal(t, PaymentChannelPix, pix.PaymentChannel())

	card := Invoice{Description: "Assinatura mensal - cartão"}
	assert.Equal(t, PaymentChannelCard, card.PaymentChannel())
}
