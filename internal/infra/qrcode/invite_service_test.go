package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInviteService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewInviteService("https://app.example.com", tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestInviteService_InviteLink(t *testing.T) {
	service := NewInviteService("https://app.example.com/", 256, "M")

	link := service.InviteLink("joao")
	assert.Equal(t, "https://app.example.com/cadastro?ref=joao", link)
}

func TestInviteService_InviteLink_EscapesUsername(t *testing.T) {
	service := NewInviteService("https://app.example.com", 256, "M")

	link := service.InviteLink("joão silva")
	assert.Equal(t, "https://app.example.com/cadastro?ref=jo%C3%A3o+silva", link)
}

func TestInviteService_GenerateInviteQR(t *testing.T) {
	service := NewInviteService("https://app.example.com", 256, "M")

	qrBytes, err := service.GenerateInviteQR("joao")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestInviteService_GenerateInviteQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewInviteService("https://app.example.com", tt.size, "M")

			qrBytes, err := service.GenerateInviteQR("joao")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}
