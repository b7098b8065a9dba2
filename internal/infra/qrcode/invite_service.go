// Package qrcode renders referral invites as QR codes.
package qrcode

import (
	"net/url"
	"strings"

	"refboard/internal/domain/service"
	"refboard/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

type inviteService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewInviteService creates a new invite service instance.
func NewInviteService(baseURL string, size int, errorCorrectionLevel string) service.InviteService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultQRSize
	}

	return &inviteService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// InviteLink builds the signup link that attributes new accounts to the username.
func (s *inviteService) InviteLink(username string) string {
	return s.baseURL + "/cadastro?ref=" + url.QueryEscape(username)
}

// GenerateInviteQR renders the invite link for the given username as a PNG QR code.
func (s *inviteService) GenerateInviteQR(username string) ([]byte, error) {
	qrCode, err := qrcode.New(s.InviteLink(username), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
