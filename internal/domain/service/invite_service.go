package service

// InviteService renders shareable referral invites.
type InviteService interface {
	// InviteLink builds the signup link that attributes new accounts to the
	// given username.
	InviteLink(username string) string

	// GenerateInviteQR renders the invite link for the given username as a
	// PNG QR code.
	GenerateInviteQR(username string) ([]byte, error)
}
