package auth

import (
	"encoding/base64"
	"fmt"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"
)

// TOTPIssuer is the issuer name shown in authenticator apps.
const TOTPIssuer = "Lorasite"

// Enrollment holds everything a client needs to finish TOTP setup: the
// shared secret and a QR code PNG encoded as base64.
type Enrollment struct {
	Secret   string `json:"secret"`
	QRBase64 string `json:"qr"`
}

// GenerateEnrollment creates a fresh TOTP secret for the account and
// renders its provisioning URL as a QR code.
func GenerateEnrollment(accountEmail string) (*Enrollment, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      TOTPIssuer,
		AccountName: accountEmail,
	})
	if err != nil {
		return nil, fmt.Errorf("totp generate: %w", err)
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}

	return &Enrollment{
		Secret:   key.Secret(),
		QRBase64: base64.StdEncoding.EncodeToString(qrPNG),
	}, nil
}

// ValidateTOTP checks a 6-digit authenticator code against the secret.
func ValidateTOTP(code, secret string) bool {
	return totp.Validate(code, secret)
}
