package draw

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/kioskworks/roulette-go/internal/domain"
)

// Signer produces tamper-evident signatures over draw outcomes so results can
// be verified offline against the shared secret.
type Signer struct {
	secret []byte
}

// NewSigner creates a signer from the shared secret. The secret is loaded
// once at startup and never rotated mid-run.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign computes HMAC-SHA256 over rouletteID || prizeID || idempotencyKey and
// returns it hex-encoded.
func (s *Signer) Sign(rouletteID, prizeID, idempotencyKey string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(rouletteID))
	mac.Write([]byte(prizeID))
	mac.Write([]byte(idempotencyKey))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes a stored record's signature and compares in constant time
func (s *Signer) Verify(record *domain.DrawRecord) bool {
	prizeID := domain.NoPrizeID
	if record.PrizeID != nil {
		prizeID = record.PrizeID.String()
	}
	expected := s.Sign(record.RouletteID.String(), prizeID, record.IdempotencyKey)
	return hmac.Equal([]byte(expected), []byte(record.Signature))
}
