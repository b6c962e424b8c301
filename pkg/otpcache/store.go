package otpcache

import (
	"context"
	"time"
)

// StagingTTL bounds how long a pending registration (payload and OTP alike)
// survives before verification must start over.
const StagingTTL = 300 * time.Second

// Store holds staged registration payloads and their one-time codes, each
// under an independent TTL. The cache is the only place staged data lives;
// services keep no copy of their own.
type Store interface {
	// StageData stores the serialized registration payload for email.
	StageData(ctx context.Context, email string, payload []byte, ttl time.Duration) error
	// StageOtp stores the one-time code for email, replacing any previous one.
	StageOtp(ctx context.Context, email string, code string, ttl time.Duration) error

	// Data returns the staged payload, or ok=false when missing/expired.
	Data(ctx context.Context, email string) (payload []byte, ok bool, err error)
	// Otp returns the staged code, or ok=false when missing/expired.
	Otp(ctx context.Context, email string) (code string, ok bool, err error)

	// Clear removes both entries for email. Clearing an absent key is not
	// an error.
	Clear(ctx context.Context, email string) error
}

func dataKey(email string) string { return email + ":data" }
func otpKey(email string) string  { return email + ":otp" }
