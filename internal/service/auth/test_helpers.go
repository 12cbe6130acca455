package auth

import "time"

// NewTestJWTService creates a JWT service with an injectable time
// function for deterministic expiry testing. It bypasses the secret
// length validation performed by NewJWTService on purpose: tests may
// want short secrets.
func NewTestJWTService(
	secret string,
	tokenLifetime time.Duration,
	timeFunc func() time.Time,
) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: tokenLifetime,
		timeFunc:      timeFunc,
		// No leeway in tests so expiry boundaries are exact.
		clockSkew: 0,
	}
}
