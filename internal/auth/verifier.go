package auth

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoKeys       = errors.New("no public keys in key set")
	ErrInvalidToken = errors.New("invalid token")
	ErrNoEmailClaim = errors.New("token has no email claim")
)

// Claims is the subset of the identity-provider token we rely on. Identity
// is keyed by the verified email address.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verifier validates bearer tokens against the identity provider's RSA
// public key set.
type Verifier struct {
	keys jwt.VerificationKeySet
}

// NewVerifier builds a Verifier from already-parsed public keys.
func NewVerifier(keys ...*rsa.PublicKey) (*Verifier, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	set := jwt.VerificationKeySet{}
	for _, k := range keys {
		set.Keys = append(set.Keys, k)
	}
	return &Verifier{keys: set}, nil
}

// NewVerifierFromFile loads every PEM public-key block from path. Multiple
// blocks are accepted so provider key rotation doesn't invalidate tokens
// signed with the previous key.
func NewVerifierFromFile(path string) (*Verifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key set: %w", err)
	}
	keys, err := parsePublicKeys(data)
	if err != nil {
		return nil, err
	}
	return NewVerifier(keys...)
}

// Verify checks signature and expiry and returns the verified email.
// Any failure means the caller must treat the request as anonymous.
func (v *Verifier) Verify(tokenStr string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return v.keys, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Email == "" {
		return "", ErrNoEmailClaim
	}
	return claims.Email, nil
}

func parsePublicKeys(data []byte) ([]*rsa.PublicKey, error) {
	var keys []*rsa.PublicKey
	for {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			break
		}
		switch block.Type {
		case "PUBLIC KEY":
			pub, err := x509.ParsePKIXPublicKey(block.Bytes)
			if err != nil {
				return nil, fmt.Errorf("failed to parse public key: %w", err)
			}
			rsaKey, ok := pub.(*rsa.PublicKey)
			if !ok {
				return nil, fmt.Errorf("unsupported public key type %T", pub)
			}
			keys = append(keys, rsaKey)
		case "RSA PUBLIC KEY":
			rsaKey, err := x509.ParsePKCS1PublicKey(block.Bytes)
			if err != nil {
				return nil, fmt.Errorf("failed to parse public key: %w", err)
			}
			keys = append(keys, rsaKey)
		}
	}
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	return keys, nil
}
