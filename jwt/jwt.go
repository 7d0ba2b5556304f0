package jwt

import (
	"Storefront/apperr"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTTL = 24 * time.Hour

type Claims struct {
	UserID uint   `json:"userID"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and validates RS256 tokens. Tokens are self-contained;
// nothing is stored server side.
type Issuer struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	ttl        time.Duration
	now        func() time.Time
}

func NewIssuer(privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{
		privateKey: privateKey,
		publicKey:  publicKey,
		ttl:        ttl,
		now:        time.Now,
	}
}

// LoadIssuer reads the PEM encoded key pair.
func LoadIssuer(privateKeyPath, publicKeyPath string, ttl time.Duration) (*Issuer, error) {
	keyBytes, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, err
	}
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(keyBytes)
	if err != nil {
		return nil, err
	}

	keyBytes, err = os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, err
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(keyBytes)
	if err != nil {
		return nil, err
	}

	return NewIssuer(privateKey, publicKey, ttl), nil
}

// GenerateIssuer creates an in-memory key pair. Tokens die with the process.
func GenerateIssuer(ttl time.Duration) (*Issuer, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, err
	}
	return NewIssuer(privateKey, &privateKey.PublicKey, ttl), nil
}

func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs a token carrying userID and role.
func (i *Issuer) Issue(userID uint, role string) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(i.ttl)

	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tokenString, err := token.SignedString(i.privateKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// Validate checks signature, algorithm and expiry. Any failure is
// apperr.ErrInvalidToken.
func (i *Issuer) Validate(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, apperr.ErrInvalidToken
	}

	keyFunc := func(token *jwt.Token) (interface{}, error) {
		return i.publicKey, nil
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, apperr.Wrap(apperr.ErrInvalidToken, jwt.ErrTokenSignatureInvalid)
	}

	if claims.Subject != strconv.FormatUint(uint64(claims.UserID), 10) {
		return nil, apperr.Wrap(apperr.ErrInvalidToken, errors.New("subject does not match userID"))
	}

	return claims, nil
}
