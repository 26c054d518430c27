package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"darshan/config"
	"darshan/shared/timezone"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

const (
	defaultExpireMin = 60
	checkoutAudience = "checkout"
)

// Claims binds a checkout token to exactly one ticket.
type Claims struct {
	TicketID string `json:"ticket_id"`
	jwt.RegisteredClaims
}

// JWT signs and checks the checkout tokens embedded in payment URLs.
type JWT interface {
	GenerateCheckoutToken(ticketID string) (string, error)
	CheckoutURL(ticketID string) (string, error)
	ValidateCheckoutToken(tokenString, ticketID string) (*Claims, error)
}

// Service handles JWT operations
type Service struct {
	config *config.Config
}

// New creates a new JWT service
func New(cfg *config.Config) JWT {
	return &Service{
		config: cfg,
	}
}

func (s *Service) expireMin() int {
	if s.config.Payment.Checkout.ExpireMin <= 0 {
		return defaultExpireMin
	}

	return s.config.Payment.Checkout.ExpireMin
}

// GenerateCheckoutToken creates a signed, expiring token for ticketID.
func (s *Service) GenerateCheckoutToken(ticketID string) (string, error) {
	issuedAt := timezone.Now()
	expiresAt := issuedAt.Add(time.Duration(s.expireMin()) * time.Minute)

	claims := Claims{
		TicketID: ticketID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.config.App.Name,
			Subject:   ticketID,
			Audience:  jwt.ClaimStrings{checkoutAudience},
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString([]byte(s.config.Payment.Checkout.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// CheckoutURL returns the payment page URL for ticketID, carrying a fresh checkout token.
func (s *Service) CheckoutURL(ticketID string) (string, error) {
	token, err := s.GenerateCheckoutToken(ticketID)
	if err != nil {
		return "", err
	}

	base := strings.TrimRight(s.config.Payment.Checkout.BaseURL, "/")

	return fmt.Sprintf("%s/v1/payment/%s?token=%s", base, url.PathEscape(ticketID), url.QueryEscape(token)), nil
}

// ValidateCheckoutToken parses tokenString and checks that it was issued for ticketID.
func (s *Service) ValidateCheckoutToken(tokenString, ticketID string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(s.config.Payment.Checkout.Secret), nil
	}, jwt.WithAudience(checkoutAudience))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TicketID == "" || claims.TicketID != ticketID {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}
