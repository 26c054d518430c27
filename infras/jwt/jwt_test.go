package jwt_test

import (
	"darshan/config"
	"darshan/infras/jwt"
	"net/url"
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "darshan"
	cfg.Payment.Checkout.Secret = "checkout-secret"
	cfg.Payment.Checkout.BaseURL = "https://tickets.example.com/"
	cfg.Payment.Checkout.ExpireMin = 30

	return cfg
}

func TestCheckoutToken_RoundTrip(t *testing.T) {
	svc := jwt.New(newConfig())

	token, err := svc.GenerateCheckoutToken("ticket-1")
	require.NoError(t, err)

	claims, err := svc.ValidateCheckoutToken(token, "ticket-1")
	require.NoError(t, err)

	assert.Equal(t, "ticket-1", claims.TicketID)
	assert.Equal(t, "darshan", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, time.Minute)
}

func TestCheckoutToken_BoundToTicket(t *testing.T) {
	svc := jwt.New(newConfig())

	token, err := svc.GenerateCheckoutToken("ticket-1")
	require.NoError(t, err)

	_, err = svc.ValidateCheckoutToken(token, "ticket-2")
	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
}

func TestCheckoutToken_Invalid(t *testing.T) {
	svc := jwt.New(newConfig())

	other := newConfig()
	other.Payment.Checkout.Secret = "another-secret"

	forged, err := jwt.New(other).GenerateCheckoutToken("ticket-1")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong secret", token: forged},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateCheckoutToken(tt.token, "ticket-1")
			assert.ErrorIs(t, err, jwt.ErrInvalidToken)
		})
	}
}

func TestCheckoutToken_Expired(t *testing.T) {
	cfg := newConfig()

	claims := jwt.Claims{
		TicketID: "ticket-1",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Hour)),
			Audience:  gojwt.ClaimStrings{"checkout"},
		},
	}

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Payment.Checkout.Secret))
	require.NoError(t, err)

	_, err = jwt.New(cfg).ValidateCheckoutToken(token, "ticket-1")
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestCheckoutURL(t *testing.T) {
	svc := jwt.New(newConfig())

	raw, err := svc.CheckoutURL("ticket-1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(raw, "https://tickets.example.com/v1/payment/ticket-1?token="))

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	_, err = svc.ValidateCheckoutToken(parsed.Query().Get("token"), "ticket-1")
	assert.NoError(t, err)
}
