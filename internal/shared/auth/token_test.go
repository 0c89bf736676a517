package auth

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
)

func TestExtractBearerTokenFromHeader(t *testing.T) {
	cases := map[string]string{
		"":                   "",
		"Bearer abc":         "abc",
		"bearer  abc  ":      "abc",
		"BEARER xyz":         "xyz",
		"Basic dXNlcjpwdw==": "",
		"Bearer":             "",
	}

	for input, expected := range cases {
		if got := ExtractBearerTokenFromHeader(input); got != expected {
			t.Fatalf("ExtractBearerTokenFromHeader(%q) = %q, expected %q", input, got, expected)
		}
	}
}

func TestExtractToken_FallsBackToQuery(t *testing.T) {
	req := httptest.NewRequest("GET", "/ws/reference?token=from-query", nil)
	if got := ExtractToken(req, ""); got != "from-query" {
		t.Fatalf("expected query token, got %q", got)
	}

	req.Header.Set("Authorization", "Bearer from-header")
	if got := ExtractToken(req, ""); got != "from-header" {
		t.Fatalf("expected header token to win, got %q", got)
	}
}

func TestContextTokenProvider(t *testing.T) {
	t.Parallel()

	provider := ContextTokenProvider{Fallback: StaticToken(" service ")}

	token, err := provider.Token(WithToken(context.Background(), "user-token"))
	if err != nil || token != "user-token" {
		t.Fatalf("expected context token, got %q (%v)", token, err)
	}

	token, err = provider.Token(context.Background())
	if err != nil || token != "service" {
		t.Fatalf("expected fallback token, got %q (%v)", token, err)
	}

	token, err = ContextTokenProvider{}.Token(context.Background())
	if err != nil || token != "" {
		t.Fatalf("expected empty token, got %q (%v)", token, err)
	}
}

func TestTokenProviderFunc_PropagatesError(t *testing.T) {
	expected := errors.New("token store offline")
	provider := TokenProviderFunc(func(context.Context) (string, error) { return "", expected })

	if _, err := provider.Token(context.Background()); !errors.Is(err, expected) {
		t.Fatalf("expected %v, got %v", expected, err)
	}
}
