package session

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"
)

func forgeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	b, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return header + "." + payload + ".sig"
}

func TestIsTokenExpired(t *testing.T) {
	cases := []struct {
		name    string
		token   string
		expired bool
	}{
		{
			name:    "exp one second in the past",
			token:   forgeToken(t, map[string]any{"exp": time.Now().Add(-time.Second).Unix()}),
			expired: true,
		},
		{
			name:    "exp one hour in the future",
			token:   forgeToken(t, map[string]any{"exp": time.Now().Add(time.Hour).Unix()}),
			expired: false,
		},
		{
			name:    "missing exp claim",
			token:   forgeToken(t, map[string]any{"sub": "12"}),
			expired: false,
		},
		{
			name:    "two segments",
			token:   "abc.def",
			expired: true,
		},
		{
			name:    "empty string",
			token:   "",
			expired: true,
		},
		{
			name:    "payload is not base64",
			token:   "aaa.!!!.ccc",
			expired: true,
		},
		{
			name:    "payload is not json",
			token:   "aaa." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".ccc",
			expired: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsTokenExpired(tc.token); got != tc.expired {
				t.Fatalf("IsTokenExpired(%q) = %v, want %v", tc.token, got, tc.expired)
			}
		})
	}
}
