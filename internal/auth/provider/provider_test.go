package provider

import (
	"errors"
	"testing"

	"travel-service/internal/account"
	"travel-service/internal/auth"
)

func TestForName(t *testing.T) {
	for _, name := range []string{"google", "GOOGLE", "Google", " google "} {
		a, err := ForName(name)
		if err != nil {
			t.Fatalf("ForName(%q): %v", name, err)
		}
		if a.Name() != account.ProviderGoogle {
			t.Fatalf("ForName(%q) = %s, want GOOGLE", name, a.Name())
		}
	}
}

func TestForNameUnsupported(t *testing.T) {
	for _, name := range []string{"github", "local", "", "kakao2"} {
		_, err := ForName(name)
		if !errors.Is(err, auth.ErrUnsupportedProvider) {
			t.Fatalf("ForName(%q) = %v, want ErrUnsupportedProvider", name, err)
		}
	}
}

// LOCAL parses as a provider name but has no user-info adapter.
func TestForNameLocalRejected(t *testing.T) {
	if _, err := ForName("LOCAL"); !errors.Is(err, auth.ErrUnsupportedProvider) {
		t.Fatalf("ForName(LOCAL) = %v, want ErrUnsupportedProvider", err)
	}
}

func TestGoogleAdapter(t *testing.T) {
	got := googleAdapter.Identity(map[string]any{
		"sub":   "108234567890",
		"email": "alice@example.com",
		"name":  "Alice",
	})
	want := auth.Identity{
		Provider: account.ProviderGoogle,
		Subject:  "108234567890",
		Email:    "alice@example.com",
		Name:     "Alice",
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestNaverAdapterNestedResponse(t *testing.T) {
	got := naverAdapter.Identity(map[string]any{
		"resultcode": "00",
		"message":    "success",
		"response": map[string]any{
			"id":    "naver-uid-1",
			"email": "bob@example.com",
			"name":  "Bob",
		},
	})
	want := auth.Identity{
		Provider: account.ProviderNaver,
		Subject:  "naver-uid-1",
		Email:    "bob@example.com",
		Name:     "Bob",
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestNaverAdapterMissingResponse(t *testing.T) {
	got := naverAdapter.Identity(map[string]any{"resultcode": "00"})
	if got.Subject != "" || got.Email != "" || got.Name != "" {
		t.Fatalf("missing response map should yield empty fields, got %+v", got)
	}
}

func TestKakaoAdapterNumericID(t *testing.T) {
	// JSON numbers decode as float64; the id must come back as a plain
	// decimal string.
	got := kakaoAdapter.Identity(map[string]any{
		"id": float64(2718281828),
		"kakao_account": map[string]any{
			"email": "carol@example.com",
			"profile": map[string]any{
				"nickname": "Carol",
			},
		},
	})
	want := auth.Identity{
		Provider: account.ProviderKakao,
		Subject:  "2718281828",
		Email:    "carol@example.com",
		Name:     "Carol",
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestKakaoAdapterMissingProfile(t *testing.T) {
	got := kakaoAdapter.Identity(map[string]any{
		"id": float64(42),
		"kakao_account": map[string]any{
			"email": "carol@example.com",
		},
	})
	if got.Subject != "42" || got.Email != "carol@example.com" || got.Name != "" {
		t.Fatalf("got %+v", got)
	}
}

func TestAppleAdapterNameFallback(t *testing.T) {
	got := appleAdapter.Identity(map[string]any{
		"sub":   "apple-uid-1",
		"email": "dave.jones@icloud.com",
	})
	if got.Name != "dave.jones" {
		t.Fatalf("name = %q, want email local part", got.Name)
	}

	got = appleAdapter.Identity(map[string]any{
		"sub":   "apple-uid-1",
		"email": "dave.jones@icloud.com",
		"name":  "Dave",
	})
	if got.Name != "Dave" {
		t.Fatalf("explicit name should win, got %q", got.Name)
	}

	got = appleAdapter.Identity(map[string]any{"sub": "apple-uid-1"})
	if got.Name != "" {
		t.Fatalf("no email means no fallback name, got %q", got.Name)
	}
}

func TestStringAttrTypes(t *testing.T) {
	attrs := map[string]any{
		"s":    "plain",
		"f":    float64(123456789),
		"frac": float64(1.5),
		"b":    true,
		"nil":  nil,
	}
	cases := map[string]string{
		"s":       "plain",
		"f":       "123456789",
		"frac":    "1.5",
		"b":       "true",
		"nil":     "",
		"missing": "",
	}
	for key, want := range cases {
		if got := stringAttr(attrs, key); got != want {
			t.Errorf("stringAttr(%q) = %q, want %q", key, got, want)
		}
	}
}
