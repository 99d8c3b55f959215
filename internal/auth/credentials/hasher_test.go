package credentials

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndMatch(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("correct horse")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if digest == "correct horse" {
		t.Fatal("digest must not equal the plaintext")
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Fatalf("digest %q is not a bcrypt string", digest)
	}

	if !h.Matches("correct horse", digest) {
		t.Fatal("correct password should match")
	}
	if h.Matches("wrong horse", digest) {
		t.Fatal("wrong password should not match")
	}
}

func TestHashRejectsShortPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	if _, err := h.Hash("12345"); err == nil {
		t.Fatal("five characters should be rejected")
	}
	if _, err := h.Hash("123456"); err != nil {
		t.Fatalf("six characters should be accepted: %v", err)
	}
}

func TestEmptyDigestNeverMatches(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	if h.Matches("", "") {
		t.Fatal("provider-only account must not accept empty password")
	}
	if h.Matches("anything", "") {
		t.Fatal("provider-only account must not accept any password")
	}
}

func TestHasherClampsCost(t *testing.T) {
	h := NewHasher(99)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("cost = %d, want default for out-of-range input", h.cost)
	}
	h = NewHasher(0)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("cost = %d, want default for out-of-range input", h.cost)
	}
}
