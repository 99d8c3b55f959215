package resolver

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"travel-service/internal/account"
	"travel-service/internal/auth"
)

// memoryRepository is a map-backed account store for resolver tests.
// raceWinner simulates losing a concurrent signup: when set, the next
// Create inserts the winner instead and reports a duplicate email.
type memoryRepository struct {
	accounts   map[string]*account.Account
	raceWinner *account.Account
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{accounts: make(map[string]*account.Account)}
}

func (m *memoryRepository) Create(_ context.Context, a *account.Account) error {
	if w := m.raceWinner; w != nil {
		m.raceWinner = nil
		m.accounts[strings.ToLower(w.Email)] = w
		return account.ErrDuplicateEmail
	}
	if _, ok := m.accounts[strings.ToLower(a.Email)]; ok {
		return account.ErrDuplicateEmail
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	cp := *a
	m.accounts[strings.ToLower(a.Email)] = &cp
	return nil
}

func (m *memoryRepository) ByEmail(_ context.Context, email string) (*account.Account, error) {
	if a, ok := m.accounts[strings.ToLower(email)]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, account.ErrNotFound
}

func (m *memoryRepository) ByProviderSubject(_ context.Context, p account.Provider, providerID string) (*account.Account, error) {
	for _, a := range m.accounts {
		if a.Provider == p && a.ProviderID == providerID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, account.ErrNotFound
}

func (m *memoryRepository) UpdateName(_ context.Context, id, name string) error {
	for _, a := range m.accounts {
		if a.ID == id {
			a.Name = name
			return nil
		}
	}
	return account.ErrNotFound
}

func kakaoIdentity() auth.Identity {
	return auth.Identity{
		Provider: account.ProviderKakao,
		Subject:  "kakao-123",
		Email:    "carol@example.com",
		Name:     "Carol",
	}
}

func TestResolveCreatesOnFirstLogin(t *testing.T) {
	repo := newMemoryRepository()
	r := NewStoreResolver(repo)

	acct, err := r.Resolve(context.Background(), kakaoIdentity())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if acct.ID == "" {
		t.Fatal("created account has no id")
	}
	if acct.Provider != account.ProviderKakao || acct.ProviderID != "kakao-123" {
		t.Fatalf("provider identity not stored: %+v", acct)
	}
	if acct.Role != account.RoleUser {
		t.Fatalf("role = %s, want USER", acct.Role)
	}
	if acct.PasswordHash != "" {
		t.Fatal("social account must not carry a password hash")
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	repo := newMemoryRepository()
	r := NewStoreResolver(repo)

	first, err := r.Resolve(context.Background(), kakaoIdentity())
	if err != nil {
		t.Fatalf("first Resolve: %v", err)
	}
	second, err := r.Resolve(context.Background(), kakaoIdentity())
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("repeat login created a new account: %s vs %s", first.ID, second.ID)
	}
	if len(repo.accounts) != 1 {
		t.Fatalf("store holds %d accounts, want 1", len(repo.accounts))
	}
}

// A changed email at the provider must not fork the account: the
// (provider, subject) match wins and the stored record comes back as-is.
func TestResolveSubjectMatchIgnoresNewEmail(t *testing.T) {
	repo := newMemoryRepository()
	r := NewStoreResolver(repo)

	first, err := r.Resolve(context.Background(), kakaoIdentity())
	if err != nil {
		t.Fatalf("first Resolve: %v", err)
	}

	changed := kakaoIdentity()
	changed.Email = "carol.new@example.com"
	changed.Name = "Caroline"
	second, err := r.Resolve(context.Background(), changed)
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if second.ID != first.ID {
		t.Fatal("subject match should return the existing account")
	}
	if second.Email != "carol@example.com" || second.Name != "Carol" {
		t.Fatalf("stored fields must not be refreshed: %+v", second)
	}
}

func TestResolveCrossProviderEmailConflict(t *testing.T) {
	repo := newMemoryRepository()
	repo.Create(context.Background(), &account.Account{
		Email:    "carol@example.com",
		Provider: account.ProviderGoogle,
		Role:     account.RoleUser,
	})
	r := NewStoreResolver(repo)

	_, err := r.Resolve(context.Background(), kakaoIdentity())
	if !errors.Is(err, auth.ErrIdentityConflict) {
		t.Fatalf("got %v, want ErrIdentityConflict", err)
	}
	if len(repo.accounts) != 1 {
		t.Fatal("conflict must not write")
	}
}

func TestResolveLocalAccountEmailConflict(t *testing.T) {
	repo := newMemoryRepository()
	repo.Create(context.Background(), &account.Account{
		Email:        "carol@example.com",
		PasswordHash: "$2a$10$something",
		Provider:     account.ProviderLocal,
		Role:         account.RoleUser,
	})
	r := NewStoreResolver(repo)

	_, err := r.Resolve(context.Background(), kakaoIdentity())
	if !errors.Is(err, auth.ErrIdentityConflict) {
		t.Fatalf("got %v, want ErrIdentityConflict", err)
	}
}

func TestResolveLostCreateRace(t *testing.T) {
	repo := newMemoryRepository()
	r := NewStoreResolver(repo)

	// the concurrent winner becomes visible only once Create collides
	repo.raceWinner = &account.Account{
		ID:         uuid.NewString(),
		Email:      "carol@example.com",
		Provider:   account.ProviderKakao,
		ProviderID: "kakao-123",
		Role:       account.RoleUser,
	}
	winnerID := repo.raceWinner.ID

	acct, err := r.Resolve(context.Background(), kakaoIdentity())
	if err != nil {
		t.Fatalf("Resolve after lost race: %v", err)
	}
	if acct.ID != winnerID {
		t.Fatal("loser should adopt the winner's account")
	}
}

func TestResolveRequiresSubject(t *testing.T) {
	r := NewStoreResolver(newMemoryRepository())
	_, err := r.Resolve(context.Background(), auth.Identity{
		Provider: account.ProviderNaver,
		Email:    "bob@example.com",
	})
	if err == nil {
		t.Fatal("identity without subject must be rejected")
	}
}

func TestResolveRequiresEmailForNewAccount(t *testing.T) {
	r := NewStoreResolver(newMemoryRepository())
	_, err := r.Resolve(context.Background(), auth.Identity{
		Provider: account.ProviderApple,
		Subject:  "apple-1",
	})
	if err == nil {
		t.Fatal("unknown identity without email must be rejected")
	}
}
