package cache_test

import (
	"testing"
	"time"

	"github.com/dinobank/dinoframe-bff-go/internal/domain"
	"github.com/dinobank/dinoframe-bff-go/internal/infra/cache"
)

func TestCache_SetGet(t *testing.T) {
	c := cache.New[*domain.Account](time.Minute)

	acc := &domain.Account{ID: 7, AccountNumber: "TR330006100519786457841326", Balance: 1250.50, Currency: "TRY"}
	c.Set("summary:1", acc)

	got, ok := c.Get("summary:1")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.AccountNumber != acc.AccountNumber {
		t.Errorf("expected %s, got %s", acc.AccountNumber, got.AccountNumber)
	}
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	c := cache.New[*domain.Account](time.Minute)

	if _, ok := c.Get("summary:999"); ok {
		t.Fatal("expected cache miss")
	}
}

func TestCache_ExpiresAfterTTL(t *testing.T) {
	c := cache.New[string](20 * time.Millisecond)

	c.Set("k", "v")
	time.Sleep(40 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Fatal("expected entry to expire")
	}
}

func TestCache_Delete(t *testing.T) {
	c := cache.New[string](time.Minute)

	c.Set("k", "v")
	c.Delete("k")

	if _, ok := c.Get("k"); ok {
		t.Fatal("expected entry to be gone after delete")
	}
}
