package db

import (
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"
	log "github.com/sirupsen/logrus"
)

// Filtered transaction lists are cached per user and time-range selector with
// a short TTL, so repeated dashboard renders don't hit Postgres. Keys are
// tracked per user so that a single write can drop every cached window for
// that user at once.
var (
	Cache *ristretto.Cache

	transactionCacheTTL = time.Minute

	transactionCacheKeys = struct {
		sync.RWMutex
		m map[int64]map[string]struct{}
	}{m: make(map[int64]map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

// TransactionCacheKey names one user's cached list for one selector value.
func TransactionCacheKey(userID int64, selector string) string {
	return fmt.Sprintf("transactions:%d:%s", userID, selector)
}

func SetTransactionCache(userID int64, cacheKey string, value interface{}) {
	if Cache == nil {
		return
	}
	transactionCacheKeys.Lock()
	keys, ok := transactionCacheKeys.m[userID]
	if !ok {
		keys = make(map[string]struct{})
		transactionCacheKeys.m[userID] = keys
	}
	keys[cacheKey] = struct{}{}
	transactionCacheKeys.Unlock()
	Cache.SetWithTTL(cacheKey, value, 1, transactionCacheTTL)
}

func GetTransactionCache(cacheKey string) (interface{}, bool) {
	if Cache == nil {
		return nil, false
	}
	return Cache.Get(cacheKey)
}

// ClearTransactionCaches drops every cached window for one user. Called on
// any write to that user's transactions.
func ClearTransactionCaches(userID int64) {
	if Cache == nil {
		return
	}
	transactionCacheKeys.Lock()
	for key := range transactionCacheKeys.m[userID] {
		Cache.Del(key)
	}
	delete(transactionCacheKeys.m, userID)
	transactionCacheKeys.Unlock()
}
