package config

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

var (
	// Cache instances for derived projections. Entries are cheap to rebuild,
	// so TTLs are short and every mutation flushes them wholesale through the
	// registry change hook.
	LeaderboardCache *cache.Cache
	SearchCache      *cache.Cache
	StatsCache       *cache.Cache
)

const (
	// Cache durations
	leaderboardCacheDuration = 30 * time.Second
	searchCacheDuration      = 1 * time.Minute
	statsCacheDuration       = 30 * time.Second

	// Cleanup intervals
	leaderboardCleanupInterval = 5 * time.Minute
	searchCleanupInterval      = 5 * time.Minute
	statsCleanupInterval       = 5 * time.Minute
)

func InitCache() {
	LeaderboardCache = cache.New(leaderboardCacheDuration, leaderboardCleanupInterval)
	SearchCache = cache.New(searchCacheDuration, searchCleanupInterval)
	StatsCache = cache.New(statsCacheDuration, statsCleanupInterval)
}

// ClearAllCaches drops every cached projection. Wired to the registry's
// change notification so stale leaderboards never outlive a mutation.
func ClearAllCaches() {
	if LeaderboardCache != nil {
		LeaderboardCache.Flush()
	}
	if SearchCache != nil {
		SearchCache.Flush()
	}
	if StatsCache != nil {
		StatsCache.Flush()
	}
}

func GetCacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += ":" + fmt.Sprintf("%v", param)
	}
	return key
}
