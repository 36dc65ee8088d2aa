package config

import (
	"fmt"
	"time"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// RateLimitKey returns the Redis counter key for a client IP in the fixed
// window that contains now. Windows shorter than a millisecond count as one.
func (r *CacheKeyStruct) RateLimitKey(ip string, window time.Duration, now time.Time) string {
	return fmt.Sprintf("ratelimit:%s:%d", ip, now.UnixMilli()/max(window.Milliseconds(), 1))
}

var CacheKey = NewCacheKeyStruct()
