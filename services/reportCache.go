package services

import (
	"Polyclinic/cache"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultReportCacheExpiry  = 5 * time.Minute
	DefaultReportCacheTimeout = 2 * time.Second
	reportCachePrefix         = "report_cache:"
)

// ReportCache memoises rendered report lines in Redis. Cache failures are
// logged and the report is rebuilt, so callers always get an answer.
type ReportCache struct {
	cache   *cache.Cache
	expiry  time.Duration
	timeout time.Duration
	logger  zerolog.Logger
}

// NewReportCache builds a ReportCache. expiry is the TTL of stored reports and
// timeout bounds each Redis round trip; non-positive values take the defaults.
func NewReportCache(cache *cache.Cache, expiry, timeout time.Duration, logger zerolog.Logger) *ReportCache {
	if expiry <= 0 {
		expiry = DefaultReportCacheExpiry
	}
	if timeout <= 0 {
		timeout = DefaultReportCacheTimeout
	}
	return &ReportCache{cache: cache, expiry: expiry, timeout: timeout, logger: logger}
}

// Fetch returns the lines cached under cacheKey, or runs build and stores its
// result. Keys come from ReportCacheKey.
func (c *ReportCache) Fetch(ctx context.Context, cacheKey string, build func() []string) []string {
	if !c.cache.Enabled() {
		return build()
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cached, err := c.cache.Get(ctx, cacheKey)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", cacheKey).Msg("failed to read report from cache")
	} else if cached != "" {
		var lines []string
		if err := json.Unmarshal([]byte(cached), &lines); err == nil {
			return lines
		}
		c.logger.Warn().Str("key", cacheKey).Msg("discarding undecodable cached report")
	}

	lines := build()
	payload, err := json.Marshal(lines)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", cacheKey).Msg("failed to marshal report")
		return lines
	}
	if err := c.cache.Set(ctx, cacheKey, payload, c.expiry); err != nil {
		c.logger.Warn().Err(err).Str("key", cacheKey).Msg("failed to store report in cache")
	}
	return lines
}

// Flush drops every cached report.
func (c *ReportCache) Flush(ctx context.Context) error {
	if !c.cache.Enabled() {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.cache.DeleteAll(ctx, reportCachePrefix+"*")
}

// FlushReport drops the cached copies of one report: the bare key and every
// parameterised variant.
func (c *ReportCache) FlushReport(ctx context.Context, name string) error {
	if !c.cache.Enabled() {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	key := ReportCacheKey(name)
	if err := c.cache.Delete(ctx, key); err != nil {
		return err
	}
	return c.cache.DeleteAll(ctx, key+":*")
}

// ReportCacheKey builds the Redis key for a report and its optional parameter.
func ReportCacheKey(name string, params ...interface{}) string {
	key := reportCachePrefix + name
	for _, p := range params {
		key += fmt.Sprintf(":%v", p)
	}
	return key
}
