// Package cache stores serialized Panchang snapshots so repeated queries for
// the same (date, location) pair skip recomputation. Muhurat scores are never
// cached: they vary per activity.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/vedicastro/panchang/internal/model"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// SnapshotKey generates a cache key for a (civil time, location) pair.
func SnapshotKey(ct model.CivilTime, loc model.Location) string {
	raw := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%09.6f@%.6f,%.6f",
		ct.Year, ct.Month, ct.Day, ct.Hour, ct.Minute, ct.Second,
		loc.Latitude, loc.Longitude)
	hash := sha256.Sum256([]byte(raw))
	return "panchang:v1:" + hex.EncodeToString(hash[:])
}
