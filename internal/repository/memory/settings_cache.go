package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	settingsKey   = "site_settings"
	categoriesKey = "site_categories"
)

// SettingsCache keeps the site settings and category list in process
// memory with a short TTL so the public endpoints stay off the database.
type SettingsCache struct {
	cache *cache.Cache
}

func NewSettingsCache() *SettingsCache {
	// 5 minute TTL, purge sweep every 10 minutes
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &SettingsCache{
		cache: c,
	}
}

func (s *SettingsCache) GetSettings() (map[string]string, bool) {
	if x, found := s.cache.Get(settingsKey); found {
		return x.(map[string]string), true
	}
	return nil, false
}

func (s *SettingsCache) SetSettings(settings map[string]string) {
	s.cache.Set(settingsKey, settings, cache.DefaultExpiration)
}

func (s *SettingsCache) GetCategories() (interface{}, bool) {
	return s.cache.Get(categoriesKey)
}

func (s *SettingsCache) SetCategories(categories interface{}) {
	s.cache.Set(categoriesKey, categories, cache.DefaultExpiration)
}

func (s *SettingsCache) Invalidate() {
	s.cache.Delete(settingsKey)
	s.cache.Delete(categoriesKey)
}
