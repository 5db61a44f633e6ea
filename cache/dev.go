package cache

import (
	"encoding/json"
	"errors"
	"sync"
)

// CacheDev is a memory-only cache used in dev mode and in tests.
type CacheDev struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewDevCache() *CacheDev {
	return &CacheDev{data: make(map[string]string)}
}

func (d *CacheDev) Get(key string) (val string, err error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	val, ok := d.data[key]
	if !ok {
		err = errors.New("key not found in cache")
	}
	return
}

func (d *CacheDev) Set(key string, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.data[key] = value
	return nil
}

func (d *CacheDev) GetTyped(key string, v any) error {
	val, err := d.Get(key)
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), v)
}

func (d *CacheDev) SetTyped(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return d.Set(key, string(b))
}

func (d *CacheDev) Inc(key string, by int64) (n int64, err error) {
	if err = d.GetTyped(key, &n); err != nil {
		n = 0
	}

	n += by

	err = d.SetTyped(key, n)
	return
}

func (d *CacheDev) Dec(key string, by int64) (int64, error) {
	return d.Inc(key, -1*by)
}
