package memory

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/dentabookhq/core/database"
	"github.com/google/uuid"
)

const (
	colTenants      = "tenants"
	colUsers        = "users"
	colClinics      = "clinics"
	colDoctors      = "doctors"
	colAppointments = "appointments"
	colFiles        = "files"
)

var (
	errCollectionNotFound = errors.New("collection not found")
	errDocumentNotFound   = errors.New("document not found")
)

func init() {
	gob.Register(time.Time{})
	gob.Register([]string{})
}

// Memory is a gob-encoded map persister used in dev mode and in tests.
type Memory struct {
	mu sync.RWMutex
	DB map[string]map[string][]byte
}

func New() database.Persister {
	return &Memory{DB: make(map[string]map[string][]byte)}
}

func (m *Memory) NewID() string {
	return uuid.NewString()
}

func (m *Memory) Ping() error {
	return nil
}

func mustEnc(v any) []byte {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		log.Fatal(err)
	}
	return buf.Bytes()
}

func mustDec(b []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(b)).Decode(v)
}

func create[T any](m *Memory, dbName, col, id string, v T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := fmt.Sprintf("%s_%s", dbName, col)

	repo, ok := m.DB[key]
	if !ok {
		repo = make(map[string][]byte)
	}

	repo[id] = mustEnc(v)

	m.DB[key] = repo
	return nil
}

func getByID[T any](m *Memory, dbName, col, id string, v T) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	key := fmt.Sprintf("%s_%s", dbName, col)

	repo, ok := m.DB[key]
	if !ok {
		return errCollectionNotFound
	}

	b, ok := repo[id]
	if !ok {
		return errDocumentNotFound
	} else if err := mustDec(b, v); err != nil {
		return err
	}
	return nil
}

func del(m *Memory, dbName, col, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := fmt.Sprintf("%s_%s", dbName, col)

	repo, ok := m.DB[key]
	if !ok {
		return errCollectionNotFound
	}

	delete(repo, id)
	return nil
}

func all[T any](m *Memory, dbName, col string) (list []T, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	key := fmt.Sprintf("%s_%s", dbName, col)

	repo, ok := m.DB[key]
	if !ok {
		return nil, nil
	}

	for _, v := range repo {
		var li T
		if err = mustDec(v, &li); err != nil {
			return
		}

		list = append(list, li)
	}

	return
}

func filter[T any](list []T, fn func(x T) bool) []T {
	var results []T
	for _, item := range list {
		if fn(item) {
			results = append(results, item)
		}
	}

	return results
}

func sortSlice[T any](list []T, fn func(a, b T) bool) []T {
	sort.Slice(list, func(i, j int) bool {
		return fn(list[i], list[j])
	})
	return list
}
