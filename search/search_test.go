package search_test

import (
	"os"
	"path"
	"testing"

	"github.com/dentabookhq/core/search"
)

func TestSearchIndexAndQuery(t *testing.T) {
	filename := path.Join(t.TempDir(), "test.fts")

	s, err := search.New(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	defer os.RemoveAll(filename)

	err = s.Index("test", "clinics", "123", "Bright Smile dental cleaning whitening Montreal")
	if err != nil {
		t.Fatal(err)
	}

	err = s.Index("test", "clinics", "456", "North Dental orthodontics braces Laval")
	if err != nil {
		t.Fatal(err)
	}

	results, err := s.Search("test", "clinics", "whitening Montreal")
	if err != nil {
		t.Fatal(err)
	} else if len(results.IDs) != 1 {
		t.Errorf("expected 1 result, got %d", len(results.IDs))
	} else if results.IDs[0] != "test_clinics_123" {
		t.Log(results)
		t.Errorf("expected id to be test_clinics_123 got %s", results.IDs[0])
	}

	if id := search.ParseDocID("test_clinics_123"); id != "123" {
		t.Errorf("expected parsed id to be 123 got %s", id)
	}
}
