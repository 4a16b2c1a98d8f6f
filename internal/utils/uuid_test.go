package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_GeneratesV7(t *testing.T) {
	g := NewUUIDGenerator()

	id := g.Generate()
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected valid UUID, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected UUID version 7, got %d", parsed.Version())
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()
	seen := make(map[string]struct{}, 100)

	for i := 0; i < 100; i++ {
		id := g.Generate()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = struct{}{}
	}
}
