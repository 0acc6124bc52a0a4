package mongo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/matzehuels/patternmap/pkg/errors"
	"github.com/matzehuels/patternmap/pkg/pattern"
)

func TestConfigDefaults(t *testing.T) {
	cfg, err := Config{URI: "mongodb://localhost:27017"}.withDefaults()
	if err != nil {
		t.Fatalf("withDefaults() error: %v", err)
	}
	if cfg.Database != DefaultDatabase || cfg.Collection != DefaultCollection {
		t.Errorf("defaults = %s.%s", cfg.Database, cfg.Collection)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing uri", Config{}},
		{"bad scheme", Config{URI: "redis://localhost"}},
		{"bad collection", Config{URI: "mongodb://localhost", Collection: "system.users"}},
		{"bad database", Config{URI: "mongodb://localhost", Database: "my db"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cfg.withDefaults(); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("withDefaults() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := New(ctx, Config{URI: "http://localhost"}); err == nil {
		t.Fatal("New() should reject a non-mongo URI before connecting")
	}
}

func TestName(t *testing.T) {
	if got := Name(Config{Collection: "gof"}); got != "mongo:patternmap.gof" {
		t.Errorf("Name() = %q", got)
	}
}

func TestFilter(t *testing.T) {
	if got := Filter(nil); len(got) != 0 {
		t.Errorf("Filter(nil) = %v, want empty", got)
	}

	got := Filter([]pattern.Type{pattern.TypeCreational, pattern.TypeBehavioral})
	data, err := bson.MarshalExtJSON(got, false, false)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":{"$in":["creational","behavioral"]}}`
	if string(data) != want {
		t.Errorf("Filter() = %s, want %s", data, want)
	}
}

func TestPatternDocumentDecoding(t *testing.T) {
	doc := bson.D{
		{Key: "id", Value: 7},
		{Key: "name", Value: "Decorator"},
		{Key: "type", Value: "structural"},
		{Key: "level", Value: "intermediate"},
		{Key: "prerequisites", Value: bson.A{1, 3}},
		{Key: "_id", Value: "ignored"},
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}

	var p pattern.Pattern
	if err := bson.Unmarshal(raw, &p); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if p.ID != 7 || p.Name != "Decorator" || p.Type != pattern.TypeStructural || p.Level != pattern.LevelIntermediate {
		t.Errorf("decoded = %+v", p)
	}
	if len(p.Prerequisites) != 2 || p.Prerequisites[1] != 3 {
		t.Errorf("Prerequisites = %v, want [1 3]", p.Prerequisites)
	}
}

func TestBackendErrorClassification(t *testing.T) {
	timeout := backendError(fmt.Errorf("server selection: %w", context.DeadlineExceeded), "query %s", "mongo:patternmap.patterns")
	if !errors.Is(timeout, errors.ErrCodeTimeout) {
		t.Errorf("deadline error code = %q, want TIMEOUT", errors.GetCode(timeout))
	}

	network := backendError(fmt.Errorf("connection refused"), "connect to mongo")
	if !errors.Is(network, errors.ErrCodeNetwork) {
		t.Errorf("refused error code = %q, want NETWORK_ERROR", errors.GetCode(network))
	}
}
