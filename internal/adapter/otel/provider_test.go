package otel_test

import (
	"context"
	"testing"

	adapter "github.com/jonyinyeanueyiagu-beep/localbook-sub001/internal/adapter/otel"
)

func TestSetup_Exporters(t *testing.T) {
	for _, exporter := range []string{"stdout", "none"} {
		t.Run(exporter, func(t *testing.T) {
			providers, err := adapter.Setup(context.Background(), adapter.Config{
				ServiceName:    "test",
				ServiceVersion: "0.0.1",
				Environment:    "test",
				Exporter:       exporter,
			})
			if err != nil {
				t.Fatalf("Setup failed: %v", err)
			}

			if err := providers.Shutdown(context.Background()); err != nil {
				t.Fatalf("Shutdown failed: %v", err)
			}
		})
	}
}

func TestSetup_InvalidExporter(t *testing.T) {
	_, err := adapter.Setup(context.Background(), adapter.Config{
		ServiceName:    "test",
		ServiceVersion: "0.0.1",
		Environment:    "test",
		Exporter:       "invalid",
	})
	if err == nil {
		t.Fatal("expected error for invalid exporter")
	}
}

func TestOpenDB_InMemory(t *testing.T) {
	db, err := adapter.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("OpenDB failed: %v", err)
	}
	defer db.Close()

	var one int
	if err := db.QueryRow("SELECT 1").Scan(&one); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if one != 1 {
		t.Errorf("SELECT 1 = %d", one)
	}
}
