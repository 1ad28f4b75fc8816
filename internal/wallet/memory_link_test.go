package wallet

import (
	"context"
	"testing"
)

func TestMemoryLinkConnectDisconnect(t *testing.T) {
	link := NewMemoryLink()
	ctx := context.Background()

	conn, err := link.Connection(ctx)
	if err != nil {
		t.Fatalf("connection: %v", err)
	}
	if conn.Connected {
		t.Fatalf("expected idle link, got %+v", conn)
	}

	if err := link.Connect(ctx, ""); err == nil {
		t.Fatalf("expected error for empty address")
	}

	if err := link.Connect(ctx, "0x1234567890abcdef1234"); err != nil {
		t.Fatalf("connect: %v", err)
	}
	conn, err = link.Connection(ctx)
	if err != nil {
		t.Fatalf("connection: %v", err)
	}
	if !conn.Connected || conn.Address != "0x1234567890abcdef1234" {
		t.Fatalf("unexpected connection %+v", conn)
	}

	if err := link.Disconnect(ctx); err != nil {
		t.Fatalf("disconnect: %v", err)
	}
	// a second disconnect is a no-op
	if err := link.Disconnect(ctx); err != nil {
		t.Fatalf("second disconnect: %v", err)
	}
	conn, _ = link.Connection(ctx)
	if conn.Connected || conn.Address != "" {
		t.Fatalf("expected idle link after disconnect, got %+v", conn)
	}
}

func TestMemoryRegistryScopesLinks(t *testing.T) {
	reg := NewMemoryRegistry()
	ctx := context.Background()

	if err := reg.LinkFor("client-1").Connect(ctx, "0xabc1234567890def0000"); err != nil {
		t.Fatalf("connect: %v", err)
	}

	conn, err := reg.LinkFor("client-2").Connection(ctx)
	if err != nil {
		t.Fatalf("connection: %v", err)
	}
	if conn.Connected {
		t.Fatalf("expected other scope to be idle, got %+v", conn)
	}

	if reg.LinkFor("client-1") != reg.LinkFor("client-1") {
		t.Fatalf("expected stable link per scope")
	}
}
