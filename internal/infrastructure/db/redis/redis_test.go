package redis

import "testing"

func TestClientOptions_Defaults(t *testing.T) {
	opts := clientOptions(Config{Addr: "localhost:6379", DB: 1})

	if opts.Addr != "localhost:6379" || opts.DB != 1 {
		t.Fatalf("connection settings not carried over: %+v", opts)
	}
	if opts.ClientName != clientName {
		t.Fatalf("client name not set: %q", opts.ClientName)
	}
	if opts.PoolSize != defaultPoolSize {
		t.Fatalf("expected default pool size %d, got %d", defaultPoolSize, opts.PoolSize)
	}
}

func TestClientOptions_PoolSizeOverride(t *testing.T) {
	opts := clientOptions(Config{Addr: "localhost:6379", PoolSize: 3})

	if opts.PoolSize != 3 {
		t.Fatalf("expected pool size 3, got %d", opts.PoolSize)
	}
}
