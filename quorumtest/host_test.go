package quorumtest

import (
	stdlib "errors"
	"testing"
)

func TestZeroValueHost(t *testing.T) {
	var h Host

	if _, err := h.CallerIdentity(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := h.TransactionSequence(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, present, err := h.ReleaseTimeConstraint(); err != nil || present {
		t.Fatalf("want no constraint, got present=%v err=%v", present, err)
	}
	if _, err := h.ReadRecord(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestHostWriteRecordCopies(t *testing.T) {
	var h Host
	rec := []byte("threshold=1")
	if err := h.WriteRecord(rec); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	rec[0] = 'X'
	if string(h.Record) != "threshold=1" {
		t.Fatalf("host must store a copy, got %q", h.Record)
	}
	if h.Writes != 1 {
		t.Fatalf("want 1 write, got %d", h.Writes)
	}
}

func TestHostErrorInjection(t *testing.T) {
	boom := stdlib.New("boom")
	h := Host{
		CallerErr:      boom,
		SequenceErr:    boom,
		ReleaseTimeErr: boom,
		ReadErr:        boom,
		WriteErr:       boom,
	}

	if _, err := h.CallerIdentity(); err != boom {
		t.Fatal("caller error not injected")
	}
	if _, err := h.TransactionSequence(); err != boom {
		t.Fatal("sequence error not injected")
	}
	if _, _, err := h.ReleaseTimeConstraint(); err != boom {
		t.Fatal("release time error not injected")
	}
	if _, err := h.ReadRecord(); err != boom {
		t.Fatal("read error not injected")
	}
	if err := h.WriteRecord(nil); err != boom {
		t.Fatal("write error not injected")
	}
	if h.Writes != 0 {
		t.Fatal("failed write must not count")
	}
}

func TestNewIdentity(t *testing.T) {
	a := NewIdentity()
	b := NewIdentity()

	if err := a.Validate(); err != nil {
		t.Fatalf("invalid identity: %s", err)
	}
	if a.Equals(b) {
		t.Fatal("two generated identities must differ")
	}
}
