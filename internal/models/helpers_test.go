package models

import (
	"strings"
	"testing"
	"time"
)

func TestNewID(t *testing.T) {
	id := NewID()

	if len(id) != 36 {
		t.Errorf("NewID() length = %d, want 36", len(id))
	}
	if id != strings.ToUpper(id) {
		t.Errorf("NewID() = %q, want uppercase", id)
	}
	if NewID() == id {
		t.Error("two NewID() calls returned the same value")
	}
}

func TestTimestamp(t *testing.T) {
	at := time.Date(2024, 3, 15, 9, 30, 45, 123456000, time.Local)

	got := Timestamp(at)
	want := "2024-03-15T09:30:45.123456Z"
	if got != want {
		t.Errorf("Timestamp() = %q, want %q", got, want)
	}
}
