package server

import "testing"

func TestCancelRegistryLifecycle(t *testing.T) {
	r := NewCancelRegistry()
	id := "file:///x.json"

	if r.IsCancelled(id) {
		t.Fatalf("fresh registry reports cancelled")
	}

	r.Cancel(id)
	if !r.IsCancelled(id) {
		t.Fatalf("Cancel did not flag id")
	}

	check := r.Checker(id)
	if !check() {
		t.Fatalf("Checker did not observe the cancel flag")
	}

	r.Forget(id)
	if r.IsCancelled(id) {
		t.Fatalf("Forget did not clear the flag")
	}
	if check() {
		t.Fatalf("Checker closure should read live state, not a snapshot")
	}
}
