package store

import (
	"fmt"
	"os"
)

// CredentialRepo persists the single opaque API credential.
//
// Load never fails: a missing, unreadable or corrupt value reads as
// absent. Save and Clear are best-effort; failures are logged to stderr
// and not surfaced, and a failed save does not roll back the in-memory
// activation of the credential. The repo performs no format validation;
// that belongs to the gateway's credential probe.
type CredentialRepo struct {
	kv kv
}

// Load returns the persisted credential, if any.
func (r *CredentialRepo) Load() (string, bool) {
	v, ok := r.kv.get(keyAPIKey)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Save persists the credential, best-effort.
func (r *CredentialRepo) Save(credential string) {
	if err := r.kv.set(keyAPIKey, credential); err != nil {
		warnf("save credential: %v", err)
	}
}

// Clear removes the persisted credential, best-effort.
func (r *CredentialRepo) Clear() {
	if err := r.kv.delete(keyAPIKey); err != nil {
		warnf("clear credential: %v", err)
	}
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: store: "+format+"\n", args...)
}
