// Where: internal/credfile/checker.go
// What: Local credential file check (existence, JSON shape, required keys).
// Why: Decide whether the guided setup flow is still needed.
package credfile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// Status classifies the state of a local credential file.
type Status int

const (
	// StatusAbsent means no file exists at the path.
	StatusAbsent Status = iota
	// StatusInvalid means the file exists but is not a usable credential file.
	StatusInvalid
	// StatusValid means the file parsed and carries both required keys.
	StatusValid
	// StatusUnreadable means the file could not be read for a reason other
	// than not existing (permission denied, I/O failure).
	StatusUnreadable
)

// Invalid reasons, kept as fixed strings so callers and tests can branch on them.
const (
	ReasonNotJSON       = "not valid JSON"
	ReasonMissingFields = "missing required fields"
)

// Required top-level keys. Values are not examined; null counts.
const (
	KeyClientID     = "client_id"
	KeyClientSecret = "client_secret"
)

// String returns a short human-readable label for the status.
func (s Status) String() string {
	switch s {
	case StatusAbsent:
		return "absent"
	case StatusInvalid:
		return "invalid"
	case StatusValid:
		return "valid"
	case StatusUnreadable:
		return "unreadable"
	}
	return "unknown"
}

// Result is the outcome of a single check. Reason is set only for
// StatusInvalid; Err is set only for StatusUnreadable.
type Result struct {
	Status Status
	Reason string
	Err    error
}

// Check inspects the credential file at path and reports one of four states.
// It is a pure function of filesystem state at the instant of the call:
// one read, no writes, no caching. Every outcome, including an unreadable
// file, is returned as a value rather than an error so the setup loop can
// retry without special cases.
func Check(path string) Result {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Status: StatusAbsent}
		}
		return Result{Status: StatusUnreadable, Err: err}
	}

	var parsed any
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return Result{Status: StatusInvalid, Reason: ReasonNotJSON}
	}

	// The key check is only meaningful on a JSON object; arrays, strings
	// and numbers fall through to the missing-fields reason.
	obj, ok := parsed.(map[string]any)
	if !ok {
		return Result{Status: StatusInvalid, Reason: ReasonMissingFields}
	}

	if _, ok := obj[KeyClientID]; !ok {
		return Result{Status: StatusInvalid, Reason: ReasonMissingFields}
	}
	if _, ok := obj[KeyClientSecret]; !ok {
		return Result{Status: StatusInvalid, Reason: ReasonMissingFields}
	}
	return Result{Status: StatusValid}
}
