// Package ledger anchors certificate content hashes on an external blockchain
// contract for tamper-evidence. The ledger is a best-effort collaborator: the
// local certificate registry stays the source of truth, and every caller must
// treat ErrUnavailable as "no answer", never as proof of non-duplication.
package ledger

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when the ledger cannot be reached or is not
// configured. It is deliberately distinct from a "hash not found" result so
// callers can log the two outcomes separately even while both currently
// short-circuit to proceed.
var ErrUnavailable = errors.New("ledger unavailable")

// Ledger records content hashes externally and answers existence queries.
type Ledger interface {
	// RecordHash anchors hash with its metadata and returns a transaction
	// reference. Returns ErrUnavailable when the ledger cannot accept writes.
	RecordHash(ctx context.Context, hash string, metadata string) (string, error)

	// Exists reports whether hash has been anchored before. Returns
	// ErrUnavailable when the ledger cannot be queried.
	Exists(ctx context.Context, hash string) (bool, error)
}
