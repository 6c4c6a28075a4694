package ledger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// DisabledLedger is used when no contract address or signing key is
// configured. Every call reports ErrUnavailable, which callers already treat
// as "proceed without ledger proof".
type DisabledLedger struct {
	log *logrus.Logger
}

func NewDisabledLedger(log *logrus.Logger) *DisabledLedger {
	return &DisabledLedger{log: log}
}

func (l *DisabledLedger) RecordHash(ctx context.Context, hash string, metadata string) (string, error) {
	l.log.Infof("Ledger disabled, skipping anchor for hash %s", hash)
	return "", ErrUnavailable
}

func (l *DisabledLedger) Exists(ctx context.Context, hash string) (bool, error) {
	return false, ErrUnavailable
}
