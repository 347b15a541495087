package core

import "sync"

var (
	defaultLedger *Ledger
	defaultOnce   sync.Once
)

// Default returns the process-wide shared ledger, creating it on first use.
// Independent ledgers should be built with NewLedger.
func Default() *Ledger {
	defaultOnce.Do(func() {
		defaultLedger = NewLedger()
	})
	return defaultLedger
}
