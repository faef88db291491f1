package fingerprint

import (
	"context"
	"sync"

	"github.com/luxfi/fingerprint/pkg/bn254"
	"github.com/luxfi/fingerprint/pkg/protocol"
)

// batchConcurrency is the fixed in-flight cap for batch fingerprinting
// (§5, §9: "a fixed in-flight cap, reference value 16"), carried over
// from the original's buffer_unordered(16) fan-out.
const batchConcurrency = 16

// BatchResult pairs a transaction's index in the original request with
// either its fingerprint or the error that aborted it, since batch
// fingerprinting has no ordering guarantee between transactions and
// one transaction's failure must not affect its siblings.
type BatchResult struct {
	Index       int
	Fingerprint bn254.Element
	Err         error
}

// Batch computes fingerprints for every transaction in txs against the
// same protocol, driving at most 16 in flight at a time. Transactions
// complete in no particular order, but the returned slice holds one
// BatchResult per input transaction at that transaction's position in
// txs (so results[i].Index == i).
func Batch(ctx context.Context, txs []RawTransaction, proto protocol.FingerprintProtocol) []BatchResult {
	results := make([]BatchResult, len(txs))
	sem := make(chan struct{}, batchConcurrency)
	var wg sync.WaitGroup

	for i, tx := range txs {
		i, tx := i, tx
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			fp, err := Compute(ctx, tx, proto)
			results[i] = BatchResult{Index: i, Fingerprint: fp, Err: err}
		}()
	}
	wg.Wait()
	return results
}
