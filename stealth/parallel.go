package stealth

import (
	"runtime"
	"sync"

	"github.com/lightningnetwork/lnd/queue"
	"github.com/ltcsuite/mweb/mwebwire"
	"github.com/ltcsuite/mweb/mwlog"
	"github.com/ltcsuite/mweb/mwtypes"
)

// candidateOutput is one item of parallel rewind work: an output paired
// with the output ID a successful rewind should be stamped with.
type candidateOutput struct {
	output   *mwebwire.Output
	outputID mwtypes.Hash
}

// RewindOutputsParallel rewinds every candidate against chain concurrently
// across GOMAXPROCS workers, returning the coins recovered in no
// particular order. §5 only requires that two rewinds of the same output
// agree, not that results preserve input order, so callers that need
// determinism should sort by OutputID.
//
// Work items are funneled through a queue.ConcurrentQueue so the
// producer (this function, enumerating candidates) and the worker pool
// never block each other on a fixed-size channel.
func RewindOutputsParallel(chain KeyChain, outputs []*mwebwire.Output, outputIDs []mwtypes.Hash) ([]*mwtypes.Coin, error) {
	mwlog.Debugf("rewind: scanning %d candidate outputs", len(outputs))
	work := queue.NewConcurrentQueue(len(outputs))
	work.Start()
	defer work.Stop()

	for i, out := range outputs {
		work.ChanIn() <- candidateOutput{output: out, outputID: outputIDs[i]}
	}
	close(work.ChanIn())

	workers := runtime.GOMAXPROCS(0)
	if workers > len(outputs) {
		workers = len(outputs)
	}
	if workers < 1 {
		workers = 1
	}

	var (
		mu      sync.Mutex
		coins   []*mwtypes.Coin
		firstErr error
		wg      sync.WaitGroup
	)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for item := range work.ChanOut() {
				c := item.(candidateOutput)
				coin, err := chain.RewindOutput(c.output, c.outputID)

				mu.Lock()
				if err != nil && firstErr == nil {
					firstErr = err
				} else if coin != nil {
					coins = append(coins, coin)
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	mwlog.Debugf("rewind: scan complete, recovered %d coins", len(coins))
	return coins, nil
}
