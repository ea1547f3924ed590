// File: request/waitall.go
// Author: momentics <momentics@gmail.com>
//
// Batch wait over independent requests.

package request

import (
	"go.uber.org/multierr"

	"github.com/momentics/hioload-req/api"
)

// WaitAll waits every request in collection order: no reordering and no
// short-circuiting, so a failed wait does not keep later requests from being
// drained. The returned slice holds each request's own Status, zero where
// its wait failed; failures are combined into the returned error.
//
// Nil entries are skipped. WaitAll returns only once every request has
// individually completed, whatever order the transport finishes them in.
func WaitAll(reqs []*Request) ([]api.Status, error) {
	stats := make([]api.Status, len(reqs))
	var err error
	for i, r := range reqs {
		if r == nil {
			continue
		}
		stat, werr := r.Wait()
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		stats[i] = stat
	}
	return stats, err
}
