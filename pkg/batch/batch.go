/*****************************************************************************************************************/

//	@package	github.com/geostereo/rpcrect

/*****************************************************************************************************************/

// Package batch is an opt-in helper for partitioning a large batch of
// projections across goroutines. The core itself is synchronous by
// contract (§5): every rpc.RPC is immutable once constructed, so callers may safely parallelize externally by handing
// disjoint slices of a batch to this package. Nothing in the core imports
// this package.
package batch

/*****************************************************************************************************************/

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/geostereo/rpcrect/pkg/diagnostics"
	"github.com/geostereo/rpcrect/pkg/rpc"
)

/*****************************************************************************************************************/

// Partitions splits n indices into up to parts contiguous [start, end)
// ranges, used to divide a batch evenly across workers.
func Partitions(n, parts int) [][2]int {
	if parts < 1 {
		parts = 1
	}
	if parts > n {
		parts = n
	}
	if n == 0 {
		return nil
	}

	out := make([][2]int, 0, parts)
	base := n / parts
	remainder := n % parts

	start := 0
	for i := 0; i < parts; i++ {
		size := base
		if i < remainder {
			size++
		}
		if size == 0 {
			continue
		}
		out = append(out, [2]int{start, start + size})
		start += size
	}
	return out
}

/*****************************************************************************************************************/

// Forward partitions (row, col) across GOMAXPROCS-ish workers and calls
// model.Forward on each partition concurrently, writing results back into
// contiguous output slices in the original order. Diagnostics from every
// worker are forwarded to sink; Sink implementations must therefore be
// safe for concurrent use (diagnostics.Collector is not — wrap it, or use
// one Collector per partition and merge afterwards).
func Forward(ctx context.Context, model rpc.Model, row, col []float64, alt float64, sink diagnostics.Sink) (lon, lat []float64, err error) {
	n := len(row)
	lon = make([]float64, n)
	lat = make([]float64, n)

	parts := Partitions(n, runtime.GOMAXPROCS(0))

	g, gctx := errgroup.WithContext(ctx)
	for _, part := range parts {
		start, end := part[0], part[1]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			partLon, partLat, err := model.Forward(row[start:end], col[start:end], alt, sink)
			if err != nil {
				return err
			}
			copy(lon[start:end], partLon)
			copy(lat[start:end], partLat)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return lon, lat, nil
}

/*****************************************************************************************************************/

// Inverse partitions (lon, lat) across workers and calls model.Inverse on
// each partition concurrently.
func Inverse(ctx context.Context, model rpc.Model, lon, lat []float64, alt float64, sink diagnostics.Sink) (row, col []float64, err error) {
	n := len(lon)
	row = make([]float64, n)
	col = make([]float64, n)

	parts := Partitions(n, runtime.GOMAXPROCS(0))

	g, gctx := errgroup.WithContext(ctx)
	for _, part := range parts {
		start, end := part[0], part[1]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			partRow, partCol, err := model.Inverse(lon[start:end], lat[start:end], alt, sink)
			if err != nil {
				return err
			}
			copy(row[start:end], partRow)
			copy(col[start:end], partCol)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return row, col, nil
}

/*****************************************************************************************************************/
