package variogram

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/sgostarter/i/l"
	"gonum.org/v1/gonum/mat"
)

// Pairwise builds the n x n matrix of the model between every pair of
// elements of domain, each element being a Point or a Geometry. Entry [i,j]
// is the mean over the samples of domain[i] and domain[j]; the diagonal is
// the mean over the self cross product of each sample, which reduces to the
// nugget for points. The result is exactly symmetric.
func Pairwise[E any](v Variogram, domain []E, opts ...Option) (*mat.Dense, error) {
	n := len(domain)
	if n == 0 {
		return nil, ErrEmptyDomain
	}
	if _, err := Probe(v, domain[0], domain[0]); err != nil {
		return nil, err
	}

	m := mat.NewDense(n, n, nil)
	if err := fillSelf(m, v, domain, gatherOptions(opts)); err != nil {
		return nil, err
	}
	return m, nil
}

// PairwiseInto is Pairwise writing into a caller owned n x n matrix.
func PairwiseInto[E any](dst *mat.Dense, v Variogram, domain []E, opts ...Option) error {
	n := len(domain)
	if n == 0 {
		return ErrEmptyDomain
	}
	if r, c := dst.Dims(); r != n || c != n {
		return fmt.Errorf("%w: %dx%d matrix for %d elements", ErrDimensionMismatch, r, c, n)
	}
	if _, err := Probe(v, domain[0], domain[0]); err != nil {
		return err
	}
	return fillSelf(dst, v, domain, gatherOptions(opts))
}

// PairwiseCross builds the m x n matrix of the model between every element
// of d1 and every element of d2. Every entry is computed on its own.
func PairwiseCross[E1, E2 any](v Variogram, d1 []E1, d2 []E2, opts ...Option) (*mat.Dense, error) {
	rows, cols := len(d1), len(d2)
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyDomain
	}
	if _, err := Probe(v, d1[0], d2[0]); err != nil {
		return nil, err
	}

	o := gatherOptions(opts)
	logger := o.logger.WithFields(l.IntField("rows", rows), l.IntField("cols", cols))
	logger.Debug("cross matrix")

	m := mat.NewDense(rows, cols, nil)
	e := newEvaluator(v)
	err := forEachColumn(cols, o.workers, func(j int) error {
		sj, err := sample(d2[j])
		if err != nil {
			return err
		}
		for i := 0; i < rows; i++ {
			si, err := sample(d1[i])
			if err != nil {
				return err
			}
			g, err := e.mean(si, sj)
			if err != nil {
				return err
			}
			m.Set(i, j, g)
		}
		return nil
	})
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("fill cross matrix failed")
		return nil, err
	}
	return m, nil
}

func fillSelf[E any](m *mat.Dense, v Variogram, domain []E, o options) error {
	n := len(domain)
	logger := o.logger.WithFields(l.IntField("n", n), l.IntField("workers", o.workers))
	logger.Debug("self matrix")

	e := newEvaluator(v)
	err := forEachColumn(n, o.workers, func(j int) error {
		sj, err := sample(domain[j])
		if err != nil {
			return err
		}
		for i := j + 1; i < n; i++ {
			si, err := sample(domain[i])
			if err != nil {
				return err
			}
			g, err := e.mean(si, sj)
			if err != nil {
				return err
			}
			m.Set(i, j, g)
		}
		g, err := e.mean(sj, sj)
		if err != nil {
			return err
		}
		m.Set(j, j, g)
		return nil
	})
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("fill self matrix failed")
		return err
	}

	// upper triangle is copied, never computed
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			m.Set(i, j, m.At(j, i))
		}
	}
	return nil
}

// forEachColumn runs fill for every column in [0, n). Columns own disjoint
// matrix entries, so they may run concurrently. The first error stops the
// remaining columns from starting.
func forEachColumn(n, workers int, fill func(j int) error) error {
	if workers <= 1 || n == 1 {
		for j := 0; j < n; j++ {
			if err := fill(j); err != nil {
				return err
			}
		}
		return nil
	}
	if workers > n {
		workers = n
	}

	var (
		wg      sync.WaitGroup
		once    sync.Once
		failed  atomic.Bool
		firstEr error
	)
	columns := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range columns {
				if failed.Load() {
					continue
				}
				if err := fill(j); err != nil {
					once.Do(func() {
						firstEr = err
						failed.Store(true)
					})
				}
			}
		}()
	}
	for j := 0; j < n; j++ {
		columns <- j
	}
	close(columns)
	wg.Wait()

	return firstEr
}
