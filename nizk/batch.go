package nizk

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/f3rmion/gsel/group"
	"golang.org/x/sync/errgroup"
)

// Statement holds the public inputs of Σ y_j*A_j + Σ b_i*x_i = Target.
type Statement struct {
	A      []group.Point
	B      []group.Scalar
	Target group.Point
}

// ProveStatement is [Prove] for st. st.Target is not used by the prover.
func ProveStatement(rng io.Reader, crs *CRS, st Statement, y []group.Scalar, x []group.Point) (*Proof, error) {
	return Prove(rng, crs, st.A, y, x, st.B)
}

// VerifyStatement is [Verify] for st.
func VerifyStatement(crs *CRS, st Statement, proof *Proof) bool {
	return Verify(crs, st.A, st.B, st.Target, proof)
}

// Claim is a proof together with the statement and CRS it is checked
// against.
type Claim struct {
	CRS       *CRS
	Statement Statement
	Proof     *Proof
}

// VerifyBatch verifies every claim on up to workers goroutines and returns
// one result per claim. workers <= 0 means GOMAXPROCS. The only error is
// ctx being done before every claim was checked.
func VerifyBatch(ctx context.Context, claims []Claim, workers int) ([]bool, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]bool, len(claims))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range claims {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			c := claims[i]
			results[i] = c.CRS != nil && VerifyStatement(c.CRS, c.Statement, c.Proof)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("nizk: batch verification: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("nizk: batch verification: %w", err)
	}
	return results, nil
}
