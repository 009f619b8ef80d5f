package nizk

import (
	"fmt"
	"io"
	"sync"

	"github.com/f3rmion/gsel/group"
)

// CRSPolicy decides whether statements share one CRS or each get their
// own. There is no default; the zero value is rejected by [NewCRSSource].
type CRSPolicy int

const (
	// SharedCRS reuses one CRS for every statement.
	SharedCRS CRSPolicy = iota + 1
	// FreshCRS generates a new CRS for every statement.
	FreshCRS
)

func (p CRSPolicy) String() string {
	switch p {
	case SharedCRS:
		return "shared"
	case FreshCRS:
		return "fresh"
	default:
		return fmt.Sprintf("CRSPolicy(%d)", int(p))
	}
}

// ParseCRSPolicy parses "shared" or "fresh".
func ParseCRSPolicy(s string) (CRSPolicy, error) {
	switch s {
	case "shared":
		return SharedCRS, nil
	case "fresh":
		return FreshCRS, nil
	case "":
		return 0, fmt.Errorf("nizk: crs policy must be set explicitly (shared or fresh)")
	default:
		return 0, fmt.Errorf("nizk: unknown crs policy %q", s)
	}
}

// CRSSource hands out reference strings according to a [CRSPolicy]. It is
// safe for concurrent use; calls that generate a CRS are serialized since
// rng need not be.
type CRSSource struct {
	e      group.Pairing
	policy CRSPolicy
	mu     sync.Mutex
	rng    io.Reader
	shared *CRS
}

// NewCRSSource returns a source for policy. Under SharedCRS the CRS is
// generated immediately.
func NewCRSSource(e group.Pairing, policy CRSPolicy, rng io.Reader) (*CRSSource, error) {
	src := &CRSSource{e: e, policy: policy, rng: rng}
	switch policy {
	case SharedCRS:
		crs, err := NewCRS(e, rng)
		if err != nil {
			return nil, err
		}
		src.shared = crs
	case FreshCRS:
	default:
		return nil, fmt.Errorf("nizk: crs policy must be set explicitly, got %v", policy)
	}
	return src, nil
}

// Policy returns the source's policy.
func (s *CRSSource) Policy() CRSPolicy { return s.policy }

// Next returns the CRS for the next statement.
func (s *CRSSource) Next() (*CRS, error) {
	if s.policy == SharedCRS {
		return s.shared, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewCRS(s.e, s.rng)
}
