package bls12381

import (
	"testing"

	"github.com/f3rmion/gsel/internal/grouptest"
)

func TestPairing(t *testing.T) {
	grouptest.Pairing(t, New())
}
