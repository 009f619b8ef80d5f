package bn254

import (
	"testing"

	"github.com/f3rmion/gsel/internal/grouptest"
)

func TestPairing(t *testing.T) {
	grouptest.Pairing(t, New())
}
