package bjj

import (
	"testing"

	"github.com/f3rmion/gsel/internal/grouptest"
	"github.com/stretchr/testify/require"
)

func TestGroup(t *testing.T) {
	grouptest.Group(t, &BJJ{})
}

func TestScalarEncoding(t *testing.T) {
	g := &BJJ{}

	t.Run("BigEndian", func(t *testing.T) {
		enc := g.NewScalar().SetUint64(0x0102).Bytes()
		require.Equal(t, byte(0x01), enc[scalarLen-2])
		require.Equal(t, byte(0x02), enc[scalarLen-1])
	})

	t.Run("OrderRejected", func(t *testing.T) {
		_, err := g.NewScalar().SetBytes(curveOrder.FillBytes(make([]byte, scalarLen)))
		require.Error(t, err)
	})
}
