package ristretto

import (
	"bytes"
	"testing"

	"github.com/f3rmion/gsel/internal/grouptest"
	"github.com/stretchr/testify/require"
)

func TestGroup(t *testing.T) {
	grouptest.Group(t, New())
}

func TestSetUint64LittleEndian(t *testing.T) {
	s := New().NewScalar().SetUint64(0x0102)
	want := make([]byte, scalarLen)
	want[0], want[1] = 0x02, 0x01
	require.True(t, bytes.Equal(s.Bytes(), want))
}
