package threshold

import (
	"encoding/binary"

	"github.com/f3rmion/gsel/group"
	"golang.org/x/crypto/blake2b"
)

// transcriptPrefix separates these challenges from every other hash use.
const transcriptPrefix = "GSEL-THRESHOLD-ELGAMAL-BLAKE512-v1"

// transcript accumulates labelled messages into a Blake2b-512 state and
// derives challenge scalars from it.
type transcript struct {
	data []byte
}

func newTranscript(tag string) *transcript {
	t := &transcript{}
	t.append("tag", []byte(tag))
	return t
}

// append adds a length-prefixed label and message.
func (t *transcript) append(label string, msg []byte) {
	t.data = binary.BigEndian.AppendUint32(t.data, uint32(len(label)))
	t.data = append(t.data, label...)
	t.data = binary.BigEndian.AppendUint32(t.data, uint32(len(msg)))
	t.data = append(t.data, msg...)
}

func (t *transcript) appendPoint(label string, p group.Point) {
	t.append(label, p.Bytes())
}

// challenge hashes the transcript and maps the 64-byte digest to a scalar.
func (t *transcript) challenge(g group.Group) (group.Scalar, error) {
	h, err := blake2b.New512(nil)
	if err != nil {
		return nil, err
	}
	h.Write([]byte(transcriptPrefix))
	h.Write(t.data)
	return g.HashToScalar(h.Sum(nil))
}
