package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/f3rmion/gsel/bjj"
	"github.com/f3rmion/gsel/bls12381"
	"github.com/f3rmion/gsel/bn254"
	"github.com/f3rmion/gsel/group"
	"github.com/f3rmion/gsel/ristretto"
)

// backend is a named group, with a pairing when the curve has one.
type backend struct {
	name    string
	group   group.Group
	pairing group.Pairing
}

var backends = map[string]func() backend{
	"bls12-381": func() backend {
		e := bls12381.New()
		return backend{name: "bls12-381", group: e.G1(), pairing: e}
	},
	"bn254": func() backend {
		e := bn254.New()
		return backend{name: "bn254", group: e.G1(), pairing: e}
	},
	"bjj": func() backend {
		return backend{name: "bjj", group: &bjj.BJJ{}}
	},
	"ristretto255": func() backend {
		return backend{name: "ristretto255", group: ristretto.New()}
	},
}

func curveNames() string {
	names := make([]string, 0, len(backends))
	for n := range backends {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func lookupBackend(name string) (backend, error) {
	mk, ok := backends[strings.ToLower(name)]
	if !ok {
		return backend{}, fmt.Errorf("unknown curve %q (have %s)", name, curveNames())
	}
	return mk(), nil
}

func lookupPairing(name string) (backend, error) {
	b, err := lookupBackend(name)
	if err != nil {
		return b, err
	}
	if b.pairing == nil {
		return b, fmt.Errorf("curve %q has no pairing; use bls12-381 or bn254", b.name)
	}
	return b, nil
}
