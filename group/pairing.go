package group

// Target is an element of the pairing target group GT.
//
// GT is multiplicative in most curve libraries; here it is written
// additively so that the pairing equations read the same way as the
// equations over G1 and G2. Add therefore corresponds to the field
// multiplication in GT and the identity to the field's one.
type Target interface {
	// Add sets the receiver to a+b (the GT group law) and returns it.
	Add(a, b Target) Target
	// Set sets the receiver to a and returns it.
	Set(a Target) Target
	// Equal reports whether the receiver equals b.
	Equal(b Target) bool
	// IsIdentity reports whether the receiver is the GT identity.
	IsIdentity() bool
}

// Pairing is a type-3 bilinear group (G1, G2, GT) with a shared scalar
// field. Scalars produced by G1() and G2() are interchangeable.
type Pairing interface {
	// G1 returns the first source group.
	G1() Group
	// G2 returns the second source group.
	G2() Group
	// NewTarget returns the GT identity.
	NewTarget() Target
	// Pair returns the sum of e(p[i], q[i]) over all i. Points in p must
	// belong to G1 and points in q to G2. Identity inputs contribute the
	// GT identity; empty inputs yield the GT identity.
	Pair(p, q []Point) (Target, error)
}
