package ecc

// classifier decides which points a solver treats as equal. The standard
// solvers work on plain points; the GLV solvers fold every point into its
// automorphism class.
type classifier interface {
	// canonical returns the class representative of pt and a scalar s with
	// rep = [s]pt.
	canonical(pt Point) (rep Point, s uint64)
	// relate returns s with [s]from = to for two members of one class.
	relate(from, to Point) (uint64, error)
}

type identityClass struct {
	n uint64
}

func (c identityClass) canonical(pt Point) (Point, uint64) {
	return pt, 1 % c.n
}

func (c identityClass) relate(from, to Point) (uint64, error) {
	if !from.Equal(to) {
		return 0, ErrOrbitMismatch
	}
	return 1 % c.n, nil
}

func (e *Endomorphism) canonical(pt Point) (Point, uint64) {
	return e.Canonical(pt)
}

func (e *Endomorphism) relate(from, to Point) (uint64, error) {
	return e.Relate(from, to)
}
