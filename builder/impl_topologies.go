// File: impl_topologies.go
// Role: the topology constructors: Cycle, Complete, Wheel, Theta, Ladder.
// Determinism: vertex IDs and edge order are fixed functions of the sizes.

package builder

import "strconv"

// Cycle returns the edge script of the cycle v0–v1–…–v(n-1)–v0.
// Requires n >= 3. O(n).
func Cycle(n int) (Script, error) {
	if n < 3 {
		return nil, ErrTooFewVertices
	}
	s := make(Script, 0, n)
	for i := 0; i < n; i++ {
		s = append(s, [2]string{v(i), v((i + 1) % n)})
	}

	return s, nil
}

// Complete returns the edge script of the complete graph K_n on v0…v(n-1),
// edges in lexicographic (i,j) order. Requires n >= 2. O(n²).
func Complete(n int) (Script, error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	s := make(Script, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s = append(s, [2]string{v(i), v(j)})
		}
	}

	return s, nil
}

// Wheel returns the edge script of the wheel: a rim cycle v0…v(n-1) plus a
// hub adjacent to every rim vertex. Requires a rim of n >= 3. O(n).
func Wheel(n int) (Script, error) {
	s, err := Cycle(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		s = append(s, [2]string{"hub", v(i)})
	}

	return s, nil
}

// Theta returns the edge script of a generalized theta graph: `paths`
// internally disjoint paths of `length` edges each between the poles "s"
// and "t". length 1 yields parallel s–t edges. Requires paths >= 2 and
// length >= 1. O(paths·length).
func Theta(paths, length int) (Script, error) {
	if paths < 2 {
		return nil, ErrTooFewPaths
	}
	if length < 1 {
		return nil, ErrBadLength
	}
	s := make(Script, 0, paths*length)
	for p := 0; p < paths; p++ {
		prev := "s"
		for k := 1; k < length; k++ {
			mid := "p" + strconv.Itoa(p) + "m" + strconv.Itoa(k)
			s = append(s, [2]string{prev, mid})
			prev = mid
		}
		s = append(s, [2]string{prev, "t"})
	}

	return s, nil
}

// Ladder returns the edge script of the 2×n ladder: rails a0…a(n-1) and
// b0…b(n-1) plus a rung at every position. Requires n >= 2. O(n).
func Ladder(n int) (Script, error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	a := func(i int) string { return "a" + strconv.Itoa(i) }
	b := func(i int) string { return "b" + strconv.Itoa(i) }
	s := make(Script, 0, 3*n-2)
	for i := 0; i+1 < n; i++ {
		s = append(s, [2]string{a(i), a(i + 1)})
		s = append(s, [2]string{b(i), b(i + 1)})
	}
	for i := 0; i < n; i++ {
		s = append(s, [2]string{a(i), b(i)})
	}

	return s, nil
}
