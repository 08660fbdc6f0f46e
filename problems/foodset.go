package problems

import "math/bits"

// FoodSet is an immutable bitset over a FoodProblem's food list: bit i is set
// while food i has not been eaten. It is a string so states holding it stay
// comparable and hash by content; Without returns a new set and never
// modifies the receiver.
type FoodSet string

// fullFoodSet returns a set with bits 0..n-1 set.
func fullFoodSet(n int) FoodSet {
	b := make([]byte, (n+7)/8)
	for i := 0; i < n; i++ {
		b[i/8] |= 1 << (i % 8)
	}
	return FoodSet(b)
}

// Has reports whether food i is still present.
func (s FoodSet) Has(i int) bool {
	if i < 0 || i/8 >= len(s) {
		return false
	}
	return s[i/8]&(1<<(i%8)) != 0
}

// Without returns a copy of s with food i removed. If i is absent, s itself
// is returned.
func (s FoodSet) Without(i int) FoodSet {
	if !s.Has(i) {
		return s
	}
	b := []byte(s)
	b[i/8] &^= 1 << (i % 8)
	return FoodSet(b)
}

// Len returns the number of foods still present.
func (s FoodSet) Len() int {
	n := 0
	for i := 0; i < len(s); i++ {
		n += bits.OnesCount8(s[i])
	}
	return n
}

// Each calls fn with the index of every food still present, in ascending order.
func (s FoodSet) Each(fn func(i int)) {
	for j := 0; j < len(s); j++ {
		for b := s[j]; b != 0; b &= b - 1 {
			fn(j*8 + bits.TrailingZeros8(b))
		}
	}
}
