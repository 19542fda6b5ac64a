package perm

import (
	"math/rand"
	"strconv"
	"strings"
)

// Perm is an immutable bijection on 0..Degree()-1.
//
// Internally it stores the image table trimmed of trailing fixed points, so
// the representation is canonical: semantically equal permutations (however
// constructed) have identical tables, which makes Equal and Key cheap and
// consistent.  The zero value is NOT valid; use Identity, FromCycles,
// FromImage, Random or FindPermutation.
type Perm struct {
	image []int // image[i] = p(i); invariant: len==0 || image[len-1] != len-1
}

// Identity returns the identity permutation (empty cycle decomposition).
func Identity() *Perm { return &Perm{} }

// FromImage builds a permutation from its image table: img[i] is the point i
// maps to.  Returns ErrNotBijection unless img is a permutation of 0..len-1.
//
// Complexity: O(n).
func FromImage(img []int) (*Perm, error) {
	seen := make([]bool, len(img))
	for _, v := range img {
		if v < 0 || v >= len(img) || seen[v] {
			return nil, ErrNotBijection
		}
		seen[v] = true
	}
	cp := make([]int, len(img))
	copy(cp, img)
	return &Perm{image: trim(cp)}, nil
}

// FromCycles builds a permutation from a disjoint-cycle decomposition.
// Cycles of length 0 or 1 are permitted and ignored (fixed points are
// implicit).  Returns ErrInvalidCycle on negative points, a repeated point
// within a cycle, or overlap between cycles.
//
// Complexity: O(total cycle length + max point).
func FromCycles(cycles [][]int) (*Perm, error) {
	maxPt := -1
	seen := make(map[int]bool)
	for _, c := range cycles {
		for _, v := range c {
			if v < 0 || seen[v] {
				return nil, ErrInvalidCycle
			}
			seen[v] = true
			if v > maxPt {
				maxPt = v
			}
		}
	}
	img := make([]int, maxPt+1)
	for i := range img {
		img[i] = i
	}
	for _, c := range cycles {
		for k, v := range c {
			img[v] = c[(k+1)%len(c)]
		}
	}
	return &Perm{image: trim(img)}, nil
}

// Random returns a uniformly random permutation of 0..n-1 drawn from rng
// (Fisher–Yates).  A nil rng falls back to the deterministic default stream
// (see NewRand).  Returns ErrNegativeDegree for n < 0.
//
// Complexity: O(n).
func Random(n int, rng *rand.Rand) (*Perm, error) {
	if n < 0 {
		return nil, ErrNegativeDegree
	}
	r := rngOrDefault(rng)
	img := make([]int, n)
	for i := range img {
		img[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		img[i], img[j] = img[j], img[i]
	}
	return &Perm{image: trim(img)}, nil
}

// Image returns p(x).  Points at or beyond the degree are fixed.
// x must be non-negative.
//
// Complexity: O(1).
func (p *Perm) Image(x int) int {
	if x >= len(p.image) {
		return x
	}
	return p.image[x]
}

// Degree returns 1 + the largest moved point, or 0 for the identity.
func (p *Perm) Degree() int { return len(p.image) }

// IsIdentity reports whether p moves no point.
func (p *Perm) IsIdentity() bool { return len(p.image) == 0 }

// Then returns the composition "apply p, then q".
//
// This is the package-wide convention: Compose, Inverse, group sifting and
// factorization all read words left to right under Then.  Associative;
// Identity is neutral on both sides.
//
// Complexity: O(max degree).
func (p *Perm) Then(q *Perm) *Perm {
	n := len(p.image)
	if len(q.image) > n {
		n = len(q.image)
	}
	img := make([]int, n)
	for i := 0; i < n; i++ {
		img[i] = q.Image(p.Image(i))
	}
	return &Perm{image: trim(img)}
}

// Compose folds Then over ps left to right: Compose(a,b,c) applies a, then
// b, then c.  Compose() is the identity.
func Compose(ps ...*Perm) *Perm {
	out := Identity()
	for _, p := range ps {
		out = out.Then(p)
	}
	return out
}

// Inverse returns p⁻¹, so that p.Then(p.Inverse()) is the identity.
//
// Complexity: O(degree).
func (p *Perm) Inverse() *Perm {
	img := make([]int, len(p.image))
	for i, v := range p.image {
		img[v] = i
	}
	return &Perm{image: img} // inverse of canonical table is canonical
}

// Cycles returns the canonical disjoint-cycle decomposition: only cycles of
// length ≥ 2, each rotated so its minimum comes first, cycles sorted by that
// minimum.  The result is freshly allocated.
//
// Complexity: O(degree).
func (p *Perm) Cycles() [][]int {
	var cycles [][]int
	visited := make([]bool, len(p.image))
	for i := range p.image {
		if visited[i] || p.image[i] == i {
			continue
		}
		// i is the cycle minimum: smaller members would already be visited.
		c := []int{i}
		visited[i] = true
		for j := p.image[i]; j != i; j = p.image[j] {
			visited[j] = true
			c = append(c, j)
		}
		cycles = append(cycles, c)
	}
	return cycles
}

// Order returns the smallest k ≥ 1 with p composed k times equal to the
// identity: the lcm of the cycle lengths.  Exact, no search.
//
// Complexity: O(degree).
func (p *Perm) Order() int64 {
	var order int64 = 1
	for _, c := range p.Cycles() {
		order = lcm(order, int64(len(c)))
	}
	return order
}

// Support returns the moved points in ascending order.
func (p *Perm) Support() []int {
	var s []int
	for i, v := range p.image {
		if v != i {
			s = append(s, i)
		}
	}
	return s
}

// Equal reports structural equality of canonical forms.
func (p *Perm) Equal(q *Perm) bool {
	if q == nil || len(p.image) != len(q.image) {
		return false
	}
	for i, v := range p.image {
		if q.image[i] != v {
			return false
		}
	}
	return true
}

// Key returns a string key consistent with Equal, so permutations can key
// maps and sets.  The identity's key is the empty string.
//
// Complexity: O(degree).
func (p *Perm) Key() string {
	if len(p.image) == 0 {
		return ""
	}
	var b strings.Builder
	for i, v := range p.image {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// String renders cycle notation, e.g. "(0 1 2)(3 4)"; the identity is "()".
func (p *Perm) String() string {
	cycles := p.Cycles()
	if len(cycles) == 0 {
		return "()"
	}
	var b strings.Builder
	for _, c := range cycles {
		b.WriteByte('(')
		for k, v := range c {
			if k > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(v))
		}
		b.WriteByte(')')
	}
	return b.String()
}

// trim drops trailing fixed points, establishing the canonical table.
func trim(img []int) []int {
	n := len(img)
	for n > 0 && img[n-1] == n-1 {
		n--
	}
	return img[:n]
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}
