package prompt

// Selection is one sampled template rendered for a topic.
type Selection struct {
	Index    int
	Category string
	Prompt   string
}

// Sampler picks distinct templates from the catalog.
type Sampler struct {
	rng Rand
}

// NewSampler creates a Sampler backed by rng.
func NewSampler(rng Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Select returns min(count, Size()) distinct templates rendered for topic,
// in random order. A negative count yields nothing.
func (s *Sampler) Select(topic string, count int) []Selection {
	count = min(count, len(catalog))
	if count <= 0 {
		return []Selection{}
	}

	perm := Shuffle(s.rng, len(catalog))
	out := make([]Selection, count)
	for i, idx := range perm[:count] {
		t := catalog[idx]
		out[i] = Selection{Index: idx, Category: t.Category, Prompt: t.Render(topic)}
	}
	return out
}

// IntBetween returns a uniform value in [lo, hi]. It returns lo when hi <= lo.
func (s *Sampler) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}

// Shuffle returns a Fisher-Yates permutation of [0, n).
func Shuffle(rng Rand, n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
