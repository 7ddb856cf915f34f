package cpd

import (
	"cmp"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Block is a span of duplicated code in one file.
type Block struct {
	Path      string `json:"path"`
	StartLine int    `json:"startLine"`
	EndLine   int    `json:"endLine"`
}

// Duplication is a token sequence found more than once. The first block
// is the origin; the others repeat it.
type Duplication struct {
	Tokens int     `json:"tokens"`
	Blocks []Block `json:"blocks"`
}

// hashBase is the multiplier of the rolling window hash.
const hashBase uint64 = 1099511628211

type fileStream struct {
	path   string
	tokens []Token
	hashes []uint64
}

type position struct {
	file  int
	start int
}

// Detector collects token streams and reports the sequences of at least
// minTokens tokens occurring more than once. Add is safe for concurrent
// use; Detect runs once all streams are added.
type Detector struct {
	minTokens int

	mu    sync.Mutex
	files []*fileStream
}

// NewDetector creates a detector. A minTokens below one is raised to one.
func NewDetector(minTokens int) *Detector {
	return &Detector{minTokens: max(minTokens, 1)}
}

// Add records the stream of the file at path. Streams shorter than the
// window are ignored.
func (d *Detector) Add(path string, tokens []Token) {
	if len(tokens) < d.minTokens {
		return
	}
	stream := &fileStream{path: path, tokens: tokens, hashes: d.windowHashes(tokens)}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.files = append(d.files, stream)
}

// windowHashes fingerprints every window of minTokens tokens with a
// rolling hash over the xxhash of each image.
func (d *Detector) windowHashes(tokens []Token) []uint64 {
	images := make([]uint64, len(tokens))
	for i, token := range tokens {
		images[i] = xxhash.Sum64String(token.Image)
	}

	leading := uint64(1)
	for range d.minTokens - 1 {
		leading *= hashBase
	}

	var h uint64
	for _, image := range images[:d.minTokens] {
		h = h*hashBase + image
	}
	hashes := make([]uint64, 0, len(tokens)-d.minTokens+1)
	hashes = append(hashes, h)
	for i := d.minTokens; i < len(images); i++ {
		h = (h-images[i-d.minTokens]*leading)*hashBase + images[i]
		hashes = append(hashes, h)
	}
	return hashes
}

// match is a duplicated sequence between an origin and one repetition.
type match struct {
	origin    position
	duplicate position
	length    int
}

// Detect returns the duplications found across the added streams, ordered
// by the path and line of their origin. Repetitions of one origin are
// merged into a single duplication; overlapping windows extend a match
// rather than starting a new one.
func (d *Detector) Detect() []Duplication {
	d.mu.Lock()
	defer d.mu.Unlock()

	slices.SortFunc(d.files, func(a, b *fileStream) int { return cmp.Compare(a.path, b.path) })

	buckets := make(map[uint64][]position)
	for f, stream := range d.files {
		for start, h := range stream.hashes {
			buckets[h] = append(buckets[h], position{file: f, start: start})
		}
	}

	type pair struct{ origin, duplicate position }
	open := make(map[pair]*match)
	var matches []*match

	for f, stream := range d.files {
		for start, h := range stream.hashes {
			here := position{file: f, start: start}
			origin := buckets[h][0]
			if origin == here || !d.sameWindow(origin, here) {
				continue
			}
			if origin.file == f && start-origin.start < d.minTokens {
				continue
			}

			key := pair{origin, here}
			m, extends := open[key]
			if extends {
				delete(open, key)
				m.length++
			} else {
				m = &match{origin: origin, duplicate: here, length: d.minTokens}
				matches = append(matches, m)
			}
			next := pair{position{origin.file, origin.start + 1}, position{f, start + 1}}
			open[next] = m
		}
	}

	return d.merge(matches)
}

func (d *Detector) sameWindow(a, b position) bool {
	left := d.files[a.file].tokens[a.start : a.start+d.minTokens]
	right := d.files[b.file].tokens[b.start : b.start+d.minTokens]
	for i := range left {
		if left[i].Image != right[i].Image {
			return false
		}
	}
	return true
}

// merge groups matches sharing an origin block.
func (d *Detector) merge(matches []*match) []Duplication {
	if len(matches) == 0 {
		return nil
	}
	type originKey struct {
		origin position
		length int
	}
	index := make(map[originKey]int)
	var duplications []Duplication
	var origins []position

	for _, m := range matches {
		key := originKey{m.origin, m.length}
		i, ok := index[key]
		if !ok {
			i = len(duplications)
			index[key] = i
			duplications = append(duplications, Duplication{
				Tokens: m.length,
				Blocks: []Block{d.block(m.origin, m.length)},
			})
			origins = append(origins, m.origin)
		}
		duplications[i].Blocks = append(duplications[i].Blocks, d.block(m.duplicate, m.length))
	}

	order := make([]int, len(duplications))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Or(
			cmp.Compare(origins[a].file, origins[b].file),
			cmp.Compare(origins[a].start, origins[b].start),
		)
	})
	sorted := make([]Duplication, 0, len(duplications))
	for _, i := range order {
		sorted = append(sorted, duplications[i])
	}
	return sorted
}

func (d *Detector) block(at position, length int) Block {
	stream := d.files[at.file]
	return Block{
		Path:      stream.path,
		StartLine: stream.tokens[at.start].Range.Start.Line,
		EndLine:   stream.tokens[at.start+length-1].Range.End.Line,
	}
}
