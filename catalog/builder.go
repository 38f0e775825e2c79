package catalog

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Builder accumulates catalog entries and alias mappings.
// Entries must be appended grouped by synset; Build rejects a synset whose
// members are split by another synset's run.
type Builder struct {
	entries []Entry
	aliases map[string]string
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{aliases: make(map[string]string)}
}

// Append adds one (synset, model) pair at the next index.
func (b *Builder) Append(synsetID, modelID string) *Builder {
	b.entries = append(b.entries, Entry{SynsetID: synsetID, ModelID: modelID})
	return b
}

// Alias registers a human-readable label for a synset id.
func (b *Builder) Alias(label, synsetID string) *Builder {
	b.aliases[label] = synsetID
	return b
}

// Build validates grouping and freezes the catalog.
func (b *Builder) Build() (*Catalog, error) {
	c := &Catalog{
		synsetIDs: make([]string, len(b.entries)),
		modelIDs:  make([]string, len(b.entries)),
		runs:      make(map[string]Run),
		members:   make(map[string]*roaring.Bitmap),
		aliases:   make(map[string]string, len(b.aliases)),
		modelIdx:  make(map[string]int, len(b.entries)),
	}

	for i, e := range b.entries {
		c.synsetIDs[i] = e.SynsetID
		c.modelIDs[i] = e.ModelID

		m, ok := c.members[e.SynsetID]
		if !ok {
			m = roaring.New()
			c.members[e.SynsetID] = m
		}
		m.Add(uint32(i))

		if _, ok := c.modelIdx[e.ModelID]; !ok {
			c.modelIdx[e.ModelID] = i
		}
	}

	// Derive runs from the membership bitmaps. A bitmap spanning more
	// indices than it holds means the synset was interleaved with another.
	for synset, m := range c.members {
		minIdx := m.Minimum()
		maxIdx := m.Maximum()
		card := m.GetCardinality()
		if uint64(maxIdx-minIdx)+1 != card {
			return nil, fmt.Errorf("catalog: synset %s is not contiguous (indices %d..%d hold %d members)",
				synset, minIdx, maxIdx, card)
		}
		c.runs[synset] = Run{Start: int(minIdx), Len: int(card)}
	}

	for label, synset := range b.aliases {
		if _, ok := c.runs[synset]; !ok {
			return nil, fmt.Errorf("catalog: alias %q points to unknown synset %s", label, synset)
		}
		c.aliases[label] = synset
	}

	return c, nil
}
