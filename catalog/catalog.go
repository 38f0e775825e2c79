// Package catalog implements the ordered (synset, model) catalog backing a
// ShapeNet-style dataset.
//
// A catalog is an index-addressable sequence of entries, grouped so that each
// synset occupies one contiguous index range. It is immutable once built;
// selection and sampling layers treat it as read-only.
package catalog

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// Entry is a single catalog row.
type Entry struct {
	SynsetID string `json:"synset_id"`
	ModelID  string `json:"model_id"`
}

// Run is the contiguous index range a synset occupies: [Start, Start+Len).
type Run struct {
	Start int
	Len   int
}

// Catalog is the full ordered list of (synset, model) pairs.
//
// All methods are safe for concurrent use; the catalog never mutates after
// Build.
type Catalog struct {
	synsetIDs []string
	modelIDs  []string

	runs    map[string]Run
	members map[string]*roaring.Bitmap
	aliases map[string]string

	// First occurrence wins, matching linear-search lookup semantics for
	// model ids that repeat across synsets.
	modelIdx map[string]int
}

// Len returns the number of models in the catalog.
func (c *Catalog) Len() int { return len(c.modelIDs) }

// Entry returns the catalog row at index i.
// The caller must ensure 0 <= i < Len().
func (c *Catalog) Entry(i int) Entry {
	return Entry{SynsetID: c.synsetIDs[i], ModelID: c.modelIDs[i]}
}

// Synsets returns the loaded synset ids in sorted order.
func (c *Catalog) Synsets() []string {
	out := make([]string, 0, len(c.runs))
	for synset := range c.runs {
		out = append(out, synset)
	}
	sort.Strings(out)
	return out
}

// Run returns the contiguous index range of the given synset.
func (c *Catalog) Run(synsetID string) (Run, bool) {
	r, ok := c.runs[synsetID]
	return r, ok
}

// Members returns a copy of the membership bitmap for the given synset.
func (c *Catalog) Members(synsetID string) (*roaring.Bitmap, bool) {
	b, ok := c.members[synsetID]
	if !ok {
		return nil, false
	}
	return b.Clone(), true
}

// ResolveAlias maps a human-readable label to its canonical synset id.
// Unknown labels fall through unchanged, so callers can pass either form.
func (c *Catalog) ResolveAlias(label string) string {
	if synset, ok := c.aliases[label]; ok {
		return synset
	}
	return label
}

// Aliases returns a copy of the label -> synset id map.
func (c *Catalog) Aliases() map[string]string {
	out := make(map[string]string, len(c.aliases))
	for k, v := range c.aliases {
		out[k] = v
	}
	return out
}

// IndexOfModel returns the index of the first entry whose model id equals id.
func (c *Catalog) IndexOfModel(id string) (int, bool) {
	i, ok := c.modelIdx[id]
	return i, ok
}

// Entries returns a copy of all catalog rows in index order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, c.Len())
	for i := range out {
		out[i] = c.Entry(i)
	}
	return out
}
