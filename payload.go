package orbfield

import (
	"math/rand"

	"github.com/google/uuid"
)

// PayloadRecord is the externally opaque data bound to one orb for its
// lifetime, e.g. a titled link the click action opens.
type PayloadRecord struct {
	ID    string
	Title string
	URL   string
}

// PayloadPool hands out non-repeating records from a fixed catalog.
// When every record is in use the pool resets and everything becomes
// eligible again; duplicate bindings after exhaustion are accepted behavior.
type PayloadPool struct {
	catalog []PayloadRecord
	inUse   map[int]struct{}
	rng     *rand.Rand
}

func NewPayloadPool(catalog []PayloadRecord, rng *rand.Rand) *PayloadPool {
	return &PayloadPool{
		catalog: catalog,
		inUse:   make(map[int]struct{}),
		rng:     rng,
	}
}

func (p *PayloadPool) Size() int       { return len(p.catalog) }
func (p *PayloadPool) InUseCount() int { return len(p.inUse) }

// Acquire picks uniformly at random among records not currently in use.
// On exhaustion the in-use set is cleared first.
func (p *PayloadPool) Acquire() *PayloadRecord {
	if len(p.catalog) == 0 {
		return nil
	}

	if len(p.inUse) >= len(p.catalog) {
		p.inUse = make(map[int]struct{})
	}

	free := make([]int, 0, len(p.catalog)-len(p.inUse))
	for i := range p.catalog {
		if _, used := p.inUse[i]; !used {
			free = append(free, i)
		}
	}

	idx := free[p.rng.Intn(len(free))]
	p.inUse[idx] = struct{}{}
	return &p.catalog[idx]
}

// Release frees the record's slot. Matching is by record identity, not by
// index: the set may have been cleared and re-populated since Acquire.
func (p *PayloadPool) Release(record *PayloadRecord) {
	if record == nil {
		return
	}
	for i := range p.catalog {
		if p.catalog[i].ID == record.ID {
			delete(p.inUse, i)
			return
		}
	}
}

// DefaultPayloadCatalog is the demo link set.
func DefaultPayloadCatalog() []PayloadRecord {
	titles := []struct{ title, url string }{
		{"About", "https://orbfield.dev/about"},
		{"Projects", "https://orbfield.dev/projects"},
		{"Blog", "https://orbfield.dev/blog"},
		{"Gallery", "https://orbfield.dev/gallery"},
		{"Music", "https://orbfield.dev/music"},
		{"Notes", "https://orbfield.dev/notes"},
		{"Contact", "https://orbfield.dev/contact"},
		{"Source", "https://github.com/orbfield/orbfield"},
	}
	catalog := make([]PayloadRecord, 0, len(titles))
	for _, t := range titles {
		catalog = append(catalog, PayloadRecord{
			ID:    uuid.NewString(),
			Title: t.title,
			URL:   t.url,
		})
	}
	return catalog
}
