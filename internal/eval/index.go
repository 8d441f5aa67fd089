package eval

import (
	"sort"

	"github.com/varbench/varbench/internal/vcf"
)

// PositionIndex is an ordered position -> record mapping for one contig.
// Positions are unique within one input set; on duplicates the last record
// wins. The sorted key view is rebuilt lazily after mutation.
type PositionIndex struct {
	records map[int64]*vcf.Variant
	sorted  []int64
	dirty   bool
}

// NewPositionIndex builds an index from a slice of records.
func NewPositionIndex(variants []*vcf.Variant) *PositionIndex {
	idx := &PositionIndex{records: make(map[int64]*vcf.Variant, len(variants))}
	for _, v := range variants {
		idx.records[v.Pos] = v
	}
	idx.dirty = true
	return idx
}

// EmptyPositionIndex returns an index with no records.
func EmptyPositionIndex() *PositionIndex {
	return &PositionIndex{records: make(map[int64]*vcf.Variant)}
}

// Get returns the record at a position, or nil if absent.
func (idx *PositionIndex) Get(pos int64) *vcf.Variant {
	return idx.records[pos]
}

// Has returns true if a record exists at the position.
func (idx *PositionIndex) Has(pos int64) bool {
	_, ok := idx.records[pos]
	return ok
}

// Put inserts or replaces the record at its position.
func (idx *PositionIndex) Put(v *vcf.Variant) {
	if _, ok := idx.records[v.Pos]; !ok {
		idx.dirty = true
	}
	idx.records[v.Pos] = v
}

// Delete removes the record at a position, if present.
func (idx *PositionIndex) Delete(pos int64) {
	if _, ok := idx.records[pos]; ok {
		delete(idx.records, pos)
		idx.dirty = true
	}
}

// Len returns the number of records in the index.
func (idx *PositionIndex) Len() int {
	return len(idx.records)
}

// Positions returns all positions in ascending order. The returned slice
// is owned by the index; callers must not modify it.
func (idx *PositionIndex) Positions() []int64 {
	if idx.dirty {
		idx.sorted = idx.sorted[:0]
		for pos := range idx.records {
			idx.sorted = append(idx.sorted, pos)
		}
		sort.Slice(idx.sorted, func(i, j int) bool { return idx.sorted[i] < idx.sorted[j] })
		idx.dirty = false
	}
	return idx.sorted
}

// Range returns the positions within [lo, hi] (inclusive) in ascending
// order, using binary search over the sorted key view.
func (idx *PositionIndex) Range(lo, hi int64) []int64 {
	positions := idx.Positions()
	start := sort.Search(len(positions), func(i int) bool { return positions[i] >= lo })
	end := sort.Search(len(positions), func(i int) bool { return positions[i] > hi })
	return positions[start:end]
}

// CountByType tallies the variant types of all records in the index.
func (idx *PositionIndex) CountByType() TypeCounts {
	counts := TypeCounts{}
	for _, v := range idx.records {
		counts[ClassifyVariant(v)]++
	}
	return counts
}

// TypeCounts is an occurrence count per variant type.
type TypeCounts [len(typeNames)]int

// Get returns the count for a type.
func (c *TypeCounts) Get(t VariantType) int { return c[t] }

// Add increments the count for a type by n.
func (c *TypeCounts) Add(t VariantType, n int) { c[t] += n }

// Total returns the sum over all types.
func (c *TypeCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// GroupByContig partitions records by contig name, preserving input order
// within each group.
func GroupByContig(variants []*vcf.Variant) map[string][]*vcf.Variant {
	groups := make(map[string][]*vcf.Variant)
	for _, v := range variants {
		groups[v.Chrom] = append(groups[v.Chrom], v)
	}
	return groups
}
