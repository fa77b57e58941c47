package item

import "github.com/talgya/fishgame-core/content"

// Property is the common interface every per-instance mutable facet
// implements so the bag can dispatch events uniformly.
type Property interface {
	onUse(n uint64)
	onAdd(n uint64)
	onRemove(n uint64)
	shouldConsume() bool
}

// Stackable tracks a count that depletes on use and grows on add.
type Stackable struct {
	Count uint64
}

func (s *Stackable) onUse(n uint64)      { s.Count = saturatingSubU64(s.Count, n) }
func (s *Stackable) onAdd(n uint64)      { s.Count = saturatingAddU64(s.Count, n) }
func (s *Stackable) onRemove(n uint64)   { s.Count = saturatingSubU64(s.Count, n) }
func (s *Stackable) shouldConsume() bool { return s.Count == 0 }

// Usage tracks how many times an item has been used; it never causes
// consumption and ignores add/remove.
type Usage struct {
	TimesUsed uint64
}

func (u *Usage) onUse(n uint64)      { u.TimesUsed = saturatingAddU64(u.TimesUsed, n) }
func (u *Usage) onAdd(uint64)        {}
func (u *Usage) onRemove(uint64)     {}
func (u *Usage) shouldConsume() bool { return false }

func saturatingAddU64(v, delta uint64) uint64 {
	sum := v + delta
	if sum < v {
		return ^uint64(0)
	}
	return sum
}

func saturatingSubU64(v, delta uint64) uint64 {
	if delta > v {
		return 0
	}
	return v - delta
}

// serializedProperties is the on-disk shape of an item's property bag,
// used by Item.MarshalProperties/FromParts.
type serializedProperties struct {
	Stackable *Stackable `json:"stackable,omitempty"`
	Usage     *Usage     `json:"usage,omitempty"`
}

func newDefaultProperty(t content.ItemPropertyType, v any) Property {
	switch t {
	case content.ItemPropStackable:
		if sp, ok := v.(content.StackableProperty); ok {
			return &Stackable{Count: sp.Count}
		}
		return &Stackable{Count: 1}
	case content.ItemPropUsage:
		if up, ok := v.(content.UsageProperty); ok {
			return &Usage{TimesUsed: up.TimesUsed}
		}
		return &Usage{}
	default:
		return nil
	}
}
