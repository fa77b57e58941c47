// Package item implements the item attribute/property bag model: content
// carries immutable Attributes, instances carry mutable Properties, and a
// small set of events (use/add/remove) fan out across every property in an
// instance's bag.
package item

import (
	"encoding/json"
	"time"

	"github.com/talgya/fishgame-core/content"
	"github.com/talgya/fishgame-core/gameerr"
)

// Item is one owned instance of an item type: its content-defined type and
// its own mutable property bag.
type Item struct {
	ID     int64
	UserID int64
	TypeID content.ItemTypeID

	properties map[content.ItemPropertyType]Property

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewFromContent builds a fresh instance for itemContent, seeding its
// property bag from the content's default properties.
func NewFromContent(userID int64, itemContent *content.Item) Item {
	props := make(map[content.ItemPropertyType]Property, len(itemContent.DefaultProperties))
	for t, v := range itemContent.DefaultProperties {
		if p := newDefaultProperty(t, v); p != nil {
			props[t] = p
		}
	}
	return Item{UserID: userID, TypeID: itemContent.ID, properties: props}
}

// Count returns the Stackable property's count, if the instance carries
// one.
func (it *Item) Count() (uint64, bool) {
	if p, ok := it.properties[content.ItemPropStackable]; ok {
		return p.(*Stackable).Count, true
	}
	return 0, false
}

// SetCount overwrites the Stackable property's count in place, used when
// seeding a brand new stack before it is persisted.
func (it *Item) SetCount(n uint64) bool {
	if p, ok := it.properties[content.ItemPropStackable]; ok {
		p.(*Stackable).Count = n
		return true
	}
	return false
}

// TimesUsed returns the Usage property's count, if the instance carries
// one.
func (it *Item) TimesUsed() (uint64, bool) {
	if p, ok := it.properties[content.ItemPropUsage]; ok {
		return p.(*Usage).TimesUsed, true
	}
	return 0, false
}

func (it *Item) onUse(n uint64) {
	for _, p := range it.properties {
		p.onUse(n)
	}
}

func (it *Item) onAdd(n uint64) {
	for _, p := range it.properties {
		p.onAdd(n)
	}
}

func (it *Item) onRemove(n uint64) {
	for _, p := range it.properties {
		p.onRemove(n)
	}
}

// ShouldConsume reports whether any property in the bag now wants the
// instance deleted.
func (it *Item) ShouldConsume() bool {
	for _, p := range it.properties {
		if p.shouldConsume() {
			return true
		}
	}
	return false
}

// Add issues on_add(n) to the whole bag and reports whether the instance
// should now be consumed.
func (it *Item) Add(n uint64) bool {
	it.onAdd(n)
	return it.ShouldConsume()
}

// Remove issues on_remove(n) to the whole bag and reports whether the
// instance should now be consumed.
func (it *Item) Remove(n uint64) bool {
	it.onRemove(n)
	return it.ShouldConsume()
}

// UseAsRod issues on_use(1) to the whole bag if itemContent is a rod.
// Fails InvalidItemType if itemContent is nil, NotARod if it lacks the Rod
// attribute.
func UseAsRod(it *Item, itemContent *content.Item) (consumed bool, err error) {
	if itemContent == nil {
		return false, gameerr.InvalidItemType(int32(it.TypeID))
	}
	if !itemContent.IsRod() {
		return false, gameerr.NotARod(int32(it.TypeID))
	}
	it.onUse(1)
	return it.ShouldConsume(), nil
}

// MigrateProperties reconciles it's property bag against itemContent's
// current default properties: a type present in content but missing on
// the instance is added with its default value; a type present on the
// instance but absent from content is dropped. Existing values for types
// kept on both sides are left untouched.
func MigrateProperties(it *Item, itemContent *content.Item) {
	for t, v := range itemContent.DefaultProperties {
		if _, ok := it.properties[t]; !ok {
			if p := newDefaultProperty(t, v); p != nil {
				it.properties[t] = p
			}
		}
	}
	for t := range it.properties {
		if _, ok := itemContent.DefaultProperties[t]; !ok {
			delete(it.properties, t)
		}
	}
}

// EventSuccess is the result of a Manipulate mutation: whether the
// instance should be deleted (consume) rather than saved.
type EventSuccess struct {
	Consume bool
}

// MarshalProperties serializes it's property bag to JSON, for stores that
// persist properties as a single column.
func (it *Item) MarshalProperties() ([]byte, error) {
	sp := serializedProperties{}
	if p, ok := it.properties[content.ItemPropStackable]; ok {
		sp.Stackable = p.(*Stackable)
	}
	if p, ok := it.properties[content.ItemPropUsage]; ok {
		sp.Usage = p.(*Usage)
	}
	return json.Marshal(sp)
}

// FromParts reconstructs an Item from stored fields and a JSON-encoded
// property bag, for stores that persist properties as a single column.
func FromParts(id, userID int64, typeID content.ItemTypeID, propertiesJSON []byte, createdAt, updatedAt time.Time) (Item, error) {
	var sp serializedProperties
	if len(propertiesJSON) > 0 {
		if err := json.Unmarshal(propertiesJSON, &sp); err != nil {
			return Item{}, gameerr.Unexpected(err)
		}
	}

	props := make(map[content.ItemPropertyType]Property)
	if sp.Stackable != nil {
		props[content.ItemPropStackable] = sp.Stackable
	}
	if sp.Usage != nil {
		props[content.ItemPropUsage] = sp.Usage
	}

	return Item{
		ID:         id,
		UserID:     userID,
		TypeID:     typeID,
		properties: props,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}
