package item

import (
	"context"

	"github.com/talgya/fishgame-core/content"
	"github.com/talgya/fishgame-core/gameerr"
)

// Repository is the persistence seam ItemKernel operations need. Concrete
// stores (memstore, sqlstore) implement this.
type Repository interface {
	FindByTypeAndUser(ctx context.Context, typeID content.ItemTypeID, userID int64) ([]Item, error)
	FindByUser(ctx context.Context, userID int64) ([]Item, error)
	Create(ctx context.Context, it Item) (Item, error)
	Save(ctx context.Context, it Item) (Item, error)
	Delete(ctx context.Context, it Item) error
}

// AddNewItem inserts newItem for user, enforcing max-count and merging
// into an existing stack when the item type caps at one row but is
// stackable.
func AddNewItem(ctx context.Context, repo Repository, itemContent *content.Item, newItem Item, userExternalID int64) (Item, error) {
	if itemContent == nil {
		return Item{}, gameerr.InvalidItemType(int32(newItem.TypeID))
	}

	existing, err := repo.FindByTypeAndUser(ctx, itemContent.ID, newItem.UserID)
	if err != nil {
		return Item{}, err
	}

	maxCount := itemContent.MaxCount
	hasCount := uint32(len(existing))

	countMaxExceeded := maxCount > 1 && hasCount >= maxCount
	countUniqueExceeded := maxCount == 1 && hasCount > 0 && !itemContent.IsStackable()
	if countMaxExceeded || countUniqueExceeded {
		return Item{}, gameerr.ItemMaxCountExceeded(int32(itemContent.ID), userExternalID)
	}

	if maxCount > 1 || hasCount == 0 || !itemContent.IsStackable() {
		return repo.Create(ctx, newItem)
	}

	amount, ok := newItem.Count()
	if !ok {
		return Item{}, gameerr.ItemUnstackable(int32(itemContent.ID), "new item has no count property")
	}

	toEdit := existing[0]
	toEdit.Add(amount)
	return repo.Save(ctx, toEdit)
}

// CreateAndSaveItemWithCount builds a fresh stackable instance seeded with
// count, then runs it through AddNewItem. Fails ItemUnstackable if
// itemContent has no Stackable property.
func CreateAndSaveItemWithCount(ctx context.Context, repo Repository, itemContent *content.Item, userID, userExternalID int64, count uint64) (Item, error) {
	newItem := NewFromContent(userID, itemContent)
	if !itemContent.IsStackable() {
		return Item{}, gameerr.ItemUnstackable(int32(itemContent.ID), "count provided on item creation, but item is unstackable")
	}
	newItem.SetCount(count)
	return AddNewItem(ctx, repo, itemContent, newItem, userExternalID)
}

// CreateAndSaveItem builds a fresh instance from content's defaults and
// runs it through AddNewItem.
func CreateAndSaveItem(ctx context.Context, repo Repository, itemContent *content.Item, userID, userExternalID int64) (Item, error) {
	return AddNewItem(ctx, repo, itemContent, NewFromContent(userID, itemContent), userExternalID)
}

// Manipulate applies fn to it, then deletes the row if fn requested
// consumption or persists the mutated instance otherwise. This is the
// only mutation path allowed to delete an item row.
func Manipulate(ctx context.Context, repo Repository, it Item, fn func(*Item) (EventSuccess, error)) (EventSuccess, error) {
	success, err := fn(&it)
	if err != nil {
		return EventSuccess{}, err
	}

	if success.Consume {
		if err := repo.Delete(ctx, it); err != nil {
			return EventSuccess{}, err
		}
		return success, nil
	}

	if _, err := repo.Save(ctx, it); err != nil {
		return EventSuccess{}, err
	}
	return success, nil
}

// Inventory is a user's full set of owned item instances.
type Inventory struct {
	Items []Item
}

// GetInventory loads every item instance owned by userID.
func GetInventory(ctx context.Context, repo Repository, userID int64) (Inventory, error) {
	items, err := repo.FindByUser(ctx, userID)
	if err != nil {
		return Inventory{}, err
	}
	return Inventory{Items: items}, nil
}
