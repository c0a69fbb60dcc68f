package models

// ============================================================================
// STORAGE KEYS
// ============================================================================

// ListsKey is the fixed key holding the serialized list collection.
const ListsKey = "shoppingLists"

// ListItemsPrefix prefixes the per-list item sequence keys.
const ListItemsPrefix = "listItems_"

// ScratchItemsKey holds the items of the single implicit list used when no
// list is selected.
const ScratchItemsKey = "groceryItems"

// ============================================================================
// LIMITS
// ============================================================================

// MaxTitleLength bounds list titles, matching the old project name limit.
const MaxTitleLength = 100

// ItemsKey returns the key under which the items of listID are stored.
func ItemsKey(listID string) string {
	return ListItemsPrefix + listID
}
