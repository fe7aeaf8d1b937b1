package domain

// ListItem is one line of the shopping list
type ListItem struct {
	ID         string  `json:"id" yaml:"id"`
	Count      float64 `json:"count" yaml:"count"`
	Unit       string  `json:"unit" yaml:"unit"`
	Ingredient string  `json:"ingredient" yaml:"ingredient"`
}

// RecordID implements Record
func (i ListItem) RecordID() string { return i.ID }

// WithID implements Record
func (i ListItem) WithID(id string) ListItem {
	i.ID = id
	return i
}

// ShoppingList is the ordered shopping list
type ShoppingList struct {
	items *Collection[ListItem]
}

// NewShoppingList creates an empty list
func NewShoppingList(opts ...CollectionOption) *ShoppingList {
	return &ShoppingList{items: NewCollection[ListItem](opts...)}
}

// AddItem appends an item and returns it with its new id
func (l *ShoppingList) AddItem(count float64, unit, ingredient string) (ListItem, error) {
	if count < 0 {
		return ListItem{}, ErrInvalidCount
	}
	return l.items.Add(ListItem{Count: count, Unit: unit, Ingredient: ingredient}), nil
}

// AddIngredients appends every ingredient in order
func (l *ShoppingList) AddIngredients(ings []Ingredient) []ListItem {
	added := make([]ListItem, 0, len(ings))
	for _, ing := range ings {
		added = append(added, l.items.Add(ListItem{
			Count:      ing.Count,
			Unit:       ing.Unit,
			Ingredient: ing.Ingredient,
		}))
	}
	return added
}

// DeleteItem removes the item with id
func (l *ShoppingList) DeleteItem(id string) error {
	return l.items.Remove(id)
}

// UpdateCount sets the count of the item with id
func (l *ShoppingList) UpdateCount(id string, count float64) (ListItem, error) {
	if count < 0 {
		return ListItem{}, ErrInvalidCount
	}
	return l.items.Update(id, func(it ListItem) ListItem {
		it.Count = count
		return it
	})
}

// Item returns the item with id
func (l *ShoppingList) Item(id string) (ListItem, bool) {
	return l.items.Find(id)
}

// Items returns all items in insertion order
func (l *ShoppingList) Items() []ListItem {
	return l.items.Export()
}

// Len returns the number of items
func (l *ShoppingList) Len() int {
	return l.items.Len()
}

// Clear removes every item
func (l *ShoppingList) Clear() {
	l.items.Clear()
}

// Replace swaps the contents for items
func (l *ShoppingList) Replace(items []ListItem) error {
	return l.items.Import(items)
}
