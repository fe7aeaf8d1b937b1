// Package domain defines the core types of the recipebox application.
//
// # Collections
//
// Collection is an ordered, identifier-keyed group of records. Records are
// appended in insertion order, looked up, updated and removed by id with a
// linear scan. Collections are small (human-curated lists), so no index is
// kept. An id handed out by a collection is never handed out again, even
// after its record is removed.
//
// Two collections exist in the application:
//
// - ShoppingList holds ListItem records ({count, unit, ingredient}) whose
// ids are generated by the collection.
//
// - Likes holds Like records ({title, author, img}) keyed by recipe id.
//
// Operations on a missing id return ErrNotFound rather than silently doing
// nothing.
//
// # Recipes
//
// Recipe is a recipe fetched from the remote API. Raw ingredient lines are
// parsed into Ingredient values (count, short unit, name), and servings can
// be scaled up or down, rescaling every count.
//
// # Search
//
// SearchResult and Page model a search and its pagination. LimitTitle
// shortens long titles on word boundaries for list views.
//
// # Design Principles
//
// - No database or network dependencies
// - Collections are not synchronized; owners serialize access
// - Snapshot is the only serialized form
package domain
