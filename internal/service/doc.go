// Package service implements the application logic of recipebox.
//
// A Session holds the application state: the current search, the current
// recipe, the shopping list and the likes. Feature services operate on
// their own slice of that state:
//
//   - SearchService queries a RecipeSource and pages the results
//   - RecipeService loads the current recipe and scales its servings
//   - ListService adds, removes and updates shopping list items
//   - LikesService toggles and removes likes
//
// # Persistence
//
// The session is given a Persister. It loads the list and likes once at
// startup and saves the touched collection after every mutation; an import
// writes both collections in one SaveAll. Mutations are ordered end to end,
// so the store always ends up with the latest state. Malformed persisted
// data is logged and treated as empty. Reset clears both collections and
// deletes every persisted key.
//
// # Event System
//
// Every mutation publishes an Event on the EventBus. The SSE hub subscribes
// to the bus, so data flows one way from services to connected clients.
package service
