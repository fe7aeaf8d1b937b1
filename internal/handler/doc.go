// Package handler implements the HTTP API of recipebox.
//
// Routes are served by a chi router with request ids, panic recovery, CORS
// and zap request logging.
//
// # Endpoints
//
//	GET    /health
//	GET    /api/state                session snapshot
//	DELETE /api/state                empty the list and likes
//	GET    /api/search?q=&page=      search, or page the last search
//	GET    /api/recipes/{id}         load a recipe and make it current
//	GET    /api/recipe               current recipe
//	POST   /api/recipe/servings      {"direction": "inc"|"dec"}
//	POST   /api/recipe/list          add current recipe's ingredients to the list
//	POST   /api/recipe/like          toggle like of the current recipe
//	GET    /api/list
//	POST   /api/list                 {"count", "unit", "ingredient"}
//	PATCH  /api/list/{id}            {"count"}
//	DELETE /api/list/{id}
//	GET    /api/likes
//	POST   /api/likes                {"id"}
//	DELETE /api/likes/{id}
//	GET    /api/export/{format}      json or yaml
//	POST   /api/import/{format}      body up to 4 MiB; other bodies up to 64 KiB
//	GET    /events                   SSE stream of session events
//
// # Response Format
//
// Success responses return JSON data (200, 201, or 204 for deletes).
// Error responses return JSON with {error, details}. Missing ids map to 404,
// invalid input to 400 and oversized bodies to 413. State conflicts such as
// "no current recipe" map to 409 and recipe API failures to 502.
package handler
