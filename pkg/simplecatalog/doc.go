// Package simplecatalog provides a reusable library for a media catalog with
// per-user watch lists, backed by a pluggable repository.
//
// It exposes a single Service interface that orchestrates the unified content
// feed (movies and TV shows merged into one alphabetically sorted, paginated
// view), kind resolution for opaque content identifiers, and my-list
// membership management with uniqueness and referential-integrity guarantees.
// Repository implementations (memory, Postgres) are provided under
// subpackages.
//
// # Kind resolution
//
// A content identifier does not encode whether it names a movie or a TV show.
// ResolveKind checks the movie store first and the TV show store second; the
// Movie-first precedence is a documented contract, not an accident.
package simplecatalog
