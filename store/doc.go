// Package store provides the DynamoDB data access layer for the movie table.
//
// The table is keyed by a numeric "year" partition key and a string "title"
// sort key. A global secondary index on "title" serves lookups across years.
//
// # Operations
//
// Every Store method issues exactly one DynamoDB call:
//
//   - [Store.Get] - GetItem on the composite key
//   - [Store.QueryByTitle] - Query on the title index
//   - [Store.ScanAll] - a single Scan page; large tables are truncated
//   - [Store.Put] - unconditional PutItem (insert or full replace)
//   - [Store.Delete] - DeleteItem; a missing key is not an error
//
// [NewClient] disables SDK retries so a failed call surfaces immediately.
//
// # Configuration
//
// Use [ConfigFromEnv] inside Lambda, or [DefaultConfig] for the stock table:
//
//	cfg := store.ConfigFromEnv() // AWS_REGION, MOVIE_TABLE, TITLE_INDEX
//	client, err := store.NewClient(ctx, cfg)
//	s := store.New(client, cfg)
//
// # Errors
//
//   - [ErrNotFound] - no item exists for the key
//   - [ErrDecode] - an item could not be converted to or from attributes
//
// Any other error is returned unchanged from the SDK.
package store
