// Package store implements the document store gateway. Every entity is kept
// as a JSON document addressed by collection name and key; callers that need
// ordering must sort client-side.
package store

import (
	"context"
	"encoding/json"
)

// Collection names for the stored entities.
const (
	CollectionStudents = "students"
	CollectionCourses  = "courses"
	CollectionPrograms = "programs"
	CollectionRecords  = "course_records"
	CollectionUsers    = "users"
)

// Store is the gateway contract. List carries no ordering guarantee. Failures
// surface as *apperr.StoreError; a missing key on Get surfaces as
// *apperr.NotFoundError.
type Store interface {
	List(ctx context.Context, collection string) ([]json.RawMessage, error)
	Get(ctx context.Context, collection, key string) (json.RawMessage, error)
	Put(ctx context.Context, collection, key string, document interface{}) error
	Delete(ctx context.Context, collection, key string) error
}
