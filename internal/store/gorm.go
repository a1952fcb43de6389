package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/noah-isme/siakad-go-api/pkg/apperr"
)

// documentRow is the single table backing every collection.
type documentRow struct {
	ID         uint           `gorm:"primaryKey"`
	Collection string         `gorm:"size:64;not null;uniqueIndex:idx_collection_key,priority:1"`
	Key        string         `gorm:"size:255;not null;uniqueIndex:idx_collection_key,priority:2"`
	Body       datatypes.JSON `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (documentRow) TableName() string { return "documents" }

type gormStore struct {
	db      *gorm.DB
	schemas map[string]*jsonschema.Schema
	logger  zerolog.Logger
}

// NewGormStore builds a Store over the given GORM connection and migrates the
// backing table.
func NewGormStore(db *gorm.DB, logger zerolog.Logger) (Store, error) {
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate document table: %w", err)
	}

	schemas, err := compileSchemas()
	if err != nil {
		return nil, err
	}

	return &gormStore{
		db:      db,
		schemas: schemas,
		logger:  logger.With().Str("component", "document_store").Logger(),
	}, nil
}

func (s *gormStore) List(ctx context.Context, collection string) ([]json.RawMessage, error) {
	var rows []documentRow
	if err := s.db.WithContext(ctx).Where("collection = ?", collection).Find(&rows).Error; err != nil {
		return nil, apperr.NewStore("list", collection, err)
	}

	documents := make([]json.RawMessage, 0, len(rows))
	for _, row := range rows {
		if err := s.validate(collection, row.Body); err != nil {
			return nil, apperr.NewStore("list", collection, err)
		}
		documents = append(documents, json.RawMessage(row.Body))
	}

	return documents, nil
}

func (s *gormStore) Get(ctx context.Context, collection, key string) (json.RawMessage, error) {
	var row documentRow
	err := s.db.WithContext(ctx).
		Where("collection = ? AND key = ?", collection, key).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound(collection, key)
		}
		return nil, apperr.NewStore("get", collection, err)
	}

	if err := s.validate(collection, row.Body); err != nil {
		return nil, apperr.NewStore("get", collection, err)
	}

	return json.RawMessage(row.Body), nil
}

func (s *gormStore) Put(ctx context.Context, collection, key string, document interface{}) error {
	body, err := json.Marshal(document)
	if err != nil {
		return apperr.NewStore("put", collection, err)
	}

	row := documentRow{
		Collection: collection,
		Key:        key,
		Body:       datatypes.JSON(body),
	}

	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return apperr.NewStore("put", collection, err)
	}

	return nil
}

func (s *gormStore) Delete(ctx context.Context, collection, key string) error {
	result := s.db.WithContext(ctx).
		Where("collection = ? AND key = ?", collection, key).
		Delete(&documentRow{})
	if result.Error != nil {
		return apperr.NewStore("delete", collection, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NewNotFound(collection, key)
	}

	return nil
}

func (s *gormStore) validate(collection string, body datatypes.JSON) error {
	schema, ok := s.schemas[collection]
	if !ok {
		return nil
	}

	var document interface{}
	if err := json.Unmarshal(body, &document); err != nil {
		return fmt.Errorf("malformed document body: %w", err)
	}

	if err := schema.Validate(document); err != nil {
		s.logger.Warn().Str("collection", collection).Err(err).Msg("document failed schema validation on read")
		return fmt.Errorf("document failed schema validation: %w", err)
	}

	return nil
}
