package repository

import (
	"context"
	"strings"

	"github.com/noah-isme/siakad-go-api/internal/models"
	"github.com/noah-isme/siakad-go-api/internal/store"
)

// ProgramRepository provides access to study program documents.
type ProgramRepository interface {
	List(ctx context.Context) ([]models.Program, error)
	GetByName(ctx context.Context, name string) (models.Program, error)
	FindByNameFold(ctx context.Context, name string) (models.Program, bool, error)
	Save(ctx context.Context, program models.Program) error
	Delete(ctx context.Context, name string) error
}

type programRepository struct {
	store store.Store
}

// NewProgramRepository constructs a program repository.
func NewProgramRepository(s store.Store) ProgramRepository {
	return &programRepository{store: s}
}

func (r *programRepository) List(ctx context.Context) ([]models.Program, error) {
	documents, err := r.store.List(ctx, store.CollectionPrograms)
	if err != nil {
		return nil, err
	}

	programs := make([]models.Program, 0, len(documents))
	for _, raw := range documents {
		var program models.Program
		if err := decodeInto(store.CollectionPrograms, raw, &program); err != nil {
			return nil, err
		}
		programs = append(programs, program)
	}

	return programs, nil
}

func (r *programRepository) GetByName(ctx context.Context, name string) (models.Program, error) {
	raw, err := r.store.Get(ctx, store.CollectionPrograms, name)
	if err != nil {
		return models.Program{}, err
	}

	var program models.Program
	if err := decodeInto(store.CollectionPrograms, raw, &program); err != nil {
		return models.Program{}, err
	}

	return program, nil
}

func (r *programRepository) FindByNameFold(ctx context.Context, name string) (models.Program, bool, error) {
	programs, err := r.List(ctx)
	if err != nil {
		return models.Program{}, false, err
	}

	for _, program := range programs {
		if strings.EqualFold(program.Name, name) {
			return program, true, nil
		}
	}

	return models.Program{}, false, nil
}

func (r *programRepository) Save(ctx context.Context, program models.Program) error {
	return r.store.Put(ctx, store.CollectionPrograms, program.Name, program)
}

func (r *programRepository) Delete(ctx context.Context, name string) error {
	return r.store.Delete(ctx, store.CollectionPrograms, name)
}
