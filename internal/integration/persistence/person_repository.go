// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moneybook/backend/internal/application/adapter"
	"github.com/moneybook/backend/internal/domain/entity"
	"github.com/moneybook/backend/internal/integration/persistence/model"
)

// personRepository implements the adapter.PersonRepository interface.
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new person repository instance.
func NewPersonRepository(db *gorm.DB) adapter.PersonRepository {
	return &personRepository{
		db: db,
	}
}

// Create creates a new person in the database.
func (r *personRepository) Create(ctx context.Context, person *entity.Person) error {
	personModel := model.PersonFromEntity(person)
	result := dbFromContext(ctx, r.db).WithContext(ctx).Create(personModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a person by its ID.
func (r *personRepository) FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*entity.Person, error) {
	query := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id)
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	var personModel model.PersonModel
	result := query.First(&personModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return personModel.ToEntity(), nil
}

// FindByBook retrieves all persons of a book.
func (r *personRepository) FindByBook(ctx context.Context, bookID uuid.UUID, includeDeleted bool) ([]*entity.Person, error) {
	query := dbFromContext(ctx, r.db).WithContext(ctx).Where("book_id = ?", bookID)
	if !includeDeleted {
		query = query.Where("is_deleted = ?", false)
	}

	var personModels []model.PersonModel
	result := query.Order("created_at ASC").Find(&personModels)
	if result.Error != nil {
		return nil, result.Error
	}

	persons := make([]*entity.Person, len(personModels))
	for i := range personModels {
		persons[i] = personModels[i].ToEntity()
	}
	return persons, nil
}

// Update persists the state of an existing person.
func (r *personRepository) Update(ctx context.Context, person *entity.Person) error {
	personModel := model.PersonFromEntity(person)
	result := dbFromContext(ctx, r.db).WithContext(ctx).Save(personModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// HardDeleteByBook irreversibly removes all person rows of a book.
func (r *personRepository) HardDeleteByBook(ctx context.Context, bookID uuid.UUID) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("book_id = ?", bookID).
		Delete(&model.PersonModel{})
	return result.Error
}
