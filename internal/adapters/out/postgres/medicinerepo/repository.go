package medicinerepo

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/medicine"
	"pharmacy/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMedicineRepository implements MedicineRepository using GORM.
type GormMedicineRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMedicineRepository creates a new GORM medicine repository.
func NewGormMedicineRepository(db *gorm.DB, tracker aggregateTracker) *GormMedicineRepository {
	return &GormMedicineRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new medicine to the database.
func (r *GormMedicineRepository) Add(ctx context.Context, med *medicine.Medicine) error {
	if err := med.Validate(); err != nil {
		return err
	}

	dto := fromDomain(med)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(med.ID(), med)
	return nil
}

// Update saves an existing medicine to the database.
func (r *GormMedicineRepository) Update(ctx context.Context, med *medicine.Medicine) error {
	if err := med.Validate(); err != nil {
		return err
	}

	dto := fromDomain(med)
	result := r.db.WithContext(ctx).
		Model(&MedicineDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("medicine", med.ID().String())
	}

	r.tracker.TrackAggregate(med.ID(), med)
	return nil
}

// Get retrieves a medicine by ID.
func (r *GormMedicineRepository) Get(ctx context.Context, id kernel.UUID) (*medicine.Medicine, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MedicineDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("medicine", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a medicine and takes a row-level write lock on it
// for the duration of the current transaction.
func (r *GormMedicineRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*medicine.Medicine, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MedicineDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("medicine", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the medicines with the given identifiers. Missing
// identifiers are absent from the result.
func (r *GormMedicineRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*medicine.Medicine, error) {
	rawIDs := make([]any, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []MedicineDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", rawIDs).Error; err != nil {
		return nil, err
	}

	medicines := make(map[kernel.UUID]*medicine.Medicine, len(dtos))
	for _, dto := range dtos {
		med, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		medicines[med.ID()] = med
	}

	return medicines, nil
}
