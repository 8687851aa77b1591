package repository

import (
	"context"

	"doctorsportal/cmd/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultTreatmentRepository struct {
	db *gorm.DB
}

func NewTreatmentRepository(db *gorm.DB) *DefaultTreatmentRepository {
	return &DefaultTreatmentRepository{db: db}
}

func (t *DefaultTreatmentRepository) FindAll(ctx context.Context) ([]*entity.Service, error) {
	var rows []*serviceRow
	err := t.db.WithContext(ctx).Order("rowid").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	services := make([]*entity.Service, len(rows))
	for i, row := range rows {
		services[i] = &entity.Service{ID: row.ID, Name: row.Name, Slots: nonNil(row.Slots)}
	}
	return services, nil
}

// FindNames returns PARTIAL services, having only `ID` and `Name`.
func (t *DefaultTreatmentRepository) FindNames(ctx context.Context) ([]*entity.ServiceName, error) {
	var rows []*serviceRow
	err := t.db.WithContext(ctx).
		Select("id, name").
		Order("rowid").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	names := make([]*entity.ServiceName, len(rows))
	for i, row := range rows {
		names[i] = &entity.ServiceName{ID: row.ID, Name: row.Name}
	}
	return names, nil
}

// Upsert inserts the service or, when one with the same name exists,
// replaces its slot list.
func (t *DefaultTreatmentRepository) Upsert(ctx context.Context, service *entity.Service) error {
	row := &serviceRow{ID: newID(), Name: service.Name, Slots: nonNil(service.Slots)}
	err := t.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"slots"}),
		}).
		Create(row).Error
	return translate(err)
}
