package repository

import (
	"context"

	"doctorsportal/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultDoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DefaultDoctorRepository {
	return &DefaultDoctorRepository{db: db}
}

func (d *DefaultDoctorRepository) FindAll(ctx context.Context) ([]*entity.Doctor, error) {
	var rows []*doctorRow
	err := d.db.WithContext(ctx).Order("rowid").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	doctors := make([]*entity.Doctor, len(rows))
	for i, row := range rows {
		doctors[i] = &entity.Doctor{ID: row.ID, Email: row.Email, Profile: row.Profile}
	}
	return doctors, nil
}

// Insert returns entity.ErrDuplicateKey when a doctor with the same email
// exists.
func (d *DefaultDoctorRepository) Insert(ctx context.Context, doctor *entity.Doctor) (*entity.InsertResult, error) {
	row := &doctorRow{ID: newID(), Email: doctor.Email, Profile: doctor.Profile.Clone()}
	err := d.db.WithContext(ctx).Create(row).Error
	if err != nil {
		return nil, translate(err)
	}
	return &entity.InsertResult{Acknowledged: true, InsertedID: row.ID}, nil
}

func (d *DefaultDoctorRepository) DeleteByEmail(ctx context.Context, email string) (*entity.DeleteResult, error) {
	res := d.db.WithContext(ctx).Where("email = ?", email).Delete(&doctorRow{})
	if res.Error != nil {
		return nil, res.Error
	}
	return &entity.DeleteResult{Acknowledged: true, DeletedCount: res.RowsAffected}, nil
}
