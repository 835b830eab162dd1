package servingimport

import (
	"context"
	"nutri-tracker-backend/entities"

	"gorm.io/gorm"
)

type (
	ImportJobRepository interface {
		CreateJob(ctx context.Context, job *entities.ServingImportJob) error
		GetJobByJobID(ctx context.Context, jobID string) (*entities.ServingImportJob, error)
	}

	importJobRepository struct {
		db *gorm.DB
	}
)

func NewImportJobRepository(db *gorm.DB) ImportJobRepository {
	return &importJobRepository{db: db}
}

func (r *importJobRepository) CreateJob(ctx context.Context, job *entities.ServingImportJob) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *importJobRepository) GetJobByJobID(ctx context.Context, jobID string) (*entities.ServingImportJob, error) {
	var job entities.ServingImportJob
	if err := r.db.WithContext(ctx).Where("job_id = ?", jobID).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}
