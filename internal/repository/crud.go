package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jobscout-app/jobscout-api/internal/apperr"
	"github.com/jobscout-app/jobscout-api/internal/models"
)

// ErrNotFound is returned by the Get/Update/Delete operations when no row
// matches the id.
var ErrNotFound = errors.New("job not found")

func (r *JobRepository) ListPrivateJobs() ([]models.PrivateJob, error) {
	var jobs []models.PrivateJob
	if err := r.DB.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, apperr.New(apperr.KindPersistence, "listing private jobs", err)
	}
	return jobs, nil
}

func (r *JobRepository) GetPrivateJob(id uint) (*models.PrivateJob, error) {
	var job models.PrivateJob
	if err := r.DB.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.New(apperr.KindPersistence, "fetching private job", err)
	}
	return &job, nil
}

func (r *JobRepository) CreatePrivateJob(job *models.PrivateJob) error {
	if err := r.DB.Create(job).Error; err != nil {
		return apperr.New(apperr.KindPersistence, "creating private job", err)
	}
	return nil
}

func (r *JobRepository) UpdatePrivateJob(job *models.PrivateJob) error {
	if err := r.DB.Save(job).Error; err != nil {
		return apperr.New(apperr.KindPersistence, "updating private job", err)
	}
	return nil
}

func (r *JobRepository) DeletePrivateJob(id uint) error {
	res := r.DB.Delete(&models.PrivateJob{}, id)
	if res.Error != nil {
		return apperr.New(apperr.KindPersistence, "deleting private job", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *JobRepository) ListGovernmentJobs() ([]models.GovernmentJob, error) {
	var jobs []models.GovernmentJob
	if err := r.DB.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, apperr.New(apperr.KindPersistence, "listing government jobs", err)
	}
	return jobs, nil
}

func (r *JobRepository) GetGovernmentJob(id uint) (*models.GovernmentJob, error) {
	var job models.GovernmentJob
	if err := r.DB.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.New(apperr.KindPersistence, "fetching government job", err)
	}
	return &job, nil
}

func (r *JobRepository) CreateGovernmentJob(job *models.GovernmentJob) error {
	if err := r.DB.Create(job).Error; err != nil {
		return apperr.New(apperr.KindPersistence, "creating government job", err)
	}
	return nil
}

func (r *JobRepository) UpdateGovernmentJob(job *models.GovernmentJob) error {
	if err := r.DB.Save(job).Error; err != nil {
		return apperr.New(apperr.KindPersistence, "updating government job", err)
	}
	return nil
}

func (r *JobRepository) DeleteGovernmentJob(id uint) error {
	res := r.DB.Delete(&models.GovernmentJob{}, id)
	if res.Error != nil {
		return apperr.New(apperr.KindPersistence, "deleting government job", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
