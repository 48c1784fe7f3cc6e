package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jobscout-app/jobscout-api/internal/dtos"
	"github.com/jobscout-app/jobscout-api/internal/models"
	"github.com/jobscout-app/jobscout-api/internal/repository"
)

// JobHandler exposes plain CRUD over the persisted job rows. These endpoints
// never touch the AI pipeline.
type JobHandler struct {
	Jobs *repository.JobRepository
	Log  zerolog.Logger
}

func NewJobHandler(jobs *repository.JobRepository, log zerolog.Logger) *JobHandler {
	return &JobHandler{Jobs: jobs, Log: log}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid job id"})
		return 0, false
	}
	return uint(id), true
}

func optionalDate(v string) *time.Time {
	if v == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil
	}
	return &t
}

func (h *JobHandler) crudError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "job not found"})
		return
	}
	respondError(c, h.Log, err)
}

func (h *JobHandler) ListPrivateJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListPrivateJobs()
	if err != nil {
		h.crudError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "jobs": jobs})
}

func (h *JobHandler) GetPrivateJob(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	job, err := h.Jobs.GetPrivateJob(id)
	if err != nil {
		h.crudError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "job": job})
}

func (h *JobHandler) CreatePrivateJob(c *gin.Context) {
	var req dtos.PrivateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid JSON body", "details": err.Error()})
		return
	}
	job := &models.PrivateJob{
		UserID:      userIDFrom(c),
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		Email:       req.Email,
		Location:    req.Location,
		Description: req.Description,
		URL:         req.URL,
		Comment:     req.Comment,
	}
	if err := h.Jobs.CreatePrivateJob(job); err != nil {
		h.crudError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "job": job})
}

func (h *JobHandler) UpdatePrivateJob(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dtos.PrivateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid JSON body", "details": err.Error()})
		return
	}
	job, err := h.Jobs.GetPrivateJob(id)
	if err != nil {
		h.crudError(c, err)
		return
	}
	job.CompanyName = req.CompanyName
	job.JobTitle = req.JobTitle
	job.Email = req.Email
	job.Location = req.Location
	job.Description = req.Description
	job.URL = req.URL
	job.Comment = req.Comment
	if err := h.Jobs.UpdatePrivateJob(job); err != nil {
		h.crudError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "job": job})
}

func (h *JobHandler) DeletePrivateJob(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Jobs.DeletePrivateJob(id); err != nil {
		h.crudError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *JobHandler) ListGovernmentJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListGovernmentJobs()
	if err != nil {
		h.crudError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "jobs": jobs})
}

func (h *JobHandler) GetGovernmentJob(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	job, err := h.Jobs.GetGovernmentJob(id)
	if err != nil {
		h.crudError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "job": job})
}

func (h *JobHandler) CreateGovernmentJob(c *gin.Context) {
	var req dtos.GovernmentJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid JSON body", "details": err.Error()})
		return
	}
	job := &models.GovernmentJob{
		UserID:       userIDFrom(c),
		Organization: req.Organization,
		JobTitle:     req.JobTitle,
		JobTitleEn:   req.JobTitleEn,
		Description:  req.Description,
		ApplyStart:   optionalDate(req.ApplyStart),
		ApplyEnd:     optionalDate(req.ApplyEnd),
		URL:          req.URL,
		FileLink:     req.FileLink,
		Comment:      req.Comment,
	}
	if err := h.Jobs.CreateGovernmentJob(job); err != nil {
		h.crudError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "job": job})
}

func (h *JobHandler) UpdateGovernmentJob(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dtos.GovernmentJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid JSON body", "details": err.Error()})
		return
	}
	job, err := h.Jobs.GetGovernmentJob(id)
	if err != nil {
		h.crudError(c, err)
		return
	}
	job.Organization = req.Organization
	job.JobTitle = req.JobTitle
	job.JobTitleEn = req.JobTitleEn
	job.Description = req.Description
	job.ApplyStart = optionalDate(req.ApplyStart)
	job.ApplyEnd = optionalDate(req.ApplyEnd)
	job.URL = req.URL
	job.FileLink = req.FileLink
	job.Comment = req.Comment
	if err := h.Jobs.UpdateGovernmentJob(job); err != nil {
		h.crudError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "job": job})
}

func (h *JobHandler) DeleteGovernmentJob(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Jobs.DeleteGovernmentJob(id); err != nil {
		h.crudError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
