// Package handler maps routes to store calls. Each handler is thin glue: the
// validation middleware has already bound the typed DTOs and the auth gate,
// where applied, has already attached the identity.
package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/skillwaves/skillwaves-server/internal/constant"
	"github.com/skillwaves/skillwaves-server/internal/middleware"
	"github.com/skillwaves/skillwaves-server/internal/model"
	"github.com/skillwaves/skillwaves-server/internal/model/request"
	"github.com/skillwaves/skillwaves-server/internal/model/response"
	"github.com/skillwaves/skillwaves-server/internal/store"
	"github.com/skillwaves/skillwaves-server/internal/validation"
	"github.com/skillwaves/skillwaves-server/pkg/cache"
	"github.com/skillwaves/skillwaves-server/util"
)

// JobHandler serves the jobs collection endpoints.
type JobHandler struct {
	jobs  store.JobStore
	cache cache.Cache // nil disables list caching
}

func NewJobHandler(jobs store.JobStore, listCache cache.Cache) *JobHandler {
	return &JobHandler{jobs: jobs, cache: listCache}
}

// GetJob godoc
//
//	@Summary		Get a single job by id
//	@Tags			Jobs
//	@Produce		json
//	@Param			id	path		string	true	"job id (hex)"
//	@Success		200	{object}	response.ResponseData{data=model.Job}
//	@Failure		401	{object}	response.ResponseData
//	@Router			/v1/job/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	params := validation.Params[request.IDParam](c)

	job, err := h.jobs.GetByID(c.Request.Context(), params.ID)
	if err != nil {
		upstreamFailure(c, err)
		return
	}

	// A missing job is a 200 with null data, matching the client contract.
	c.JSON(http.StatusOK, response.ResponseData{Ec: http.StatusOK, Data: job})
}

// ListJobs godoc
//
//	@Summary		List jobs, optionally filtered by category
//	@Tags			Jobs
//	@Produce		json
//	@Param			category	query		string	false	"category filter"
//	@Success		200	{object}	response.ResponseData{data=[]model.Job}
//	@Router			/v1/jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	query := validation.Query[request.ListJobsQuery](c)

	// Cache values are JSON bytes so the in-memory and Redis backends behave
	// identically.
	cacheKey := "jobs:category:" + query.Category
	if h.cache != nil {
		if cached, ok := h.cache.Get(cacheKey); ok {
			if raw, ok := cached.([]byte); ok {
				var jobs []model.Job
				if err := json.Unmarshal(raw, &jobs); err == nil {
					h.writeJobList(c, jobs)
					return
				}
			}
		}
	}

	jobs, err := h.jobs.List(c.Request.Context(), store.JobFilter{Category: query.Category})
	if err != nil {
		upstreamFailure(c, err)
		return
	}

	if h.cache != nil {
		if raw, err := json.Marshal(jobs); err == nil {
			h.cache.Set(cacheKey, raw)
		}
	}
	h.writeJobList(c, jobs)
}

// ListPostedJobs godoc
//
//	@Summary		List the requesting employer's own postings
//	@Tags			Jobs
//	@Produce		json
//	@Param			user-email	query		string	true	"must equal the token email"
//	@Success		200	{object}	response.ResponseData{data=[]model.Job}
//	@Failure		403	{object}	response.ResponseData
//	@Router			/v1/jobs/posted-jobs [get]
func (h *JobHandler) ListPostedJobs(c *gin.Context) {
	query := validation.Query[request.PostedJobsQuery](c)

	tokenEmail := middleware.TokenEmail(c)
	if tokenEmail != query.UserEmail {
		zap.L().Warn("Posted-jobs email mismatch",
			zap.String("tokenEmail", tokenEmail),
			zap.String("queryEmail", query.UserEmail))
		c.JSON(http.StatusForbidden, constant.FORBIDDEN)
		return
	}

	jobs, err := h.jobs.ListByEmployer(c.Request.Context(), query.UserEmail)
	if err != nil {
		upstreamFailure(c, err)
		return
	}
	h.writeJobList(c, jobs)
}

// CreateJob godoc
//
//	@Summary		Create a job posting
//	@Tags			Jobs
//	@Accept			json
//	@Produce		json
//	@Param			job	body		request.CreateJobRequest	true	"job fields"
//	@Success		200	{object}	response.ResponseData{data=response.InsertResult}
//	@Router			/v1/job/create-job [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	body := validation.Body[request.CreateJobRequest](c)

	result, err := h.jobs.Create(c.Request.Context(), model.Job{
		EmployerEmail: body.EmployerEmail,
		JobTitle:      body.JobTitle,
		JobDeadline:   body.JobDeadline,
		Category:      body.Category,
		MinPrice:      body.MinPrice,
		MaxPrice:      body.MaxPrice,
		Description:   body.Description,
	})
	if err != nil {
		upstreamFailure(c, err)
		return
	}

	h.invalidateListCache()
	c.JSON(http.StatusOK, response.ResponseData{Ec: http.StatusOK, Data: result})
}

// UpdateJob godoc
//
//	@Summary		Replace the whitelisted fields of a job
//	@Tags			Jobs
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string						true	"job id (hex)"
//	@Param			job	body		request.UpdateJobRequest	true	"job fields"
//	@Success		200	{object}	response.ResponseData{data=response.UpdateResult}
//	@Router			/v1/job/update-job/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	params := validation.Params[request.IDParam](c)
	body := validation.Body[request.UpdateJobRequest](c)

	result, err := h.jobs.Replace(c.Request.Context(), params.ID, model.Job{
		EmployerEmail: body.EmployerEmail,
		JobTitle:      body.JobTitle,
		JobDeadline:   body.JobDeadline,
		Category:      body.Category,
		MinPrice:      body.MinPrice,
		MaxPrice:      body.MaxPrice,
		Description:   body.Description,
	})
	if err != nil {
		upstreamFailure(c, err)
		return
	}

	h.invalidateListCache()
	c.JSON(http.StatusOK, response.ResponseData{Ec: http.StatusOK, Data: result})
}

// DeleteJob godoc
//
//	@Summary		Delete a job by id
//	@Tags			Jobs
//	@Produce		json
//	@Param			id	path		string	true	"job id (hex)"
//	@Success		200	{object}	response.ResponseData{data=response.DeleteResult}
//	@Router			/v1/job/delete-job/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	params := validation.Params[request.IDParam](c)

	result, err := h.jobs.Delete(c.Request.Context(), params.ID)
	if err != nil {
		upstreamFailure(c, err)
		return
	}

	h.invalidateListCache()
	c.JSON(http.StatusOK, response.ResponseData{Ec: http.StatusOK, Data: result})
}

func (h *JobHandler) writeJobList(c *gin.Context, jobs []model.Job) {
	c.Header("ETag", fmt.Sprintf("%q", util.GenerateETag(jobs)))
	total := len(jobs)
	c.JSON(http.StatusOK, response.ResponseData{Ec: http.StatusOK, Total: &total, Data: jobs})
}

func (h *JobHandler) invalidateListCache() {
	if h.cache != nil {
		h.cache.Clear()
	}
}
