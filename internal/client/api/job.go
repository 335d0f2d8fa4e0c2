package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jobwire/jobwire/pkg/api"
)

// CreateJob posts a new job opening (recruiter only).
func (c *Client) CreateJob(ctx context.Context, token string, req api.CreateJobRequest) (*api.Job, error) {
	var job api.Job
	err := c.doRequest(ctx, http.MethodPost, "/api/job/create", token, req, &job)
	if err != nil {
		return nil, fmt.Errorf("job create failed: %w", err)
	}
	return &job, nil
}

// ListAllJobs fetches every open job.
func (c *Client) ListAllJobs(ctx context.Context, token string) ([]api.Job, error) {
	listCtx, cancel := c.listContext(ctx)
	defer cancel()

	var jobs []api.Job
	err := c.doRequest(listCtx, http.MethodGet, "/api/job/all", token, nil, &jobs)
	if err != nil {
		return nil, fmt.Errorf("job list request failed: %w", err)
	}
	return jobs, nil
}

// ListMyJobs fetches jobs posted by the authenticated recruiter.
func (c *Client) ListMyJobs(ctx context.Context, token string) ([]api.Job, error) {
	listCtx, cancel := c.listContext(ctx)
	defer cancel()

	var jobs []api.Job
	err := c.doRequest(listCtx, http.MethodGet, "/api/job/my-jobs", token, nil, &jobs)
	if err != nil {
		return nil, fmt.Errorf("my-jobs request failed: %w", err)
	}
	return jobs, nil
}

// Apply submits an application to the given job.
func (c *Client) Apply(ctx context.Context, token, jobID string, req api.ApplyRequest) error {
	path := "/api/job/" + url.PathEscape(jobID) + "/apply"
	if err := c.doRequest(ctx, http.MethodPost, path, token, req, nil); err != nil {
		return fmt.Errorf("job application failed: %w", err)
	}
	return nil
}

// ListMyApplications fetches the authenticated candidate's applications.
func (c *Client) ListMyApplications(ctx context.Context, token string) ([]api.JobApplication, error) {
	listCtx, cancel := c.listContext(ctx)
	defer cancel()

	var apps []api.JobApplication
	err := c.doRequest(listCtx, http.MethodGet, "/api/job/my-applications", token, nil, &apps)
	if err != nil {
		return nil, fmt.Errorf("my-applications request failed: %w", err)
	}
	return apps, nil
}

// ListReceivedApplications fetches applications to the recruiter's jobs.
func (c *Client) ListReceivedApplications(ctx context.Context, token string) ([]api.JobApplication, error) {
	listCtx, cancel := c.listContext(ctx)
	defer cancel()

	var apps []api.JobApplication
	err := c.doRequest(listCtx, http.MethodGet, "/api/job/received-applications", token, nil, &apps)
	if err != nil {
		return nil, fmt.Errorf("received-applications request failed: %w", err)
	}
	return apps, nil
}
