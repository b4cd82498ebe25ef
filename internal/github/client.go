// Package github implements the repository platform on top of the GitHub REST API.
package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v73/github"

	"github.com/sevigo/pr-warden/internal/core"
)

const perPage = 100

// Client is a core.ChangeRequestSource backed by go-github.
type Client struct {
	client *github.Client
	logger *slog.Logger
}

var _ core.ChangeRequestSource = (*Client)(nil)

// NewGitHubClient wraps an already authenticated go-github client.
func NewGitHubClient(client *github.Client, logger *slog.Logger) *Client {
	return &Client{client: client, logger: logger}
}

// ListOrgRepositories returns every repository of org.
func (g *Client) ListOrgRepositories(ctx context.Context, org string) ([]core.Repository, error) {
	var repos []core.Repository
	opts := &github.RepositoryListByOrgOptions{ListOptions: github.ListOptions{PerPage: perPage}}

	for {
		page, resp, err := g.client.Repositories.ListByOrg(ctx, org, opts)
		if err != nil {
			g.logger.Error("failed to list organization repositories", "org", org, "error", err)
			return nil, err
		}
		for _, r := range page {
			repos = append(repos, core.Repository{Name: r.GetName(), ID: r.GetID()})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return repos, nil
}

// ListOpenPullRequests returns the open pull requests of org/repo.
func (g *Client) ListOpenPullRequests(ctx context.Context, org, repo string) ([]core.PullRequest, error) {
	var prs []core.PullRequest
	opts := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	for {
		page, resp, err := g.client.PullRequests.List(ctx, org, repo, opts)
		if err != nil {
			g.logger.Error("failed to list pull requests", "org", org, "repo", repo, "error", err)
			return nil, err
		}
		for _, pr := range page {
			prs = append(prs, toPullRequest(repo, pr))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return prs, nil
}

// GetPullRequest retrieves a single pull request by its number.
func (g *Client) GetPullRequest(ctx context.Context, org, repo string, number int) (*core.PullRequest, error) {
	pr, _, err := g.client.PullRequests.Get(ctx, org, repo, number)
	if err != nil {
		g.logger.Error("failed to get pull request", "org", org, "repo", repo, "pr", number, "error", err)
		return nil, err
	}
	if pr.GetHead().GetSHA() == "" {
		return nil, fmt.Errorf("PR %d has no valid head SHA", number)
	}
	out := toPullRequest(repo, pr)
	return &out, nil
}

// GetPullRequestFiles lists the changed files of a pull request and fetches
// each file's content at ref. A file whose content cannot be fetched is
// returned with ContentError set instead of failing the whole listing.
func (g *Client) GetPullRequestFiles(ctx context.Context, org, repo string, number int, ref string) ([]core.FileChange, error) {
	var files []core.FileChange
	opts := &github.ListOptions{PerPage: perPage}

	for {
		page, resp, err := g.client.PullRequests.ListFiles(ctx, org, repo, number, opts)
		if err != nil {
			g.logger.Error("failed to list files for pull request", "org", org, "repo", repo, "pr", number, "error", err)
			return nil, err
		}
		for _, f := range page {
			files = append(files, core.FileChange{
				Filename:  f.GetFilename(),
				Status:    f.GetStatus(),
				Additions: f.GetAdditions(),
				Deletions: f.GetDeletions(),
				Changes:   f.GetChanges(),
				Patch:     f.GetPatch(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	for i := range files {
		content, err := g.fileContent(ctx, org, repo, files[i], ref)
		if err != nil {
			g.logger.Warn("file content unavailable", "repo", repo, "pr", number, "file", files[i].Filename, "error", err)
			files[i].ContentError = err.Error()
			continue
		}
		files[i].Content = content
	}
	return files, nil
}

func (g *Client) fileContent(ctx context.Context, org, repo string, file core.FileChange, ref string) (string, error) {
	if file.Status == "removed" {
		return "", errors.New("file was removed")
	}

	fc, _, _, err := g.client.Repositories.GetContents(ctx, org, repo, file.Filename, &github.RepositoryContentGetOptions{Ref: ref})
	if err != nil {
		return "", fmt.Errorf("fetching content: %w", err)
	}
	if fc == nil {
		return "", fmt.Errorf("%s is not a file", file.Filename)
	}
	return fc.GetContent()
}

// SubmitReview posts one review carrying the summary body and inline comments.
func (g *Client) SubmitReview(ctx context.Context, org, repo string, number int, submission core.ReviewSubmission) (*core.SubmittedReview, error) {
	comments := make([]*github.DraftReviewComment, 0, len(submission.Comments))
	for _, c := range submission.Comments {
		comments = append(comments, &github.DraftReviewComment{
			Path: github.Ptr(c.Path),
			Line: github.Ptr(c.Line),
			Side: github.Ptr("RIGHT"),
			Body: github.Ptr(c.Body),
		})
	}

	req := &github.PullRequestReviewRequest{
		Body:     github.Ptr(submission.Body),
		Event:    github.Ptr(string(submission.Event)),
		Comments: comments,
	}
	if submission.CommitID != "" {
		req.CommitID = github.Ptr(submission.CommitID)
	}

	review, _, err := g.client.PullRequests.CreateReview(ctx, org, repo, number, req)
	if err != nil {
		g.logger.Error("failed to create pull request review", "org", org, "repo", repo, "pr", number, "error", err)
		return nil, err
	}
	return &core.SubmittedReview{
		ID:    review.GetID(),
		Body:  review.GetBody(),
		State: review.GetState(),
	}, nil
}

func toPullRequest(repo string, pr *github.PullRequest) core.PullRequest {
	return core.PullRequest{
		ID:        pr.GetID(),
		Repo:      repo,
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		Author:    pr.GetUser().GetLogin(),
		CreatedAt: pr.GetCreatedAt().Time,
		UpdatedAt: pr.GetUpdatedAt().Time,
		HeadSHA:   pr.GetHead().GetSHA(),
		URL:       pr.GetHTMLURL(),
	}
}
