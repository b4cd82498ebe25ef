package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/pr-warden/internal/config"
	"github.com/sevigo/pr-warden/internal/core"
	"github.com/sevigo/pr-warden/internal/ledger"
	"github.com/sevigo/pr-warden/internal/logger"
	"github.com/sevigo/pr-warden/internal/review"
	"github.com/sevigo/pr-warden/internal/standards"
	"github.com/sevigo/pr-warden/mocks"
)

type stubAnalyzer struct{}

func (stubAnalyzer) Analyze(context.Context, string, string, standards.Document) (*core.AnalysisResult, error) {
	return &core.AnalysisResult{QualityScore: 8}, nil
}

func newTestApp(t *testing.T, mode string) (*App, *mocks.MockChangeRequestSource) {
	t.Helper()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockChangeRequestSource(ctrl)

	cfg := &config.Config{
		GitHub: config.GitHubConfig{Org: "acme"},
		Review: config.ReviewConfig{Mode: mode, RepoName: "api", PRNumber: 7},
	}
	l := ledger.New(nil, ledger.WithLogger(logger.Discard()))
	orch := review.New("acme", source, stubAnalyzer{}, l, review.WithLogger(logger.Discard()))
	a := NewApp(cfg, l, orch, nil, logger.Discard())
	a.Out = &bytes.Buffer{}
	return a, source
}

func TestRun_SingleMode(t *testing.T) {
	a, source := newTestApp(t, config.ModeSingle)

	source.EXPECT().GetPullRequest(gomock.Any(), "acme", "api", 7).
		Return(&core.PullRequest{Repo: "api", Number: 7, HeadSHA: "abc"}, nil)
	source.EXPECT().GetPullRequestFiles(gomock.Any(), "acme", "api", 7, "abc").
		Return([]core.FileChange{{Filename: "a.py", Changes: 2, Content: "x = 1"}}, nil)
	source.EXPECT().SubmitReview(gomock.Any(), "acme", "api", 7, gomock.Any()).
		Return(&core.SubmittedReview{ID: 10}, nil)

	require.NoError(t, a.Run(context.Background()))
	record, ok := a.Ledger.Get(core.PRKey{Repo: "api", Number: 7})
	require.True(t, ok)
	assert.InDelta(t, 8.0, record.AverageScore, 1e-9)
	assert.Equal(t, "Review completed: 10\n", a.Out.(*bytes.Buffer).String())
}

func TestRun_SingleModeFailure(t *testing.T) {
	a, source := newTestApp(t, config.ModeSingle)
	source.EXPECT().GetPullRequest(gomock.Any(), "acme", "api", 7).Return(nil, errors.New("404 Not Found"))

	err := a.Run(context.Background())
	var reviewErr *review.Error
	assert.ErrorAs(t, err, &reviewErr)
}

func TestRun_ScanModeDoesNotReview(t *testing.T) {
	a, source := newTestApp(t, config.ModeScan)

	source.EXPECT().ListOrgRepositories(gomock.Any(), "acme").Return([]core.Repository{{Name: "api"}}, nil)
	source.EXPECT().ListOpenPullRequests(gomock.Any(), "acme", "api").
		Return([]core.PullRequest{{Number: 1, Title: "one", Author: "ann"}, {Number: 2, Title: "two", Author: "bob"}}, nil)

	require.NoError(t, a.Run(context.Background()))
	assert.Empty(t, a.Ledger.Records())
	assert.Equal(t, "Found 2 open PRs:\n- api #1: one by ann\n- api #2: two by bob\n", a.Out.(*bytes.Buffer).String())
}

func TestRun_ContinuousModeStopsOnCancel(t *testing.T) {
	a, _ := newTestApp(t, config.ModeContinuous)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, a.Run(ctx))
}

func TestRun_InvalidMode(t *testing.T) {
	a, _ := newTestApp(t, "daemon")
	assert.ErrorIs(t, a.Run(context.Background()), config.ErrInvalidMode)
}

func TestLoadCustomStandards(t *testing.T) {
	newLedger := func() *ledger.Ledger {
		registry := standards.NewRegistry()
		registry.Update(standards.Defaults())
		return ledger.New(registry, ledger.WithLogger(logger.Discard()))
	}

	t.Run("merges file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "standards.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"Java": {"style_guide": "In-house"}, "Go": {"style_guide": "Effective Go"}}`), 0o600))

		l := newLedger()
		LoadCustomStandards(l, path, true, logger.Discard())

		assert.Equal(t, standards.Document{"style_guide": "In-house"}, l.Standards().Lookup("Java"))
		assert.Equal(t, "Effective Go", l.Standards().Lookup("Go")["style_guide"])
		assert.Equal(t, "PEP 8", l.Standards().Lookup("Python")["style_guide"])
	})

	t.Run("missing default file is silent", func(t *testing.T) {
		var buf bytes.Buffer
		l := newLedger()
		LoadCustomStandards(l, filepath.Join(t.TempDir(), config.DefaultStandardsPath), false, logger.NewLogger(logger.Config{Level: "debug"}, &buf))
		assert.Empty(t, buf.String())
		assert.Len(t, l.Standards().Languages(), 3)
	})

	t.Run("missing explicit file warns", func(t *testing.T) {
		var buf bytes.Buffer
		LoadCustomStandards(newLedger(), filepath.Join(t.TempDir(), "custom.json"), true, logger.NewLogger(logger.Config{Level: "debug"}, &buf))
		assert.Contains(t, buf.String(), "custom standards file not found")
	})

	t.Run("malformed file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "standards.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"Java": `), 0o600))

		var buf bytes.Buffer
		l := newLedger()
		LoadCustomStandards(l, path, true, logger.NewLogger(logger.Config{Level: "debug"}, &buf))
		assert.Contains(t, buf.String(), "error loading custom standards")
		assert.Equal(t, "Google Java Style Guide", l.Standards().Lookup("Java")["style_guide"])
	})
}
