package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"

	"github.com/sevigo/pr-warden/internal/config"
)

// NewClient authenticates with the method selected in cfg.
func NewClient(ctx context.Context, cfg config.GitHubConfig, logger *slog.Logger) (*Client, error) {
	switch cfg.AuthMethod {
	case config.AuthApp:
		return NewInstallationClient(cfg.AppID, cfg.InstallationID, cfg.PrivateKeyPath, logger)
	case config.AuthToken, "":
		if cfg.Token == "" {
			return nil, fmt.Errorf("GitHub token is required for token auth")
		}
		return NewPATClient(ctx, cfg.Token, logger), nil
	default:
		return nil, fmt.Errorf("unsupported GitHub auth method: %s", cfg.AuthMethod)
	}
}

// NewPATClient creates a client authenticated with a Personal Access Token.
func NewPATClient(ctx context.Context, token string, logger *slog.Logger) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return NewGitHubClient(github.NewClient(oauth2.NewClient(ctx, ts)), logger)
}

// NewInstallationClient creates a client authenticated as a GitHub App
// installation. Installation tokens are refreshed by the transport.
func NewInstallationClient(appID, installationID int64, privateKeyPath string, logger *slog.Logger) (*Client, error) {
	logger.Info("creating GitHub installation client", "app_id", appID, "installation_id", installationID)

	tr, err := ghinstallation.NewKeyFromFile(http.DefaultTransport, appID, installationID, privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub App transport from %s: %w", privateKeyPath, err)
	}
	return NewGitHubClient(github.NewClient(&http.Client{Transport: tr}), logger), nil
}
