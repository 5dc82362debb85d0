// Package github publishes releases to GitHub or GitHub Enterprise once the
// release tag has been pushed.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/bradleyfalzon/ghinstallation/v2"
	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

// ErrNoAuth is returned when no token or app credentials are available.
var ErrNoAuth = errors.New("no GitHub authentication provided: set GITHUB_TOKEN, use --token, or set GH_APP_ID and GH_APP_PRIVATE_KEY")

// ClientConfig holds the configuration for creating a GitHub API client.
type ClientConfig struct {
	// Token is a GitHub personal access token or GITHUB_TOKEN.
	// Falls back to GITHUB_TOKEN env var if empty.
	Token string

	// AppID is the GitHub App ID. Falls back to GH_APP_ID.
	AppID int64

	// AppKeyPath is the path to a GitHub App private key PEM file.
	// Falls back to GH_APP_PRIVATE_KEY.
	AppKeyPath string

	// BaseURL is the API base URL for GitHub Enterprise.
	// Falls back to GITHUB_API_URL; empty means github.com.
	BaseURL string

	// Owner selects the app installation to authenticate as.
	Owner string
}

// NewClient creates an authenticated GitHub API client.
// Auth resolution order: Token → GITHUB_TOKEN → App credentials → ErrNoAuth.
func NewClient(ctx context.Context, cfg ClientConfig) (*gh.Client, error) {
	baseURL := resolveString(cfg.BaseURL, "GITHUB_API_URL")

	if token := resolveString(cfg.Token, "GITHUB_TOKEN"); token != "" {
		httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
		return withBaseURL(gh.NewClient(httpClient), baseURL)
	}

	appID := cfg.AppID
	if appID == 0 {
		if v, err := strconv.ParseInt(os.Getenv("GH_APP_ID"), 10, 64); err == nil {
			appID = v
		}
	}
	keyPath := resolveString(cfg.AppKeyPath, "GH_APP_PRIVATE_KEY")

	if appID == 0 || keyPath == "" {
		return nil, ErrNoAuth
	}
	return newAppClient(ctx, appID, keyPath, cfg.Owner, baseURL)
}

func newAppClient(ctx context.Context, appID int64, keyPath, owner, baseURL string) (*gh.Client, error) {
	// The app-level transport can only list installations.
	appTransport, err := ghinstallation.NewAppsTransportKeyFromFile(http.DefaultTransport, appID, keyPath)
	if err != nil {
		return nil, fmt.Errorf("creating GitHub App transport: %w", err)
	}
	if baseURL != "" {
		appTransport.BaseURL = baseURL
	}

	appClient, err := withBaseURL(gh.NewClient(&http.Client{Transport: appTransport}), baseURL)
	if err != nil {
		return nil, err
	}

	installationID, err := findInstallation(ctx, appClient, owner)
	if err != nil {
		return nil, err
	}

	installTransport, err := ghinstallation.NewKeyFromFile(http.DefaultTransport, appID, installationID, keyPath)
	if err != nil {
		return nil, fmt.Errorf("creating installation transport: %w", err)
	}
	if baseURL != "" {
		installTransport.BaseURL = baseURL
	}

	return withBaseURL(gh.NewClient(&http.Client{Transport: installTransport}), baseURL)
}

// findInstallation returns the ID of the app installation on owner's account.
func findInstallation(ctx context.Context, client *gh.Client, owner string) (int64, error) {
	opts := &gh.ListOptions{PerPage: 100}

	for {
		installations, resp, err := client.Apps.ListInstallations(ctx, opts)
		if err != nil {
			return 0, fmt.Errorf("listing GitHub App installations: %w", err)
		}

		for _, inst := range installations {
			if inst.GetAccount().GetLogin() == owner {
				return inst.GetID(), nil
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return 0, fmt.Errorf("no GitHub App installation found for owner %q", owner)
}

func withBaseURL(client *gh.Client, baseURL string) (*gh.Client, error) {
	if baseURL == "" {
		return client, nil
	}
	c, err := client.WithEnterpriseURLs(baseURL, baseURL)
	if err != nil {
		return nil, fmt.Errorf("setting enterprise URL: %w", err)
	}
	return c, nil
}

// resolveString returns the flag value if non-empty, otherwise the env var value.
func resolveString(flag, envKey string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv(envKey)
}
