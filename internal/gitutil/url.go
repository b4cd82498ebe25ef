// Package gitutil parses the ways a user can name a pull request on the command line.
package gitutil

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var prPathRegex = regexp.MustCompile(`^/?([^/]+)/([^/]+)/pull/(\d+)(?:/(?:files|commits|checks))?/?$`)

// PRTarget names a pull request. Owner is empty when the target was given as
// "<repo> <number>" and the configured organization applies.
type PRTarget struct {
	Owner  string
	Repo   string
	Number int
}

// ParsePullRequestURL extracts owner, repository and number from a GitHub pull
// request URL such as https://github.com/acme/api/pull/7. The scheme is
// optional; trailing /files, query strings and fragments are ignored.
func ParsePullRequestURL(raw string) (PRTarget, error) {
	s := strings.TrimSpace(raw)
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return PRTarget{}, fmt.Errorf("invalid pull request URL %q: %w", raw, err)
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	if host != "github.com" {
		return PRTarget{}, fmt.Errorf("invalid pull request URL %q: not a github.com URL", raw)
	}

	matches := prPathRegex.FindStringSubmatch(u.Path)
	if matches == nil {
		return PRTarget{}, fmt.Errorf("invalid pull request URL format: %s", raw)
	}
	number, err := strconv.Atoi(matches[3])
	if err != nil || number <= 0 {
		return PRTarget{}, fmt.Errorf("invalid PR number '%s'", matches[3])
	}
	return PRTarget{Owner: matches[1], Repo: matches[2], Number: number}, nil
}

// ParseTarget accepts either a single pull request URL or a repository name
// followed by a pull request number.
func ParseTarget(args []string) (PRTarget, error) {
	switch len(args) {
	case 1:
		return ParsePullRequestURL(args[0])
	case 2:
		number, err := strconv.Atoi(args[1])
		if err != nil || number <= 0 {
			return PRTarget{}, fmt.Errorf("invalid PR number '%s'", args[1])
		}
		if args[0] == "" || strings.Contains(args[0], "/") {
			return PRTarget{}, fmt.Errorf("invalid repository name '%s'", args[0])
		}
		return PRTarget{Repo: args[0], Number: number}, nil
	default:
		return PRTarget{}, fmt.Errorf("expected <pr-url> or <repo> <number>, got %d arguments", len(args))
	}
}
