// Package gitsource fetches repository working trees for indexing. It
// shells out to the git CLI: shallow single-branch clones for full passes,
// deeper history plus a detached checkout when a specific commit is
// requested.
package gitsource

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/fincomply/vigil/pkg/config"
)

// FetchSpec names what to fetch.
type FetchSpec struct {
	// FullName is the owner/name pair on the hosting service.
	FullName string

	// Branch to clone; empty means the remote default.
	Branch string

	// CommitSHA pins the checkout to one commit. Empty fetches the branch
	// tip.
	CommitSHA string
}

// Checkout is a fetched working tree. Callers must invoke Cleanup when
// done; it is safe to call more than once.
type Checkout struct {
	// Dir is the working tree root.
	Dir string

	// CommitSHA is the commit actually checked out.
	CommitSHA string

	// Cleanup removes the working tree.
	Cleanup func()
}

// RepoSource fetches working trees.
type RepoSource interface {
	Fetch(ctx context.Context, spec FetchSpec) (*Checkout, error)
}

// GitCLI is the production RepoSource backed by the git binary.
type GitCLI struct {
	cfg    *config.GitConfig
	tokens TokenSource
	host   string
	logger *slog.Logger
}

// NewGitCLI builds a source cloning from github.com with the configured
// credential.
func NewGitCLI(cfg *config.GitConfig, tokens TokenSource) *GitCLI {
	return &GitCLI{
		cfg:    cfg,
		tokens: tokens,
		host:   "github.com",
		logger: slog.With("component", "gitsource"),
	}
}

// Fetch clones the repository into a temp directory. Full fetches use a
// depth-1 single-branch clone; pinned fetches clone deeper history and
// detach onto the requested commit. The temp directory is removed on every
// failure path.
func (g *GitCLI) Fetch(ctx context.Context, spec FetchSpec) (*Checkout, error) {
	if spec.FullName == "" {
		return nil, fmt.Errorf("fetch spec has no repository name")
	}

	token, err := g.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "vigil-clone-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create clone directory: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(dir) }

	if g.cfg.CloneTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.CloneTimeout)
		defer cancel()
	}

	depth := g.cfg.CloneDepth
	if spec.CommitSHA != "" {
		depth = g.cfg.DeltaCloneDepth
	}

	args := []string{"clone", "--depth", fmt.Sprint(depth), "--single-branch"}
	if spec.Branch != "" {
		args = append(args, "--branch", spec.Branch)
	}
	args = append(args, g.cloneURL(spec.FullName, token), dir)

	if err := g.run(ctx, "", args...); err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to clone %s: %w", spec.FullName, err)
	}

	if spec.CommitSHA != "" {
		if err := g.run(ctx, dir, "checkout", "--detach", spec.CommitSHA); err != nil {
			cleanup()
			return nil, fmt.Errorf("failed to check out %s at %s: %w", spec.FullName, spec.CommitSHA, err)
		}
	}

	sha, err := g.headSHA(ctx, dir)
	if err != nil {
		cleanup()
		return nil, err
	}

	g.logger.Info("Fetched repository", "repo", spec.FullName, "commit", sha, "dir", dir)
	return &Checkout{Dir: dir, CommitSHA: sha, Cleanup: cleanup}, nil
}

func (g *GitCLI) cloneURL(fullName, token string) string {
	if token == "" {
		return fmt.Sprintf("https://%s/%s.git", g.host, fullName)
	}
	return fmt.Sprintf("https://x-access-token:%s@%s/%s.git", token, g.host, fullName)
}

func (g *GitCLI) headSHA(ctx context.Context, dir string) (string, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "HEAD")
	cmd.Dir = dir
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return strings.TrimSpace(out.String()), nil
}

// run executes a git command, capturing stderr with the credential
// scrubbed so tokens never reach logs or error chains.
func (g *GitCLI) run(ctx context.Context, dir string, args ...string) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	cmd.Stderr = &stderr
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %s: %w: %s", args[0], err, scrubTokens(stderr.String()))
	}
	return nil
}

// scrubTokens masks userinfo in any https URL embedded in git output.
func scrubTokens(s string) string {
	const prefix = "https://"
	var b strings.Builder
	for {
		i := strings.Index(s, prefix)
		if i < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:i+len(prefix)])
		rest := s[i+len(prefix):]

		end := strings.IndexAny(rest, " \n\t'\"")
		if end < 0 {
			end = len(rest)
		}
		url := rest[:end]
		if at := strings.LastIndex(url, "@"); at >= 0 {
			b.WriteString("***@")
			b.WriteString(url[at+1:])
		} else {
			b.WriteString(url)
		}
		s = rest[end:]
	}
	return strings.TrimSpace(b.String())
}
