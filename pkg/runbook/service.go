// Package runbook fetches operational runbooks from a GitHub repository
// and exposes them to sub-agents as a tool, with a TTL cache in front.
package runbook

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/stanley-ops/stanley/pkg/llm"
	"github.com/stanley-ops/stanley/pkg/tools"
)

// Config holds runbook repository settings.
type Config struct {
	// RepoURL is a GitHub tree URL pointing at the runbook directory,
	// e.g. https://github.com/acme/runbooks/tree/main/docs
	RepoURL string
	// Token is a GitHub token; empty means unauthenticated access.
	Token string
	// CacheTTL bounds how long fetched content is reused.
	CacheTTL time.Duration
}

// Service fetches runbook markdown by name with caching.
type Service struct {
	github  *GitHubClient
	repoURL string

	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

type cacheEntry struct {
	content   string
	fetchedAt time.Time
}

// NewService creates a runbook service for the configured repository.
func NewService(cfg Config) *Service {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Service{
		github:  NewGitHubClient(cfg.Token),
		repoURL: cfg.RepoURL,
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

// Fetch returns the markdown content of the named runbook. name is either
// a file name relative to the repository path ("payment-api" fetches
// payment-api.md) or a full GitHub blob URL.
func (s *Service) Fetch(ctx context.Context, name string) (string, error) {
	rawURL, err := s.resolveURL(name)
	if err != nil {
		return "", err
	}

	if content, ok := s.cached(rawURL); ok {
		return content, nil
	}
	content, err := s.github.DownloadContent(ctx, rawURL)
	if err != nil {
		return "", err
	}
	s.store(rawURL, content)
	return content, nil
}

// List returns all runbook URLs available in the configured repository.
func (s *Service) List(ctx context.Context) ([]string, error) {
	if s.repoURL == "" {
		return []string{}, nil
	}
	files, err := s.github.ListMarkdownFiles(ctx, s.repoURL)
	if err != nil {
		return nil, fmt.Errorf("list runbooks from %s: %w", s.repoURL, err)
	}
	if files == nil {
		files = []string{}
	}
	return files, nil
}

func (s *Service) resolveURL(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("runbook name is required")
	}
	if strings.HasPrefix(name, "https://") || strings.HasPrefix(name, "http://") {
		return name, nil
	}
	if s.repoURL == "" {
		return "", fmt.Errorf("no runbook repository configured")
	}
	if !strings.HasSuffix(name, ".md") {
		name += ".md"
	}
	// Tree URL + file name yields a blob-style path that ConvertToRawURL
	// normalizes for download.
	return strings.TrimRight(s.repoURL, "/") + "/" + name, nil
}

func (s *Service) cached(key string) (string, bool) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if time.Since(entry.fetchedAt) > s.ttl {
		// Expired; clean up lazily. Re-check under the write lock since a
		// concurrent store may have refreshed the entry.
		s.mu.Lock()
		if current, ok := s.entries[key]; ok && time.Since(current.fetchedAt) > s.ttl {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return "", false
	}
	return entry.content, true
}

func (s *Service) store(key, content string) {
	s.mu.Lock()
	s.entries[key] = &cacheEntry{content: content, fetchedAt: time.Now()}
	s.mu.Unlock()
}

type getRunbookParams struct {
	Runbook string `json:"runbook" jsonschema:"description=Runbook name (e.g. payment-api) or full GitHub URL"`
}

// RegisterTool replaces the stub get_runbook tool with one backed by the
// configured repository.
func (s *Service) RegisterTool(registry *tools.Registry) {
	registry.Register(tools.Tool{
		Name:         "get_runbook",
		Description:  "Fetch the operational runbook for a service or alert from the runbook repository.",
		ParamsSchema: llm.MustDeriveSchema(&getRunbookParams{}),
		Handler: func(ctx context.Context, args json.RawMessage) (string, error) {
			var params getRunbookParams
			if err := json.Unmarshal(args, &params); err != nil {
				return "", fmt.Errorf("invalid arguments: %w", err)
			}
			return s.Fetch(ctx, params.Runbook)
		},
	})
}
