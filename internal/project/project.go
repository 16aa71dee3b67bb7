// Package project implements the project service: it coordinates domain
// validation with the set-backed store for batch adds, counting, listing and
// deletion of a project's domain set.
package project

import (
	"bountycatch/pkg/domain"
	"bountycatch/pkg/logger"
	"bountycatch/pkg/storage"
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Project binds a project name to the domain store. All operations are scoped
// by the project key; the project itself is created implicitly on the first
// successful add and destroyed by Delete.
type Project struct {
	name    string
	storage storage.DomainStorage
}

// New returns a Project handle for the given name backed by strg.
func New(name string, strg storage.DomainStorage) *Project {
	return &Project{
		name:    name,
		storage: strg,
	}
}

// Name returns the project key.
func (p *Project) Name() string {
	return p.name
}

// AddFromReader reads candidate domains from r (UTF-8 text, one per line,
// blank lines ignored), validates each line unless validation is bypassed, and
// adds the surviving batch to the project's set in a single store call.
//
// Invalid lines are logged at warn level with their line number, counted in
// the report and never abort the batch. With validate false, raw lower-cased
// input is stored as-is; that bypass is the caller's policy choice.
//
// Duplicates are derived from the store's per-item was-new signal, so the
// count stays exact even when other writers race the same project.
func (p *Project) AddFromReader(ctx context.Context, r io.Reader, validate bool) (domain.AddReport, error) {
	ctx = logger.WithFields(ctx,
		zap.String("project", p.name),
		zap.String("batch", uuid.NewString()),
	)

	var report domain.AddReport
	var batch []domain.Domain

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}

		if !validate {
			batch = append(batch, domain.Normalize(raw))

			continue
		}

		d, err := domain.Parse(raw)
		if err != nil {
			logger.Warn(ctx, "skipping invalid domain",
				zap.Int("line", line),
				zap.String("input", raw),
				zap.Error(err),
			)
			report.Invalid++

			continue
		}
		batch = append(batch, d)
	}
	if err := sc.Err(); err != nil {
		return report, fmt.Errorf("could not read domains: %w", err)
	}

	added, err := p.storage.AddDomains(ctx, p.name, batch...)
	if err != nil {
		return report, err
	}
	report.Added = uint(added)
	report.Duplicates = uint(len(batch)) - report.Added

	logger.Info(ctx, "processed domain batch",
		zap.Uint("added", report.Added),
		zap.Uint("duplicates", report.Duplicates),
		zap.Uint("invalid", report.Invalid),
		zap.Float64("duplicatePercentage", report.DuplicatePercentage()),
	)

	return report, nil
}

// Count returns the cardinality of the project's domain set; 0 when the
// project does not exist.
func (p *Project) Count(ctx context.Context) (int64, error) {
	return p.storage.CountDomains(ctx, p.name)
}

// List returns the project's domains in lexicographic order; empty when the
// project does not exist.
func (p *Project) List(ctx context.Context) ([]domain.Domain, error) {
	return p.storage.Domains(ctx, p.name)
}

// Delete removes the project's entire domain set and reports whether it
// existed. Destructive and irreversible; confirmation prompts are the
// caller's responsibility.
func (p *Project) Delete(ctx context.Context) (bool, error) {
	return p.storage.DeleteProject(ctx, p.name)
}

// Exists reports whether the project has a domain set in the store.
func (p *Project) Exists(ctx context.Context) (bool, error) {
	return p.storage.ProjectExists(ctx, p.name)
}
