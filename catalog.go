// Package catalog is an attribute/schema engine: administrators define
// ordered, typed custom fields grouped into modules, entity instances carry
// values of those fields, and stored responses render as ordered sections.
//
// Company and survey schemas are independent scopes; Engine.Scope returns
// the services of one of them.
package catalog

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dangerclosesec/catalog/internal/audit"
	"github.com/dangerclosesec/catalog/internal/model"
	"github.com/dangerclosesec/catalog/internal/repository"
	"github.com/dangerclosesec/catalog/internal/service"
)

// Services groups the operations available on one schema scope.
type Services struct {
	Scope    model.Scope
	Schema   *service.SchemaService
	Ordering *service.OrderingService
	Values   *service.ValueService
}

// Engine hands out the services of each scope, sharing one store per scope.
type Engine struct {
	cfg    Config
	mu     sync.Mutex
	scopes map[model.Scope]*Services
}

func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = NewConfig(context.Background(), nil)
	}
	c := *cfg
	if c.ctx == nil {
		c.ctx = context.Background()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.auditor == nil {
		c.auditor = &audit.NoOpLogger{}
	}
	if c.TablePrefix == "" {
		c.TablePrefix = "catalog_"
	}
	return &Engine{cfg: c, scopes: map[model.Scope]*Services{}}, nil
}

// Scope returns the services of scope s.
func (e *Engine) Scope(s model.Scope) (*Services, error) {
	if _, err := model.ParseScope(string(s)); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if svc, ok := e.scopes[s]; ok {
		return svc, nil
	}

	var store repository.Store
	if e.cfg.db != nil {
		store = repository.NewGormStore(e.cfg.db, s.Tables(e.cfg.TablePrefix))
	} else {
		store = repository.NewMemoryStore()
	}

	logger := e.cfg.logger.With("scope", string(s))
	svc := &Services{
		Scope:    s,
		Schema:   service.NewSchemaService(s, store, e.cfg.auditor, logger),
		Ordering: service.NewOrderingService(s, store, e.cfg.auditor, logger),
		Values:   service.NewValueService(s, store, logger),
	}
	e.scopes[s] = svc
	return svc, nil
}
