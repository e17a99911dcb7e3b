// Package verification orchestrates the form engine for callers: the
// storage pipeline (validate, map, populate, archive), the display pipeline
// (section outlines and previews), schema export and the watch loop.
package verification

import (
	"time"

	"github.com/google/uuid"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/domain/forms"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/ports"
)

// Service wires the engine with the report archive. The archive and unit of
// work may be nil for callers that only need the pure engine surfaces.
type Service struct {
	engine  *forms.Engine
	archive ports.ReportArchive
	uow     ports.UnitOfWork
	now     func() time.Time
	newID   func() string
}

// NewService builds the orchestration service over the engine and archive.
func NewService(engine *forms.Engine, archive ports.ReportArchive, uow ports.UnitOfWork) *Service {
	return &Service{
		engine:  engine,
		archive: archive,
		uow:     uow,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Engine exposes the underlying engine for read-only schema queries.
func (s *Service) Engine() *forms.Engine {
	return s.engine
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}
