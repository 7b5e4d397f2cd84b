package sendfilter

import (
	"database/sql"
	"strings"

	"go.uber.org/zap"

	"github.com/ksny/sendigR/ct"
	"github.com/ksny/sendigR/send"
)

// TS parameter codes feeding the coarse observation sets.
const (
	tsParamRoute  = "ROUTE"
	tsParamDesign = "SDESIGN"
)

// Service runs attribute filters against one SEND study database.
type Service struct {
	store  *send.Store
	terms  *ct.Store
	logger *zap.SugaredLogger

	routeCodelist  string
	designCodelist string
}

// NewService creates a filter service over the given database. logger may
// be nil for silent operation. Codelist names default to the CDISC SEND
// codelists ROUTE and DESIGN; override with SetCodelists.
func NewService(db *sql.DB, logger *zap.SugaredLogger) *Service {
	return &Service{
		store:          send.NewStore(db, logger),
		terms:          ct.NewStore(db, logger),
		logger:         logger,
		routeCodelist:  "ROUTE",
		designCodelist: "DESIGN",
	}
}

// SetCodelists overrides the controlled-terminology codelist names used to
// validate resolved values.
func (s *Service) SetCodelists(route, design string) {
	if route != "" {
		s.routeCodelist = route
	}
	if design != "" {
		s.designCodelist = design
	}
}

// Store exposes the underlying SEND domain store, e.g. for building input
// lists from DM.
func (s *Service) Store() *send.Store {
	return s.store
}

// normalizeTargets trims the requested values and drops blanks. An empty
// result means no filtering.
func normalizeTargets(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
