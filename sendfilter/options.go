package sendfilter

// RouteOptions parameterizes SubjRoute.
type RouteOptions struct {
	// TargetValues enables filtering when non-empty: only animals whose
	// resolved route is in the set are returned.
	TargetValues []string

	// InclUncertain additionally returns animals whose route resolution
	// is uncertain, with the reason in UNCERTAIN_MSG. Only meaningful
	// when filtering.
	InclUncertain bool

	// Exclusively drops every matched animal of a study that exhibits
	// any route outside TargetValues.
	Exclusively bool

	// MatchAll keeps a study's animals only when the study exhibits
	// every requested route.
	MatchAll bool

	// ReportUncertainIfNoFilter attaches NOT_VALID_MSG to unfiltered
	// results, reporting resolutions that are absent, ambiguous, invalid
	// or conflicting.
	ReportUncertainIfNoFilter bool
}

// DefaultRouteOptions returns the options SubjRoute is documented with:
// no filtering, validity report enabled.
func DefaultRouteOptions() RouteOptions {
	return RouteOptions{ReportUncertainIfNoFilter: true}
}

// DesignOptions parameterizes StudyDesign. There is no MatchAll: the
// operation produces one record per study, so a multi-value target can
// never be covered by a single study.
type DesignOptions struct {
	TargetValues              []string
	InclUncertain             bool
	Exclusively               bool
	ReportUncertainIfNoFilter bool
}

// DefaultDesignOptions returns the options StudyDesign is documented
// with: exclusive filtering, validity report enabled.
func DefaultDesignOptions() DesignOptions {
	return DesignOptions{Exclusively: true, ReportUncertainIfNoFilter: true}
}
