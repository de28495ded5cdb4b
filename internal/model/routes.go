package model

// Route identifiers. Every panel the shell can show has exactly one.
const (
	RouteIntroduction  = "introduction"
	RouteObjectives    = "objectives"
	RoutePlatform      = "platform"
	RoutePayer         = "mear-payer"
	RouteMarket        = "mear-market"
	RouteCountryDetail = "country-detail"
	RouteMethodology   = "methodology"
)

// Routes lists every known route in display order.
func Routes() []string {
	return []string{
		RouteIntroduction,
		RouteObjectives,
		RoutePlatform,
		RoutePayer,
		RouteMarket,
		RouteCountryDetail,
		RouteMethodology,
	}
}

// IsRoute reports whether id names a known route.
func IsRoute(id string) bool {
	for _, r := range Routes() {
		if r == id {
			return true
		}
	}
	return false
}
