package model

// Tab identifies a functional module of the application. Operator accounts
// only see the tabs listed in their AllowedTabs; admins see everything.
type Tab string

const (
	TabProduction        Tab = "production"
	TabPrestationProd    Tab = "prestation_prod"
	TabPrestationEtuvage Tab = "prestation_etuvage"
	TabStock             Tab = "stock"
	TabInsights          Tab = "insights"
	TabManagement        Tab = "management"
)

// AllTabs lists every tab in display order.
var AllTabs = []Tab{
	TabProduction,
	TabPrestationProd,
	TabPrestationEtuvage,
	TabStock,
	TabInsights,
	TabManagement,
}

// ValidTab reports whether code names a known tab.
func ValidTab(code string) bool {
	for _, t := range AllTabs {
		if string(t) == code {
			return true
		}
	}
	return false
}
