package model

// MasterDataKind names one of the fixed vocabularies offered on entry forms.
type MasterDataKind string

const (
	KindProducts           MasterDataKind = "products"
	KindClients            MasterDataKind = "clients"
	KindPackagings         MasterDataKind = "packagings"
	KindSuppliers          MasterDataKind = "suppliers"
	KindPurchaseCategories MasterDataKind = "purchase_categories"
	KindServiceTypes       MasterDataKind = "service_types"
)

// AllMasterDataKinds lists every vocabulary.
var AllMasterDataKinds = []MasterDataKind{
	KindProducts,
	KindClients,
	KindPackagings,
	KindSuppliers,
	KindPurchaseCategories,
	KindServiceTypes,
}

// ValidMasterDataKind reports whether code names a known vocabulary.
func ValidMasterDataKind(code string) bool {
	for _, k := range AllMasterDataKinds {
		if string(k) == code {
			return true
		}
	}
	return false
}

// MasterDataEntry is one value inside a vocabulary. Records keep plain string
// copies of these values; removing an entry never touches existing records.
type MasterDataEntry struct {
	ID    uint           `gorm:"primaryKey" json:"id"`
	Kind  MasterDataKind `gorm:"type:varchar(50);not null;uniqueIndex:idx_kind_value" json:"kind"`
	Value string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_kind_value" json:"value"`
}

// MasterData bundles the six vocabularies the way entry forms consume them.
type MasterData struct {
	Products           []string `json:"products"`
	Clients            []string `json:"clients"`
	Packagings         []string `json:"packagings"`
	Suppliers          []string `json:"suppliers"`
	PurchaseCategories []string `json:"purchase_categories"`
	ServiceTypes       []string `json:"service_types"`
}

// DefaultMasterData seeds a fresh installation with a workable vocabulary set.
var DefaultMasterData = MasterData{
	Products:           []string{"Tomate Roma", "Tomate Cerise", "Poivron", "Concombre"},
	Clients:            []string{"Local Market", "Export FR", "Export DE"},
	Packagings:         []string{"Caisse 10kg", "Caisse 5kg", "Plateau"},
	Suppliers:          []string{"AgriPlus", "Sidi Bel Abbes", "Local Farmer"},
	PurchaseCategories: []string{"Intrants", "Emballages", "Maintenance"},
	ServiceTypes:       []string{"Triage", "Calibrage", "Conditionnement"},
}

// ValuesFor returns the vocabulary matching kind.
func (m MasterData) ValuesFor(kind MasterDataKind) []string {
	switch kind {
	case KindProducts:
		return m.Products
	case KindClients:
		return m.Clients
	case KindPackagings:
		return m.Packagings
	case KindSuppliers:
		return m.Suppliers
	case KindPurchaseCategories:
		return m.PurchaseCategories
	case KindServiceTypes:
		return m.ServiceTypes
	}
	return nil
}
