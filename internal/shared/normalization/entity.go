package normalization

import "strings"

// entityAliases maps the entity names seen in upstream change events to the canonical
// plural form used by the dashboard API paths.
var entityAliases = map[string]string{
	"":        "",
	"-":       "",
	"default": "",

	"branch":         "branches",
	"branches":       "branches",
	"company-branch": "branches",

	"vendor":   "vendors",
	"vendors":  "vendors",
	"supplier": "vendors",

	"product":  "products",
	"products": "products",

	"category":   "categories",
	"categories": "categories",

	"company":   "companies",
	"companies": "companies",

	"account":  "accounts",
	"accounts": "accounts",

	"voucher":  "vouchers",
	"vouchers": "vouchers",

	"purchase-order":  "purchase-orders",
	"purchase-orders": "purchase-orders",
	"purchaseorder":   "purchase-orders",
	"purchaseorders":  "purchase-orders",

	"requisition":        "requisitions",
	"requisitions":       "requisitions",
	"requisition-order":  "requisitions",
	"requisition-orders": "requisitions",

	"transfer":        "transfers",
	"transfers":       "transfers",
	"transfer-order":  "transfers",
	"transfer-orders": "transfers",

	"user":  "users",
	"users": "users",
}

var validEntities = []string{
	"branches",
	"vendors",
	"products",
	"categories",
	"companies",
	"accounts",
	"vouchers",
	"purchase-orders",
	"requisitions",
	"transfers",
	"users",
}

// NormalizeEntity converts an event entity name to its canonical form. Case, surrounding
// space and the separator (- or _) are ignored. Unknown names are returned normalized.
//
//	NormalizeEntity("Branch")          => "branches"
//	NormalizeEntity("TRANSFER_ORDER")  => "transfers"
func NormalizeEntity(raw string) string {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "_", "-")
	if canonical, found := entityAliases[normalized]; found {
		return canonical
	}
	return normalized
}

// IsValidEntity reports whether raw names a known dashboard entity.
func IsValidEntity(raw string) bool {
	normalized := NormalizeEntity(raw)
	for _, entity := range validEntities {
		if entity == normalized {
			return true
		}
	}
	return false
}

func GetAllValidEntities() []string {
	return append([]string(nil), validEntities...)
}
