package levels

import "embed"

// FS holds the bundled catalog and maps.
//
//go:embed catalog.yaml maps/*.tmx
var FS embed.FS

// CatalogFile is the catalog's path inside FS.
const CatalogFile = "catalog.yaml"
