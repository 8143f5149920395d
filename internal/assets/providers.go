package assets

import _ "embed"

// ProvidersData holds the raw JSON catalog of chat providers.
//
//go:embed providers.json
var ProvidersData []byte
