package types

import "encoding/json"

// Response is the JSON document returned by the registry on success. It is
// passed through without imposing a schema.
type Response = json.RawMessage
