package types

// Request is a single exchange with the registry. Path is relative to the
// configured base URL. An empty Authorization means the call is anonymous.
type Request struct {
	Method        string
	Path          string
	Authorization string
	Body          any
}

// Authenticated reports whether the request carries a credential.
func (r Request) Authenticated() bool { return r.Authorization != "" }

// BulkUpdateBody is the payload of POST bulk_update.
type BulkUpdateBody struct {
	Data []BatchRecord `json:"data"`
}

// BulkMintBody is the payload of POST bulk_mint.
type BulkMintBody struct {
	Data []BatchRecord `json:"data"`
	NAAN string        `json:"naan"`
}
