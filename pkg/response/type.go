package response

// Resp is the envelope every endpoint answers with. Endpoint specific fields
// are added by embedding Resp in a larger struct, which keeps the body flat.
type Resp struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

const (
	MessageUnauthorized    = "unauthorized"
	MessageForbidden       = "forbidden"
	MessageTooManyRequests = "rate limit exceeded"
	MessageBodyTooLarge    = "request body too large"
)
