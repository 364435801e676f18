package model

import "fmt"

// DocumentPath locates a portability request document in the backing store.
// The rendered shape artifacts/{appId}/users/{ownerKey}/portability_requests/{requestId}
// is contractual: existing security rules key on it, so it must be preserved
// bit-exact. The owner key is the request's full phone number including any
// leading symbol; a mismatch there resolves to nothing and surfaces as
// NotFound.
type DocumentPath struct {
	AppID     string
	OwnerKey  string
	RequestID string
}

// NewDocumentPath derives the document path for a request. The owner key is
// taken verbatim from the full number, leading '+' included.
func NewDocumentPath(appID, fullNumber, requestID string) DocumentPath {
	return DocumentPath{
		AppID:     appID,
		OwnerKey:  fullNumber,
		RequestID: requestID,
	}
}

// String renders the full store path.
func (p DocumentPath) String() string {
	return fmt.Sprintf("artifacts/%s/users/%s/portability_requests/%s", p.AppID, p.OwnerKey, p.RequestID)
}
