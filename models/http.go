package models

// OfferInput is the request body of offer create (POST) and update (PUT)
// calls. Dates arrive as RFC 3339 strings and are parsed at the transport
// boundary; all invariants are re-checked by [Offer.Validate] before any
// store write.
type OfferInput struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	OriginalPrice   float64 `json:"originalPrice"`
	DiscountedPrice float64 `json:"discountedPrice"`
	ValidFrom       string  `json:"validFrom"`
	ValidUntil      string  `json:"validUntil"`

	// ImageKey and ImageURL are produced by a prior upload-grant call and a
	// successful client-side transfer. Both or neither must be set.
	ImageKey string `json:"imageKey,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`

	// IsHidden is accepted in the body but ignored: new offers always start
	// visible and updates leave the flag untouched. Visibility is owned
	// exclusively by the toggle operation.
	IsHidden bool `json:"isHidden,omitempty"`
}

// LoginRequest is the request body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminInfo is the public projection of an administrator identity returned
// by login and /api/auth/me. It never carries credential material.
type AdminInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UploadGrantRequest is the request body of POST /api/admin/upload/signed-url.
// FileType is the declared MIME type; only image/* is accepted. File bytes
// are never inspected server-side — the upload itself happens directly
// between the client and the blob store.
type UploadGrantRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

// UploadGrant is the response of a successful upload-grant request: a
// time-boxed presigned PUT URL scoped to exactly ImageKey and the declared
// content type, plus the public URL the image will be served from once the
// client completes the transfer.
type UploadGrant struct {
	SignedURL string `json:"signedUrl"`
	ImageKey  string `json:"imageKey"`
	ImageURL  string `json:"imageUrl"`
}

// OfferResponse wraps a single offer in the envelope used by the original
// API surface.
type OfferResponse struct {
	Offer Offer `json:"offer"`
}

// OffersResponse wraps a list of offers.
type OffersResponse struct {
	Offers []Offer `json:"offers"`
}

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	Success bool      `json:"success"`
	Admin   AdminInfo `json:"admin"`
}
