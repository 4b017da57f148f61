package models

// AuthResponse is returned by register and login. The same token is also
// duplicated in the Authorization response header.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// PresignedUpload is the result of the photo-presign endpoint: the object key
// under which the photo will live, a short-lived PUT URL the client uploads
// the bytes to, and a GET URL it stores on the record afterwards.
type PresignedUpload struct {
	Key    string `json:"key"`
	PutURL string `json:"put_url"`
	GetURL string `json:"get_url"`
}

// PresignedDownload re-resolves an object key into a fresh short-lived GET
// URL after the one issued at upload time expires.
type PresignedDownload struct {
	Key    string `json:"key"`
	GetURL string `json:"get_url"`
}

// APIError is the JSON error body every handler writes on failure.
type APIError struct {
	Error string `json:"error"`
}
