package models

import "io"

// FileUpload is a file sent as part of a multipart request
type FileUpload struct {
	Name    string
	Content io.Reader
}
