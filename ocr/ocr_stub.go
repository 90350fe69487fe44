//go:build !ocr

package ocr

// Client is a stub that returns ErrOCRNotEnabled for all operations.
type Client struct{}

// New returns ErrOCRNotEnabled. Rebuild with -tags ocr to enable OCR.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op. It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// RecognizeFile returns ErrOCRNotEnabled.
func (c *Client) RecognizeFile(path string) (string, error) {
	return "", ErrOCRNotEnabled
}
