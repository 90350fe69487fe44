// Package ocr reads barcode captions back from rendered images.
//
// Verification is optional. The Tesseract backed [Client] is only compiled
// with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
//
// Without the tag, [New] returns [ErrOCRNotEnabled] and callers skip
// verification.
package ocr
