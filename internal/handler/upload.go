package handler

import "strings"

// Storage class tiers and their size thresholds in bytes. Boundary values
// map to the higher tier (exactly 1_000_000 → STANDARD_IA, exactly
// 50_000_000 → GLACIER).
const (
	StorageStandard   = "STANDARD"
	StorageStandardIA = "STANDARD_IA"
	StorageGlacier    = "GLACIER"

	standardIAThreshold = 1_000_000
	glacierThreshold    = 50_000_000
)

// UploadData is the normalized output of a FILE_UPLOAD event.
type UploadData struct {
	FileName     string `json:"file_name"`
	SizeBytes    int64  `json:"size_bytes"`
	Bucket       string `json:"bucket"`
	Uploader     string `json:"uploader"`
	StorageClass string `json:"storage_class"`
}

// handleFileUpload validates and normalizes a FILE_UPLOAD event.
func handleFileUpload(rec map[string]interface{}) Envelope {
	var errs []string

	fileName, fileNameOK := stringValue(rec["file_name"])
	sizeBytes, sizeOK := intValue(rec["size_bytes"])
	bucket, bucketOK := stringValue(rec["bucket"])
	uploader, uploaderOK := stringValue(rec["uploader"])

	if !fileNameOK {
		errs = append(errs, "file_name must be a string")
	}
	if !sizeOK {
		errs = append(errs, "size_bytes must be an integer")
	}
	if sizeOK && sizeBytes < 0 {
		errs = append(errs, "size_bytes must be >= 0")
	}
	if !bucketOK {
		errs = append(errs, "bucket must be a string")
	}
	if !uploaderOK {
		errs = append(errs, "uploader must be a string")
	}

	if uploaderOK && !isEmail(uploader) {
		errs = append(errs, "Invalid uploader email")
	}

	if len(errs) > 0 {
		return reject(errs...)
	}

	return ok("Upload processed", UploadData{
		FileName:     strings.TrimSpace(fileName),
		SizeBytes:    sizeBytes,
		Bucket:       strings.ToLower(bucket),
		Uploader:     strings.ToLower(uploader),
		StorageClass: storageClass(sizeBytes),
	})
}

// storageClass assigns the storage tier for an upload of the given size.
func storageClass(sizeBytes int64) string {
	switch {
	case sizeBytes < standardIAThreshold:
		return StorageStandard
	case sizeBytes < glacierThreshold:
		return StorageStandardIA
	default:
		return StorageGlacier
	}
}
