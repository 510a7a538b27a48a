package handler_test

import (
	"reflect"
	"testing"

	"github.com/hussainAl3mri/lambda-event-validator/internal/handler"
)

func uploadEvent(fileName, sizeBytes, bucket, uploader interface{}) map[string]interface{} {
	return rec("type", "FILE_UPLOAD",
		"file_name", fileName, "size_bytes", sizeBytes, "bucket", bucket, "uploader", uploader)
}

func TestUpload_Valid(t *testing.T) {
	env := handler.Handle(uploadEvent(" a.txt ", float64(2000000), "B", "U@X.com"), nil)

	if env.Status != handler.StatusOK {
		t.Fatalf("status = %q, errors = %v", env.Status, env.Errors)
	}
	if env.Message != "Upload processed" {
		t.Errorf("message = %q, want %q", env.Message, "Upload processed")
	}

	data, ok := env.Data.(handler.UploadData)
	if !ok {
		t.Fatalf("data is %T, want UploadData", env.Data)
	}
	want := handler.UploadData{
		FileName:     "a.txt",
		SizeBytes:    2000000,
		Bucket:       "b",
		Uploader:     "u@x.com",
		StorageClass: handler.StorageStandardIA,
	}
	if data != want {
		t.Errorf("data = %+v, want %+v", data, want)
	}
}

func TestUpload_StorageClassBoundaries(t *testing.T) {
	cases := []struct {
		sizeBytes float64
		want      string
	}{
		{0, handler.StorageStandard},
		{512000, handler.StorageStandard},
		{999999, handler.StorageStandard},
		{1000000, handler.StorageStandardIA},
		{49999999, handler.StorageStandardIA},
		{50000000, handler.StorageGlacier},
		{5000000000, handler.StorageGlacier},
	}

	for _, c := range cases {
		env := handler.Handle(uploadEvent("f.bin", c.sizeBytes, "b", "u@x.com"), nil)
		if env.Status != handler.StatusOK {
			t.Fatalf("size %v rejected: %v", c.sizeBytes, env.Errors)
		}
		got := env.Data.(handler.UploadData).StorageClass
		if got != c.want {
			t.Errorf("size %v: storage class %q, want %q", c.sizeBytes, got, c.want)
		}
	}
}

func TestUpload_Errors(t *testing.T) {
	cases := []struct {
		name string
		evt  map[string]interface{}
		want []string
	}{
		{
			name: "all fields missing",
			evt:  rec("type", "FILE_UPLOAD"),
			want: []string{
				"file_name must be a string",
				"size_bytes must be an integer",
				"bucket must be a string",
				"uploader must be a string",
			},
		},
		{
			name: "negative size",
			evt:  uploadEvent("a.txt", float64(-1), "b", "u@x.com"),
			want: []string{"size_bytes must be >= 0"},
		},
		{
			name: "fractional size",
			evt:  uploadEvent("a.txt", 1.5, "b", "u@x.com"),
			want: []string{"size_bytes must be an integer"},
		},
		{
			name: "bad uploader email",
			evt:  uploadEvent("a.txt", float64(10), "b", "not an email"),
			want: []string{"Invalid uploader email"},
		},
		{
			name: "size and uploader errors accumulate in order",
			evt:  uploadEvent("a.txt", float64(-1), "b", "nope"),
			want: []string{"size_bytes must be >= 0", "Invalid uploader email"},
		},
		{
			name: "type errors come in declaration order",
			evt:  uploadEvent(float64(1), "big", float64(2), float64(3)),
			want: []string{
				"file_name must be a string",
				"size_bytes must be an integer",
				"bucket must be a string",
				"uploader must be a string",
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			env := handler.Handle(c.evt, nil)
			if env.Status != handler.StatusError {
				t.Fatalf("status = %q, want error", env.Status)
			}
			if !reflect.DeepEqual(env.Errors, c.want) {
				t.Errorf("errors = %v, want %v", env.Errors, c.want)
			}
		})
	}
}
