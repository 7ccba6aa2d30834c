package capture

import (
	"fmt"

	"gocv.io/x/gocv"
)

// UploadJPEGQuality is the default encoding quality for classifier
// uploads. Low quality keeps the 20 Hz upload stream cheap; the
// detector works fine on heavily compressed frames.
const UploadJPEGQuality = 40

// EncodeJPEG encodes a frame as JPEG at the given quality (1-100).
// Out-of-range qualities fall back to UploadJPEGQuality.
func EncodeJPEG(frame *gocv.Mat, quality int) ([]byte, error) {
	if quality < 1 || quality > 100 {
		quality = UploadJPEGQuality
	}

	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, *frame, []int{gocv.IMWriteJpegQuality, quality})
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	defer buf.Close()

	// The NativeByteBuffer is freed on Close; copy out.
	data := make([]byte, buf.Len())
	copy(data, buf.GetBytes())

	return data, nil
}
