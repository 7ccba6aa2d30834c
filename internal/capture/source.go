package capture

// FrameSource supplies encoded camera frames to the polling driver
// without exposing GoCV types.
type FrameSource interface {
	// Ready reports whether a frame can currently be read.
	Ready() bool
	// NextJPEG reads one frame and returns it JPEG-encoded.
	NextJPEG() ([]byte, error)
}

// cameraSource adapts a Camera into a FrameSource.
type cameraSource struct {
	camera  Camera
	quality int
}

// NewFrameSource wraps camera as a FrameSource encoding frames at the
// given JPEG quality.
func NewFrameSource(camera Camera, quality int) FrameSource {
	return &cameraSource{camera: camera, quality: quality}
}

// Ready reports whether the camera is open.
func (s *cameraSource) Ready() bool {
	return s.camera.IsOpen()
}

// NextJPEG reads one frame and encodes it.
func (s *cameraSource) NextJPEG() ([]byte, error) {
	frame, err := s.camera.ReadFrame()
	if err != nil {
		return nil, err
	}
	defer frame.Close()

	return EncodeJPEG(frame, s.quality)
}
