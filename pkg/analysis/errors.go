package analysis

import "errors"

// Code identifies why an analysis request was rejected. Every code is
// terminal for the request; the caller decides whether the user may
// retry with a different photo.
type Code int

const (
	NoFaceDetected Code = iota
	MultipleFacesDetected
	ImageQualityUnusable
	InsufficientSkinSample
)

// String returns the snake_case identifier used in API error payloads.
func (c Code) String() string {
	switch c {
	case NoFaceDetected:
		return "no_face_detected"
	case MultipleFacesDetected:
		return "multiple_faces_detected"
	case ImageQualityUnusable:
		return "image_quality_unusable"
	case InsufficientSkinSample:
		return "insufficient_skin_sample"
	default:
		return "unknown"
	}
}

// Error is a structured analysis failure carrying a user-presentable
// reason alongside its code.
type Error struct {
	Code   Code
	Reason string
}

func (e *Error) Error() string { return e.Reason }

// AsError unwraps err into an analysis Error if it is one.
func AsError(err error) (*Error, bool) {
	var aerr *Error
	if errors.As(err, &aerr) {
		return aerr, true
	}
	return nil, false
}

func errNoFace() *Error {
	return &Error{
		Code:   NoFaceDetected,
		Reason: "No face detected. Please ensure your face is clearly visible and well-lit.",
	}
}

func errMultipleFaces() *Error {
	return &Error{
		Code:   MultipleFacesDetected,
		Reason: "Multiple faces detected. Please use a photo with only one person.",
	}
}

func errTooDark() *Error {
	return &Error{
		Code:   ImageQualityUnusable,
		Reason: "Photo is too dark. Please use better lighting.",
	}
}

func errTooBright() *Error {
	return &Error{
		Code:   ImageQualityUnusable,
		Reason: "Photo is too bright. Please avoid overexposure.",
	}
}

func errInsufficientSkin() *Error {
	return &Error{
		Code:   InsufficientSkinSample,
		Reason: "Could not extract skin tone. Please ensure face is clearly visible.",
	}
}
