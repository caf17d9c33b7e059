package api

import "fmt"

// NetworkError wraps a transport-level failure (DNS, refused connection,
// timeout). The remote never produced a response.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError is a non-2xx response from the backend. Message carries the
// backend's error envelope message when it could be decoded, Body the raw
// response otherwise.
type HTTPError struct {
	Status  int
	Message string
	Body    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Body)
}
