package adapt

import "fmt"

// Domain tags every structured error produced by the conversion
// engine.
const Domain = "docmap.adapt"

// ErrorKind classifies conversion failures.
type ErrorKind int

const (
	NoTargetType ErrorKind = iota
	InvalidDocument
	TransformFailed
	ConstructionFailed
)

func (k ErrorKind) String() string {
	s, ok := map[ErrorKind]string{
		NoTargetType:       "NoTargetType",
		InvalidDocument:    "InvalidDocument",
		TransformFailed:    "TransformFailed",
		ConstructionFailed: "ConstructionFailed",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// NoTargetTypeError reports that no concrete model type could be
// resolved for a document.
type NoTargetTypeError struct {
	Message string
}

func (e *NoTargetTypeError) Error() string {
	return fmt.Sprintf("no target type: %s", e.Message)
}

func (e *NoTargetTypeError) Kind() ErrorKind { return NoTargetType }

// InvalidDocumentError reports that the root or an intermediate node
// was not an Object where one was required.
type InvalidDocumentError struct {
	KeyPath string // key path being read or written, if any
	Message string
	Err     error
}

func (e *InvalidDocumentError) Error() string {
	if e.KeyPath != "" {
		return fmt.Sprintf("invalid document at %s: %s", e.KeyPath, e.Message)
	}
	return fmt.Sprintf("invalid document: %s", e.Message)
}

func (e *InvalidDocumentError) Unwrap() error { return e.Err }

func (e *InvalidDocumentError) Kind() ErrorKind { return InvalidDocument }

// TransformError reports a per-property transform that rejected its
// input, wrapping the transformer's own error.
type TransformError struct {
	Property string
	KeyPath  string
	Message  string
	Err      error
}

func (e *TransformError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("transform failed for property %q: %s", e.Property, msg)
}

func (e *TransformError) Unwrap() error { return e.Err }

func (e *TransformError) Kind() ErrorKind { return TransformFailed }

// ConstructionError reports a model constructor that rejected the
// assembled value mapping, wrapping its error.
type ConstructionError struct {
	Type    string
	Message string
	Err     error
}

func (e *ConstructionError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("construction of %s failed: %s", e.Type, msg)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

func (e *ConstructionError) Kind() ErrorKind { return ConstructionFailed }
