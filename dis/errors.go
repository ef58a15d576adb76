package dis

import "fmt"

// InsufficientBytesError means the buffer ran out before a required field,
// or before the header's declared pdu_length.
type InsufficientBytesError struct {
	Needed    int
	Available int
}

func (e *InsufficientBytesError) Error() string {
	return fmt.Sprintf("dis: insufficient bytes: needed %d, available %d", e.Needed, e.Available)
}

// UnsupportedProtocolVersionError means the header's protocol_version byte
// was neither 6 nor 7.
type UnsupportedProtocolVersionError struct {
	Raw uint8
}

func (e *UnsupportedProtocolVersionError) Error() string {
	return fmt.Sprintf("dis: unsupported protocol version: %d", e.Raw)
}

// InconsistentLengthError means a serializer invariant was violated, or a
// decoder was asked to read past the header's declared pdu_length.
type InconsistentLengthError struct {
	Declared int
	Actual   int
}

func (e *InconsistentLengthError) Error() string {
	return fmt.Sprintf("dis: inconsistent length: declared %d, actual %d", e.Declared, e.Actual)
}

// UnsupportedPduTypeError means the dispatcher has no body codec registered
// for a pdu_type. DecodeOptions.RejectUnknownPduType controls whether this is
// returned at all, or downgraded to an Other body.
type UnsupportedPduTypeError struct {
	Raw uint8
}

func (e *UnsupportedPduTypeError) Error() string {
	return fmt.Sprintf("dis: unsupported pdu type: %d", e.Raw)
}

// InvalidEnumerationError is reserved for the small set of enumerations
// whose specification mandates rejection rather than Unknown(raw) widening.
// No enumeration in this catalog currently uses it, since every enum here
// resolves to Unknown(raw) preservation; it stays in the closed error set
// for forward compatibility with a future strict enum.
type InvalidEnumerationError struct {
	Field string
	Raw   uint32
}

func (e *InvalidEnumerationError) Error() string {
	return fmt.Sprintf("dis: invalid enumeration for %s: %d", e.Field, e.Raw)
}

// MissingFieldError is returned only by builder Build() methods.
type MissingFieldError struct {
	Name string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("dis: missing required field: %s", e.Name)
}

// MalformedError reports a structural violation: a declared protocol_family
// that does not agree with the pdu_type on the wire, or an entity marking too
// long to encode. On decode it is only raised when DecodeOptions.Strict is set.
type MalformedError struct {
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("dis: malformed: %s", e.Reason)
}
