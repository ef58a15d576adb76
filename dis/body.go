package dis

import "github.com/mellowdrifter/godis/enumerations"

// Body is implemented by every decoded PDU body. Together with Header it
// forms the Pdu sum type: callers type-switch on the concrete Body to reach
// PDU-specific fields, the same shape as the original's per-PDU model
// structs dispatched through a common Pdu enum.
type Body interface {
	PduType() enumerations.PduType
	encode(w *writer)
}

// Pdu is a fully decoded protocol data unit: header plus body.
type Pdu struct {
	Header Header
	Body   Body
}

// Other is the fallback body for any PduType this codec has no dedicated
// decoder for, or for PduTypeOther itself. It preserves the raw body bytes
// verbatim so a caller can still forward or log the PDU.
type Other struct {
	Type enumerations.PduType
	Raw  []byte
}

func (o Other) PduType() enumerations.PduType { return o.Type }

func (o Other) encode(w *writer) {
	w.bytes(o.Raw)
}

func decodeOtherBody(r *reader, h Header, bodyLen int) (Other, error) {
	raw, err := r.bytes(bodyLen)
	if err != nil {
		return Other{}, err
	}
	return Other{Type: h.PduType, Raw: append([]byte(nil), raw...)}, nil
}

// DecodeOptions controls leniency of ParsePdu/ParseStream.
type DecodeOptions struct {
	// Strict enables extra checks beyond what's needed to decode safely:
	// declared protocol_family must match FamilyOf(pdu_type)
	// (MalformedError), and the body decoder must consume every byte up to
	// pdu_length (InconsistentLengthError). Reserved and padding bits are
	// skipped unchecked in either mode. Off by default, matching the
	// original's permissive parser.
	Strict bool

	// RejectUnknownPduType turns an unrecognized pdu_type into
	// UnsupportedPduTypeError instead of the default Other fallback body.
	RejectUnknownPduType bool
}
