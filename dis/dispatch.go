package dis

import (
	"errors"

	"github.com/mellowdrifter/godis/enumerations"
)

// ParsePdu decodes exactly one PDU from the front of data. The header's
// declared pdu_length governs how many bytes the body decoder may consume;
// ParsePdu does not require data to contain only this one PDU — trailing
// bytes belonging to a subsequent PDU are ignored, which is what makes
// ParseStream possible.
func ParsePdu(data []byte, opts DecodeOptions) (Pdu, error) {
	pdu, _, err := parsePdu(data, opts)
	return pdu, err
}

// parsePdu decodes one PDU and also reports how many bytes it belongs to on
// the wire, even when decoding fails, so a caller walking a stream can skip
// past it. consumed is 0 when that count couldn't be determined at all (not
// enough bytes to read the declared pdu_length).
func parsePdu(data []byte, opts DecodeOptions) (pdu Pdu, consumed int, err error) {
	r := newReader(data)
	h, err := decodeHeader(r)
	if err != nil {
		return Pdu{}, peekPduLength(data), err
	}
	if int(h.Length) < headerLength {
		return Pdu{}, int(h.Length), &InconsistentLengthError{Declared: int(h.Length), Actual: headerLength}
	}
	if int(h.Length) > len(data) {
		return Pdu{}, int(h.Length), &InsufficientBytesError{Needed: int(h.Length), Available: len(data)}
	}

	bodySlice := data[headerLength:h.Length]
	br := newReader(bodySlice)
	if opts.Strict && h.Family != enumerations.FamilyOf(h.PduType) {
		return Pdu{}, int(h.Length), &MalformedError{Reason: "declared protocol_family does not match pdu_type"}
	}

	body, err := decodeBody(br, h, opts)
	if err != nil {
		var short *InsufficientBytesError
		if errors.As(err, &short) {
			// The body decoder needed bytes past the declared pdu_length.
			return Pdu{}, int(h.Length), &InconsistentLengthError{
				Declared: int(h.Length),
				Actual:   headerLength + br.pos + short.Needed,
			}
		}
		return Pdu{}, int(h.Length), err
	}
	if opts.Strict && br.remaining() != 0 {
		return Pdu{}, int(h.Length), &InconsistentLengthError{
			Declared: int(h.Length),
			Actual:   headerLength + (len(bodySlice) - br.remaining()),
		}
	}

	return Pdu{Header: h, Body: body}, int(h.Length), nil
}

// peekPduLength reads the pdu_length field directly out of data's fixed
// offset (bytes 8-9 of the header), independent of whether the header as a
// whole decodes successfully. A corrupt protocol_version byte, for example,
// still leaves a trustworthy declared length right after it, which is what
// ParseStream needs to resynchronize past the PDU. Returns 0 when data isn't
// even long enough to contain the length field.
func peekPduLength(data []byte) int {
	if len(data) < 10 {
		return 0
	}
	return int(data[8])<<8 | int(data[9])
}

func decodeBody(r *reader, h Header, opts DecodeOptions) (Body, error) {
	bodyLen := r.remaining()
	switch h.PduType {
	case enumerations.PduTypeEntityState:
		return decodeEntityStateBody(r)
	case enumerations.PduTypeFire:
		return decodeFireBody(r, h)
	case enumerations.PduTypeDetonation:
		return decodeDetonationBody(r, h)
	case enumerations.PduTypeCollision:
		return decodeCollisionBody(r)
	case enumerations.PduTypeCreateEntity:
		return decodeCreateEntityBody(r)
	case enumerations.PduTypeRemoveEntity:
		return decodeRemoveEntityBody(r)
	case enumerations.PduTypeStartResume:
		return decodeStartResumeBody(r)
	case enumerations.PduTypeStopFreeze:
		return decodeStopFreezeBody(r)
	case enumerations.PduTypeAcknowledge:
		return decodeAcknowledgeBody(r)
	case enumerations.PduTypeActionRequest:
		return decodeActionRequestBody(r)
	case enumerations.PduTypeActionResponse:
		return decodeActionResponseBody(r)
	case enumerations.PduTypeDataQuery:
		return decodeDataQueryBody(r)
	case enumerations.PduTypeSetData:
		return decodeSetDataBody(r)
	case enumerations.PduTypeData:
		return decodeDataBody(r)
	case enumerations.PduTypeEventReport:
		return decodeEventReportBody(r)
	case enumerations.PduTypeComment:
		return decodeCommentBody(r)
	case enumerations.PduTypeElectromagneticEmission:
		return decodeElectromagneticEmissionBody(r)
	case enumerations.PduTypeDesignator:
		return decodeDesignatorBody(r)
	case enumerations.PduTypeTransmitter:
		return decodeTransmitterBody(r)
	case enumerations.PduTypeSignal:
		return decodeSignalBody(r)
	case enumerations.PduTypeReceiver:
		return decodeReceiverBody(r)
	case enumerations.PduTypeIFF:
		return decodeIFFBody(r)
	default:
		if opts.RejectUnknownPduType {
			return nil, &UnsupportedPduTypeError{Raw: uint8(h.PduType)}
		}
		return decodeOtherBody(r, h, bodyLen)
	}
}

// Result pairs a decoded Pdu with the error from decoding it, if any.
// ParseStream returns one Result per PDU it attempts, successful or not, so
// a single malformed PDU never hides the ones decoded after it.
type Result struct {
	Pdu Pdu
	Err error
}

// ParseStream decodes every PDU concatenated in data, advancing by each
// header's declared pdu_length. A PDU that fails to decode contributes one
// Result carrying its error; ParseStream then resumes from the next PDU
// using the failed one's declared length, rather than aborting the batch.
// It only stops early if a failure leaves no usable length to skip by (not
// enough trailing bytes to even contain the length field).
func ParseStream(data []byte, opts DecodeOptions) []Result {
	var results []Result
	offset := 0
	for offset < len(data) {
		pdu, consumed, err := parsePdu(data[offset:], opts)
		if err != nil {
			results = append(results, Result{Err: err})
			if consumed <= 0 {
				break
			}
			offset += consumed
			continue
		}
		results = append(results, Result{Pdu: pdu})
		offset += consumed
	}
	return results
}

// Serialize encodes a Pdu to its wire form, backfilling Header.Length from
// the actual encoded size rather than trusting whatever the caller set.
func Serialize(p Pdu) ([]byte, error) {
	bw := newWriter()
	p.Body.encode(bw)

	total := headerLength + bw.len()
	if total > 0xFFFF {
		return nil, &InconsistentLengthError{Declared: 0xFFFF, Actual: total}
	}

	h := p.Header
	h.Length = uint16(total)

	hw := newWriter()
	h.encode(hw)

	out := make([]byte, 0, total)
	out = append(out, hw.buf...)
	out = append(out, bw.buf...)
	return out, nil
}
