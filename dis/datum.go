package dis

// FixedDatum carries a 4-byte opaque value tagged by a 4-byte datum ID (SISO
// table 49), 8 bytes on the wire. Used by SetData/Data/EventReport and the simulation-management
// request/response family's fixed-datum lists.
type FixedDatum struct {
	ID    uint32
	Value uint32
}

const fixedDatumLength = 8

func decodeFixedDatum(r *reader) (FixedDatum, error) {
	id, err := r.u32()
	if err != nil {
		return FixedDatum{}, err
	}
	value, err := r.u32()
	if err != nil {
		return FixedDatum{}, err
	}
	return FixedDatum{ID: id, Value: value}, nil
}

func (d FixedDatum) encode(w *writer) {
	w.u32(d.ID)
	w.u32(d.Value)
}

// VariableDatum carries an arbitrary-length opaque value tagged by a datum
// ID. On the wire the record is a 4-byte ID, a 4-byte bit-length, the value
// itself, and zero padding out to the next 8-octet boundary — grounded in
// the original action_request/action_response model's
// "per variable datum: 8 + padded(value) bytes" length formula.
type VariableDatum struct {
	ID    uint32
	Value []byte
}

func decodeVariableDatum(r *reader) (VariableDatum, error) {
	id, err := r.u32()
	if err != nil {
		return VariableDatum{}, err
	}
	lengthBits, err := r.u32()
	if err != nil {
		return VariableDatum{}, err
	}
	lengthBytes := int((lengthBits + 7) / 8)
	raw, err := r.bytes(lengthBytes)
	if err != nil {
		return VariableDatum{}, err
	}
	value := append([]byte(nil), raw...)
	_, pad := paddedLength(8 + lengthBytes)
	if err := r.skip(pad); err != nil {
		return VariableDatum{}, err
	}
	return VariableDatum{ID: id, Value: value}, nil
}

func (d VariableDatum) encode(w *writer) {
	w.u32(d.ID)
	w.u32(uint32(len(d.Value)) * 8)
	w.bytes(d.Value)
	_, pad := paddedLength(8 + len(d.Value))
	w.zero(pad)
}

// encodedLength returns the number of bytes this datum occupies on the wire,
// including its 8-byte header and trailing pad.
func (d VariableDatum) encodedLength() int {
	total, _ := paddedLength(8 + len(d.Value))
	return total
}
