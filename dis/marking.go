package dis

import (
	"bytes"
	"strings"

	"github.com/mellowdrifter/godis/enumerations"
)

// EntityMarking is the EntityState PDU's 12-byte callsign/tail-number field:
// a one-byte character-set selector followed by 11 fixed bytes of text,
// right-padded with spaces. Grounded directly in the original parser's
// entity_marking test fixture (0x01 'E' 'Y' 'E' ' ' '1' '0' then five space
// pad bytes decodes to "EYE 10"): decode trims trailing spaces (and NUL, for
// traffic that pads with zero bytes instead), encode re-pads with spaces.
type EntityMarking struct {
	CharacterSet enumerations.EntityMarkingCharacterSet
	Value        string
}

const entityMarkingLength = 12
const entityMarkingTextLength = entityMarkingLength - 1

func decodeEntityMarking(r *reader) (EntityMarking, error) {
	cs, err := r.u8()
	if err != nil {
		return EntityMarking{}, err
	}
	raw, err := r.bytes(entityMarkingTextLength)
	if err != nil {
		return EntityMarking{}, err
	}
	text := strings.TrimRight(string(raw), " \x00")
	return EntityMarking{CharacterSet: enumerations.EntityMarkingCharacterSet(cs), Value: text}, nil
}

func (m EntityMarking) encode(w *writer) error {
	if len(m.Value) > entityMarkingTextLength {
		return &MalformedError{Reason: "entity marking value exceeds 11 characters"}
	}
	w.u8(uint8(m.CharacterSet))
	buf := bytes.Repeat([]byte(" "), entityMarkingTextLength)
	copy(buf, m.Value)
	w.bytes(buf)
	return nil
}
