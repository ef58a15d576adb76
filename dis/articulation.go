package dis

import "github.com/mellowdrifter/godis/enumerations"

// ArticulationParameter describes one movable or attached part of an
// entity. Its ParameterType field is a tagged union selected by
// TypeDesignator, grounded in dis_rs's ParameterTypeVariant enum
// (AttachedParts(u32) | ArticulatedParts{type_metric, type_class}).
type ArticulationParameter struct {
	TypeDesignator    enumerations.ApTypeDesignator
	ChangeIndicator   uint8
	PartAttachedTo    uint16
	ParameterType     ArticulationParameterType
	ParameterValue    float64
}

// ArticulationParameterType is the tagged union over the two parameter-type
// record shapes. Exactly one of Attached/Articulated is meaningful,
// selected by the enclosing ArticulationParameter's TypeDesignator.
type ArticulationParameterType struct {
	Attached    uint32
	TypeMetric  enumerations.ArticulatedPartsTypeMetric
	TypeClass   enumerations.ArticulatedPartsTypeClass
}

const articulationParameterLength = 16

func decodeArticulationParameter(r *reader) (ArticulationParameter, error) {
	designator, err := r.u8()
	if err != nil {
		return ArticulationParameter{}, err
	}
	change, err := r.u8()
	if err != nil {
		return ArticulationParameter{}, err
	}
	partAttachedTo, err := r.u16()
	if err != nil {
		return ArticulationParameter{}, err
	}
	rawType, err := r.u32()
	if err != nil {
		return ArticulationParameter{}, err
	}
	value, err := r.f64()
	if err != nil {
		return ArticulationParameter{}, err
	}

	td := enumerations.ApTypeDesignator(designator)
	var pt ArticulationParameterType
	if td == enumerations.ApTypeDesignatorAttached {
		pt.Attached = rawType
	} else {
		pt.TypeMetric = enumerations.ArticulatedPartsTypeMetric(rawType & 0x1F)
		pt.TypeClass = enumerations.ArticulatedPartsTypeClass(rawType &^ 0x1F)
	}

	return ArticulationParameter{
		TypeDesignator:  td,
		ChangeIndicator: change,
		PartAttachedTo:  partAttachedTo,
		ParameterType:   pt,
		ParameterValue:  value,
	}, nil
}

func (a ArticulationParameter) encode(w *writer) {
	w.u8(uint8(a.TypeDesignator))
	w.u8(a.ChangeIndicator)
	w.u16(a.PartAttachedTo)

	var rawType uint32
	if a.TypeDesignator == enumerations.ApTypeDesignatorAttached {
		rawType = a.ParameterType.Attached
	} else {
		rawType = uint32(a.ParameterType.TypeClass) | uint32(a.ParameterType.TypeMetric)
	}
	w.u32(rawType)
	w.f64(a.ParameterValue)
}
