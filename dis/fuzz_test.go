package dis

import "testing"

// FuzzParsePdu feeds arbitrary byte strings to ParsePdu; the contract under
// fuzzing is "never panic, and any Pdu that does decode re-serializes
// without error".
func FuzzParsePdu(f *testing.F) {
	f.Add([]byte{6, 1, 1, 1, 0, 0, 0, 0, 0, 12, 0, 0})
	f.Add([]byte{7, 1, 2, 2, 0, 0, 0, 1, 0, 20, 0x08, 0})
	f.Add([]byte{})
	f.Add([]byte{0})

	f.Fuzz(func(t *testing.T, data []byte) {
		pdu, err := ParsePdu(data, DecodeOptions{})
		if err != nil {
			return
		}
		if _, err := Serialize(pdu); err != nil {
			t.Fatalf("re-serializing a successfully parsed pdu failed: %v", err)
		}
	})
}

func BenchmarkParsePdu(b *testing.B) {
	h, err := NewHeaderBuilder().
		Version(7).
		ExerciseId(1).
		PduType(1).
		Build()
	if err != nil {
		b.Fatal(err)
	}
	body := EntityStateBody{
		EntityId: EntityId{Simulation: SimulationAddress{Site: 1, Application: 1}, Entity: 1},
	}
	encoded, err := Serialize(Pdu{Header: h, Body: body})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ParsePdu(encoded, DecodeOptions{}); err != nil {
			b.Fatal(err)
		}
	}
}
