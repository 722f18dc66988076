package grid

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

func float64frombits(b []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

// Encode writes h and samples in the same layout Decode reads. samples must be
// in stored (column-major over h.Size) order.
func Encode(w io.Writer, h Header, samples []float64) error {
	want := int(h.Size[0]) * int(h.Size[1]) * int(h.Size[2])
	if len(samples) != want {
		return fmt.Errorf("grid: encode: got %d samples, header says %d", len(samples), want)
	}
	raw := struct {
		Dim        int32
		Size       [3]int32
		Resolution [3]float64
		Low        [3]float64
		High       [3]float64
	}{h.Dim, h.Size, h.Resolution, h.Low, h.High}
	if err := binary.Write(w, binary.LittleEndian, &raw); err != nil {
		return fmt.Errorf("grid: encode header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, samples); err != nil {
		return fmt.Errorf("grid: encode samples: %w", err)
	}
	return nil
}
