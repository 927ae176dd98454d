package tensor

import (
	"fmt"
	"strings"
)

// formatArray renders row-major data of the given shape as nested brackets,
// e.g. [[1 2 3] [4 5 6]].
func formatArray[T DType](data []T, shape Extent) string {
	var sb strings.Builder
	if shape.NDim() == 0 {
		if len(data) > 0 {
			fmt.Fprint(&sb, data[0])
		}
		return sb.String()
	}
	writeBlock(&sb, data, shape.Dims())
	return sb.String()
}

func writeBlock[T DType](sb *strings.Builder, data []T, dims []int) {
	sb.WriteByte('[')
	if len(dims) == 1 {
		for i, x := range data[:dims[0]] {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(sb, x)
		}
	} else {
		step := len(data) / dims[0]
		for i := 0; i < dims[0]; i++ {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeBlock(sb, data[i*step:(i+1)*step], dims[1:])
		}
	}
	sb.WriteByte(']')
}
