package scad

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MatrixMultiply returns the product a*b of two row-major matrices.
// It fails with ErrInvalidArgument if either matrix is empty or ragged,
// or if the column count of a differs from the row count of b.
func MatrixMultiply(a, b [][]float64) ([][]float64, error) {
	ma, err := dense(a)
	if err != nil {
		return nil, err
	}
	mb, err := dense(b)
	if err != nil {
		return nil, err
	}
	ar, ac := ma.Dims()
	br, bc := mb.Dims()
	if ac != br {
		return nil, ErrMsg(ErrInvalidArgument, fmt.Sprintf("matrix dimensions %dx%d and %dx%d are not compatible for multiplication", ar, ac, br, bc))
	}
	var c mat.Dense
	c.Mul(ma, mb)
	out := make([][]float64, ar)
	for i := range out {
		out[i] = mat.Row(nil, i, &c)
	}
	return out, nil
}

func dense(m [][]float64) (*mat.Dense, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return nil, ErrMsg(ErrInvalidArgument, "empty matrix")
	}
	cols := len(m[0])
	data := make([]float64, 0, len(m)*cols)
	for _, row := range m {
		if len(row) != cols {
			return nil, ErrMsg(ErrInvalidArgument, "ragged matrix")
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(m), cols, data), nil
}
