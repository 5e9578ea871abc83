package matrixprofile_test

import (
	"fmt"

	"github.com/katalvlaran/tsmtype/datasets"
	"github.com/katalvlaran/tsmtype/transform/matrixprofile"
)

func ExampleTransformer() {
	y := datasets.Airline()

	mp := matrixprofile.New(matrixprofile.WithWindowLength(12))
	out, err := mp.FitTransform(y)
	if err != nil {
		panic(err)
	}
	fmt.Println(y.Len(), out.Len())
	// Output: 144 133
}

func ExampleProfile() {
	res, err := matrixprofile.Profile([]float64{0, 1, 3, 2, 0, 1, 3, 2}, 4)
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Indices[0], res.Indices[4])
	// Output: 4 0
}
