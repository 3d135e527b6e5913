package tablego_test

import (
	"fmt"
	"slices"

	"github.com/hupe1980/tablego"
)

func Example() {
	dt := tablego.New[float64]()
	_ = dt.AppendRow([]float64{1, 2, 3})
	_ = dt.AppendRow([]float64{4, 5, 6})
	_ = dt.SetColumnLabel(0, "time")

	v, _ := dt.AtLabel(1, "time")
	fmt.Println(v)
	// Output:
	// 4
}

func ExampleTable_AppendRowSeq() {
	data := []float64{1, 2, 3, 4, 5}

	dt := tablego.New[float64]()
	_ = dt.AppendRowSeq(slices.Values(data), tablego.WithCapacityHint(8))

	rows, cols := dt.Dims()
	fmt.Println(rows, cols)
	// Output:
	// 1 5
}

func ExampleTimeSeriesTable() {
	ts := tablego.NewTimeSeries[float64]()
	_ = ts.AppendRowWithTimestamp(1.0, []float64{1, 2})
	_ = ts.AppendRowWithTimestamp(2.0, []float64{3, 4})
	_ = ts.AppendRowWithTimestamp(4.0, []float64{5, 6})

	row, _ := ts.RowIndexNear(2.9, tablego.Nearest)
	fmt.Println(row)
	// Output:
	// 1
}
