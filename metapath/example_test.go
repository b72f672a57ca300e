package metapath_test

import (
	"fmt"

	"github.com/katalvlaran/hetmat/hetnet/hetnettest"
	"github.com/katalvlaran/hetmat/metapath"
)

// ExampleCategorize classifies Disease–Gene–Gene–Disease. The repeated
// metanodes read D G G D, an outer pair around an inner pair.
func ExampleCategorize() {
	mp := hetnettest.DiseaseGeneMetaGraph().MustMetaPath("DaGiGaD")

	cat, err := metapath.Categorize(mp)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	segs, _ := metapath.Segments(mp)

	fmt.Println(metapath.RepeatPattern(mp), cat, metapath.FormatSegments(segs))

	// Output:
	// ABBA BAAB [DaG, GiG, GaD]
}
