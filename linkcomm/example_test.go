package linkcomm_test

import (
	"fmt"

	"github.com/katalvlaran/phonalign/core"
	"github.com/katalvlaran/phonalign/linkcomm"
)

func ExampleCluster() {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"a", "b"}, {"b", "c"}, {"c", "a"},
		{"c", "d"},
		{"d", "e"}, {"e", "f"}, {"f", "d"},
	} {
		if _, err := g.AddEdge(e[0], e[1], 0); err != nil {
			panic(err)
		}
	}

	res, err := linkcomm.Cluster(g)
	if err != nil {
		panic(err)
	}
	for i, c := range res.Communities {
		fmt.Println(i+1, c)
	}
	fmt.Println(res.NodeCommunities["c"])
	// Output:
	// 1 [e1 e2 e3]
	// 2 [e4]
	// 3 [e5 e6 e7]
	// [1 2]
}
