//go:build !noprof

package cycleprof_test

import (
	"fmt"

	"github.com/ardnew/cycleprof"
)

var sum int

//go:noinline
func checksum(data []byte) {
	for _, b := range data {
		sum = sum*31 + int(b)
	}
}

func ExampleCollector() {
	c := cycleprof.NewCollector()
	c.SetResultHandler(func(r *cycleprof.Report) {
		for _, rec := range r.Records {
			fmt.Printf("%s: %d calls\n", rec.Name(), rec.Calls())
		}
	})

	site := c.Site("checksum")
	data := make([]byte, 4096)
	for i := 0; i < 3; i++ {
		func() {
			defer site.Enter().Exit()
			checksum(data)
		}()
	}

	c.Finalize()
	// Output: checksum: 3 calls
}

func ExampleCollector_Mark() {
	c := cycleprof.NewCollector()
	c.SetResultHandler(func(r *cycleprof.Report) {
		fmt.Println(len(r.Records), r.Records[0].Calls())
	})

	for i := 0; i < 4; i++ {
		c.MarkAs("loop body").Exit()
	}

	c.Finalize()
	// Output: 1 4
}

func ExampleSite() {
	c := cycleprof.NewCollector()
	outer := c.Site("outer")
	inner := c.Site("inner")

	c.SetResultHandler(func(r *cycleprof.Report) {
		o, i := r.Lookup("outer"), r.Lookup("inner")
		fmt.Println(o.Cycles() >= i.Cycles())
	})

	func() {
		defer outer.Enter().Exit()
		func() {
			defer inner.Enter().Exit()
			checksum(make([]byte, 1024))
		}()
	}()

	c.Finalize()
	// Output: true
}
