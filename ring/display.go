package ring

import (
	"bufio"
	"fmt"
	"io"
)

// Placeholder marks an empty slot in Display output.
const Placeholder = "_"

// Display writes every slot in storage order on one line, e.g.
//
//	Buffer: 60 _ 30 40 50
//
// Occupied slots render with %v.  Diagnostic only; the layout reflects
// physical positions, not logical order.
func (r *Ring[T]) Display(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("Buffer:")
	for i := range r.buf {
		bw.WriteByte(' ')
		if r.buf[i].ok {
			fmt.Fprint(bw, r.buf[i].val)
		} else {
			bw.WriteString(Placeholder)
		}
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
