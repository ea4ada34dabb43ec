package collab

import (
	"fmt"
	"io"
)

// DuplicateReporter writes one line per removed duplicate to an io.Writer,
// matching remove_duplicates.cpp's std::cout line exactly in wording.
// core.RemoveDuplicates depends only on the small ReportDuplicate(id int)
// interface this type implements.
type DuplicateReporter struct {
	w io.Writer
}

// NewDuplicateReporter returns a DuplicateReporter writing to w.
func NewDuplicateReporter(w io.Writer) *DuplicateReporter {
	return &DuplicateReporter{w: w}
}

// ReportDuplicate writes "Found duplicate document id <id>" to the
// underlying writer. Write errors are not surfaced: a reporting sink
// failing is not reason enough to abort a removal that already happened.
func (r *DuplicateReporter) ReportDuplicate(id int) {
	fmt.Fprintf(r.w, "Found duplicate document id %d\n", id)
}
