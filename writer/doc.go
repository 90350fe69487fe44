// Package writer renders a paginated card sheet as a PDF document.
//
// Each page of the document becomes one table: a shaded header row followed
// by the page's records. Tables flow one after another; a new physical page
// starts whenever the next row does not fit, and a header row is never left
// alone at the bottom of a page. Every physical page carries the run
// timestamp near its top right corner.
//
//	b := writer.NewBuilder(writer.DefaultStyle(), nil)
//	if err := b.Build(doc, "output.pdf"); err != nil {
//	    var re *writer.RenderError
//	    if errors.As(err, &re) {
//	        log.Fatalf("could not write %s: %v", re.Path, re.Err)
//	    }
//	}
//
// The file is written through a temporary sibling and renamed into place, so
// a failed build never leaves a partial document behind.
package writer
