// Package pages splits display records into fixed-size pages.
//
// Every page holds exactly the same number of rows. The last page is padded
// with blank records so that each table in the output has the same height:
//
//	pp, err := pages.Paginate(records, pages.DefaultSize)
//	for _, p := range pp {
//	    fmt.Printf("page %d: %d records, %d blank\n", p.Number, p.Filled, p.Padding())
//	}
//
// Record order is preserved: concatenating the real records of every page
// yields the input.
package pages
