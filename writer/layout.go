package writer

import (
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/tsawler/cardsheet/model"
)

// layout tracks the vertical flow of rows across physical pages.
type layout struct {
	pdf   *fpdf.Fpdf
	style Style
	x0    float64
	y     float64
}

type rowBox struct {
	cells  []cellBox
	header bool
	height float64
}

type cellBox struct {
	cell    model.Cell
	lines   []string
	size    float64
	leading float64
	align   string
}

// table draws one table block: the header row, then the body rows.
func (l *layout) table(t *model.Table) {
	rows := make([]rowBox, 0, t.RowCount())
	rows = append(rows, l.headerRow(t.Header))
	for _, cells := range t.Rows {
		rows = append(rows, l.bodyRow(cells))
	}

	for i, r := range rows {
		need := r.height
		if i == 0 && len(rows) > 1 {
			// keep the header with the first record
			need += rows[1].height
		}
		l.ensure(need)
		l.drawRow(r)
		l.y += r.height
	}
}

// ensure starts a new physical page when h does not fit below the cursor.
// A row taller than a whole page is drawn anyway.
func (l *layout) ensure(h float64) {
	bottom := l.style.PageHeight - l.style.MarginBottom
	if l.y+h > bottom && l.y > l.style.MarginTop {
		l.pdf.AddPage()
		l.y = l.style.MarginTop
	}
}

func (l *layout) headerRow(header []string) rowBox {
	style := model.TextStyle{
		FontSize: l.style.HeaderFontSize,
		Leading:  l.style.HeaderLeading,
		Align:    model.AlignCenter,
	}
	cells := make([]model.Cell, model.ColumnCount)
	for i := range cells {
		text := ""
		if i < len(header) {
			text = header[i]
		}
		cells[i] = model.Cell{Kind: model.CellText, Text: text, Style: style}
	}

	r := l.measure(cells, 0)
	r.header = true
	return r
}

// bodyRow measures a record row. Padding rows, whose cells are all blank,
// are as tall as a record row.
func (l *layout) bodyRow(cells []model.Cell) rowBox {
	var floor float64
	if blankRow(cells) {
		floor = l.style.BlankRowHeight
	}
	return l.measure(cells, floor)
}

func blankRow(cells []model.Cell) bool {
	for _, c := range cells {
		if !c.IsBlank() {
			return false
		}
	}
	return true
}

// measure wraps text cells and computes the row height: the tallest
// content, at least floor, plus padding above and below.
func (l *layout) measure(cells []model.Cell, floor float64) rowBox {
	pad := l.style.Padding
	content := floor
	boxes := make([]cellBox, len(cells))

	for i, c := range cells {
		box := cellBox{cell: c}
		switch c.Kind {
		case model.CellImage:
			content = max(content, c.Image.Height)
		default:
			box.size, box.leading = l.textMetrics(c.Style)
			box.align = c.Style.Align.String() + "M"
			l.pdf.SetFont(fontFamily, "", box.size)
			box.lines = l.wrap(bmp(c.Text), l.style.ColumnWidths[i]-2*pad)
			content = max(content, float64(len(box.lines))*box.leading)
		}
		boxes[i] = box
	}

	return rowBox{cells: boxes, height: content + 2*pad}
}

// wrap breaks text into lines no wider than width, at whitespace only.
// Newlines always break. A word wider than width stays whole on its own line
// and overflows the cell.
func (l *layout) wrap(text string, width float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			switch {
			case line == "":
				line = word
			case l.pdf.GetStringWidth(line+" "+word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}

func (l *layout) textMetrics(ts model.TextStyle) (size, leading float64) {
	size = ts.FontSize
	if size <= 0 {
		size = l.style.HeaderFontSize
	}
	leading = ts.Leading
	if leading <= 0 {
		leading = size * 1.2
	}
	return size, leading
}

func (l *layout) drawRow(r rowBox) {
	pdf := l.pdf
	s := l.style
	x := l.x0

	for i, box := range r.cells {
		cell := model.NewBBox(x, l.y, s.ColumnWidths[i], r.height)

		if r.header {
			pdf.SetFillColor(int(s.HeaderFill.R), int(s.HeaderFill.G), int(s.HeaderFill.B))
			pdf.Rect(cell.X, cell.Y, cell.Width, cell.Height, "F")
		}

		switch box.cell.Kind {
		case model.CellImage:
			l.drawImage(box.cell.Image, cell)
		default:
			l.drawText(box, cell.Inset(s.Padding))
		}

		if s.GridWidth > 0 {
			pdf.SetDrawColor(int(s.GridColor.R), int(s.GridColor.G), int(s.GridColor.B))
			pdf.SetLineWidth(s.GridWidth)
			pdf.Rect(cell.X, cell.Y, cell.Width, cell.Height, "D")
		}
		x = cell.Right()
	}
}

// drawText centres the wrapped lines vertically inside the content box.
func (l *layout) drawText(box cellBox, content model.BBox) {
	pdf := l.pdf
	c := box.cell.Style.Color

	pdf.SetFont(fontFamily, "", box.size)
	pdf.SetTextColor(int(c.R), int(c.G), int(c.B))

	block := content.CenterBox(content.Width, float64(len(box.lines))*box.leading)
	for i, line := range box.lines {
		pdf.SetXY(block.Left(), block.Top()+float64(i)*box.leading)
		pdf.CellFormat(block.Width, box.leading, line, "", 0, box.align, false, 0, "")
	}
}

// drawImage centres the image box in the cell. The box size is fixed; the
// image is scaled to it without keeping its aspect ratio.
func (l *layout) drawImage(img model.ImageRef, cell model.BBox) {
	dst := cell.CenterBox(img.Width, img.Height)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	l.pdf.ImageOptions(img.Path, dst.X, dst.Y, dst.Width, dst.Height, false, opts, 0, "")
}
