package barcode

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/boombuler/barcode/code128"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/tsawler/cardsheet/font"
	"github.com/tsawler/cardsheet/internal/atomicfile"
	"github.com/tsawler/cardsheet/model"
)

// Renderer writes barcode PNG images into a directory. It is not safe for
// concurrent use.
type Renderer struct {
	dir  string
	opts Options
	geom geometry
	face xfont.Face
	bg   image.Image
	fg   image.Image
}

// NewRenderer returns a renderer writing into dir. The directory is created
// on the first render.
func NewRenderer(dir string, opts Options) (*Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	r := &Renderer{
		dir:  dir,
		opts: opts,
		geom: opts.geometry(),
		bg:   image.NewUniform(rgba(opts.Background)),
		fg:   image.NewUniform(rgba(opts.Foreground)),
	}

	if opts.WriteText {
		f := opts.Font
		if f == nil {
			f = font.Mono()
		}
		face, err := f.Face(opts.FontSize, opts.DPI)
		if err != nil {
			return nil, fmt.Errorf("barcode: %w", err)
		}
		r.face = face
	}
	return r, nil
}

// Close releases the caption face.
func (r *Renderer) Close() error {
	if r.face != nil {
		return r.face.Close()
	}
	return nil
}

// Render validates code, draws it and writes <dir>/<name>.png. It returns
// the path of the written file.
func (r *Renderer) Render(code, name string) (string, error) {
	if err := Validate(code); err != nil {
		return "", err
	}
	if err := safeBasename(name); err != nil {
		return "", err
	}
	img, err := r.draw(code)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating image directory: %w", err)
	}

	path := filepath.Join(r.dir, name+".png")
	err = atomicfile.Write(path, 0o644, func(w io.Writer) error {
		return png.Encode(w, img)
	})
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// Image validates and draws code without writing it anywhere.
func (r *Renderer) Image(code string) (image.Image, error) {
	if err := Validate(code); err != nil {
		return nil, err
	}
	return r.draw(code)
}

func (r *Renderer) draw(code string) (image.Image, error) {
	bc, err := code128.Encode(code)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", code, err)
	}

	modules := bc.Bounds().Dx()
	g := r.geom
	width := modules*g.module + 2*g.quiet
	barTop := g.margin
	barBottom := barTop + g.barHeight
	height := barBottom + g.margin
	if r.face != nil {
		height = barBottom + g.textDistance + g.margin
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), r.bg, image.Point{}, draw.Src)

	for m := 0; m < modules; m++ {
		if !isBar(bc.At(m, 0)) {
			continue
		}
		x := g.quiet + m*g.module
		draw.Draw(img, image.Rect(x, barTop, x+g.module, barBottom), r.fg, image.Point{}, draw.Src)
	}

	if r.face != nil {
		r.caption(img, code, barBottom+g.textDistance)
	}
	return img, nil
}

// caption draws text centred horizontally with its descender line at bottom.
func (r *Renderer) caption(dst draw.Image, text string, bottom int) {
	d := &xfont.Drawer{Dst: dst, Src: r.fg, Face: r.face}
	advance := d.MeasureString(text)
	width := fixed.I(dst.Bounds().Dx())
	baseline := fixed.I(bottom) - r.face.Metrics().Descent
	d.Dot = fixed.Point26_6{X: (width - advance) / 2, Y: baseline}
	d.DrawString(text)
}

func isBar(c color.Color) bool {
	gray := color.GrayModel.Convert(c).(color.Gray)
	return gray.Y < 128
}

func rgba(c model.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
