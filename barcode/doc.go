// Package barcode renders Code-128 barcode images for card sheet codes.
//
// Only codes of exactly six or eight ASCII digits are rendered; anything else
// is rejected by [Validate] and reported as a [SkipReason] by
// [Renderer.RenderRows]. Check digits are not verified.
//
// # Rendering
//
// A [Renderer] draws the bars, a quiet zone on both sides and, unless
// disabled, the code as a caption below the bars. Sizes are given in
// millimetres and points and converted to pixels at the configured DPI:
//
//	r, err := barcode.NewRenderer("output_images", barcode.DefaultOptions())
//	path, err := r.Render("12345678", "12345678_1") // output_images/12345678_1.png
//
// Rendering the same code with the same options always produces the same
// PNG bytes. Existing files are overwritten.
//
// # Naming
//
// [Naming] decides the file name of each slot's image. The record assembler
// uses the same policy to find the files again.
package barcode
