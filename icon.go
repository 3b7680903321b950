package folco

// Rect is a rectangle in pixel coordinates.
//
// Used for content bounds: the sub-region of an icon that holds actual
// artwork, excluding any built-in padding or margins.
type Rect struct {
	X, Y, W, H int
}

// RectFromSize returns a rectangle at the origin with the given dimensions.
func RectFromSize(w, h int) Rect {
	return Rect{W: w, H: h}
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Size is a 2D size in pixel units.
type Size struct {
	W, H int
}

// IsSquare reports whether width equals height.
func (s Size) IsSquare() bool { return s.W == s.H }

// Icon is a single raster icon image with its display metadata.
//
// Icon sets typically contain several variants at different sizes and
// scales: macOS uses @1x and @2x, Windows ships 16/32/48/256 px, Linux
// icon themes follow similar patterns. The logical size of an icon is
// its pixel size divided by Scale.
type Icon struct {
	// Pix is the pixel data, straight RGBA.
	Pix *Pixmap

	// Scale is the display scale factor: 1.0 for @1x, 2.0 for @2x.
	Scale float32

	// Content is the region within Pix holding the actual artwork.
	// For icons without padding this equals the full image rectangle.
	Content Rect
}

// NewIcon creates an icon with explicit content bounds.
func NewIcon(pix *Pixmap, scale float32, content Rect) Icon {
	return Icon{Pix: pix, Scale: scale, Content: content}
}

// FullContentIcon creates an icon whose content fills the whole image.
func FullContentIcon(pix *Pixmap, scale float32) Icon {
	return Icon{Pix: pix, Scale: scale, Content: RectFromSize(pix.Width(), pix.Height())}
}

// Dimensions returns the pixel dimensions of the icon.
func (ic Icon) Dimensions() Size {
	return Size{W: ic.Pix.Width(), H: ic.Pix.Height()}
}

// LogicalSize returns the icon's size as displayed (pixels / scale).
// A 64x64 @2x icon has logical size 32x32.
func (ic Icon) LogicalSize() (float32, float32) {
	return float32(ic.Pix.Width()) / ic.Scale, float32(ic.Pix.Height()) / ic.Scale
}

// Clone returns a deep copy of the icon.
func (ic Icon) Clone() Icon {
	return Icon{Pix: ic.Pix.Clone(), Scale: ic.Scale, Content: ic.Content}
}

// IconSet is a collection of icon variants representing one logical
// icon at several sizes and scales.
type IconSet struct {
	images []Icon
}

// NewIconSet creates an empty icon set.
func NewIconSet() *IconSet {
	return &IconSet{}
}

// IconSetOf creates an icon set from a slice of images.
func IconSetOf(images ...Icon) *IconSet {
	return &IconSet{images: images}
}

// Add appends an image to the set.
func (s *IconSet) Add(img Icon) {
	s.images = append(s.images, img)
}

// Len returns the number of images in the set.
func (s *IconSet) Len() int { return len(s.images) }

// IsEmpty reports whether the set contains no images.
func (s *IconSet) IsEmpty() bool { return len(s.images) == 0 }

// Images returns the images in insertion order.
// The returned slice is the set's backing storage; do not modify it.
func (s *IconSet) Images() []Icon { return s.images }

// ClosestLogicalSize returns the image whose logical width is nearest
// to the requested size. Ties go to the earlier image in insertion
// order. Returns false if the set is empty.
func (s *IconSet) ClosestLogicalSize(target int) (Icon, bool) {
	if len(s.images) == 0 {
		return Icon{}, false
	}
	best := 0
	bestDist := logicalDistance(s.images[0], target)
	for i := 1; i < len(s.images); i++ {
		if d := logicalDistance(s.images[i], target); d < bestDist {
			best, bestDist = i, d
		}
	}
	return s.images[best], true
}

func logicalDistance(ic Icon, target int) float32 {
	w, _ := ic.LogicalSize()
	d := w - float32(target)
	if d < 0 {
		d = -d
	}
	return d
}
