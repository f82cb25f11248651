package provider

import "fmt"

// ImageSize selects which rendition of a sample image a URI points at. The
// suffix is substituted into the template's single format slot.
type ImageSize int

const (
	// Within ~250x250 px bounds
	SizeXS ImageSize = iota
	// Within ~450x450 px bounds
	SizeS
	// Within ~800x800 px bounds
	SizeM
	// Within ~1400x1400 px bounds
	SizeL
	// Within ~2500x2500 px bounds
	SizeXL
	// Within ~4096x4096 px bounds
	SizeXXL
)

var sizeSuffixes = map[ImageSize]string{
	SizeXS:  "xs",
	SizeS:   "s",
	SizeM:   "m",
	SizeL:   "l",
	SizeXL:  "xl",
	SizeXXL: "xxl",
}

func (s ImageSize) Suffix() string {
	return sizeSuffixes[s]
}

func (s ImageSize) String() string {
	return s.Suffix()
}

func ParseImageSize(value string) (ImageSize, error) {
	for size, suffix := range sizeSuffixes {
		if value == suffix {
			return size, nil
		}
	}
	return 0, fmt.Errorf("unknown image size %q", value)
}

// Orientation filters which template set a sample URI is drawn from.
// OrientationAny draws from all sets.
type Orientation int

const (
	OrientationAny Orientation = iota
	// height > width
	Portrait
	// width > height
	Landscape
)

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	default:
		return "any"
	}
}

func ParseOrientation(value string) (Orientation, error) {
	switch value {
	case "", "any":
		return OrientationAny, nil
	case "portrait":
		return Portrait, nil
	case "landscape":
		return Landscape, nil
	default:
		return 0, fmt.Errorf("unknown orientation %q", value)
	}
}

// Modification indicates whether to perform some action on the URI before
// returning it.
type Modification int

const (
	// ModNone returns the URI untouched.
	ModNone Modification = iota
	// ModCacheBreaker adds a unique parameter to the URI to prevent it from
	// being served from any cache.
	ModCacheBreaker
)
