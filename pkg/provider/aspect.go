package provider

type Size struct {
	Width  int
	Height int
}

// SDXL-native resolutions keyed by aspect ratio.
var sizes = map[string]Size{
	"1:1":  {1024, 1024},
	"16:9": {1344, 768},
	"9:16": {768, 1344},
	"4:3":  {1152, 896},
	"3:4":  {896, 1152},
	"3:2":  {1216, 832},
	"2:3":  {832, 1216},
}

// Dimensions resolves an aspect ratio to pixel dimensions. Unknown ratios
// report false so callers omit explicit sizing instead of guessing.
func Dimensions(ratio string) (Size, bool) {
	size, ok := sizes[ratio]
	return size, ok
}

// AspectRatios lists the ratios the shared lookup table resolves.
func AspectRatios() []string {
	return []string{"1:1", "16:9", "9:16", "4:3", "3:4", "3:2", "2:3"}
}
