package provider

type Ability string

const (
	AbilityTextToImage  Ability = "text-to-image"
	AbilityImageToImage Ability = "image-to-image"
)

type Model struct {
	ID string

	Name    string
	Ability Ability

	Enabled bool

	AspectRatios []string
}

// Capabilities describes what the hosting runtime offers a plugin. It is
// fixed at construction time so schema selection stays a pure function.
type Capabilities struct {
	NativeBinding bool
}

type Request struct {
	Model  string
	Prompt string

	AspectRatio string

	// Images holds reference images as data URIs.
	Images []string

	Count int
}

type Result struct {
	ID string

	// Images holds the generated images as data URIs, in attempt order.
	Images []string

	Reason FailureReason
}

type FailureReason string

const (
	ReasonConfigError FailureReason = "CONFIG_ERROR"
)
