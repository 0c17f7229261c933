package provider

// ChooseAbility resolves the operation mode for a request against the
// abilities a model advertises. Models in the current catalogs declare a
// single ability, but multi-ability models disambiguate on request shape:
// reference images select image-to-image, their absence text-to-image.
func ChooseAbility(req Request, abilities ...Ability) (Ability, error) {
	withImage := len(req.Images) > 0

	for _, ability := range abilities {
		switch ability {
		case AbilityImageToImage:
			if withImage {
				return ability, nil
			}

		case AbilityTextToImage:
			if !withImage {
				return ability, nil
			}
		}
	}

	if withImage {
		return "", NewUnsupportedOperationError("model %s does not accept reference images", req.Model)
	}

	return "", NewUnsupportedOperationError("model %s requires a reference image", req.Model)
}
