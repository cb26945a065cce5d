package render

import "github.com/f3rmion/lobstr/internal/lobster"

// accessoryRecipe draws one accessory from the anchors and the outline color.
type accessoryRecipe func(a AnchorSet, dark lobster.Color) []Command

// accessoryRecipeFor maps a style to its family and recipe. None is a valid
// style with a nil recipe.
func accessoryRecipeFor(style lobster.AccessoryStyle) (lobster.Family, accessoryRecipe, bool) {
	switch style {
	case lobster.AccessoryNone:
		return lobster.FamilyNone, nil, true

	case lobster.AccessoryCrown:
		return lobster.FamilyHead, crown, true
	case lobster.AccessoryChefHat:
		return lobster.FamilyHead, chefHat, true
	case lobster.AccessoryPirateHat:
		return lobster.FamilyHead, pirateHat, true
	case lobster.AccessoryTopHat:
		return lobster.FamilyHead, topHat, true
	case lobster.AccessoryWizardHat:
		return lobster.FamilyHead, wizardHat, true
	case lobster.AccessoryCowboyHat:
		return lobster.FamilyHead, cowboyHat, true
	case lobster.AccessoryVikingHelmet:
		return lobster.FamilyHead, vikingHelmet, true
	case lobster.AccessoryBirthdayHat:
		return lobster.FamilyHead, birthdayHat, true
	case lobster.AccessoryHalo:
		return lobster.FamilyHead, halo, true

	case lobster.AccessorySunglasses:
		return lobster.FamilyFace, sunglasses, true
	case lobster.Accessory3DGlasses:
		return lobster.FamilyFace, glasses3D, true
	case lobster.AccessoryMonocle:
		return lobster.FamilyFace, monocle, true
	case lobster.AccessoryEyePatch:
		return lobster.FamilyFace, eyePatch, true
	case lobster.AccessoryGoggles:
		return lobster.FamilyFace, goggles, true

	case lobster.AccessoryBowTie:
		return lobster.FamilyNeck, bowTie, true
	case lobster.AccessoryGoldChain:
		return lobster.FamilyNeck, goldChain, true
	case lobster.AccessoryScarf:
		return lobster.FamilyNeck, scarf, true
	case lobster.AccessoryBandana:
		return lobster.FamilyNeck, bandana, true

	case lobster.AccessoryAntennaeShort:
		return lobster.FamilyAntenna, shortAntennae, true
	case lobster.AccessoryAntennaeLong:
		return lobster.FamilyAntenna, longAntennae, true
	case lobster.AccessoryAntennaeCurly:
		return lobster.FamilyAntenna, curlyAntennae, true
	case lobster.AccessoryAntennaeRainbow:
		return lobster.FamilyAntenna, rainbowAntennae, true

	case lobster.AccessoryAngelWings:
		return lobster.FamilySpecial, angelWings, true
	case lobster.AccessoryDevilHorns:
		return lobster.FamilySpecial, devilHorns, true
	}
	return "", nil, false
}

// AccessoryFamily reports the anchor family of an accessory style.
func AccessoryFamily(style lobster.AccessoryStyle) (lobster.Family, bool) {
	f, _, ok := accessoryRecipeFor(style)
	return f, ok
}
