package catalog

import (
	"sync"

	"github.com/f3rmion/lobstr/internal/lobster"
)

// Default returns the built-in lobster catalog. It is built on first use
// and shared by every caller.
func Default() *Catalog {
	return defaultCatalog()
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := New(DefaultCategories())
	if err != nil {
		panic("catalog: built-in catalog is invalid: " + err.Error())
	}
	return c
})

func colored(name string, r, g, b uint8, weight float64) lobster.Option {
	return lobster.Option{Name: name, Weight: weight, Payload: lobster.Payload{Color: lobster.RGB(r, g, b)}}
}

func scaled(name string, scale, weight float64) lobster.Option {
	return lobster.Option{Name: name, Weight: weight, Payload: lobster.Payload{Scale: scale}}
}

func styled(name, style string, weight float64) lobster.Option {
	return lobster.Option{Name: name, Weight: weight, Payload: lobster.Payload{Style: style}}
}

func accessory(name string, style lobster.AccessoryStyle, family lobster.Family, weight float64) lobster.Option {
	return lobster.Option{Name: name, Weight: weight, Payload: lobster.Payload{Style: string(style), Family: family}}
}

// DefaultCategories returns a fresh copy of the built-in category data.
func DefaultCategories() []lobster.Category {
	return []lobster.Category{
		{
			Name: lobster.CategoryBackground,
			Options: []lobster.Option{
				colored("Ocean Blue", 200, 230, 255, 30),
				colored("Deep Sea", 150, 180, 210, 25),
				colored("Coral Pink", 255, 220, 230, 20),
				colored("Sandy Beige", 245, 235, 215, 15),
				colored("Sunset Orange", 255, 230, 200, 8),
				colored("Mystic Purple", 230, 210, 255, 2),
			},
		},
		{
			Name: lobster.CategoryShell,
			Options: []lobster.Option{
				colored("Classic Red", 220, 80, 70, 25),
				colored("Orange", 255, 140, 80, 20),
				colored("Brown", 160, 100, 70, 20),
				colored("Blue", 100, 150, 200, 15),
				colored("Green", 120, 180, 130, 10),
				colored("Golden", 255, 200, 80, 7),
				colored("Rainbow", 200, 150, 255, 3),
				colored("Black Pearl", 40, 40, 50, 0.5),
				colored("White", 245, 245, 250, 0.5),
			},
		},
		{
			Name: lobster.CategoryClaw,
			Options: []lobster.Option{
				scaled("Small", 0.7, 20),
				scaled("Medium", 1.0, 40),
				scaled("Large", 1.3, 25),
				scaled("Mega", 1.7, 10),
				scaled("Gigantic", 2.2, 5),
			},
		},
		{
			Name: lobster.CategoryEyes,
			Options: []lobster.Option{
				styled("Normal", string(lobster.EyeNormal), 40),
				styled("Googly", string(lobster.EyeGoogly), 25),
				styled("Angry", string(lobster.EyeAngry), 15),
				styled("Heart Eyes", string(lobster.EyeHearts), 10),
				styled("Star Eyes", string(lobster.EyeStars), 8),
				styled("Laser Eyes", string(lobster.EyeLaser), 2),
			},
		},
		{
			Name: lobster.CategoryTail,
			Options: []lobster.Option{
				styled("Plain", string(lobster.TailPlain), 40),
				styled("Striped", string(lobster.TailStriped), 30),
				styled("Spotted", string(lobster.TailSpotted), 20),
				styled("Fancy", string(lobster.TailFancy), 10),
			},
		},
		{
			Name: lobster.CategoryAccessory,
			Options: []lobster.Option{
				accessory("None", lobster.AccessoryNone, lobster.FamilyNone, 20),

				accessory("Crown", lobster.AccessoryCrown, lobster.FamilyHead, 5),
				accessory("Chef Hat", lobster.AccessoryChefHat, lobster.FamilyHead, 5),
				accessory("Pirate Hat", lobster.AccessoryPirateHat, lobster.FamilyHead, 4),
				accessory("Top Hat", lobster.AccessoryTopHat, lobster.FamilyHead, 4),
				accessory("Wizard Hat", lobster.AccessoryWizardHat, lobster.FamilyHead, 3),
				accessory("Cowboy Hat", lobster.AccessoryCowboyHat, lobster.FamilyHead, 4),
				accessory("Viking Helmet", lobster.AccessoryVikingHelmet, lobster.FamilyHead, 3),
				accessory("Birthday Hat", lobster.AccessoryBirthdayHat, lobster.FamilyHead, 3),
				accessory("Halo", lobster.AccessoryHalo, lobster.FamilyHead, 2),

				accessory("Sunglasses", lobster.AccessorySunglasses, lobster.FamilyFace, 5),
				accessory("3D Glasses", lobster.Accessory3DGlasses, lobster.FamilyFace, 4),
				accessory("Monocle", lobster.AccessoryMonocle, lobster.FamilyFace, 3),
				accessory("Eye Patch", lobster.AccessoryEyePatch, lobster.FamilyFace, 3),
				accessory("Goggles", lobster.AccessoryGoggles, lobster.FamilyFace, 3),

				accessory("Bow Tie", lobster.AccessoryBowTie, lobster.FamilyNeck, 5),
				accessory("Gold Chain", lobster.AccessoryGoldChain, lobster.FamilyNeck, 4),
				accessory("Scarf", lobster.AccessoryScarf, lobster.FamilyNeck, 3),
				accessory("Bandana", lobster.AccessoryBandana, lobster.FamilyNeck, 3),

				accessory("Short Antennae", lobster.AccessoryAntennaeShort, lobster.FamilyAntenna, 5),
				accessory("Long Antennae", lobster.AccessoryAntennaeLong, lobster.FamilyAntenna, 4),
				accessory("Curly Antennae", lobster.AccessoryAntennaeCurly, lobster.FamilyAntenna, 3),
				accessory("Rainbow Antennae", lobster.AccessoryAntennaeRainbow, lobster.FamilyAntenna, 2),

				accessory("Angel Wings", lobster.AccessoryAngelWings, lobster.FamilySpecial, 1),
				accessory("Devil Horns", lobster.AccessoryDevilHorns, lobster.FamilySpecial, 1),
			},
		},
	}
}
