package lobster

// EyeStyle selects an eye recipe.
type EyeStyle string

const (
	EyeNormal EyeStyle = "normal"
	EyeGoogly EyeStyle = "googly"
	EyeAngry  EyeStyle = "angry"
	EyeHearts EyeStyle = "hearts"
	EyeStars  EyeStyle = "stars"
	EyeLaser  EyeStyle = "laser"
)

// TailStyle selects a tail segment pattern.
type TailStyle string

const (
	TailPlain   TailStyle = "plain"
	TailStriped TailStyle = "striped"
	TailSpotted TailStyle = "spotted"
	TailFancy   TailStyle = "fancy"
)

// AccessoryStyle selects an accessory recipe.
type AccessoryStyle string

const (
	AccessoryNone AccessoryStyle = "none"

	// Head
	AccessoryCrown        AccessoryStyle = "crown"
	AccessoryChefHat      AccessoryStyle = "chef_hat"
	AccessoryPirateHat    AccessoryStyle = "pirate_hat"
	AccessoryTopHat       AccessoryStyle = "top_hat"
	AccessoryWizardHat    AccessoryStyle = "wizard_hat"
	AccessoryCowboyHat    AccessoryStyle = "cowboy_hat"
	AccessoryVikingHelmet AccessoryStyle = "viking_helmet"
	AccessoryBirthdayHat  AccessoryStyle = "birthday_hat"
	AccessoryHalo         AccessoryStyle = "halo"

	// Face
	AccessorySunglasses AccessoryStyle = "sunglasses"
	Accessory3DGlasses  AccessoryStyle = "3d_glasses"
	AccessoryMonocle    AccessoryStyle = "monocle"
	AccessoryEyePatch   AccessoryStyle = "eye_patch"
	AccessoryGoggles    AccessoryStyle = "goggles"

	// Neck
	AccessoryBowTie    AccessoryStyle = "bow_tie"
	AccessoryGoldChain AccessoryStyle = "gold_chain"
	AccessoryScarf     AccessoryStyle = "scarf"
	AccessoryBandana   AccessoryStyle = "bandana"

	// Antenna
	AccessoryAntennaeShort   AccessoryStyle = "antennae_short"
	AccessoryAntennaeLong    AccessoryStyle = "antennae_long"
	AccessoryAntennaeCurly   AccessoryStyle = "antennae_curly"
	AccessoryAntennaeRainbow AccessoryStyle = "antennae_rainbow"

	// Special
	AccessoryAngelWings AccessoryStyle = "angel_wings"
	AccessoryDevilHorns AccessoryStyle = "devil_horns"
)
