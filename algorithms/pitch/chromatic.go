package pitch

// Keyless names for the 12 pitch classes. These name raw input (a MIDI note
// number has no key); spelling within a key belongs to the key package.
var (
	sharpNames = [PitchClassCount]Note{
		CNatural, CSharp, DNatural, DSharp, ENatural, FNatural,
		FSharp, GNatural, GSharp, ANatural, ASharp, BNatural,
	}
	flatNames = [PitchClassCount]Note{
		CNatural, DFlat, DNatural, EFlat, ENatural, FNatural,
		GFlat, GNatural, AFlat, ANatural, BFlat, BNatural,
	}
)

// ChromaticName spells a pitch class without key context. Sharp-slot pitch
// classes take flats when dir is DirectionFlat and sharps otherwise.
func ChromaticName(pc PitchClass, dir Direction) Note {
	pc = PitchClassFromIndex(int(pc))
	if dir == DirectionFlat {
		return flatNames[pc]
	}
	return sharpNames[pc]
}
