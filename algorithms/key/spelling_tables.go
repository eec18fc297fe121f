package key

import "github.com/RyanBlaney/sonido-clave/algorithms/pitch"

// naturalSpelling holds the natural-preferring spellings. Each row lists the seven
// diatonic members of a group as its major scale spells them, with the degree.
var naturalSpelling = spellingTable{
	C: {
		pitch.Cn: {pitch.CNatural, 1},
		pitch.Dn: {pitch.DNatural, 2},
		pitch.En: {pitch.ENatural, 3},
		pitch.Fn: {pitch.FNatural, 4},
		pitch.Gn: {pitch.GNatural, 5},
		pitch.An: {pitch.ANatural, 6},
		pitch.Bn: {pitch.BNatural, 7},
	},
	G: {
		pitch.Cn: {pitch.CNatural, 4},
		pitch.Dn: {pitch.DNatural, 5},
		pitch.En: {pitch.ENatural, 6},
		pitch.Fs: {pitch.FSharp, 7},
		pitch.Gn: {pitch.GNatural, 1},
		pitch.An: {pitch.ANatural, 2},
		pitch.Bn: {pitch.BNatural, 3},
	},
	D: {
		pitch.Cs: {pitch.CSharp, 7},
		pitch.Dn: {pitch.DNatural, 1},
		pitch.En: {pitch.ENatural, 2},
		pitch.Fs: {pitch.FSharp, 3},
		pitch.Gn: {pitch.GNatural, 4},
		pitch.An: {pitch.ANatural, 5},
		pitch.Bn: {pitch.BNatural, 6},
	},
	A: {
		pitch.Cs: {pitch.CSharp, 3},
		pitch.Dn: {pitch.DNatural, 4},
		pitch.En: {pitch.ENatural, 5},
		pitch.Fs: {pitch.FSharp, 6},
		pitch.Gs: {pitch.GSharp, 7},
		pitch.An: {pitch.ANatural, 1},
		pitch.Bn: {pitch.BNatural, 2},
	},
	E: {
		pitch.Cs: {pitch.CSharp, 6},
		pitch.Ds: {pitch.DSharp, 7},
		pitch.En: {pitch.ENatural, 1},
		pitch.Fs: {pitch.FSharp, 2},
		pitch.Gs: {pitch.GSharp, 3},
		pitch.An: {pitch.ANatural, 4},
		pitch.Bn: {pitch.BNatural, 5},
	},
	B: {
		pitch.Cs: {pitch.CSharp, 2},
		pitch.Ds: {pitch.DSharp, 3},
		pitch.En: {pitch.ENatural, 4},
		pitch.Fs: {pitch.FSharp, 5},
		pitch.Gs: {pitch.GSharp, 6},
		pitch.As: {pitch.ASharp, 7},
		pitch.Bn: {pitch.BNatural, 1},
	},
	Fs: {
		pitch.Cs: {pitch.CSharp, 5},
		pitch.Ds: {pitch.DSharp, 6},
		pitch.Fn: {pitch.ESharp, 7},
		pitch.Fs: {pitch.FSharp, 1},
		pitch.Gs: {pitch.GSharp, 2},
		pitch.As: {pitch.ASharp, 3},
		pitch.Bn: {pitch.BNatural, 4},
	},
	Cs: {
		pitch.Cn: {pitch.CNatural, 7},
		pitch.Cs: {pitch.DFlat, 1},
		pitch.Ds: {pitch.EFlat, 2},
		pitch.Fn: {pitch.FNatural, 3},
		pitch.Fs: {pitch.GFlat, 4},
		pitch.Gs: {pitch.AFlat, 5},
		pitch.As: {pitch.BFlat, 6},
	},
	Gs: {
		pitch.Cn: {pitch.CNatural, 3},
		pitch.Cs: {pitch.DFlat, 4},
		pitch.Ds: {pitch.EFlat, 5},
		pitch.Fn: {pitch.FNatural, 6},
		pitch.Gn: {pitch.GNatural, 7},
		pitch.Gs: {pitch.AFlat, 1},
		pitch.As: {pitch.BFlat, 2},
	},
	Ds: {
		pitch.Cn: {pitch.CNatural, 6},
		pitch.Dn: {pitch.DNatural, 7},
		pitch.Ds: {pitch.EFlat, 1},
		pitch.Fn: {pitch.FNatural, 2},
		pitch.Gn: {pitch.GNatural, 3},
		pitch.Gs: {pitch.AFlat, 4},
		pitch.As: {pitch.BFlat, 5},
	},
	As: {
		pitch.Cn: {pitch.CNatural, 2},
		pitch.Dn: {pitch.DNatural, 3},
		pitch.Ds: {pitch.EFlat, 4},
		pitch.Fn: {pitch.FNatural, 5},
		pitch.Gn: {pitch.GNatural, 6},
		pitch.An: {pitch.ANatural, 7},
		pitch.As: {pitch.BFlat, 1},
	},
	F: {
		pitch.Cn: {pitch.CNatural, 5},
		pitch.Dn: {pitch.DNatural, 6},
		pitch.En: {pitch.ENatural, 7},
		pitch.Fn: {pitch.FNatural, 1},
		pitch.Gn: {pitch.GNatural, 2},
		pitch.An: {pitch.ANatural, 3},
		pitch.As: {pitch.BFlat, 4},
	},
}

// sharpSpelling holds the sharp-preferring spellings. Each row lists the seven
// diatonic members of a group as its major scale spells them, with the degree.
var sharpSpelling = spellingTable{
	C: {
		pitch.Cn: {pitch.CNatural, 1},
		pitch.Dn: {pitch.DNatural, 2},
		pitch.En: {pitch.ENatural, 3},
		pitch.Fn: {pitch.FNatural, 4},
		pitch.Gn: {pitch.GNatural, 5},
		pitch.An: {pitch.ANatural, 6},
		pitch.Bn: {pitch.BNatural, 7},
	},
	G: {
		pitch.Cn: {pitch.CNatural, 4},
		pitch.Dn: {pitch.DNatural, 5},
		pitch.En: {pitch.ENatural, 6},
		pitch.Fs: {pitch.FSharp, 7},
		pitch.Gn: {pitch.GNatural, 1},
		pitch.An: {pitch.ANatural, 2},
		pitch.Bn: {pitch.BNatural, 3},
	},
	D: {
		pitch.Cs: {pitch.CSharp, 7},
		pitch.Dn: {pitch.DNatural, 1},
		pitch.En: {pitch.ENatural, 2},
		pitch.Fs: {pitch.FSharp, 3},
		pitch.Gn: {pitch.GNatural, 4},
		pitch.An: {pitch.ANatural, 5},
		pitch.Bn: {pitch.BNatural, 6},
	},
	A: {
		pitch.Cs: {pitch.CSharp, 3},
		pitch.Dn: {pitch.DNatural, 4},
		pitch.En: {pitch.ENatural, 5},
		pitch.Fs: {pitch.FSharp, 6},
		pitch.Gs: {pitch.GSharp, 7},
		pitch.An: {pitch.ANatural, 1},
		pitch.Bn: {pitch.BNatural, 2},
	},
	E: {
		pitch.Cs: {pitch.CSharp, 6},
		pitch.Ds: {pitch.DSharp, 7},
		pitch.En: {pitch.ENatural, 1},
		pitch.Fs: {pitch.FSharp, 2},
		pitch.Gs: {pitch.GSharp, 3},
		pitch.An: {pitch.ANatural, 4},
		pitch.Bn: {pitch.BNatural, 5},
	},
	B: {
		pitch.Cs: {pitch.CSharp, 2},
		pitch.Ds: {pitch.DSharp, 3},
		pitch.En: {pitch.ENatural, 4},
		pitch.Fs: {pitch.FSharp, 5},
		pitch.Gs: {pitch.GSharp, 6},
		pitch.As: {pitch.ASharp, 7},
		pitch.Bn: {pitch.BNatural, 1},
	},
	Fs: {
		pitch.Cs: {pitch.CSharp, 5},
		pitch.Ds: {pitch.DSharp, 6},
		pitch.Fn: {pitch.ESharp, 7},
		pitch.Fs: {pitch.FSharp, 1},
		pitch.Gs: {pitch.GSharp, 2},
		pitch.As: {pitch.ASharp, 3},
		pitch.Bn: {pitch.BNatural, 4},
	},
	Cs: {
		pitch.Cn: {pitch.BSharp, 7},
		pitch.Cs: {pitch.CSharp, 1},
		pitch.Ds: {pitch.DSharp, 2},
		pitch.Fn: {pitch.ESharp, 3},
		pitch.Fs: {pitch.FSharp, 4},
		pitch.Gs: {pitch.GSharp, 5},
		pitch.As: {pitch.ASharp, 6},
	},
	Gs: {
		pitch.Cn: {pitch.CNatural, 3},
		pitch.Cs: {pitch.DFlat, 4},
		pitch.Ds: {pitch.EFlat, 5},
		pitch.Fn: {pitch.FNatural, 6},
		pitch.Gn: {pitch.GNatural, 7},
		pitch.Gs: {pitch.AFlat, 1},
		pitch.As: {pitch.BFlat, 2},
	},
	Ds: {
		pitch.Cn: {pitch.CNatural, 6},
		pitch.Dn: {pitch.DNatural, 7},
		pitch.Ds: {pitch.EFlat, 1},
		pitch.Fn: {pitch.FNatural, 2},
		pitch.Gn: {pitch.GNatural, 3},
		pitch.Gs: {pitch.AFlat, 4},
		pitch.As: {pitch.BFlat, 5},
	},
	As: {
		pitch.Cn: {pitch.CNatural, 2},
		pitch.Dn: {pitch.DNatural, 3},
		pitch.Ds: {pitch.EFlat, 4},
		pitch.Fn: {pitch.FNatural, 5},
		pitch.Gn: {pitch.GNatural, 6},
		pitch.An: {pitch.ANatural, 7},
		pitch.As: {pitch.BFlat, 1},
	},
	F: {
		pitch.Cn: {pitch.CNatural, 5},
		pitch.Dn: {pitch.DNatural, 6},
		pitch.En: {pitch.ENatural, 7},
		pitch.Fn: {pitch.FNatural, 1},
		pitch.Gn: {pitch.GNatural, 2},
		pitch.An: {pitch.ANatural, 3},
		pitch.As: {pitch.BFlat, 4},
	},
}

// flatSpelling holds the flat-preferring spellings. Each row lists the seven
// diatonic members of a group as its major scale spells them, with the degree.
var flatSpelling = spellingTable{
	C: {
		pitch.Cn: {pitch.CNatural, 1},
		pitch.Dn: {pitch.DNatural, 2},
		pitch.En: {pitch.ENatural, 3},
		pitch.Fn: {pitch.FNatural, 4},
		pitch.Gn: {pitch.GNatural, 5},
		pitch.An: {pitch.ANatural, 6},
		pitch.Bn: {pitch.BNatural, 7},
	},
	G: {
		pitch.Cn: {pitch.CNatural, 4},
		pitch.Dn: {pitch.DNatural, 5},
		pitch.En: {pitch.ENatural, 6},
		pitch.Fs: {pitch.FSharp, 7},
		pitch.Gn: {pitch.GNatural, 1},
		pitch.An: {pitch.ANatural, 2},
		pitch.Bn: {pitch.BNatural, 3},
	},
	D: {
		pitch.Cs: {pitch.CSharp, 7},
		pitch.Dn: {pitch.DNatural, 1},
		pitch.En: {pitch.ENatural, 2},
		pitch.Fs: {pitch.FSharp, 3},
		pitch.Gn: {pitch.GNatural, 4},
		pitch.An: {pitch.ANatural, 5},
		pitch.Bn: {pitch.BNatural, 6},
	},
	A: {
		pitch.Cs: {pitch.CSharp, 3},
		pitch.Dn: {pitch.DNatural, 4},
		pitch.En: {pitch.ENatural, 5},
		pitch.Fs: {pitch.FSharp, 6},
		pitch.Gs: {pitch.GSharp, 7},
		pitch.An: {pitch.ANatural, 1},
		pitch.Bn: {pitch.BNatural, 2},
	},
	E: {
		pitch.Cs: {pitch.CSharp, 6},
		pitch.Ds: {pitch.DSharp, 7},
		pitch.En: {pitch.ENatural, 1},
		pitch.Fs: {pitch.FSharp, 2},
		pitch.Gs: {pitch.GSharp, 3},
		pitch.An: {pitch.ANatural, 4},
		pitch.Bn: {pitch.BNatural, 5},
	},
	B: {
		pitch.Cs: {pitch.DFlat, 2},
		pitch.Ds: {pitch.EFlat, 3},
		pitch.En: {pitch.FFlat, 4},
		pitch.Fs: {pitch.GFlat, 5},
		pitch.Gs: {pitch.AFlat, 6},
		pitch.As: {pitch.BFlat, 7},
		pitch.Bn: {pitch.CFlat, 1},
	},
	Fs: {
		pitch.Cs: {pitch.DFlat, 5},
		pitch.Ds: {pitch.EFlat, 6},
		pitch.Fn: {pitch.FNatural, 7},
		pitch.Fs: {pitch.GFlat, 1},
		pitch.Gs: {pitch.AFlat, 2},
		pitch.As: {pitch.BFlat, 3},
		pitch.Bn: {pitch.CFlat, 4},
	},
	Cs: {
		pitch.Cn: {pitch.CNatural, 7},
		pitch.Cs: {pitch.DFlat, 1},
		pitch.Ds: {pitch.EFlat, 2},
		pitch.Fn: {pitch.FNatural, 3},
		pitch.Fs: {pitch.GFlat, 4},
		pitch.Gs: {pitch.AFlat, 5},
		pitch.As: {pitch.BFlat, 6},
	},
	Gs: {
		pitch.Cn: {pitch.CNatural, 3},
		pitch.Cs: {pitch.DFlat, 4},
		pitch.Ds: {pitch.EFlat, 5},
		pitch.Fn: {pitch.FNatural, 6},
		pitch.Gn: {pitch.GNatural, 7},
		pitch.Gs: {pitch.AFlat, 1},
		pitch.As: {pitch.BFlat, 2},
	},
	Ds: {
		pitch.Cn: {pitch.CNatural, 6},
		pitch.Dn: {pitch.DNatural, 7},
		pitch.Ds: {pitch.EFlat, 1},
		pitch.Fn: {pitch.FNatural, 2},
		pitch.Gn: {pitch.GNatural, 3},
		pitch.Gs: {pitch.AFlat, 4},
		pitch.As: {pitch.BFlat, 5},
	},
	As: {
		pitch.Cn: {pitch.CNatural, 2},
		pitch.Dn: {pitch.DNatural, 3},
		pitch.Ds: {pitch.EFlat, 4},
		pitch.Fn: {pitch.FNatural, 5},
		pitch.Gn: {pitch.GNatural, 6},
		pitch.An: {pitch.ANatural, 7},
		pitch.As: {pitch.BFlat, 1},
	},
	F: {
		pitch.Cn: {pitch.CNatural, 5},
		pitch.Dn: {pitch.DNatural, 6},
		pitch.En: {pitch.ENatural, 7},
		pitch.Fn: {pitch.FNatural, 1},
		pitch.Gn: {pitch.GNatural, 2},
		pitch.An: {pitch.ANatural, 3},
		pitch.As: {pitch.BFlat, 4},
	},
}

// diatonic[g] lists the group's members in scale order from its major root
var diatonic = [groupCount][pitch.DegreeCount]pitch.PitchClass{
	C:  {pitch.Cn, pitch.Dn, pitch.En, pitch.Fn, pitch.Gn, pitch.An, pitch.Bn},
	G:  {pitch.Gn, pitch.An, pitch.Bn, pitch.Cn, pitch.Dn, pitch.En, pitch.Fs},
	D:  {pitch.Dn, pitch.En, pitch.Fs, pitch.Gn, pitch.An, pitch.Bn, pitch.Cs},
	A:  {pitch.An, pitch.Bn, pitch.Cs, pitch.Dn, pitch.En, pitch.Fs, pitch.Gs},
	E:  {pitch.En, pitch.Fs, pitch.Gs, pitch.An, pitch.Bn, pitch.Cs, pitch.Ds},
	B:  {pitch.Bn, pitch.Cs, pitch.Ds, pitch.En, pitch.Fs, pitch.Gs, pitch.As},
	Fs: {pitch.Fs, pitch.Gs, pitch.As, pitch.Bn, pitch.Cs, pitch.Ds, pitch.Fn},
	Cs: {pitch.Cs, pitch.Ds, pitch.Fn, pitch.Fs, pitch.Gs, pitch.As, pitch.Cn},
	Gs: {pitch.Gs, pitch.As, pitch.Cn, pitch.Cs, pitch.Ds, pitch.Fn, pitch.Gn},
	Ds: {pitch.Ds, pitch.Fn, pitch.Gn, pitch.Gs, pitch.As, pitch.Cn, pitch.Dn},
	As: {pitch.As, pitch.Cn, pitch.Dn, pitch.Ds, pitch.Fn, pitch.Gn, pitch.An},
	F:  {pitch.Fn, pitch.Gn, pitch.An, pitch.As, pitch.Cn, pitch.Dn, pitch.En},
}

// groupsContaining[pc] lists every group that has pc as a diatonic member
var groupsContaining = [pitch.PitchClassCount]GroupSet{
	pitch.Cn: NewGroupSet(C, G, Cs, Gs, Ds, As, F),
	pitch.Cs: NewGroupSet(D, A, E, B, Fs, Cs, Gs),
	pitch.Dn: NewGroupSet(C, G, D, A, Ds, As, F),
	pitch.Ds: NewGroupSet(E, B, Fs, Cs, Gs, Ds, As),
	pitch.En: NewGroupSet(C, G, D, A, E, B, F),
	pitch.Fn: NewGroupSet(C, Fs, Cs, Gs, Ds, As, F),
	pitch.Fs: NewGroupSet(G, D, A, E, B, Fs, Cs),
	pitch.Gn: NewGroupSet(C, G, D, Gs, Ds, As, F),
	pitch.Gs: NewGroupSet(A, E, B, Fs, Cs, Gs, Ds),
	pitch.An: NewGroupSet(C, G, D, A, E, As, F),
	pitch.As: NewGroupSet(B, Fs, Cs, Gs, Ds, As, F),
	pitch.Bn: NewGroupSet(C, G, D, A, E, B, Fs),
}
