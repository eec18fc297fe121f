package pitch

// Degree is a diatonic scale position, 1 (tonic) through 7
type Degree int

const (
	Tonic Degree = iota + 1
	Supertonic
	Mediant
	Subdominant
	Dominant
	Submediant
	LeadingTone
)

// DegreeCount is the number of diatonic scale positions
const DegreeCount = 7

var degreeNames = [DegreeCount + 1]string{
	"", "tonic", "supertonic", "mediant", "subdominant", "dominant", "submediant", "leading tone",
}

var degreeNumerals = [DegreeCount + 1]string{"", "I", "II", "III", "IV", "V", "VI", "VII"}

// DegreeFromOrdinal folds any interval ordinal onto 1..7
func DegreeFromOrdinal(o Ordinal) Degree {
	return Degree(mod(int(o)-1, DegreeCount) + 1)
}

// Valid reports whether d is in 1..7
func (d Degree) Valid() bool {
	return d >= Tonic && d <= LeadingTone
}

// Index returns the zero-based position (tonic = 0)
func (d Degree) Index() int {
	return int(d) - 1
}

// Numeral returns the upper-case roman numeral for the degree
func (d Degree) Numeral() string {
	if !d.Valid() {
		return "?"
	}
	return degreeNumerals[d]
}

func (d Degree) String() string {
	if !d.Valid() {
		return "undefined"
	}
	return degreeNames[d]
}
