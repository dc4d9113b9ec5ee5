// Package world provides the farm field and the cells it is made of.
package world

// Kind identifies what occupies a cell.
type Kind int

const (
	// KindEmpty is tilled ground that can be planted.
	KindEmpty Kind = iota
	// KindCorn is a corn crop.
	KindCorn
	// KindTurnip is a turnip crop.
	KindTurnip
	// KindMerchant is the merchant's stall. It never changes kind.
	KindMerchant
	// KindShed is the storage shed. It never changes kind.
	KindShed
)

// MaxGrowth is the growth value at which a crop is mature.
const MaxGrowth = 100

// Crops lists the crop kinds in display order.
var Crops = [...]Kind{KindCorn, KindTurnip}

// String returns the kind's identifier, matching the crop IDs in gamedata.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindCorn:
		return "corn"
	case KindTurnip:
		return "turnip"
	case KindMerchant:
		return "merchant"
	case KindShed:
		return "shed"
	default:
		return "unknown"
	}
}

// IsCrop returns true for kinds that grow and can be harvested.
func (k Kind) IsCrop() bool {
	return k == KindCorn || k == KindTurnip
}

// IsFixture returns true for the merchant and shed.
func (k Kind) IsFixture() bool {
	return k == KindMerchant || k == KindShed
}

// Cell is a single square of the field.
type Cell struct {
	Kind   Kind
	Growth int // 0..MaxGrowth, always 0 unless Kind is a crop
}

// Mature returns true if the cell holds a fully grown crop.
func (c Cell) Mature() bool {
	return c.Kind.IsCrop() && c.Growth == MaxGrowth
}
