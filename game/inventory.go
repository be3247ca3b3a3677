package game

// foodTicksPerUnit is how many ticks one unit of food keeps a player alive;
// it is also the unit the wire protocol uses for food counts in
// `inventaire` (each reported unit of `nourriture` is this many ticks of
// TimeToLive).
const foodTicksPerUnit = 126

// Inventory is a player's held resources. Food is special-cased: rather
// than a plain count, it is tracked as a tick countdown (TimeToLive) that
// decreases as the player survives, so that `inventaire` always reports
// floor(TimeToLive / 126) units of food.
type Inventory struct {
	Counts     [len(AllObjectClasses)]uint32 // indexed by ObjectClass; Counts[Food] is unused, see TimeToLive
	TimeToLive uint32
}

// Get returns the held count of a non-food object class, or the floored
// food-unit count for Food.
func (inv *Inventory) Get(obj ObjectClass) uint32 {
	if obj == Food {
		return inv.TimeToLive / foodTicksPerUnit
	}
	return inv.Counts[obj]
}

// TryPickUp attempts to move one unit of obj from cell into inv. Returns
// true on success (cell had at least one unit), false otherwise (cell
// unchanged).
func TryPickUp(cell *WorldCell, inv *Inventory, obj ObjectClass) bool {
	if cell.Counts[obj] == 0 {
		return false
	}
	cell.Counts[obj]--
	if obj == Food {
		inv.TimeToLive += foodTicksPerUnit
	} else {
		inv.Counts[obj]++
	}
	return true
}

// TryDrop attempts to move one unit of obj from inv onto cell. For Food,
// this requires at least one full unit (126 ticks) of TimeToLive. Returns
// true on success, false otherwise (inventory unchanged).
func TryDrop(inv *Inventory, cell *WorldCell, obj ObjectClass) bool {
	if obj == Food {
		if inv.TimeToLive < foodTicksPerUnit {
			return false
		}
		inv.TimeToLive -= foodTicksPerUnit
		cell.Counts[obj]++
		return true
	}

	if inv.Counts[obj] == 0 {
		return false
	}
	inv.Counts[obj]--
	cell.Counts[obj]++
	return true
}
