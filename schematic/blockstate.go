package schematic

import "strings"

// NormalizeBlockID drops a trailing state qualifier, so
// "minecraft:oak_log[axis=y]" becomes "minecraft:oak_log".
func NormalizeBlockID(id string) string {
	if i := strings.IndexByte(id, '['); i >= 0 {
		return id[:i]
	}
	return id
}

func isAir(id string) bool {
	switch id {
	case AirID, "minecraft:cave_air", "minecraft:void_air":
		return true
	}
	return false
}
