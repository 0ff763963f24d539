package schematic

import "strconv"

// legacyIDs maps pre-1.13 numeric block ids to their flattened names,
// ignoring the data value. Only common blocks are listed.
var legacyIDs = [...]string{
	1:   "stone",
	2:   "grass_block",
	3:   "dirt",
	4:   "cobblestone",
	5:   "oak_planks",
	6:   "oak_sapling",
	7:   "bedrock",
	8:   "water",
	9:   "water",
	10:  "lava",
	11:  "lava",
	12:  "sand",
	13:  "gravel",
	14:  "gold_ore",
	15:  "iron_ore",
	16:  "coal_ore",
	17:  "oak_log",
	18:  "oak_leaves",
	19:  "sponge",
	20:  "glass",
	21:  "lapis_ore",
	22:  "lapis_block",
	23:  "dispenser",
	24:  "sandstone",
	25:  "note_block",
	26:  "red_bed",
	27:  "powered_rail",
	28:  "detector_rail",
	29:  "sticky_piston",
	30:  "cobweb",
	31:  "short_grass",
	32:  "dead_bush",
	33:  "piston",
	34:  "piston_head",
	35:  "white_wool",
	37:  "dandelion",
	38:  "poppy",
	39:  "brown_mushroom",
	40:  "red_mushroom",
	41:  "gold_block",
	42:  "iron_block",
	43:  "smooth_stone",
	44:  "smooth_stone_slab",
	45:  "bricks",
	46:  "tnt",
	47:  "bookshelf",
	48:  "mossy_cobblestone",
	49:  "obsidian",
	50:  "torch",
	51:  "fire",
	52:  "spawner",
	53:  "oak_stairs",
	54:  "chest",
	55:  "redstone_wire",
	56:  "diamond_ore",
	57:  "diamond_block",
	58:  "crafting_table",
	59:  "wheat",
	60:  "farmland",
	61:  "furnace",
	62:  "furnace",
	63:  "oak_sign",
	64:  "oak_door",
	65:  "ladder",
	66:  "rail",
	67:  "cobblestone_stairs",
	68:  "oak_wall_sign",
	69:  "lever",
	70:  "stone_pressure_plate",
	71:  "iron_door",
	72:  "oak_pressure_plate",
	73:  "redstone_ore",
	74:  "redstone_ore",
	75:  "redstone_torch",
	76:  "redstone_torch",
	77:  "stone_button",
	78:  "snow",
	79:  "ice",
	80:  "snow_block",
	81:  "cactus",
	82:  "clay",
	83:  "sugar_cane",
	84:  "jukebox",
	85:  "oak_fence",
	86:  "pumpkin",
	87:  "netherrack",
	88:  "soul_sand",
	89:  "glowstone",
	90:  "nether_portal",
	91:  "jack_o_lantern",
	92:  "cake",
	93:  "repeater",
	94:  "repeater",
	95:  "white_stained_glass",
	96:  "oak_trapdoor",
	97:  "infested_stone",
	98:  "stone_bricks",
	99:  "brown_mushroom_block",
	100: "red_mushroom_block",
	101: "iron_bars",
	102: "glass_pane",
	103: "melon",
	104: "pumpkin_stem",
	105: "melon_stem",
	106: "vine",
	107: "oak_fence_gate",
	108: "brick_stairs",
	109: "stone_brick_stairs",
	110: "mycelium",
	111: "lily_pad",
	112: "nether_bricks",
	113: "nether_brick_fence",
	114: "nether_brick_stairs",
	115: "nether_wart",
	116: "enchanting_table",
	117: "brewing_stand",
	118: "cauldron",
	119: "end_portal",
	120: "end_portal_frame",
	121: "end_stone",
	122: "dragon_egg",
	123: "redstone_lamp",
	124: "redstone_lamp",
	125: "oak_planks",
	126: "oak_slab",
	127: "cocoa",
	128: "sandstone_stairs",
	129: "emerald_ore",
	130: "ender_chest",
	131: "tripwire_hook",
	132: "tripwire",
	133: "emerald_block",
	134: "spruce_stairs",
	135: "birch_stairs",
	136: "jungle_stairs",
	137: "command_block",
	138: "beacon",
	139: "cobblestone_wall",
	140: "flower_pot",
	141: "carrots",
	142: "potatoes",
	143: "oak_button",
	144: "skeleton_skull",
	145: "anvil",
	146: "trapped_chest",
	147: "light_weighted_pressure_plate",
	148: "heavy_weighted_pressure_plate",
	149: "comparator",
	150: "comparator",
	151: "daylight_detector",
	152: "redstone_block",
	153: "nether_quartz_ore",
	154: "hopper",
	155: "quartz_block",
	156: "quartz_stairs",
	157: "activator_rail",
	158: "dropper",
	159: "white_terracotta",
	160: "white_stained_glass_pane",
	161: "acacia_leaves",
	162: "acacia_log",
	163: "acacia_stairs",
	164: "dark_oak_stairs",
	165: "slime_block",
	166: "barrier",
	167: "iron_trapdoor",
	168: "prismarine",
	169: "sea_lantern",
	170: "hay_block",
	171: "white_carpet",
	172: "terracotta",
	173: "coal_block",
	174: "packed_ice",
	175: "sunflower",
}

// LegacyBlockID returns the namespaced id for a numeric block id. Id 0 is air;
// ids without an entry become "minecraft:unknown_<id>".
func LegacyBlockID(id int) string {
	if id == 0 {
		return AirID
	}
	if id > 0 && id < len(legacyIDs) && legacyIDs[id] != "" {
		return "minecraft:" + legacyIDs[id]
	}
	return "minecraft:unknown_" + strconv.Itoa(id)
}
