package world

// Item and building kinds understood by the built-in coverage layers
const (
	ItemCherryBomb = "cherry_bomb"
	ItemBomb       = "bomb"
	ItemMegaBomb   = "mega_bomb"

	ItemSprinkler        = "sprinkler"
	ItemQualitySprinkler = "quality_sprinkler"
	ItemIridiumSprinkler = "iridium_sprinkler"

	ItemScarecrow       = "scarecrow"
	ItemDeluxeScarecrow = "deluxe_scarecrow"

	BuildingJunimoHut = "junimo_hut"
)

// BombRadius maps explosive kinds to blast radius
var BombRadius = map[string]int{
	ItemCherryBomb: 3,
	ItemBomb:       5,
	ItemMegaBomb:   7,
}

// ScarecrowRadius maps scarecrow kinds to protection radius
var ScarecrowRadius = map[string]int{
	ItemScarecrow:       8,
	ItemDeluxeScarecrow: 16,
}

// JunimoHutRadius is the harvest reach around a hut's door tile
const JunimoHutRadius = 8
