package fief

// BaseEventChance is the daily percent chance that any random event
// fires at all.
const BaseEventChance = 8

// RandomEventDef describes one entry in the random event table.
// Seasons nil means the event can fire in any season.
type RandomEventDef struct {
	ID       string
	Category string
	Weight   int
	Seasons  []string
	Messages []string
}

// EligibleIn reports whether the event can fire in the given season.
func (d RandomEventDef) EligibleIn(season string) bool {
	if d.Seasons == nil {
		return true
	}
	for _, s := range d.Seasons {
		if s == season {
			return true
		}
	}
	return false
}

var randomEventTable = []RandomEventDef{
	{
		ID: "traveling_merchant", Category: CategoryPositive, Weight: 15,
		Seasons: []string{"Spring", "Summer", "Autumn"},
		Messages: []string{
			"A traveling merchant arrived with exotic goods from distant lands!",
			"A caravan of traders has set up camp, bringing prosperity to your markets.",
			"Foreign merchants have arrived, eager to trade their wares.",
		},
	},
	{
		ID: "bountiful_harvest", Category: CategoryPositive, Weight: 20,
		Seasons: []string{"Autumn"},
		Messages: []string{
			"The harvest this season was exceptionally bountiful!",
			"Your farmers report record yields from the fields.",
			"The granaries overflow with this year's magnificent harvest!",
		},
	},
	{
		ID: "skilled_immigrant", Category: CategoryPositive, Weight: 10,
		Messages: []string{
			"{name}, a skilled craftsman, seeks refuge in your fiefdom.",
			"{name}, a wandering artisan, wishes to settle here.",
			"{name}, fleeing hardship elsewhere, brings valuable skills to your realm.",
		},
	},
	{
		ID: "festival", Category: CategoryPositive, Weight: 12,
		Seasons: []string{"Spring", "Summer"},
		Messages: []string{
			"A spontaneous celebration erupts in the town square!",
			"The citizens organize a joyous festival in honor of the season.",
			"Music and laughter fill the streets as townfolk celebrate!",
		},
	},
	{
		ID: "good_weather", Category: CategoryPositive, Weight: 18,
		Seasons: []string{"Spring", "Summer"},
		Messages: []string{
			"Perfect weather blesses your fields and workshops.",
			"Clear skies and gentle breezes boost productivity.",
			"The weather gods smile upon your fiefdom today.",
		},
	},
	{
		ID: "treasure_found", Category: CategoryPositive, Weight: 5,
		Messages: []string{
			"A citizen discovered a cache of old coins while plowing!",
			"Workers unearthed buried treasure during construction!",
			"An ancient chest filled with gold was found in the hills!",
		},
	},
	{
		ID: "royal_favor", Category: CategoryPositive, Weight: 3,
		Messages: []string{
			"The King sends a gift in recognition of your stewardship!",
			"A royal envoy delivers gold as thanks for your loyalty.",
			"Your fiefdom receives a generous royal grant!",
		},
	},
	{
		ID: "miraculous_recovery", Category: CategoryPositive, Weight: 6,
		Messages: []string{
			"A sick citizen makes a miraculous recovery!",
			"The local healer discovers a new remedy, curing the ill.",
			"Divine blessing aids those suffering from ailments.",
		},
	},

	{
		ID: "illness_outbreak", Category: CategoryNegative, Weight: 12,
		Seasons: []string{"Winter", "Autumn"},
		Messages: []string{
			"A fever spreads through the crowded quarters.",
			"Illness has taken hold in some households.",
			"The cold season brings sickness to your citizens.",
		},
	},
	{
		ID: "harsh_weather", Category: CategoryNegative, Weight: 15,
		Seasons: []string{"Winter"},
		Messages: []string{
			"A fierce blizzard damages buildings and chills spirits.",
			"Freezing temperatures bring hardship to the realm.",
			"Heavy snowfall traps citizens indoors.",
		},
	},
	{
		ID: "fire", Category: CategoryNegative, Weight: 8,
		Seasons: []string{"Summer", "Autumn"},
		Messages: []string{
			"A fire broke out and damaged some property!",
			"Flames consumed part of a building before being contained.",
			"A carelessly tended hearth started a small fire.",
		},
	},
	{
		ID: "theft", Category: CategoryNegative, Weight: 10,
		Messages: []string{
			"Thieves have stolen from the treasury during the night!",
			"Bandits raided a merchant's wagon on the road.",
			"A burglar was spotted, but escaped with some gold.",
		},
	},
	{
		ID: "crop_blight", Category: CategoryNegative, Weight: 10,
		Seasons: []string{"Summer", "Autumn"},
		Messages: []string{
			"A blight has struck the crops, reducing yields.",
			"Pests have infested the fields, destroying produce.",
			"Disease spreads through the orchards.",
		},
	},
	{
		ID: "building_collapse", Category: CategoryNegative, Weight: 5,
		Messages: []string{
			"An old structure partially collapsed from disrepair!",
			"Poor construction led to a building accident.",
			"Storm damage has weakened several structures.",
		},
	},
	{
		ID: "worker_accident", Category: CategoryNegative, Weight: 8,
		Messages: []string{
			"A worker was injured in a mining accident.",
			"An accident at the workshop has hurt a craftsman.",
			"A citizen was injured during construction work.",
		},
	},
	{
		ID: "tax_collector", Category: CategoryNegative, Weight: 6,
		Messages: []string{
			"The Crown demands additional tribute!",
			"Royal tax collectors arrive demanding their due.",
			"An unexpected levy is imposed by the realm.",
		},
	},

	{
		ID: "wandering_minstrel", Category: CategoryNeutral, Weight: 12,
		Seasons: []string{"Spring", "Summer", "Autumn"},
		Messages: []string{
			"A traveling minstrel entertains the townsfolk with tales.",
			"A bard sings songs of distant lands in the tavern.",
			"Musicians pass through, lifting spirits with their melodies.",
		},
	},
	{
		ID: "mysterious_stranger", Category: CategoryNeutral, Weight: 8,
		Messages: []string{
			"A mysterious cloaked figure was seen near the gates.",
			"A strange traveler asks cryptic questions about the area.",
			"An enigmatic visitor appears and disappears without a trace.",
		},
	},
	{
		ID: "wildlife_sighting", Category: CategoryNeutral, Weight: 15,
		Seasons: []string{"Spring", "Summer"},
		Messages: []string{
			"A magnificent stag was spotted in the forest.",
			"Flocks of colorful birds pass through the area.",
			"Wolf tracks are found near the outskirts.",
		},
	},
	{
		ID: "market_day", Category: CategoryNeutral, Weight: 20,
		Messages: []string{
			"The weekly market draws crowds from nearby villages.",
			"Farmers and craftsmen gather for a bustling market day.",
			"Trade is brisk at the marketplace today.",
		},
	},
	{
		ID: "pilgrim_passage", Category: CategoryNeutral, Weight: 10,
		Seasons: []string{"Spring", "Autumn"},
		Messages: []string{
			"A group of pilgrims passes through on their holy journey.",
			"Religious travelers seek shelter for the night.",
			"Monks on pilgrimage bless your fiefdom as they pass.",
		},
	},

	{
		ID: "comet_sighting", Category: CategorySpecial, Weight: 2,
		Messages: []string{
			"A brilliant comet streaks across the night sky! Citizens debate its meaning.",
		},
	},
	{
		ID: "wandering_knight", Category: CategorySpecial, Weight: 4,
		Messages: []string{
			"A knight errant arrives, offering services in exchange for lodging.",
		},
	},
	{
		ID: "ancient_discovery", Category: CategorySpecial, Weight: 3,
		Messages: []string{
			"Workers discover ancient ruins beneath the earth!",
		},
	},
}

func AllRandomEvents() []RandomEventDef {
	out := make([]RandomEventDef, len(randomEventTable))
	copy(out, randomEventTable)
	return out
}

func RandomEventByID(id string) (RandomEventDef, bool) {
	for _, d := range randomEventTable {
		if d.ID == id {
			return d, true
		}
	}
	return RandomEventDef{}, false
}

// DrawRandomEvent picks an event for the season by weighted roll, or
// returns false when no event is eligible.
func DrawRandomEvent(dice Dice, season string) (RandomEventDef, bool) {
	var eligible []RandomEventDef
	total := 0
	for _, d := range randomEventTable {
		if d.EligibleIn(season) {
			eligible = append(eligible, d)
			total += d.Weight
		}
	}
	if total == 0 {
		return RandomEventDef{}, false
	}

	roll := dice.Roll(total)
	cumulative := 0
	for _, d := range eligible {
		cumulative += d.Weight
		if roll <= cumulative {
			return d, true
		}
	}
	return RandomEventDef{}, false
}

// PickMessage selects one of the definition's message variants.
func (d RandomEventDef) PickMessage(dice Dice) string {
	return d.Messages[dice.Index(len(d.Messages))]
}
