package fief

// Medieval name pools used for starter citizens, newborns, and
// arrivals. Newborns get a bare first name; immigrants arrive with a
// trade surname.

var maleNames = []string{
	"William", "John", "Thomas", "Robert", "Richard", "Henry", "Edward", "George",
	"Edmund", "Walter", "Hugh", "Ralph", "Roger", "Geoffrey", "Simon", "Adam",
	"Peter", "Stephen", "Nicholas", "Gilbert", "Bartholomew", "Martin", "Benedict",
	"Alan", "Miles", "Oswald", "Leonard", "Philip", "Godfrey",
}

var femaleNames = []string{
	"Alice", "Margaret", "Joan", "Agnes", "Elizabeth", "Mary", "Emma", "Matilda",
	"Eleanor", "Isabella", "Catherine", "Anne", "Cecily", "Edith", "Beatrice",
	"Rose", "Mabel", "Juliana", "Millicent", "Avice", "Sybil", "Clarice",
	"Constance", "Lucy", "Margery", "Christine", "Amelia", "Godiva", "Heloise",
	"Rohesia", "Wynifred",
}

var surnames = []string{
	"Smith", "Miller", "Baker", "Taylor", "Cooper", "Wright", "Fletcher",
	"Carter", "Fisher", "Shepherd", "Thatcher", "Mason", "Carpenter",
	"Hunter", "Weaver", "Tanner", "Potter", "Brewer", "Cook", "Chandler",
	"Mercer", "Forester", "Gardner", "Palmer", "Sawyer", "Wheeler",
}

func RandomFirstName(dice Dice, gender string) string {
	pool := maleNames
	if gender == GenderFemale {
		pool = femaleNames
	}
	return pool[dice.Index(len(pool))]
}

func RandomFullName(dice Dice, gender string) string {
	return RandomFirstName(dice, gender) + " " + surnames[dice.Index(len(surnames))]
}

func RandomGender(dice Dice) string {
	if dice.Chance(50) {
		return GenderMale
	}
	return GenderFemale
}
