package schema

import "github.com/pehenyshka/piratecards/internal/domain"

// SeedCards returns the fixed starting catalog. IDs are assigned by the
// database on insert; the slice order determines them.
func SeedCards() []domain.Card {
	return []domain.Card{
		// 5-star mythic
		{Name: "Gol D. Roger", Rarity: 5, Description: "King of the Pirates", ImagePath: "5_star/roger.jpg", Health: 210, Melee: 110, Ranged: 95, Special: 120},
		{Name: "Edward Newgate", Rarity: 5, Description: "Whitebeard, strongest man in the world", ImagePath: "5_star/whitebeard.jpg", Health: 230, Melee: 120, Ranged: 80, Special: 110},
		{Name: "Shanks", Rarity: 5, Description: "Emperor of the sea", ImagePath: "5_star/shanks.jpg", Health: 195, Melee: 105, Ranged: 110, Special: 100},
		{Name: "Kaido", Rarity: 5, Description: "King of the beasts", ImagePath: "5_star/kaido.jpg", Health: 250, Melee: 130, Ranged: 75, Special: 130},
		{Name: "Big Mom", Rarity: 5, Description: "Mighty empress", ImagePath: "5_star/bigmom.jpg", Health: 210, Melee: 90, Ranged: 100, Special: 120},
		{Name: "Im", Rarity: 5, Description: "Ruler of the world", ImagePath: "5_star/im.jpg", Health: 220, Melee: 115, Ranged: 110, Special: 130},
		{Name: "Joy Boy", Rarity: 5, Description: "Legend of the past", ImagePath: "5_star/joyboy.jpg", Health: 215, Melee: 112, Ranged: 105, Special: 125},
		{Name: "Zunesha", Rarity: 5, Description: "Giant elephant", ImagePath: "5_star/zunesha.jpg", Health: 270, Melee: 85, Ranged: 70, Special: 140},
		{Name: "Rocks D. Xebec", Rarity: 5, Description: "Legendary captain of the Rocks pirates", ImagePath: "5_star/rocks.jpg", Health: 225, Melee: 120, Ranged: 110, Special: 135},

		// 4-star legendary
		{Name: "Monkey D. Luffy", Rarity: 4, Description: "Future king of the pirates", ImagePath: "4_star/luffy.jpg", Health: 170, Melee: 95, Ranged: 80, Special: 95},
		{Name: "Blackbeard", Rarity: 4, Description: "Wielder of two devil fruits", ImagePath: "4_star/blackbeard.jpg", Health: 180, Melee: 90, Ranged: 100, Special: 110},
		{Name: "Roronoa Zoro", Rarity: 4, Description: "Pirate hunter", ImagePath: "4_star/zoro.jpg", Health: 160, Melee: 110, Ranged: 70, Special: 80},
		{Name: "Trafalgar Law", Rarity: 4, Description: "Surgeon of death", ImagePath: "4_star/law.jpg", Health: 155, Melee: 80, Ranged: 90, Special: 100},
		{Name: "Doflamingo", Rarity: 4, Description: "King of strings", ImagePath: "4_star/doflamingo.jpg", Health: 158, Melee: 85, Ranged: 95, Special: 95},
		{Name: "Mihawk", Rarity: 4, Description: "Greatest swordsman", ImagePath: "4_star/mihawk.jpg", Health: 165, Melee: 120, Ranged: 70, Special: 80},
		{Name: "Rayleigh", Rarity: 4, Description: "Roger's right hand", ImagePath: "4_star/rayleigh.jpg", Health: 155, Melee: 95, Ranged: 80, Special: 90},
		{Name: "Sengoku", Rarity: 4, Description: "Former fleet admiral", ImagePath: "4_star/sengoku.jpg", Health: 160, Melee: 100, Ranged: 75, Special: 90},
		{Name: "Marco", Rarity: 4, Description: "The Phoenix", ImagePath: "4_star/marco.jpg", Health: 168, Melee: 90, Ranged: 85, Special: 105},
		{Name: "Garp", Rarity: 4, Description: "Hero of the marines", ImagePath: "4_star/garp.jpg", Health: 175, Melee: 110, Ranged: 70, Special: 80},
		{Name: "Kuzan", Rarity: 4, Description: "Former admiral", ImagePath: "4_star/kuzan.jpg", Health: 158, Melee: 80, Ranged: 100, Special: 90},
		{Name: "Kizaru", Rarity: 4, Description: "Admiral of light", ImagePath: "4_star/kizaru.jpg", Health: 162, Melee: 90, Ranged: 110, Special: 80},
		{Name: "Sakazuki", Rarity: 4, Description: "Fleet admiral Akainu", ImagePath: "4_star/akainu.jpg", Health: 170, Melee: 115, Ranged: 80, Special: 95},
		{Name: "Ben Beckman", Rarity: 4, Description: "Shanks' right hand", ImagePath: "4_star/beckman.jpg", Health: 155, Melee: 105, Ranged: 90, Special: 95},

		// 3-star epic
		{Name: "Sanji", Rarity: 3, Description: "Mr. Prince", ImagePath: "3_star/sanji.jpg", Health: 135, Melee: 85, Ranged: 75, Special: 70},
		{Name: "Yamato", Rarity: 3, Description: "Kaido's daughter", ImagePath: "3_star/yamato.jpg", Health: 140, Melee: 80, Ranged: 80, Special: 80},
		{Name: "Eustass Kid", Rarity: 3, Description: "Worst generation", ImagePath: "3_star/kid.jpg", Health: 138, Melee: 80, Ranged: 85, Special: 75},
		{Name: "Boa Hancock", Rarity: 3, Description: "Queen of the Amazons", ImagePath: "3_star/hancock.jpg", Health: 125, Melee: 70, Ranged: 90, Special: 90},
		{Name: "Katakuri", Rarity: 3, Description: "Sweet general", ImagePath: "3_star/katakuri.jpg", Health: 145, Melee: 90, Ranged: 80, Special: 95},
		{Name: "Jinbe", Rarity: 3, Description: "Fish-man", ImagePath: "3_star/jinbe.jpg", Health: 142, Melee: 85, Ranged: 75, Special: 70},
		{Name: "Killer", Rarity: 3, Description: "The mask", ImagePath: "3_star/killer.jpg", Health: 130, Melee: 95, Ranged: 80, Special: 65},
		{Name: "Bartolomeo", Rarity: 3, Description: "Barrier", ImagePath: "3_star/bartolomeo.jpg", Health: 128, Melee: 75, Ranged: 85, Special: 80},
		{Name: "Perona", Rarity: 3, Description: "Ghosts", ImagePath: "3_star/perona.jpg", Health: 120, Melee: 70, Ranged: 95, Special: 85},
		{Name: "Cavendish", Rarity: 3, Description: "Duelist", ImagePath: "3_star/cavendish.jpg", Health: 132, Melee: 90, Ranged: 80, Special: 65},
		{Name: "Bege", Rarity: 3, Description: "Fortress captain", ImagePath: "3_star/bege.jpg", Health: 140, Melee: 80, Ranged: 75, Special: 70},
		{Name: "Hawkins", Rarity: 3, Description: "Magician", ImagePath: "3_star/hawkins.jpg", Health: 125, Melee: 75, Ranged: 90, Special: 80},
		{Name: "X Drake", Rarity: 3, Description: "Dinosaur", ImagePath: "3_star/xdrake.jpg", Health: 137, Melee: 85, Ranged: 80, Special: 75},
		{Name: "Urouge", Rarity: 3, Description: "Monk", ImagePath: "3_star/urouge.jpg", Health: 145, Melee: 95, Ranged: 70, Special: 65},
		{Name: "Jack", Rarity: 3, Description: "Natural disaster", ImagePath: "3_star/jack.jpg", Health: 148, Melee: 92, Ranged: 78, Special: 85},

		// 2-star rare
		{Name: "Nami", Rarity: 2, Description: "Navigator", ImagePath: "2_star/nami.jpg", Health: 105, Melee: 50, Ranged: 80, Special: 70},
		{Name: "Nico Robin", Rarity: 2, Description: "Archaeologist", ImagePath: "2_star/robin.jpg", Health: 110, Melee: 55, Ranged: 75, Special: 75},
		{Name: "Brook", Rarity: 2, Description: "Skeleton musician", ImagePath: "2_star/brook.jpg", Health: 108, Melee: 65, Ranged: 60, Special: 65},
		{Name: "Crocodile", Rarity: 2, Description: "Mr. 0", ImagePath: "2_star/crocodile.jpg", Health: 120, Melee: 70, Ranged: 65, Special: 90},
		{Name: "Buggy", Rarity: 2, Description: "Clown", ImagePath: "2_star/buggy.jpg", Health: 95, Melee: 40, Ranged: 55, Special: 60},
		{Name: "Franky", Rarity: 2, Description: "Cyborg", ImagePath: "2_star/franky.jpg", Health: 110, Melee: 60, Ranged: 75, Special: 50},
		{Name: "Smoker", Rarity: 2, Description: "Smoke", ImagePath: "2_star/smoker.jpg", Health: 115, Melee: 65, Ranged: 65, Special: 70},
		{Name: "Tashigi", Rarity: 2, Description: "Swordswoman", ImagePath: "2_star/tashigi.jpg", Health: 105, Melee: 75, Ranged: 60, Special: 65},
		{Name: "Pell", Rarity: 2, Description: "Falcon", ImagePath: "2_star/pell.jpg", Health: 108, Melee: 60, Ranged: 75, Special: 65},
		{Name: "Morgan", Rarity: 2, Description: "Axe hand", ImagePath: "2_star/morgan.jpg", Health: 100, Melee: 70, Ranged: 55, Special: 60},
		{Name: "Hina", Rarity: 2, Description: "Cage", ImagePath: "2_star/hina.jpg", Health: 112, Melee: 62, Ranged: 70, Special: 68},
		{Name: "Jango", Rarity: 2, Description: "Hypnotist", ImagePath: "2_star/jango.jpg", Health: 98, Melee: 55, Ranged: 75, Special: 62},
		{Name: "Kalgara", Rarity: 2, Description: "Shandian warrior", ImagePath: "2_star/kalgara.jpg", Health: 115, Melee: 65, Ranged: 60, Special: 65},
		{Name: "Miss Valentine", Rarity: 2, Description: "Light as a feather", ImagePath: "2_star/valentine.jpg", Health: 105, Melee: 58, Ranged: 70, Special: 65},
		{Name: "Shu", Rarity: 2, Description: "Sword eater", ImagePath: "2_star/shu.jpg", Health: 100, Melee: 62, Ranged: 60, Special: 65},
		{Name: "Dorry", Rarity: 2, Description: "Giant warrior", ImagePath: "2_star/dorry.jpg", Health: 120, Melee: 70, Ranged: 50, Special: 60},
		{Name: "Brogy", Rarity: 2, Description: "Giant captain", ImagePath: "2_star/brogy.jpg", Health: 110, Melee: 65, Ranged: 58, Special: 62},
		{Name: "Kokoro", Rarity: 2, Description: "Mermaid", ImagePath: "2_star/kokoro.jpg", Health: 105, Melee: 50, Ranged: 75, Special: 65},

		// 1-star common
		{Name: "Vivi", Rarity: 1, Description: "Princess", ImagePath: "1_star/vivi.jpg", Health: 80, Melee: 35, Ranged: 40, Special: 45},
		{Name: "Bonney", Rarity: 1, Description: "Glutton", ImagePath: "1_star/bonney.jpg", Health: 77, Melee: 38, Ranged: 42, Special: 48},
		{Name: "Bon Clay", Rarity: 1, Description: "Mimicry", ImagePath: "1_star/bonclay.jpg", Health: 83, Melee: 42, Ranged: 40, Special: 50},
		{Name: "Chopper", Rarity: 1, Description: "Doctor", ImagePath: "1_star/chopper.jpg", Health: 85, Melee: 45, Ranged: 35, Special: 55},
		{Name: "Usopp", Rarity: 1, Description: "King of snipers", ImagePath: "1_star/usopp.jpg", Health: 75, Melee: 45, Ranged: 80, Special: 50},
		{Name: "Koby", Rarity: 1, Description: "Marine", ImagePath: "1_star/koby.jpg", Health: 75, Melee: 70, Ranged: 40, Special: 50},
		{Name: "Rebecca", Rarity: 1, Description: "Gladiator", ImagePath: "1_star/rebecca.jpg", Health: 80, Melee: 65, Ranged: 48, Special: 48},
		{Name: "Gan Fall", Rarity: 1, Description: "Knight of the sky", ImagePath: "1_star/ganfall.jpg", Health: 83, Melee: 68, Ranged: 40, Special: 45},
		{Name: "Dadan", Rarity: 1, Description: "Guardian", ImagePath: "1_star/dadan.jpg", Health: 77, Melee: 60, Ranged: 45, Special: 45},
		{Name: "Karoo", Rarity: 1, Description: "Duck", ImagePath: "1_star/karoo.jpg", Health: 73, Melee: 30, Ranged: 35, Special: 40},
		{Name: "Momonosuke", Rarity: 1, Description: "Dragon boy", ImagePath: "1_star/momonosuke.jpg", Health: 78, Melee: 38, Ranged: 40, Special: 42},
		{Name: "Camie", Rarity: 1, Description: "Mermaid", ImagePath: "1_star/camie.jpg", Health: 74, Melee: 32, Ranged: 37, Special: 43},
		{Name: "Helmeppo", Rarity: 1, Description: "Captain's son", ImagePath: "1_star/helmeppo.jpg", Health: 76, Melee: 36, Ranged: 39, Special: 41},
		{Name: "Kappa", Rarity: 1, Description: "Water spirit", ImagePath: "1_star/kappa.jpg", Health: 77, Melee: 38, Ranged: 35, Special: 38},
		{Name: "Tama", Rarity: 1, Description: "Girl with gifts", ImagePath: "1_star/tama.jpg", Health: 75, Melee: 32, Ranged: 38, Special: 42},
		{Name: "Pappag", Rarity: 1, Description: "Starfish", ImagePath: "1_star/pappag.jpg", Health: 73, Melee: 30, Ranged: 37, Special: 40},
		{Name: "Banchina", Rarity: 1, Description: "Usopp's mother", ImagePath: "1_star/banchina.jpg", Health: 75, Melee: 30, Ranged: 35, Special: 40},
		{Name: "Makino", Rarity: 1, Description: "Barmaid", ImagePath: "1_star/makino.jpg", Health: 78, Melee: 35, Ranged: 40, Special: 45},
	}
}
