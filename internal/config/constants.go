package config

import "github.com/awardpool/awardpool/internal/parsers"

const DefaultDatabasePath = "./awardpool.db"

// DefaultCompactLayout maps row indexes of the compact dual-column results
// table to the category names of its two columns. The mapping follows the
// Academy Awards article layout; other ceremonies supply their own.
func DefaultCompactLayout() parsers.CompactLayout {
	return parsers.CompactLayout{
		0:  {"Best Picture", "Best Director"},
		1:  {"Best Actor", "Best Actress"},
		2:  {"Best Supporting Actor", "Best Supporting Actress"},
		3:  {"Best Original Screenplay", "Best Adapted Screenplay"},
		4:  {"Best Animated Feature", "Best International Feature"},
		5:  {"Best Documentary Feature", "Best Documentary Short"},
		6:  {"Best Live Action Short", "Best Animated Short"},
		7:  {"Best Original Score", "Best Original Song"},
		8:  {"Best Sound", "Best Production Design"},
		9:  {"Best Cinematography", "Best Makeup and Hairstyling"},
		10: {"Best Costume Design", "Best Film Editing"},
		11: {"Best Visual Effects", ""},
	}
}
