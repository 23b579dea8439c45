package xiv

const (
	GuardianAlthyk Guardian = iota + 1
	GuardianAzeyma
	GuardianByregot
	GuardianHalone
	GuardianLlymlaen
	GuardianMenphina
	GuardianNaldThal
	GuardianNophica
	GuardianNymeia
	GuardianOschon
	GuardianRhalgr
	GuardianThaliak

	numGuardians = iota
)

// moon is the nameday moon the guardian presides over: odd moons are the
// Astral moons (1st Astral = 1), even moons the Umbral ones (1st Umbral = 2).
var guardianRows = [numGuardians + 1]guardianRow{
	GuardianAlthyk:   {label: label{code: "Althyk", name: "Althyk"}, epithet: "the Keeper", moon: 12},
	GuardianAzeyma:   {label: label{code: "Azeyma", name: "Azeyma"}, epithet: "the Warden", moon: 9},
	GuardianByregot:  {label: label{code: "Byregot", name: "Byregot"}, epithet: "the Builder", moon: 7},
	GuardianHalone:   {label: label{code: "Halone", name: "Halone"}, epithet: "the Fury", moon: 1},
	GuardianLlymlaen: {label: label{code: "Llymlaen", name: "Llymlaen"}, epithet: "the Navigator", moon: 5},
	GuardianMenphina: {label: label{code: "Menphina", name: "Menphina"}, epithet: "the Lover", moon: 2},
	GuardianNaldThal: {label: label{code: "NaldThal", name: "Nald'thal"}, epithet: "the Traders", moon: 10},
	GuardianNophica:  {label: label{code: "Nophica", name: "Nophica"}, epithet: "the Matron", moon: 11},
	GuardianNymeia:   {label: label{code: "Nymeia", name: "Nymeia"}, epithet: "the Spinner", moon: 4},
	GuardianOschon:   {label: label{code: "Oschon", name: "Oschon"}, epithet: "the Wanderer", moon: 6},
	GuardianRhalgr:   {label: label{code: "Rhalgr", name: "Rhalgr"}, epithet: "the Destroyer", moon: 8},
	GuardianThaliak:  {label: label{code: "Thaliak", name: "Thaliak"}, epithet: "the Scholar", moon: 3},
}
