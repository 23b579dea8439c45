package xiv

const (
	RaceAuRa Race = iota + 1
	RaceElezen
	RaceHyur
	RaceLalafell
	RaceMiqote
	RaceRoegadyn
	RaceHrothgar
	RaceViera

	numRaces = iota
)

var raceRows = [numRaces + 1]raceRow{
	RaceAuRa:     {label: label{code: "AuRa", name: "Au Ra"}},
	RaceElezen:   {label: label{code: "Elezen", name: "Elezen"}},
	RaceHyur:     {label: label{code: "Hyur", name: "Hyur"}},
	RaceLalafell: {label: label{code: "Lalafell", name: "Lalafell"}},
	RaceMiqote:   {label: label{code: "Miqote", name: "Miqo'te"}},
	RaceRoegadyn: {label: label{code: "Roegadyn", name: "Roegadyn"}},
	RaceHrothgar: {label: label{code: "Hrothgar", name: "Hrothgar"}},
	RaceViera:    {label: label{code: "Viera", name: "Viera"}},
}

const (
	// Au Ra
	ClanRaen Clan = iota + 1
	ClanXaela
	// Elezen
	ClanDuskwight
	ClanWildwood
	// Hyur
	ClanHighlander
	ClanMidlander
	// Lalafell
	ClanDunesfolk
	ClanPlainsfolk
	// Miqo'te
	ClanKeeperOfTheMoon
	ClanSeekerOfTheSun
	// Roegadyn
	ClanHellsguard
	ClanSeaWolf
	// Hrothgar
	ClanHelions
	ClanTheLost
	// Viera
	ClanRava
	ClanVeena

	numClans = iota
)

// Race.Clans is derived from this table, so moving a clan is one edit here.
var clanRows = [numClans + 1]clanRow{
	ClanRaen:            {label: label{code: "Raen", name: "Raen"}, race: RaceAuRa},
	ClanXaela:           {label: label{code: "Xaela", name: "Xaela"}, race: RaceAuRa},
	ClanDuskwight:       {label: label{code: "Duskwight", name: "Duskwight"}, race: RaceElezen},
	ClanWildwood:        {label: label{code: "Wildwood", name: "Wildwood"}, race: RaceElezen},
	ClanHighlander:      {label: label{code: "Highlander", name: "Highlander"}, race: RaceHyur},
	ClanMidlander:       {label: label{code: "Midlander", name: "Midlander"}, race: RaceHyur},
	ClanDunesfolk:       {label: label{code: "Dunesfolk", name: "Dunesfolk"}, race: RaceLalafell},
	ClanPlainsfolk:      {label: label{code: "Plainsfolk", name: "Plainsfolk"}, race: RaceLalafell},
	ClanKeeperOfTheMoon: {label: label{code: "KeeperOfTheMoon", name: "Keeper of the Moon"}, race: RaceMiqote},
	ClanSeekerOfTheSun:  {label: label{code: "SeekerOfTheSun", name: "Seeker of the Sun"}, race: RaceMiqote},
	ClanHellsguard:      {label: label{code: "Hellsguard", name: "Hellsguard"}, race: RaceRoegadyn},
	ClanSeaWolf:         {label: label{code: "SeaWolf", name: "Sea Wolf"}, race: RaceRoegadyn},
	ClanHelions:         {label: label{code: "Helions", name: "Helions"}, race: RaceHrothgar},
	ClanTheLost:         {label: label{code: "TheLost", name: "The Lost"}, race: RaceHrothgar},
	ClanRava:            {label: label{code: "Rava", name: "Rava"}, race: RaceViera},
	ClanVeena:           {label: label{code: "Veena", name: "Veena"}, race: RaceViera},
}
