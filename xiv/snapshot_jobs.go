package xiv

const (
	// DPS
	JobBard Job = iota + 1
	JobBlackMage
	JobBlueMage
	JobDancer
	JobDragoon
	JobMachinist
	JobMonk
	JobNinja
	JobPictomancer
	JobReaper
	JobRedMage
	JobSamurai
	JobSummoner
	JobViper

	// Healer
	JobAstrologian
	JobSage
	JobScholar
	JobWhiteMage

	// Tank
	JobDarkKnight
	JobGunbreaker
	JobPaladin
	JobWarrior

	numJobs = iota
)

var jobRows = [numJobs + 1]jobRow{
	JobBard:        {label: label{code: "Bard", name: "Bard", abbr: "BRD"}, role: RoleDPS, classification: ClassificationWar, class: ClassArcher},
	JobBlackMage:   {label: label{code: "BlackMage", name: "Black Mage", abbr: "BLM"}, role: RoleDPS, classification: ClassificationMagic, class: ClassThaumaturge},
	JobBlueMage:    {label: label{code: "BlueMage", name: "Blue Mage", abbr: "BLU"}, role: RoleDPS, classification: ClassificationMagic},
	JobDancer:      {label: label{code: "Dancer", name: "Dancer", abbr: "DNC"}, role: RoleDPS, classification: ClassificationWar},
	JobDragoon:     {label: label{code: "Dragoon", name: "Dragoon", abbr: "DRG"}, role: RoleDPS, classification: ClassificationWar, class: ClassLancer},
	JobMachinist:   {label: label{code: "Machinist", name: "Machinist", abbr: "MCH"}, role: RoleDPS, classification: ClassificationWar},
	JobMonk:        {label: label{code: "Monk", name: "Monk", abbr: "MNK"}, role: RoleDPS, classification: ClassificationWar, class: ClassPugilist},
	JobNinja:       {label: label{code: "Ninja", name: "Ninja", abbr: "NIN"}, role: RoleDPS, classification: ClassificationWar, class: ClassRogue},
	JobPictomancer: {label: label{code: "Pictomancer", name: "Pictomancer", abbr: "PCT"}, role: RoleDPS, classification: ClassificationMagic},
	JobReaper:      {label: label{code: "Reaper", name: "Reaper", abbr: "RPR"}, role: RoleDPS, classification: ClassificationWar},
	JobRedMage:     {label: label{code: "RedMage", name: "Red Mage", abbr: "RDM"}, role: RoleDPS, classification: ClassificationMagic},
	JobSamurai:     {label: label{code: "Samurai", name: "Samurai", abbr: "SAM"}, role: RoleDPS, classification: ClassificationWar},
	JobSummoner:    {label: label{code: "Summoner", name: "Summoner", abbr: "SMN"}, role: RoleDPS, classification: ClassificationMagic, class: ClassArcanist},
	JobViper:       {label: label{code: "Viper", name: "Viper", abbr: "VPR"}, role: RoleDPS, classification: ClassificationWar},

	JobAstrologian: {label: label{code: "Astrologian", name: "Astrologian", abbr: "AST"}, role: RoleHealer, classification: ClassificationMagic},
	JobSage:        {label: label{code: "Sage", name: "Sage", abbr: "SGE"}, role: RoleHealer, classification: ClassificationMagic},
	JobScholar:     {label: label{code: "Scholar", name: "Scholar", abbr: "SCH"}, role: RoleHealer, classification: ClassificationMagic, class: ClassArcanist},
	JobWhiteMage:   {label: label{code: "WhiteMage", name: "White Mage", abbr: "WHM"}, role: RoleHealer, classification: ClassificationMagic, class: ClassConjurer},

	JobDarkKnight: {label: label{code: "DarkKnight", name: "Dark Knight", abbr: "DRK"}, role: RoleTank, classification: ClassificationWar},
	JobGunbreaker: {label: label{code: "Gunbreaker", name: "Gunbreaker", abbr: "GNB"}, role: RoleTank, classification: ClassificationWar},
	JobPaladin:    {label: label{code: "Paladin", name: "Paladin", abbr: "PLD"}, role: RoleTank, classification: ClassificationWar, class: ClassGladiator},
	JobWarrior:    {label: label{code: "Warrior", name: "Warrior", abbr: "WAR"}, role: RoleTank, classification: ClassificationWar, class: ClassMarauder},
}

const (
	ClassArcanist Class = iota + 1
	ClassArcher
	ClassConjurer
	ClassGladiator
	ClassLancer
	ClassMarauder
	ClassPugilist
	ClassRogue
	ClassThaumaturge

	numClasses = iota
)

var classRows = [numClasses + 1]classRow{
	ClassArcanist:    {label: label{code: "Arcanist", name: "Arcanist", abbr: "ACN"}, role: RoleDPS, classification: ClassificationMagic},
	ClassArcher:      {label: label{code: "Archer", name: "Archer", abbr: "ARC"}, role: RoleDPS, classification: ClassificationWar},
	ClassConjurer:    {label: label{code: "Conjurer", name: "Conjurer", abbr: "CNJ"}, role: RoleHealer, classification: ClassificationMagic},
	ClassGladiator:   {label: label{code: "Gladiator", name: "Gladiator", abbr: "GLA"}, role: RoleTank, classification: ClassificationWar},
	ClassLancer:      {label: label{code: "Lancer", name: "Lancer", abbr: "LNC"}, role: RoleDPS, classification: ClassificationWar},
	ClassMarauder:    {label: label{code: "Marauder", name: "Marauder", abbr: "MRD"}, role: RoleTank, classification: ClassificationWar},
	ClassPugilist:    {label: label{code: "Pugilist", name: "Pugilist", abbr: "PGL"}, role: RoleDPS, classification: ClassificationWar},
	ClassRogue:       {label: label{code: "Rogue", name: "Rogue", abbr: "ROG"}, role: RoleDPS, classification: ClassificationWar},
	ClassThaumaturge: {label: label{code: "Thaumaturge", name: "Thaumaturge", abbr: "THM"}, role: RoleDPS, classification: ClassificationMagic},
}

const (
	// Gatherers
	NonCombatJobBotanist NonCombatJob = iota + 1
	NonCombatJobFisher
	NonCombatJobMiner

	// Crafters
	NonCombatJobAlchemist
	NonCombatJobArmorer
	NonCombatJobBlacksmith
	NonCombatJobCarpenter
	NonCombatJobCulinarian
	NonCombatJobGoldsmith
	NonCombatJobLeatherworker
	NonCombatJobWeaver

	numNonCombatJobs = iota
)

var nonCombatJobRows = [numNonCombatJobs + 1]nonCombatJobRow{
	NonCombatJobBotanist: {label: label{code: "Botanist", name: "Botanist", abbr: "BTN"}, classification: ClassificationLand},
	NonCombatJobFisher:   {label: label{code: "Fisher", name: "Fisher", abbr: "FSH"}, classification: ClassificationLand},
	NonCombatJobMiner:    {label: label{code: "Miner", name: "Miner", abbr: "MIN"}, classification: ClassificationLand},

	NonCombatJobAlchemist:     {label: label{code: "Alchemist", name: "Alchemist", abbr: "ALC"}, classification: ClassificationHand},
	NonCombatJobArmorer:       {label: label{code: "Armorer", name: "Armorer", abbr: "ARM"}, classification: ClassificationHand},
	NonCombatJobBlacksmith:    {label: label{code: "Blacksmith", name: "Blacksmith", abbr: "BSM"}, classification: ClassificationHand},
	NonCombatJobCarpenter:     {label: label{code: "Carpenter", name: "Carpenter", abbr: "CRP"}, classification: ClassificationHand},
	NonCombatJobCulinarian:    {label: label{code: "Culinarian", name: "Culinarian", abbr: "CUL"}, classification: ClassificationHand},
	NonCombatJobGoldsmith:     {label: label{code: "Goldsmith", name: "Goldsmith", abbr: "GSM"}, classification: ClassificationHand},
	NonCombatJobLeatherworker: {label: label{code: "Leatherworker", name: "Leatherworker", abbr: "LTW"}, classification: ClassificationHand},
	NonCombatJobWeaver:        {label: label{code: "Weaver", name: "Weaver", abbr: "WVR"}, classification: ClassificationHand},
}
