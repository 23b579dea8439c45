package xiv

const (
	RegionNorthAmerica Region = iota + 1
	RegionEurope
	RegionOceania
	RegionJapan
	RegionKorea

	numRegions = iota
)

var regionRows = [numRegions + 1]regionRow{
	RegionNorthAmerica: {label: label{code: "NorthAmerica", name: "North America", abbr: "NA"}},
	RegionEurope:       {label: label{code: "Europe", name: "Europe", abbr: "EU"}},
	RegionOceania:      {label: label{code: "Oceania", name: "Oceania", abbr: "OCE"}},
	RegionJapan:        {label: label{code: "Japan", name: "Japan", abbr: "JP"}},
	RegionKorea:        {label: label{code: "Korea", name: "Korea", abbr: "KR"}},
}

const (
	DataCenterAether DataCenter = iota + 1
	DataCenterChaos
	DataCenterCrystal
	DataCenterDynamis
	DataCenterElemental
	DataCenterGaia
	DataCenterLight
	DataCenterMana
	DataCenterMateria
	DataCenterMeteor
	DataCenterPrimal
	DataCenterKorea

	numDataCenters = iota
)

var dataCenterRows = [numDataCenters + 1]dataCenterRow{
	DataCenterAether:    {label: label{code: "Aether", name: "Aether"}, region: RegionNorthAmerica},
	DataCenterChaos:     {label: label{code: "Chaos", name: "Chaos"}, region: RegionEurope},
	DataCenterCrystal:   {label: label{code: "Crystal", name: "Crystal"}, region: RegionNorthAmerica},
	DataCenterDynamis:   {label: label{code: "Dynamis", name: "Dynamis"}, region: RegionNorthAmerica},
	DataCenterElemental: {label: label{code: "Elemental", name: "Elemental"}, region: RegionJapan},
	DataCenterGaia:      {label: label{code: "Gaia", name: "Gaia"}, region: RegionJapan},
	DataCenterLight:     {label: label{code: "Light", name: "Light"}, region: RegionEurope},
	DataCenterMana:      {label: label{code: "Mana", name: "Mana"}, region: RegionJapan},
	DataCenterMateria:   {label: label{code: "Materia", name: "Materia"}, region: RegionOceania},
	DataCenterMeteor:    {label: label{code: "Meteor", name: "Meteor"}, region: RegionJapan},
	DataCenterPrimal:    {label: label{code: "Primal", name: "Primal"}, region: RegionNorthAmerica},
	DataCenterKorea:     {label: label{code: "한국", name: "한국", aliases: []string{"Korea"}}, region: RegionKorea},
}

const (
	// Aether
	WorldAdamantoise World = iota + 1
	WorldCactuar
	WorldFaerie
	WorldGilgamesh
	WorldJenova
	WorldMidgardsormr
	WorldSargatanas
	WorldSiren

	// Chaos
	WorldCerberus
	WorldLouisoix
	WorldMoogle
	WorldOmega
	WorldPhantom
	WorldRagnarok
	WorldSagittarius
	WorldSpriggan

	// Crystal
	WorldBalmung
	WorldBrynhildr
	WorldCoeurl
	WorldDiabolos
	WorldGoblin
	WorldMalboro
	WorldMateus
	WorldZalera

	// Dynamis
	WorldCuchulainn
	WorldGolem
	WorldHalicarnassus
	WorldKraken
	WorldMaduin
	WorldMarilith
	WorldRafflesia
	WorldSeraph

	// Elemental
	WorldAegis
	WorldAtomos
	WorldCarbuncle
	WorldGaruda
	WorldGungnir
	WorldKujata
	WorldTonberry
	WorldTyphon

	// Gaia
	WorldAlexander
	WorldBahamut
	WorldDurandal
	WorldFenrir
	WorldIfrit
	WorldRidill
	WorldTiamat
	WorldUltima

	// Light
	WorldAlpha
	WorldLich
	WorldOdin
	WorldPhoenix
	WorldRaiden
	WorldShiva
	WorldTwintania
	WorldZodiark

	// Mana
	WorldAnima
	WorldAsura
	WorldChocobo
	WorldHades
	WorldIxion
	WorldMasamune
	WorldPandaemonium
	WorldTitan

	// Materia
	WorldBismarck
	WorldRavana
	WorldSephirot
	WorldSophia
	WorldZurvan

	// Meteor
	WorldBelias
	WorldMandragora
	WorldRamuh
	WorldShinryu
	WorldUnicorn
	WorldValefor
	WorldYojimbo
	WorldZeromus

	// Primal
	WorldBehemoth
	WorldExcalibur
	WorldExodus
	WorldFamfrit
	WorldHyperion
	WorldLamia
	WorldLeviathan
	WorldUltros

	// 한국. These share names with Japanese worlds, hence the Kr prefix on the
	// identifiers; their codes are the Hangul names.
	WorldKrCarbuncle
	WorldKrChocobo
	WorldKrMoogle
	WorldKrTonberry
	WorldKrFenrir

	numWorlds = iota
)

// Rows are grouped by data center, in the same order as the constants.
var worldRows = [numWorlds + 1]worldRow{
	WorldAdamantoise:  {label: label{code: "Adamantoise", name: "Adamantoise"}, dataCenter: DataCenterAether},
	WorldCactuar:      {label: label{code: "Cactuar", name: "Cactuar"}, dataCenter: DataCenterAether},
	WorldFaerie:       {label: label{code: "Faerie", name: "Faerie"}, dataCenter: DataCenterAether},
	WorldGilgamesh:    {label: label{code: "Gilgamesh", name: "Gilgamesh"}, dataCenter: DataCenterAether},
	WorldJenova:       {label: label{code: "Jenova", name: "Jenova"}, dataCenter: DataCenterAether},
	WorldMidgardsormr: {label: label{code: "Midgardsormr", name: "Midgardsormr"}, dataCenter: DataCenterAether},
	WorldSargatanas:   {label: label{code: "Sargatanas", name: "Sargatanas"}, dataCenter: DataCenterAether},
	WorldSiren:        {label: label{code: "Siren", name: "Siren"}, dataCenter: DataCenterAether},

	WorldCerberus:    {label: label{code: "Cerberus", name: "Cerberus"}, dataCenter: DataCenterChaos},
	WorldLouisoix:    {label: label{code: "Louisoix", name: "Louisoix"}, dataCenter: DataCenterChaos},
	WorldMoogle:      {label: label{code: "Moogle", name: "Moogle"}, dataCenter: DataCenterChaos},
	WorldOmega:       {label: label{code: "Omega", name: "Omega"}, dataCenter: DataCenterChaos},
	WorldPhantom:     {label: label{code: "Phantom", name: "Phantom"}, dataCenter: DataCenterChaos},
	WorldRagnarok:    {label: label{code: "Ragnarok", name: "Ragnarok"}, dataCenter: DataCenterChaos},
	WorldSagittarius: {label: label{code: "Sagittarius", name: "Sagittarius"}, dataCenter: DataCenterChaos},
	WorldSpriggan:    {label: label{code: "Spriggan", name: "Spriggan"}, dataCenter: DataCenterChaos},

	WorldBalmung:   {label: label{code: "Balmung", name: "Balmung"}, dataCenter: DataCenterCrystal},
	WorldBrynhildr: {label: label{code: "Brynhildr", name: "Brynhildr"}, dataCenter: DataCenterCrystal},
	WorldCoeurl:    {label: label{code: "Coeurl", name: "Coeurl"}, dataCenter: DataCenterCrystal},
	WorldDiabolos:  {label: label{code: "Diabolos", name: "Diabolos"}, dataCenter: DataCenterCrystal},
	WorldGoblin:    {label: label{code: "Goblin", name: "Goblin"}, dataCenter: DataCenterCrystal},
	WorldMalboro:   {label: label{code: "Malboro", name: "Malboro"}, dataCenter: DataCenterCrystal},
	WorldMateus:    {label: label{code: "Mateus", name: "Mateus"}, dataCenter: DataCenterCrystal},
	WorldZalera:    {label: label{code: "Zalera", name: "Zalera"}, dataCenter: DataCenterCrystal},

	WorldCuchulainn:    {label: label{code: "Cuchulainn", name: "Cuchulainn"}, dataCenter: DataCenterDynamis},
	WorldGolem:         {label: label{code: "Golem", name: "Golem"}, dataCenter: DataCenterDynamis},
	WorldHalicarnassus: {label: label{code: "Halicarnassus", name: "Halicarnassus"}, dataCenter: DataCenterDynamis},
	WorldKraken:        {label: label{code: "Kraken", name: "Kraken"}, dataCenter: DataCenterDynamis},
	WorldMaduin:        {label: label{code: "Maduin", name: "Maduin"}, dataCenter: DataCenterDynamis},
	WorldMarilith:      {label: label{code: "Marilith", name: "Marilith"}, dataCenter: DataCenterDynamis},
	WorldRafflesia:     {label: label{code: "Rafflesia", name: "Rafflesia"}, dataCenter: DataCenterDynamis},
	WorldSeraph:        {label: label{code: "Seraph", name: "Seraph"}, dataCenter: DataCenterDynamis},

	WorldAegis:     {label: label{code: "Aegis", name: "Aegis"}, dataCenter: DataCenterElemental},
	WorldAtomos:    {label: label{code: "Atomos", name: "Atomos"}, dataCenter: DataCenterElemental},
	WorldCarbuncle: {label: label{code: "Carbuncle", name: "Carbuncle"}, dataCenter: DataCenterElemental},
	WorldGaruda:    {label: label{code: "Garuda", name: "Garuda"}, dataCenter: DataCenterElemental},
	WorldGungnir:   {label: label{code: "Gungnir", name: "Gungnir"}, dataCenter: DataCenterElemental},
	WorldKujata:    {label: label{code: "Kujata", name: "Kujata"}, dataCenter: DataCenterElemental},
	WorldTonberry:  {label: label{code: "Tonberry", name: "Tonberry"}, dataCenter: DataCenterElemental},
	WorldTyphon:    {label: label{code: "Typhon", name: "Typhon"}, dataCenter: DataCenterElemental},

	WorldAlexander: {label: label{code: "Alexander", name: "Alexander"}, dataCenter: DataCenterGaia},
	WorldBahamut:   {label: label{code: "Bahamut", name: "Bahamut"}, dataCenter: DataCenterGaia},
	WorldDurandal:  {label: label{code: "Durandal", name: "Durandal"}, dataCenter: DataCenterGaia},
	WorldFenrir:    {label: label{code: "Fenrir", name: "Fenrir"}, dataCenter: DataCenterGaia},
	WorldIfrit:     {label: label{code: "Ifrit", name: "Ifrit"}, dataCenter: DataCenterGaia},
	WorldRidill:    {label: label{code: "Ridill", name: "Ridill"}, dataCenter: DataCenterGaia},
	WorldTiamat:    {label: label{code: "Tiamat", name: "Tiamat"}, dataCenter: DataCenterGaia},
	WorldUltima:    {label: label{code: "Ultima", name: "Ultima"}, dataCenter: DataCenterGaia},

	WorldAlpha:     {label: label{code: "Alpha", name: "Alpha"}, dataCenter: DataCenterLight},
	WorldLich:      {label: label{code: "Lich", name: "Lich"}, dataCenter: DataCenterLight},
	WorldOdin:      {label: label{code: "Odin", name: "Odin"}, dataCenter: DataCenterLight},
	WorldPhoenix:   {label: label{code: "Phoenix", name: "Phoenix"}, dataCenter: DataCenterLight},
	WorldRaiden:    {label: label{code: "Raiden", name: "Raiden"}, dataCenter: DataCenterLight},
	WorldShiva:     {label: label{code: "Shiva", name: "Shiva"}, dataCenter: DataCenterLight},
	WorldTwintania: {label: label{code: "Twintania", name: "Twintania"}, dataCenter: DataCenterLight},
	WorldZodiark:   {label: label{code: "Zodiark", name: "Zodiark"}, dataCenter: DataCenterLight},

	WorldAnima:        {label: label{code: "Anima", name: "Anima"}, dataCenter: DataCenterMana},
	WorldAsura:        {label: label{code: "Asura", name: "Asura"}, dataCenter: DataCenterMana},
	WorldChocobo:      {label: label{code: "Chocobo", name: "Chocobo"}, dataCenter: DataCenterMana},
	WorldHades:        {label: label{code: "Hades", name: "Hades"}, dataCenter: DataCenterMana},
	WorldIxion:        {label: label{code: "Ixion", name: "Ixion"}, dataCenter: DataCenterMana},
	WorldMasamune:     {label: label{code: "Masamune", name: "Masamune"}, dataCenter: DataCenterMana},
	WorldPandaemonium: {label: label{code: "Pandaemonium", name: "Pandaemonium"}, dataCenter: DataCenterMana},
	WorldTitan:        {label: label{code: "Titan", name: "Titan"}, dataCenter: DataCenterMana},

	WorldBismarck: {label: label{code: "Bismarck", name: "Bismarck"}, dataCenter: DataCenterMateria},
	WorldRavana:   {label: label{code: "Ravana", name: "Ravana"}, dataCenter: DataCenterMateria},
	WorldSephirot: {label: label{code: "Sephirot", name: "Sephirot"}, dataCenter: DataCenterMateria},
	WorldSophia:   {label: label{code: "Sophia", name: "Sophia"}, dataCenter: DataCenterMateria},
	WorldZurvan:   {label: label{code: "Zurvan", name: "Zurvan"}, dataCenter: DataCenterMateria},

	WorldBelias:     {label: label{code: "Belias", name: "Belias"}, dataCenter: DataCenterMeteor},
	WorldMandragora: {label: label{code: "Mandragora", name: "Mandragora"}, dataCenter: DataCenterMeteor},
	WorldRamuh:      {label: label{code: "Ramuh", name: "Ramuh"}, dataCenter: DataCenterMeteor},
	WorldShinryu:    {label: label{code: "Shinryu", name: "Shinryu"}, dataCenter: DataCenterMeteor},
	WorldUnicorn:    {label: label{code: "Unicorn", name: "Unicorn"}, dataCenter: DataCenterMeteor},
	WorldValefor:    {label: label{code: "Valefor", name: "Valefor"}, dataCenter: DataCenterMeteor},
	WorldYojimbo:    {label: label{code: "Yojimbo", name: "Yojimbo"}, dataCenter: DataCenterMeteor},
	WorldZeromus:    {label: label{code: "Zeromus", name: "Zeromus"}, dataCenter: DataCenterMeteor},

	WorldBehemoth:  {label: label{code: "Behemoth", name: "Behemoth"}, dataCenter: DataCenterPrimal},
	WorldExcalibur: {label: label{code: "Excalibur", name: "Excalibur"}, dataCenter: DataCenterPrimal},
	WorldExodus:    {label: label{code: "Exodus", name: "Exodus"}, dataCenter: DataCenterPrimal},
	WorldFamfrit:   {label: label{code: "Famfrit", name: "Famfrit"}, dataCenter: DataCenterPrimal},
	WorldHyperion:  {label: label{code: "Hyperion", name: "Hyperion"}, dataCenter: DataCenterPrimal},
	WorldLamia:     {label: label{code: "Lamia", name: "Lamia"}, dataCenter: DataCenterPrimal},
	WorldLeviathan: {label: label{code: "Leviathan", name: "Leviathan"}, dataCenter: DataCenterPrimal},
	WorldUltros:    {label: label{code: "Ultros", name: "Ultros"}, dataCenter: DataCenterPrimal},

	WorldKrCarbuncle: {label: label{code: "카벙클", name: "카벙클"}, dataCenter: DataCenterKorea},
	WorldKrChocobo:   {label: label{code: "초코보", name: "초코보"}, dataCenter: DataCenterKorea},
	WorldKrMoogle:    {label: label{code: "모그리", name: "모그리"}, dataCenter: DataCenterKorea},
	WorldKrTonberry:  {label: label{code: "톤베리", name: "톤베리"}, dataCenter: DataCenterKorea},
	WorldKrFenrir:    {label: label{code: "펜리르", name: "펜리르"}, dataCenter: DataCenterKorea},
}
