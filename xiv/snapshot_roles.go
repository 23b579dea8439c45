package xiv

const (
	RoleDPS Role = iota + 1
	RoleHealer
	RoleTank

	numRoles = iota
)

var roleRows = [numRoles + 1]roleRow{
	RoleDPS:    {label: label{code: "DPS", name: "DPS"}},
	RoleHealer: {label: label{code: "Healer", name: "Healer"}},
	RoleTank:   {label: label{code: "Tank", name: "Tank"}},
}

const (
	ClassificationWar Classification = iota + 1
	ClassificationMagic
	ClassificationLand
	ClassificationHand

	numClassifications = iota
)

var classificationRows = [numClassifications + 1]classificationRow{
	ClassificationWar:   {label: label{code: "War", name: "Disciple of War", abbr: "DoW"}},
	ClassificationMagic: {label: label{code: "Magic", name: "Disciple of Magic", abbr: "DoM"}},
	ClassificationLand:  {label: label{code: "Land", name: "Disciple of the Land", abbr: "DoL"}},
	ClassificationHand:  {label: label{code: "Hand", name: "Disciple of the Hand", abbr: "DoH"}},
}
