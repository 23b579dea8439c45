package xiv

import (
	"database/sql/driver"

	"gopkg.in/yaml.v3"
)

// Every type encodes as its Code and decodes through its parser.

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) { return encodeText(domainRole, r, r.IsValid(), r.Code()) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error { return decodeText(roleIndex, r, text) }

// MarshalYAML implements yaml.Marshaler.
func (r Role) MarshalYAML() (any, error) { return encodeYAML(domainRole, r, r.IsValid(), r.Code()) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Role) UnmarshalYAML(node *yaml.Node) error { return decodeYAML(roleIndex, r, node) }

// Value implements driver.Valuer; the column holds the code as TEXT.
func (r Role) Value() (driver.Value, error) { return encodeValue(domainRole, r, r.IsValid(), r.Code()) }

// Scan implements sql.Scanner.
func (r *Role) Scan(src any) error { return decodeValue(roleIndex, r, src) }

// MarshalText implements encoding.TextMarshaler.
func (c Classification) MarshalText() ([]byte, error) { return encodeText(domainClassification, c, c.IsValid(), c.Code()) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Classification) UnmarshalText(text []byte) error { return decodeText(classificationIndex, c, text) }

// MarshalYAML implements yaml.Marshaler.
func (c Classification) MarshalYAML() (any, error) { return encodeYAML(domainClassification, c, c.IsValid(), c.Code()) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Classification) UnmarshalYAML(node *yaml.Node) error { return decodeYAML(classificationIndex, c, node) }

// Value implements driver.Valuer; the column holds the code as TEXT.
func (c Classification) Value() (driver.Value, error) { return encodeValue(domainClassification, c, c.IsValid(), c.Code()) }

// Scan implements sql.Scanner.
func (c *Classification) Scan(src any) error { return decodeValue(classificationIndex, c, src) }

// MarshalText implements encoding.TextMarshaler.
func (r Region) MarshalText() ([]byte, error) { return encodeText(domainRegion, r, r.IsValid(), r.Code()) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Region) UnmarshalText(text []byte) error { return decodeText(regionIndex, r, text) }

// MarshalYAML implements yaml.Marshaler.
func (r Region) MarshalYAML() (any, error) { return encodeYAML(domainRegion, r, r.IsValid(), r.Code()) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Region) UnmarshalYAML(node *yaml.Node) error { return decodeYAML(regionIndex, r, node) }

// Value implements driver.Valuer; the column holds the code as TEXT.
func (r Region) Value() (driver.Value, error) { return encodeValue(domainRegion, r, r.IsValid(), r.Code()) }

// Scan implements sql.Scanner.
func (r *Region) Scan(src any) error { return decodeValue(regionIndex, r, src) }

// MarshalText implements encoding.TextMarshaler.
func (dc DataCenter) MarshalText() ([]byte, error) { return encodeText(domainDataCenter, dc, dc.IsValid(), dc.Code()) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (dc *DataCenter) UnmarshalText(text []byte) error { return decodeText(dataCenterIndex, dc, text) }

// MarshalYAML implements yaml.Marshaler.
func (dc DataCenter) MarshalYAML() (any, error) { return encodeYAML(domainDataCenter, dc, dc.IsValid(), dc.Code()) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (dc *DataCenter) UnmarshalYAML(node *yaml.Node) error { return decodeYAML(dataCenterIndex, dc, node) }

// Value implements driver.Valuer; the column holds the code as TEXT.
func (dc DataCenter) Value() (driver.Value, error) { return encodeValue(domainDataCenter, dc, dc.IsValid(), dc.Code()) }

// Scan implements sql.Scanner.
func (dc *DataCenter) Scan(src any) error { return decodeValue(dataCenterIndex, dc, src) }

// MarshalText implements encoding.TextMarshaler.
func (w World) MarshalText() ([]byte, error) { return encodeText(domainWorld, w, w.IsValid(), w.Code()) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *World) UnmarshalText(text []byte) error { return decodeText(worldIndex, w, text) }

// MarshalYAML implements yaml.Marshaler.
func (w World) MarshalYAML() (any, error) { return encodeYAML(domainWorld, w, w.IsValid(), w.Code()) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (w *World) UnmarshalYAML(node *yaml.Node) error { return decodeYAML(worldIndex, w, node) }

// Value implements driver.Valuer; the column holds the code as TEXT.
func (w World) Value() (driver.Value, error) { return encodeValue(domainWorld, w, w.IsValid(), w.Code()) }

// Scan implements sql.Scanner.
func (w *World) Scan(src any) error { return decodeValue(worldIndex, w, src) }

// MarshalText implements encoding.TextMarshaler.
func (r Race) MarshalText() ([]byte, error) { return encodeText(domainRace, r, r.IsValid(), r.Code()) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Race) UnmarshalText(text []byte) error { return decodeText(raceIndex, r, text) }

// MarshalYAML implements yaml.Marshaler.
func (r Race) MarshalYAML() (any, error) { return encodeYAML(domainRace, r, r.IsValid(), r.Code()) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Race) UnmarshalYAML(node *yaml.Node) error { return decodeYAML(raceIndex, r, node) }

// Value implements driver.Valuer; the column holds the code as TEXT.
func (r Race) Value() (driver.Value, error) { return encodeValue(domainRace, r, r.IsValid(), r.Code()) }

// Scan implements sql.Scanner.
func (r *Race) Scan(src any) error { return decodeValue(raceIndex, r, src) }

// MarshalText implements encoding.TextMarshaler.
func (c Clan) MarshalText() ([]byte, error) { return encodeText(domainClan, c, c.IsValid(), c.Code()) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Clan) UnmarshalText(text []byte) error { return decodeText(clanIndex, c, text) }

// MarshalYAML implements yaml.Marshaler.
func (c Clan) MarshalYAML() (any, error) { return encodeYAML(domainClan, c, c.IsValid(), c.Code()) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Clan) UnmarshalYAML(node *yaml.Node) error { return decodeYAML(clanIndex, c, node) }

// Value implements driver.Valuer; the column holds the code as TEXT.
func (c Clan) Value() (driver.Value, error) { return encodeValue(domainClan, c, c.IsValid(), c.Code()) }

// Scan implements sql.Scanner.
func (c *Clan) Scan(src any) error { return decodeValue(clanIndex, c, src) }

// MarshalText implements encoding.TextMarshaler.
func (j Job) MarshalText() ([]byte, error) { return encodeText(domainJob, j, j.IsValid(), j.Code()) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (j *Job) UnmarshalText(text []byte) error { return decodeText(jobIndex, j, text) }

// MarshalYAML implements yaml.Marshaler.
func (j Job) MarshalYAML() (any, error) { return encodeYAML(domainJob, j, j.IsValid(), j.Code()) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (j *Job) UnmarshalYAML(node *yaml.Node) error { return decodeYAML(jobIndex, j, node) }

// Value implements driver.Valuer; the column holds the code as TEXT.
func (j Job) Value() (driver.Value, error) { return encodeValue(domainJob, j, j.IsValid(), j.Code()) }

// Scan implements sql.Scanner.
func (j *Job) Scan(src any) error { return decodeValue(jobIndex, j, src) }

// MarshalText implements encoding.TextMarshaler.
func (c Class) MarshalText() ([]byte, error) { return encodeText(domainClass, c, c.IsValid(), c.Code()) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Class) UnmarshalText(text []byte) error { return decodeText(classIndex, c, text) }

// MarshalYAML implements yaml.Marshaler.
func (c Class) MarshalYAML() (any, error) { return encodeYAML(domainClass, c, c.IsValid(), c.Code()) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Class) UnmarshalYAML(node *yaml.Node) error { return decodeYAML(classIndex, c, node) }

// Value implements driver.Valuer; the column holds the code as TEXT.
func (c Class) Value() (driver.Value, error) { return encodeValue(domainClass, c, c.IsValid(), c.Code()) }

// Scan implements sql.Scanner.
func (c *Class) Scan(src any) error { return decodeValue(classIndex, c, src) }

// MarshalText implements encoding.TextMarshaler.
func (j NonCombatJob) MarshalText() ([]byte, error) { return encodeText(domainNonCombatJob, j, j.IsValid(), j.Code()) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (j *NonCombatJob) UnmarshalText(text []byte) error { return decodeText(nonCombatJobIndex, j, text) }

// MarshalYAML implements yaml.Marshaler.
func (j NonCombatJob) MarshalYAML() (any, error) { return encodeYAML(domainNonCombatJob, j, j.IsValid(), j.Code()) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (j *NonCombatJob) UnmarshalYAML(node *yaml.Node) error { return decodeYAML(nonCombatJobIndex, j, node) }

// Value implements driver.Valuer; the column holds the code as TEXT.
func (j NonCombatJob) Value() (driver.Value, error) { return encodeValue(domainNonCombatJob, j, j.IsValid(), j.Code()) }

// Scan implements sql.Scanner.
func (j *NonCombatJob) Scan(src any) error { return decodeValue(nonCombatJobIndex, j, src) }

// MarshalText implements encoding.TextMarshaler.
func (g Guardian) MarshalText() ([]byte, error) { return encodeText(domainGuardian, g, g.IsValid(), g.Code()) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Guardian) UnmarshalText(text []byte) error { return decodeText(guardianIndex, g, text) }

// MarshalYAML implements yaml.Marshaler.
func (g Guardian) MarshalYAML() (any, error) { return encodeYAML(domainGuardian, g, g.IsValid(), g.Code()) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *Guardian) UnmarshalYAML(node *yaml.Node) error { return decodeYAML(guardianIndex, g, node) }

// Value implements driver.Valuer; the column holds the code as TEXT.
func (g Guardian) Value() (driver.Value, error) { return encodeValue(domainGuardian, g, g.IsValid(), g.Code()) }

// Scan implements sql.Scanner.
func (g *Guardian) Scan(src any) error { return decodeValue(guardianIndex, g, src) }
