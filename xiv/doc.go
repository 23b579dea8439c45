// Package xiv is a reference-data registry for Final Fantasy XIV labels:
// worlds, data centers, regions, races, clans, combat jobs, base classes,
// non-combat jobs, job classifications, roles, and guardian deities.
//
// # Closed Types
//
// Every domain is a small integer type with one exported constant per
// variant. Tags start at 1, so the zero value of any type is never a real
// variant and IsValid reports false for it. All types share the same
// surface:
//
//   - Worlds, Jobs, Races, ... return every variant in declaration order.
//   - Code returns the stable, space-free identifier ("BlackMage").
//   - Name returns the display form ("Black Mage"); String returns Name.
//   - ParseWorld, ParseJob, ... resolve a string case-insensitively. They
//     accept the code and the name, plus the abbreviation where a domain has
//     one ("BLM", "ACN", "DoW", "NA").
//
// # Relationships
//
// Composite types map into leaf types through total, table-driven functions:
//
//	World.DataCenter    DataCenter.Region    DataCenter.Worlds
//	Clan.Race           Race.Clans (always exactly two)
//	Job.Role            Job.Classification   Job.BaseClass
//	Class.Role          Class.Classification Class.Jobs
//	NonCombatJob.Classification
//
// # Encoding
//
// The wire form of every value is its Code. Each type implements
// encoding.TextMarshaler and TextUnmarshaler (JSON values and map keys),
// yaml.Marshaler and yaml.Unmarshaler, and driver.Valuer and sql.Scanner.
// Decoding goes through the same parser, so it rejects exactly what parsing
// rejects.
//
// Nulls follow each library's convention. A JSON null or a YAML null (~)
// never reaches the unmarshaler, so the destination keeps its previous value
// and no error is returned. A SQL NULL does reach Scan and is rejected with
// UnknownVariantError (input "NULL"). Use a pointer field for optional JSON
// or YAML values, and sql.Null[T] for nullable columns.
//
// # Errors
//
// Parsing and decoding fail with *UnknownVariantError, which names the domain
// and carries the raw input. errors.Is(err, ErrUnknownVariant) matches all of
// them.
//
// # Snapshots
//
// The tables describe one game patch (SnapshotPatch). They live in the
// snapshot_*.go files and nowhere else: adding a world, renaming a clan, or
// moving a world to another data center is a single edit to one constant
// block and its table. Reverse lookups (DataCenter.Worlds, Race.Clans,
// Class.Jobs, Role.Jobs) are derived from the forward tables at init.
//
// All functions are safe for concurrent use; the tables are never written
// after package initialization.
package xiv
