package xiv

// SnapshotPatch is the game patch the compiled-in tables describe. Every
// snapshot_*.go file in this package belongs to the same snapshot; a content
// patch edits those files and bumps this constant.
const SnapshotPatch = "7.0"
