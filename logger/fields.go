package logger

// Standard field names for consistent structured logging across molrepair.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Event classification. Every repair event carries FieldEvent with one
	// of the Event* categories below so downstream consumers can filter
	// the stream without parsing messages.
	FieldEvent = "event"

	// Residue identity
	FieldChain   = "chain"
	FieldResid   = "resid"
	FieldResname = "resname"

	// Atom identity
	FieldAtom    = "atomname"
	FieldElement = "element"
	FieldNode    = "node"

	// Molecule and system context
	FieldMolecule = "molecule"
	FieldIndex    = "index"

	// Counts and sizes
	FieldCount = "count"

	// Errors
	FieldError = "error"
)

// Event categories attached under FieldEvent. These mirror the repair
// pipeline's observability contract and are part of the public interface;
// renaming one is a breaking change for log consumers.
const (
	// EventMissingAtom tags atoms absent from the structure but present in
	// the reference, and their later reconstruction (or failure thereof).
	EventMissingAtom = "missing-atom"

	// EventBadAtomNames tags ambiguous matches: more than one equally good
	// way to fit a residue on its reference, usually caused by misnamed
	// input atoms.
	EventBadAtomNames = "bad-atom-names"

	// EventInconsistentData tags residues that could not be matched to
	// their reference at all.
	EventInconsistentData = "inconsistent-data"

	// EventPerformance tags expensive fallback paths (MCS matching).
	EventPerformance = "performance"

	// EventUnknownResidue tags residue names with no reference topology.
	EventUnknownResidue = "unknown-residue"
)
