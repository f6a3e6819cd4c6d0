// Package repair aligns a structure graph with curated reference
// topologies and fixes it up in place: atoms get canonical names, missing
// atoms are synthesized (topology only, no geometry), and atoms the
// reference does not know are flagged as modifications for downstream
// processors.
//
// Matching is independent per residue and could run concurrently; the
// builder keeps it sequential for now because the repair step that follows
// allocates node ids from shared state and has to be sequential anyway.
package repair

import (
	"go.uber.org/zap"

	"github.com/osmium-bio/molrepair/errors"
	"github.com/osmium-bio/molrepair/logger"
	"github.com/osmium-bio/molrepair/match"
	"github.com/osmium-bio/molrepair/molecule"
)

// ReferenceProvider supplies reference topologies by residue name.
// *forcefield.ForceField implements it; the provider is passed in
// explicitly rather than dug out of the molecule.
type ReferenceProvider interface {
	Reference(resname string) (*molecule.Graph, error)
}

// MatchRecord captures how one residue corresponds to its reference.
type MatchRecord struct {
	Chain   string
	Resid   int
	Resname string

	// Reference is the read-only canonical topology for the residue type.
	Reference *molecule.Graph

	// Found holds the structure node ids of the residue's atoms. Repair
	// extends it as atoms are synthesized so it stays in line with the
	// structure graph.
	Found map[int]struct{}

	// Match maps reference node ids to structure node ids. Injective;
	// reference ids without an entry are missing atoms, found ids outside
	// its values are extra (modification) atoms.
	Match match.Mapping
}

// ReferenceCollection is the per-molecule set of match records, indexed
// like the residue graph and carrying its inter-residue edges. Built fresh
// per molecule by MakeReference, then consumed read-only by RepairGraph
// (the records' Found and Match do get extended during repair).
type ReferenceCollection struct {
	Records map[int]*MatchRecord
	Edges   [][2]int
}

// matchStage tells how a residue was matched. Replaces the original
// try/except control flow with an explicit result.
type matchStage int

const (
	stageMatched matchStage = iota
	stageMatchedViaMCS
	stageUnmatched
)

type matchOutcome struct {
	stage    matchStage
	mappings []match.Mapping
}

// MakeReference builds the match records for every residue of mol.
//
// Residues that cannot be matched at all are skipped with an error-class
// event and contribute no record; RepairGraph leaves them untouched. A
// residue name unknown to the provider is the one hard failure and
// propagates to the caller.
func MakeReference(mol *molecule.Molecule, provider ReferenceProvider, log *zap.SugaredLogger) (*ReferenceCollection, error) {
	residues := molecule.Partition(mol.Graph)
	coll := &ReferenceCollection{
		Records: make(map[int]*MatchRecord, len(residues.Nodes)),
		Edges:   append([][2]int(nil), residues.Edges...),
	}

	for ridx, res := range residues.Nodes {
		reference, err := provider.Reference(res.Resname)
		if err != nil {
			return nil, errors.Wrapf(err, "residue %s%d", res.Resname, res.Resid)
		}
		found := residues.Subgraph(mol.Graph, ridx)

		outcome := matchResidue(reference, found, res.Resname, res.Resid, log)
		if outcome.stage == stageUnmatched {
			log.Errorw("cannot find isomorphism between residue and its reference",
				logger.FieldEvent, logger.EventInconsistentData,
				logger.FieldChain, res.Chain,
				logger.FieldResname, res.Resname,
				logger.FieldResid, res.Resid,
			)
			continue
		}

		best := match.BestMatches(reference, found, outcome.mappings)
		if len(best) > 1 {
			log.Warnw("more than one way to fit residue on its reference, picking one arbitrarily; fixing atom names would help",
				logger.FieldEvent, logger.EventBadAtomNames,
				logger.FieldChain, res.Chain,
				logger.FieldResname, res.Resname,
				logger.FieldResid, res.Resid,
				logger.FieldCount, len(best),
			)
		}

		foundSet := make(map[int]struct{}, len(res.Members))
		for _, id := range res.Members {
			foundSet[id] = struct{}{}
		}
		coll.Records[ridx] = &MatchRecord{
			Chain:     res.Chain,
			Resid:     res.Resid,
			Resname:   res.Resname,
			Reference: reference,
			Found:     foundSet,
			Match:     best[0].Copy(),
		}
	}
	return coll, nil
}

// matchResidue runs the three-stage matching state machine: forward
// isomorphism, reverse isomorphism, MCS-restricted isomorphism.
func matchResidue(reference, found *molecule.Graph, resname string, resid int, log *zap.SugaredLogger) matchOutcome {
	// Stage 1: assume reference >= residue (plain missing atoms).
	mappings := match.Isomorphisms(reference, found)
	if len(mappings) > 0 {
		return matchOutcome{stage: stageMatched, mappings: mappings}
	}

	// Stage 2: maybe reference < residue, i.e. PTM or protonation.
	reverse := match.Isomorphisms(found, reference)
	if len(reverse) > 0 {
		mappings = make([]match.Mapping, len(reverse))
		for i, m := range reverse {
			mappings[i] = m.Invert()
		}
		return matchOutcome{stage: stageMatched, mappings: mappings}
	}

	// Stage 3: the residue has both extra and missing atoms (termini are
	// the usual offenders), so neither containment holds. Identify the
	// atoms in the largest common subgraph and redo the isomorphism on
	// those. MCS is expensive, so it only runs when it has to.
	log.Debugw("falling back to MCS matching",
		logger.FieldEvent, logger.EventPerformance,
		logger.FieldResname, resname,
		logger.FieldResid, resid,
	)
	mcs, err := match.MaximumCommonSubgraph(reference, found)
	if err != nil {
		return matchOutcome{stage: stageUnmatched}
	}
	best := match.BestMatches(reference, found, mcs)
	restricted := found.Subgraph(best[0].Values())
	mappings = match.Isomorphisms(reference, restricted)
	if len(mappings) == 0 {
		return matchOutcome{stage: stageUnmatched}
	}
	return matchOutcome{stage: stageMatchedViaMCS, mappings: mappings}
}
