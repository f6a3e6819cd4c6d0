package repair

import (
	"sort"

	"go.uber.org/zap"

	"github.com/osmium-bio/molrepair/errors"
	"github.com/osmium-bio/molrepair/logger"
	"github.com/osmium-bio/molrepair/molecule"
)

// RepairResidue rebuilds missing atoms and canonicalizes atom names for
// one residue. The molecule is mutated in place; the record's Match and
// Found are extended with every synthesized atom.
//
// The only returned error is an assertion failure: a synthesized atom that
// ends up with no neighbors, which the eligibility rule makes impossible.
// Atoms whose every reference neighbor is also missing are unrecoverable;
// they are reported and left absent while the rest of the residue is
// repaired.
func RepairResidue(mol *molecule.Molecule, rec *MatchRecord, log *zap.SugaredLogger) error {
	reference := rec.Reference

	// Step 1: canonicalize matched atoms, collect the missing ones.
	var missing []int
	missingSet := make(map[int]bool)
	for _, refIdx := range reference.Nodes() {
		refAtom := reference.Atom(refIdx)
		if resIdx, ok := rec.Match[refIdx]; ok {
			atom := mol.Atom(resIdx)
			// Any cached single-atom subgraph view predates the rename
			// and would alias stale attributes; drop it.
			delete(atom.Extras, "graph")
			atom.UpdateFrom(refAtom)
			continue
		}
		missing = append(missing, refIdx)
		missingSet[refIdx] = true
		kv := []any{
			logger.FieldEvent, logger.EventMissingAtom,
			logger.FieldResname, rec.Resname,
			logger.FieldResid, rec.Resid,
			logger.FieldAtom, refAtom.Atomname,
		}
		if refAtom.IsHydrogen() {
			// Below info level, otherwise the screen fills up fast.
			log.Debugw("missing atom", kv...)
		} else {
			log.Infow("missing atom", kv...)
		}
	}

	// Step 2: add missing atoms one by one. As long as something was
	// added the situation changed and another atom may become placeable.
	// An atom is only placeable once one of its reference neighbors is.
	added := true
	for len(missing) > 0 && added {
		added = false
		var remaining []int
		for _, refIdx := range missing {
			eligible := false
			for _, nb := range reference.Neighbors(refIdx) {
				if !missingSet[nb] {
					eligible = true
					break
				}
			}
			if !eligible {
				remaining = append(remaining, refIdx)
				continue
			}

			if err := synthesizeAtom(mol, rec, refIdx, log); err != nil {
				return err
			}
			delete(missingSet, refIdx)
			added = true
		}
		missing = remaining
	}

	for _, refIdx := range missing {
		refAtom := reference.Atom(refIdx)
		log.Errorw("could not reconstruct atom",
			logger.FieldEvent, logger.EventMissingAtom,
			logger.FieldResname, rec.Resname,
			logger.FieldResid, rec.Resid,
			logger.FieldAtom, refAtom.Atomname,
		)
	}
	return nil
}

// synthesizeAtom materializes the reference atom refIdx in the structure
// graph and wires it to every already-resolved neighbor.
func synthesizeAtom(mol *molecule.Molecule, rec *MatchRecord, refIdx int, log *zap.SugaredLogger) error {
	reference := rec.Reference
	refAtom := reference.Atom(refIdx)

	// Never reuse a node id: picking the lowest free number is asking to
	// find an atom you don't expect because an old one was removed and
	// its number reassigned.
	resIdx := mol.MaxNode() + 1

	atom := &molecule.Atom{
		Chain:   rec.Chain,
		Resid:   rec.Resid,
		Resname: rec.Resname,
	}
	atom.UpdateFrom(refAtom)
	atom.Atomid = resIdx + 1

	rec.Match[refIdx] = resIdx
	mol.AddAtom(resIdx, atom)
	rec.Found[resIdx] = struct{}{}

	log.Debugw("adding atom",
		logger.FieldEvent, logger.EventMissingAtom,
		logger.FieldAtom, atom.String(),
		logger.FieldNode, resIdx,
	)

	neighbors := 0
	for _, nbRef := range reference.Neighbors(refIdx) {
		nbRes, ok := rec.Match[nbRef]
		if !ok || !mol.HasNode(nbRes) {
			continue
		}
		if !mol.HasEdge(nbRes, resIdx) {
			mol.AddEdge(nbRes, resIdx)
			neighbors++
		}
	}
	if neighbors == 0 {
		// The atom was only eligible because a neighbor was resolved;
		// ending up without edges contradicts that.
		return errors.AssertionFailedf("synthesized atom %s (node %d) has no neighbors", atom, resIdx)
	}
	return nil
}

// RepairGraph repairs every residue of mol recorded in coll, then marks
// the atoms the reference does not account for. Residues absent from coll
// (unmatched ones) are left exactly as they were.
func RepairGraph(mol *molecule.Molecule, coll *ReferenceCollection, log *zap.SugaredLogger) error {
	indices := make([]int, 0, len(coll.Records))
	for ridx := range coll.Records {
		indices = append(indices, ridx)
	}
	sort.Ints(indices)

	for _, ridx := range indices {
		rec := coll.Records[ridx]
		if err := RepairResidue(mol, rec, log); err != nil {
			return errors.Wrapf(err, "repairing residue %s%d", rec.Resname, rec.Resid)
		}

		// Atoms in found with no match in the reference are additions:
		// PTMs, termini caps, protonation variants. Flag them for the
		// downstream modification processors.
		matched := make(map[int]bool, len(rec.Match))
		for _, resIdx := range rec.Match {
			matched[resIdx] = true
		}
		for resIdx := range rec.Found {
			if !matched[resIdx] {
				mol.Atom(resIdx).PTMAtom = true
			}
		}
	}
	return nil
}
