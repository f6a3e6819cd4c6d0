package repair

import (
	"go.uber.org/zap"

	"github.com/osmium-bio/molrepair/errors"
	"github.com/osmium-bio/molrepair/logger"
	"github.com/osmium-bio/molrepair/molecule"
)

// Processor repairs molecules against a force field. It is cheap to
// construct and carries no per-run state; Permissive is fixed at
// construction time.
type Processor struct {
	provider   ReferenceProvider
	permissive bool
	log        *zap.SugaredLogger
}

// NewProcessor returns a processor using the given reference provider.
// With permissive set, system-level repair drops molecules containing
// residues the provider does not know instead of failing.
func NewProcessor(provider ReferenceProvider, permissive bool, log *zap.SugaredLogger) *Processor {
	if log == nil {
		log = logger.Logger
	}
	return &Processor{
		provider:   provider,
		permissive: permissive,
		log:        log.Named("repair"),
	}
}

// RunMolecule repairs a single molecule and returns the repaired copy; the
// input molecule is never modified. Unknown residue names and internal
// assertion failures surface as errors.
func (p *Processor) RunMolecule(mol *molecule.Molecule) (*molecule.Molecule, error) {
	repaired := mol.Copy()
	coll, err := MakeReference(repaired, p.provider, p.log)
	if err != nil {
		return nil, err
	}
	if err := RepairGraph(repaired, coll, p.log); err != nil {
		return nil, err
	}
	return repaired, nil
}

// RunSystem repairs every molecule of the system in order, replacing each
// with its repaired copy. Molecules are processed strictly sequentially.
func (p *Processor) RunSystem(sys *molecule.System) error {
	repaired := make([]*molecule.Molecule, 0, len(sys.Molecules))
	for idx, mol := range sys.Molecules {
		out, err := p.RunMolecule(mol)
		if err != nil {
			if p.permissive && errors.IsUnknownResidue(err) {
				p.log.Warnw("cannot recognize molecule, deleting it from the system",
					logger.FieldEvent, logger.EventUnknownResidue,
					logger.FieldIndex, idx,
					logger.FieldMolecule, mol.ID.String(),
					logger.FieldError, err.Error(),
				)
				continue
			}
			return errors.Wrapf(err, "molecule %d", idx)
		}
		repaired = append(repaired, out)
	}
	sys.Molecules = repaired
	return nil
}
