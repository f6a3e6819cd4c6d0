package commands

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/osmium-bio/molrepair/errors"
	"github.com/osmium-bio/molrepair/logger"
	"github.com/osmium-bio/molrepair/molecule"
	"github.com/osmium-bio/molrepair/repair"
)

// CheckCmd reports what repair would do, without doing it.
var CheckCmd = &cobra.Command{
	Use:   "check INPUT",
	Short: "Report missing and extra atoms per residue",
	Long: `Match every residue against its reference topology and report the
atoms repair would add and the atoms it would flag as modifications.
The structure is not modified. Molecules with unrecognized residues are
reported and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

// residueReport is one residue's diagnosis in the JSON report.
type residueReport struct {
	Chain   string   `json:"chain"`
	Resid   int      `json:"resid"`
	Resname string   `json:"resname"`
	Missing []string `json:"missing,omitempty"`
	Extra   []string `json:"extra,omitempty"`
}

func init() {
	CheckCmd.Flags().StringP("forcefield", "f", "", "Directory of reference topology files")
	CheckCmd.Flags().BoolP("report-json", "j", false, "Emit the report as JSON")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ff, err := loadForceField(cmd)
	if err != nil {
		return err
	}
	sys, err := readSystem(args[0])
	if err != nil {
		return err
	}
	asJSON, _ := cmd.Flags().GetBool("report-json")

	var reports []residueReport
	for idx, mol := range sys.Molecules {
		coll, err := repair.MakeReference(mol, ff, logger.Logger)
		if err != nil {
			if errors.IsUnknownResidue(err) {
				fmt.Fprintf(cmd.ErrOrStderr(), "molecule %d: %v\n", idx, err)
				continue
			}
			return errors.Wrapf(err, "molecule %d", idx)
		}
		reports = append(reports, diagnose(mol, coll)...)
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	for _, r := range reports {
		fmt.Fprintf(cmd.OutOrStdout(), "%s-%s%d: %d missing %v, %d extra %v\n",
			r.Chain, r.Resname, r.Resid, len(r.Missing), r.Missing, len(r.Extra), r.Extra)
	}
	return nil
}

// diagnose turns a reference collection into per-residue reports, ordered
// by residue index.
func diagnose(mol *molecule.Molecule, coll *repair.ReferenceCollection) []residueReport {
	indices := make([]int, 0, len(coll.Records))
	for ridx := range coll.Records {
		indices = append(indices, ridx)
	}
	sort.Ints(indices)

	var out []residueReport
	for _, ridx := range indices {
		rec := coll.Records[ridx]
		r := residueReport{Chain: rec.Chain, Resid: rec.Resid, Resname: rec.Resname}

		for _, refIdx := range rec.Reference.Nodes() {
			if _, ok := rec.Match[refIdx]; !ok {
				r.Missing = append(r.Missing, rec.Reference.Atom(refIdx).Atomname)
			}
		}
		matched := make(map[int]bool, len(rec.Match))
		for _, resIdx := range rec.Match {
			matched[resIdx] = true
		}
		var extra []int
		for resIdx := range rec.Found {
			if !matched[resIdx] {
				extra = append(extra, resIdx)
			}
		}
		sort.Ints(extra)
		for _, resIdx := range extra {
			r.Extra = append(r.Extra, mol.Atom(resIdx).Atomname)
		}
		out = append(out, r)
	}
	return out
}
