// Package commands implements the molrepair CLI subcommands. This is thin
// plumbing over the repair, forcefield and molecule packages; no domain
// logic lives here.
package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/osmium-bio/molrepair/config"
	"github.com/osmium-bio/molrepair/errors"
	"github.com/osmium-bio/molrepair/forcefield"
	"github.com/osmium-bio/molrepair/logger"
	"github.com/osmium-bio/molrepair/molecule"
	"github.com/osmium-bio/molrepair/repair"
)

// Cfg is the loaded configuration, set by the root command before any
// subcommand runs.
var Cfg *config.Config

// RepairCmd repairs a structure file in place of the pipeline.
var RepairCmd = &cobra.Command{
	Use:   "repair INPUT [OUTPUT]",
	Short: "Repair a structure graph against a force field",
	Long: `Read a structure graph (JSON), repair every molecule against the
force field's reference topologies, and write the repaired system to
OUTPUT (stdout when omitted). INPUT may be "-" for stdin.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRepair,
}

func init() {
	RepairCmd.Flags().StringP("forcefield", "f", "", "Directory of reference topology files")
	RepairCmd.Flags().Bool("permissive", false, "Drop molecules with unrecognized residues instead of failing")
}

func runRepair(cmd *cobra.Command, args []string) error {
	ff, err := loadForceField(cmd)
	if err != nil {
		return err
	}
	sys, err := readSystem(args[0])
	if err != nil {
		return err
	}

	permissive := Cfg != nil && Cfg.Repair.Permissive
	if cmd.Flags().Changed("permissive") {
		permissive, _ = cmd.Flags().GetBool("permissive")
	}

	proc := repair.NewProcessor(ff, permissive, logger.Logger)
	if err := proc.RunSystem(sys); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 2 {
		f, err := os.Create(args[1])
		if err != nil {
			return errors.Wrapf(err, "creating %s", args[1])
		}
		defer f.Close()
		out = f
	}
	return sys.Write(out)
}

func loadForceField(cmd *cobra.Command) (*forcefield.ForceField, error) {
	path, _ := cmd.Flags().GetString("forcefield")
	if path == "" && Cfg != nil {
		path = Cfg.ForceField.Path
	}
	if path == "" {
		return nil, errors.New("no force field: pass --forcefield or set forcefield.path in the config")
	}
	return forcefield.FromDir(path)
}

func readSystem(path string) (*molecule.System, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", path)
		}
		defer f.Close()
		r = f
	}
	sys, err := molecule.ReadSystem(r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading structure from %s", path)
	}
	return sys, nil
}
