package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/healthdesk/registry/patients"
)

var patientsPurgeParams = struct {
	OwnerId   string
	PatientId string
	DryRun    bool
}{}

var patientsPurgeCmd = &cobra.Command{
	Use:   "purge {ownerId} {patientId}",
	Args:  cobra.ExactArgs(2),
	Short: "Remove a patient on behalf of its owner",
	Long:  "The purge command removes a patient record, preserving the audit copy and notifying the patient",
	RunE: func(cmd *cobra.Command, args []string) error {
		patientsPurgeParams.OwnerId = args[0]
		patientsPurgeParams.PatientId = args[1]
		return Run(purgePatient)
	},
}

func init() {
	patientsPurgeCmd.Flags().BoolVar(&patientsPurgeParams.DryRun, "dry-run", false, "Only prints the patient that would be removed")

	patientsCmd.AddCommand(patientsPurgeCmd)
}

func purgePatient(service patients.Service) error {
	patient, err := service.Get(context.TODO(), patientsPurgeParams.OwnerId, patientsPurgeParams.PatientId)
	if err != nil {
		if err == patients.ErrNotFound {
			return fmt.Errorf("patient %s not found", patientsPurgeParams.PatientId)
		}
		return err
	}

	if patientsPurgeParams.DryRun {
		fmt.Printf("Would remove %s %s %s\n", patient.Id, patient.FullName, patient.Email)
		return nil
	}

	if err := service.Remove(context.TODO(), patientsPurgeParams.OwnerId, patientsPurgeParams.PatientId, ""); err != nil {
		return err
	}

	fmt.Printf("Removed %s %s %s\n", patient.Id, patient.FullName, patient.Email)
	return nil
}
