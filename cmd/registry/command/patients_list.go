package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/healthdesk/registry/patients"
	"github.com/healthdesk/registry/store"
)

var patientsListParams = struct {
	OwnerId   string
	BatchSize int
}{}

var patientsListCmd = &cobra.Command{
	Use:   "list {ownerId}",
	Args:  cobra.ExactArgs(1),
	Short: "List the patients registered by a user",
	Long:  "The list command retrieves every patient registered by the given user",
	RunE: func(cmd *cobra.Command, args []string) error {
		patientsListParams.OwnerId = args[0]
		return Run(listPatients)
	},
}

func init() {
	patientsListCmd.Flags().IntVar(&patientsListParams.BatchSize, "batch-size", 100, "Batch size to use when fetching patients")

	patientsCmd.AddCommand(patientsListCmd)
}

func listPatients(service patients.Service) error {
	filter := patients.Filter{
		OwnerId: patientsListParams.OwnerId,
	}

	total := int64(0)
	page := store.DefaultPagination().WithLimit(patientsListParams.BatchSize)
	for {
		result, err := service.List(context.TODO(), &filter, page)
		if err != nil {
			return fmt.Errorf("patients list error: %w", err)
		}

		for _, patient := range result.Data {
			fmt.Printf("%s %s %s %s\n", patient.Id, patient.FullName, patient.Email, patient.Phone)
		}

		total = result.Total
		if len(result.Data) < page.Limit {
			break
		}
		page = page.WithOffset(page.Offset + page.Limit)
	}

	fmt.Printf("Found %v patients\n", total)
	return nil
}
