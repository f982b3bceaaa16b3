package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/flightfuel-go/internal/domain/shared"
)

// NewBodiesCommand creates the bodies command
func NewBodiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bodies",
		Short: "List the known celestial bodies and their surface gravity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFormat == "json" {
				type bodyDTO struct {
					Name    string  `json:"name"`
					Gravity float64 `json:"gravity"`
				}
				var payload []bodyDTO
				for _, body := range shared.AllBodies() {
					gravity, _ := body.Gravity()
					payload = append(payload, bodyDTO{Name: body.Name(), Gravity: gravity})
				}
				out, err := json.MarshalIndent(payload, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			fmt.Println("Known celestial bodies:")
			for _, body := range shared.AllBodies() {
				gravity, _ := body.Gravity()
				fmt.Printf("  %-6s %.3f m/s²\n", body.Name(), gravity)
			}
			return nil
		},
	}
}
