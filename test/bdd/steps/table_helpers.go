package steps

import (
	"fmt"

	messages "github.com/cucumber/messages/go/v21"

	"github.com/andrescamacho/flightfuel-go/internal/domain/shared"
)

// maneuversFromTable parses a gherkin table with action/body columns into an
// ordered maneuver sequence
func maneuversFromTable(table *messages.PickleTable) ([]shared.Maneuver, error) {
	if len(table.Rows) < 1 {
		return nil, fmt.Errorf("maneuver table needs a header row")
	}

	header := table.Rows[0]
	actionCol, bodyCol := -1, -1
	for i, cell := range header.Cells {
		switch cell.Value {
		case "action":
			actionCol = i
		case "body":
			bodyCol = i
		}
	}
	if actionCol < 0 || bodyCol < 0 {
		return nil, fmt.Errorf("maneuver table needs action and body columns")
	}

	var maneuvers []shared.Maneuver
	for _, row := range table.Rows[1:] {
		m, err := shared.NewManeuver(row.Cells[actionCol].Value, row.Cells[bodyCol].Value)
		if err != nil {
			return nil, err
		}
		maneuvers = append(maneuvers, m)
	}
	return maneuvers, nil
}

// codesFromTable parses a single-column gherkin table of violation codes
func codesFromTable(table *messages.PickleTable) ([]string, error) {
	if len(table.Rows) < 1 {
		return nil, fmt.Errorf("code table needs a header row")
	}
	if len(table.Rows[0].Cells) != 1 || table.Rows[0].Cells[0].Value != "code" {
		return nil, fmt.Errorf("code table needs a single 'code' column")
	}

	codes := make([]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		codes = append(codes, row.Cells[0].Value)
	}
	return codes, nil
}
