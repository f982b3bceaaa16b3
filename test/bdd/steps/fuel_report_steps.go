package steps

import (
	"context"
	"fmt"
	"reflect"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/flightfuel-go/internal/application/common"
	flightCommands "github.com/andrescamacho/flightfuel-go/internal/application/flight/commands"
	"github.com/andrescamacho/flightfuel-go/internal/application/flight/types"
	"github.com/andrescamacho/flightfuel-go/internal/domain/flight"
)

// fuelReportContext drives the application layer end to end: the plan built
// by the shared Given steps is sent through the mediator to the compute fuel
// handler.
type fuelReportContext struct {
	mediator common.Mediator
	response *types.ComputeFuelResponse
}

var report = &fuelReportContext{}

func (rc *fuelReportContext) reset() error {
	rc.response = nil

	m := common.NewMediator()
	handler := flightCommands.NewComputeFuelHandler(flight.NewPathValidator(), flight.NewFuelEngine())
	if err := common.RegisterHandler[*types.ComputeFuelCommand](m, handler); err != nil {
		return err
	}
	rc.mediator = m
	return nil
}

// When steps

func (rc *fuelReportContext) iRequestAFuelReport() error {
	response, err := rc.mediator.Send(context.Background(), &types.ComputeFuelCommand{
		Mass:      plan.mass,
		Maneuvers: plan.maneuvers,
	})
	if err != nil {
		return err
	}

	result, ok := response.(*types.ComputeFuelResponse)
	if !ok {
		return fmt.Errorf("unexpected response type %T", response)
	}
	rc.response = result
	return nil
}

// Then steps

func (rc *fuelReportContext) theReportShouldBeAccepted() error {
	if rc.response == nil {
		return fmt.Errorf("no fuel report was requested")
	}
	if !rc.response.Valid {
		return fmt.Errorf("expected an accepted report, got violations %v", rc.response.Violations)
	}
	return nil
}

func (rc *fuelReportContext) theReportShouldBeRejected() error {
	if rc.response == nil {
		return fmt.Errorf("no fuel report was requested")
	}
	if rc.response.Valid {
		return fmt.Errorf("expected a rejected report, but it was accepted")
	}
	return nil
}

func (rc *fuelReportContext) theReportShouldHaveAReportID() error {
	if rc.response.ReportID == "" {
		return fmt.Errorf("expected a report ID, got an empty string")
	}
	return nil
}

func (rc *fuelReportContext) theReportShouldContainLegs(expected int) error {
	if len(rc.response.Legs) != expected {
		return fmt.Errorf("expected %d legs, got %d", expected, len(rc.response.Legs))
	}
	return nil
}

func (rc *fuelReportContext) theReportLegsShouldSumToTheTotalFuel() error {
	sum := 0
	for _, leg := range rc.response.Legs {
		sum += leg.Fuel
	}
	if sum != rc.response.TotalFuel {
		return fmt.Errorf("legs sum to %d kg but total fuel is %d kg", sum, rc.response.TotalFuel)
	}
	return nil
}

func (rc *fuelReportContext) theReportTotalFuelShouldBeKg(expected int) error {
	if rc.response.TotalFuel != expected {
		return fmt.Errorf("expected %d kg of fuel, got %d kg", expected, rc.response.TotalFuel)
	}
	return nil
}

func (rc *fuelReportContext) theReportViolationsShouldBeExactly(table *godog.Table) error {
	expected, err := codesFromTable(table)
	if err != nil {
		return err
	}
	actual := make([]string, 0, len(rc.response.Violations))
	for _, v := range rc.response.Violations {
		actual = append(actual, string(v.Code))
	}
	if !reflect.DeepEqual(expected, actual) {
		return fmt.Errorf("expected violations %v, got %v", expected, actual)
	}
	return nil
}

func InitializeFuelReportScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, report.reset()
	})

	// When steps
	ctx.Step(`^I request a fuel report$`, report.iRequestAFuelReport)

	// Then steps
	ctx.Step(`^the report should be accepted$`, report.theReportShouldBeAccepted)
	ctx.Step(`^the report should be rejected$`, report.theReportShouldBeRejected)
	ctx.Step(`^the report should have a report ID$`, report.theReportShouldHaveAReportID)
	ctx.Step(`^the report should contain (\d+) legs$`, report.theReportShouldContainLegs)
	ctx.Step(`^the report legs should sum to the total fuel$`, report.theReportLegsShouldSumToTheTotalFuel)
	ctx.Step(`^the report total fuel should be (\d+) kg$`, report.theReportTotalFuelShouldBeKg)
	ctx.Step(`^the report violations should be exactly:$`, report.theReportViolationsShouldBeExactly)
}
