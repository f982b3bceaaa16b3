package steps

import (
	"context"
	"fmt"
	"reflect"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/flightfuel-go/internal/domain/flight"
	"github.com/andrescamacho/flightfuel-go/internal/domain/shared"
)

// flightPlanContext holds the plan under construction plus the outcome of the
// last domain-level validation or computation. It is shared with the fuel
// report steps, which reuse the plan-building Given steps.
type flightPlanContext struct {
	mass      *int
	maneuvers []shared.Maneuver

	validator *flight.PathValidator
	engine    *flight.FuelEngine

	first     flight.ValidationResult
	second    flight.ValidationResult
	validated bool
	totalFuel int
	computed  bool
}

// plan is the package-level context shared across step files
var plan = &flightPlanContext{}

func (c *flightPlanContext) reset() {
	c.mass = nil
	c.maneuvers = nil
	c.validator = flight.NewPathValidator()
	c.engine = flight.NewFuelEngine()
	c.first = flight.ValidationResult{}
	c.second = flight.ValidationResult{}
	c.validated = false
	c.totalFuel = 0
	c.computed = false
}

// Given steps

func (c *flightPlanContext) aFlightPlanWithAMassOfKg(mass int) error {
	c.mass = &mass
	return nil
}

func (c *flightPlanContext) aFlightPlanWithNoMass() error {
	c.mass = nil
	return nil
}

func (c *flightPlanContext) thePlanHasTheManeuvers(table *godog.Table) error {
	maneuvers, err := maneuversFromTable(table)
	if err != nil {
		return err
	}
	c.maneuvers = maneuvers
	return nil
}

// When steps

func (c *flightPlanContext) iValidateTheFlightPlan() error {
	c.first = c.validator.Validate(c.mass, c.maneuvers)
	c.validated = true
	return nil
}

func (c *flightPlanContext) iValidateTheFlightPlanTwice() error {
	c.first = c.validator.Validate(c.mass, c.maneuvers)
	c.second = c.validator.Validate(c.mass, c.maneuvers)
	c.validated = true
	return nil
}

func (c *flightPlanContext) iComputeTheFuelForTheFlightPlan() error {
	if c.mass == nil {
		return fmt.Errorf("no mass set for computation")
	}
	c.totalFuel = c.engine.Compute(*c.mass, c.maneuvers)
	c.computed = true
	return nil
}

// Then steps

func (c *flightPlanContext) thePlanShouldBeCalculable() error {
	if !c.validated {
		return fmt.Errorf("the plan was never validated")
	}
	if !c.first.IsValid() {
		return fmt.Errorf("expected a calculable plan, got violations %v", c.first.Codes())
	}
	return nil
}

func (c *flightPlanContext) thePlanShouldNotBeCalculable() error {
	if !c.validated {
		return fmt.Errorf("the plan was never validated")
	}
	if c.first.IsValid() {
		return fmt.Errorf("expected violations, but the plan is calculable")
	}
	return nil
}

func (c *flightPlanContext) theViolationsShouldBeExactly(table *godog.Table) error {
	expected, err := codesFromTable(table)
	if err != nil {
		return err
	}
	actual := make([]string, 0, len(c.first.Violations))
	for _, code := range c.first.Codes() {
		actual = append(actual, string(code))
	}
	if !reflect.DeepEqual(expected, actual) {
		return fmt.Errorf("expected violations %v, got %v", expected, actual)
	}
	return nil
}

func (c *flightPlanContext) bothValidationsShouldAgree() error {
	if !reflect.DeepEqual(c.first, c.second) {
		return fmt.Errorf("validation is not idempotent: %v vs %v", c.first, c.second)
	}
	return nil
}

func (c *flightPlanContext) theTotalFuelShouldBeKg(expected int) error {
	if !c.computed {
		return fmt.Errorf("the fuel was never computed")
	}
	if c.totalFuel != expected {
		return fmt.Errorf("expected %d kg of fuel, got %d kg", expected, c.totalFuel)
	}
	return nil
}

func (c *flightPlanContext) theTotalMassShouldBeKg(expected int) error {
	if !c.computed {
		return fmt.Errorf("the fuel was never computed")
	}
	total := *c.mass + c.totalFuel
	if total != expected {
		return fmt.Errorf("expected a total mass of %d kg, got %d kg", expected, total)
	}
	return nil
}

func InitializeFlightPlanScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		plan.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a flight plan with a mass of (-?\d+) kg$`, plan.aFlightPlanWithAMassOfKg)
	ctx.Step(`^a flight plan with no mass$`, plan.aFlightPlanWithNoMass)
	ctx.Step(`^the plan has the maneuvers:$`, plan.thePlanHasTheManeuvers)

	// When steps
	ctx.Step(`^I validate the flight plan$`, plan.iValidateTheFlightPlan)
	ctx.Step(`^I validate the flight plan twice$`, plan.iValidateTheFlightPlanTwice)
	ctx.Step(`^I compute the fuel for the flight plan$`, plan.iComputeTheFuelForTheFlightPlan)

	// Then steps
	ctx.Step(`^the plan should be calculable$`, plan.thePlanShouldBeCalculable)
	ctx.Step(`^the plan should not be calculable$`, plan.thePlanShouldNotBeCalculable)
	ctx.Step(`^the violations should be exactly:$`, plan.theViolationsShouldBeExactly)
	ctx.Step(`^both validations should agree$`, plan.bothValidationsShouldAgree)
	ctx.Step(`^the total fuel should be (\d+) kg$`, plan.theTotalFuelShouldBeKg)
	ctx.Step(`^the total mass should be (\d+) kg$`, plan.theTotalMassShouldBeKg)
}
