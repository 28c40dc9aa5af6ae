package steps

import (
	"context"
	"net/http"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/moneybook/backend/test/integration/mock"
)

// TestContext holds per-scenario state.
type TestContext struct {
	client *http.Client

	requestHeaders map[string]string
	accessToken    string

	// vars holds captured values substituted into request paths and
	// bodies via {{name}} placeholders.
	vars map[string]string

	responseStatus int
	responseBody   []byte
}

type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up shared resources before any scenario runs.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		bootstrap()
	})

	ctx.AfterSuite(func() {
		if testServer != nil {
			testServer.Close()
		}
	})
}

// InitializeScenario registers step definitions and resets state between
// scenarios.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		bootstrap()
		if err := testDB.ClearDB(); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(mock.NewRedis()); err != nil {
			return ctx, err
		}

		tc := &TestContext{
			client:         &http.Client{},
			requestHeaders: make(map[string]string),
			vars:           make(map[string]string),
		}
		return SetTestContext(ctx, tc), nil
	})

	registerGivenSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

func registerGivenSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a user "([^"]*)" exists with password "([^"]*)"$`, aUserExistsWithPassword)
	ctx.Step(`^a user "([^"]*)" exists$`, aUserExists)
	ctx.Step(`^I am authenticated as "([^"]*)"$`, iAmAuthenticatedAs)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
}

func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I capture the response field "([^"]*)" as "([^"]*)"$`, iCaptureTheResponseFieldAs)
}

func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the db should contain (\d+) objects? in the "([^"]*)" table$`, theDbShouldContainObjectsInTheTable)
}
