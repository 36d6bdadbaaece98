package frontdoor

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	POST(path string, body interface{}) error
	GET(path string, headers map[string]string) error
	GetResponseField(field string) (interface{}, error)
	GetAccessToken() string
	SetAccessToken(token string)
}

// RegisterSteps registers session, cart and checkout step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &frontdoorSteps{tc: tc}

	ctx.Step(`^I log in as "([^"]*)" with password "([^"]*)"$`, steps.login)
	ctx.Step(`^I save the access token$`, steps.saveAccessToken)
	ctx.Step(`^I forget the access token$`, steps.forgetAccessToken)
	ctx.Step(`^I add (\d+) of product (\d+) to my cart$`, steps.addToCart)
	ctx.Step(`^I remove (\d+) of product (\d+) from my cart$`, steps.removeFromCart)
	ctx.Step(`^my cart should hold (\d+) of product (\d+)$`, steps.cartShouldHold)
	ctx.Step(`^I check out$`, steps.checkout)
	ctx.Step(`^I save the statement id$`, steps.saveStatementID)
	ctx.Step(`^I read the saved statement$`, steps.readSavedStatement)
	ctx.Step(`^I log out$`, steps.logout)
}

type frontdoorSteps struct {
	tc          TestContext
	statementID string
}

func (s *frontdoorSteps) login(ctx context.Context, username, password string) error {
	return s.tc.POST("/login", map[string]interface{}{
		"username": username,
		"password": password,
	})
}

func (s *frontdoorSteps) saveAccessToken(ctx context.Context) error {
	token, err := s.tc.GetResponseField("data.access_token")
	if err != nil {
		return err
	}
	str, ok := token.(string)
	if !ok || str == "" {
		return fmt.Errorf("access token missing from login response")
	}
	s.tc.SetAccessToken(str)
	return nil
}

func (s *frontdoorSteps) forgetAccessToken(ctx context.Context) error {
	s.tc.SetAccessToken("")
	return nil
}

func (s *frontdoorSteps) addToCart(ctx context.Context, qty, productID int) error {
	return s.tc.POST("/cart/update", map[string]interface{}{"product_id": productID, "quantity": qty})
}

func (s *frontdoorSteps) removeFromCart(ctx context.Context, qty, productID int) error {
	return s.addToCart(ctx, -qty, productID)
}

func (s *frontdoorSteps) cartShouldHold(ctx context.Context, qty, productID int) error {
	if err := s.tc.GET("/cart", nil); err != nil {
		return err
	}
	got, err := s.tc.GetResponseField(fmt.Sprintf("data.%d", productID))
	if err != nil {
		if qty == 0 {
			return nil
		}
		return err
	}
	if n, ok := got.(float64); !ok || int(n) != qty {
		return fmt.Errorf("expected %d of product %d, got %v", qty, productID, got)
	}
	return nil
}

func (s *frontdoorSteps) checkout(ctx context.Context) error {
	return s.tc.POST("/purchase", map[string]interface{}{})
}

func (s *frontdoorSteps) saveStatementID(ctx context.Context) error {
	v, err := s.tc.GetResponseField("data.statement_id")
	if err != nil {
		return err
	}
	n, ok := v.(float64)
	if !ok {
		return fmt.Errorf("statement id is not a number: %v", v)
	}
	s.statementID = fmt.Sprintf("%.0f", n)
	return nil
}

func (s *frontdoorSteps) readSavedStatement(ctx context.Context) error {
	if s.statementID == "" {
		return fmt.Errorf("no statement id saved")
	}
	return s.tc.GET("/statements/"+s.statementID, nil)
}

func (s *frontdoorSteps) logout(ctx context.Context) error {
	return s.tc.POST("/logout", map[string]interface{}{})
}
