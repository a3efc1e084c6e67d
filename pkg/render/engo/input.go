// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-waverider/pkg/input"
)

// Button names registered by SetupInputBindings.
const (
	buttonThrust    = "thrust"
	buttonReverse   = "reverse"
	buttonTurnLeft  = "turnLeft"
	buttonTurnRight = "turnRight"
	buttonLookLeft  = "lookLeft"
	buttonLookRight = "lookRight"
	buttonLookUp    = "lookUp"
	buttonLookDown  = "lookDown"
	buttonBoost     = "boost"
	buttonReset     = "reset"
)

// KeyboardProvider reads engo's keyboard state and turns it into a
// normalized control snapshot. It implements input.Provider, so it can be
// passed straight into an engine session.
type KeyboardProvider struct{}

// NewKeyboardProvider creates a provider. SetupInputBindings must have
// been called before the first Poll.
func NewKeyboardProvider() *KeyboardProvider {
	return &KeyboardProvider{}
}

// Poll implements input.Provider. Opposing keys held together cancel out.
func (kp *KeyboardProvider) Poll() input.ControlInput {
	var ctl input.ControlInput

	if engo.Input.Button(buttonThrust).Down() {
		ctl.MoveY += 1
	}
	if engo.Input.Button(buttonReverse).Down() {
		ctl.MoveY -= 1
	}
	if engo.Input.Button(buttonTurnRight).Down() {
		ctl.MoveX += 1
	}
	if engo.Input.Button(buttonTurnLeft).Down() {
		ctl.MoveX -= 1
	}

	if engo.Input.Button(buttonLookRight).Down() {
		ctl.LookX += 1
	}
	if engo.Input.Button(buttonLookLeft).Down() {
		ctl.LookX -= 1
	}
	if engo.Input.Button(buttonLookUp).Down() {
		ctl.LookY += 1
	}
	if engo.Input.Button(buttonLookDown).Down() {
		ctl.LookY -= 1
	}

	ctl.Boost = engo.Input.Button(buttonBoost).Down()
	ctl.ResetRequested = engo.Input.Button(buttonReset).JustPressed()

	return ctl.Clamped()
}

// SetupInputBindings registers the key bindings for piloting.
func SetupInputBindings() {
	engo.Input.RegisterButton(buttonThrust, engo.KeyW)
	engo.Input.RegisterButton(buttonReverse, engo.KeyS)
	engo.Input.RegisterButton(buttonTurnLeft, engo.KeyA)
	engo.Input.RegisterButton(buttonTurnRight, engo.KeyD)

	engo.Input.RegisterButton(buttonLookLeft, engo.KeyArrowLeft)
	engo.Input.RegisterButton(buttonLookRight, engo.KeyArrowRight)
	engo.Input.RegisterButton(buttonLookUp, engo.KeyArrowUp)
	engo.Input.RegisterButton(buttonLookDown, engo.KeyArrowDown)

	engo.Input.RegisterButton(buttonBoost, engo.KeyLeftShift)
	engo.Input.RegisterButton(buttonReset, engo.KeyR)
}
