// internal/state/state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// State описывает один экран оконного приложения
type State interface {
	Enter()
	Update(deltaTime time.Duration)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine хранит текущий экран
type StateMachine struct {
	current State
}

// NewStateMachine создаёт машину состояний без начального экрана
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState выходит из текущего состояния и входит в newState
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет текущий экран
func (sm *StateMachine) Update(deltaTime time.Duration) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущий экран
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
