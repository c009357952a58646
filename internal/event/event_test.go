package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingListener struct {
	got []Event
}

func (l *countingListener) OnEvent(e Event) {
	l.got = append(l.got, e)
}

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	b := &countingListener{}

	d.Subscribe(ProjectileThrown, a)
	d.Subscribe(ProjectileThrown, b)
	d.Subscribe(RoundEnded, a)

	d.Dispatch(Event{Type: ProjectileThrown, Data: "x"})
	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
	assert.Equal(t, "x", a.got[0].Data)

	d.Dispatch(Event{Type: RoundEnded})
	assert.Len(t, a.got, 2)
	assert.Len(t, b.got, 1)

	// Nobody listens to this one; nothing happens.
	d.Dispatch(Event{Type: CharacterDamaged})
	assert.Len(t, a.got, 2)
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}

	d.Subscribe(CharacterDamaged, l)
	d.Dispatch(Event{Type: CharacterDamaged})
	d.Unsubscribe(CharacterDamaged, l)
	d.Dispatch(Event{Type: CharacterDamaged})

	assert.Len(t, l.got, 1)
}
